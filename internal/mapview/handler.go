package mapview

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sgiach_demo_backend/internal/analysis/transport"
	"sgiach_demo_backend/internal/session"
	"sgiach_demo_backend/platform/httpkit"
)

// MapState is the slice of an analysis the map presenter consumes.
type MapState struct {
	Center  transport.Coordinates
	Address string
	Result  *transport.AnalysisResult
}

// CurrentAnalysisProvider yields the session's committed analysis, if any.
type CurrentAnalysisProvider interface {
	CurrentMapState(sessionID uuid.UUID) (MapState, bool)
}

// Handler serves the marker sets the map renders.
type Handler struct {
	provider CurrentAnalysisProvider
}

func NewHandler(provider CurrentAnalysisProvider) *Handler {
	return &Handler{provider: provider}
}

// Markers returns the full marker set for the session. With no analysis
// yet the set is just the municipality center, so the map can render its
// initial view from the same endpoint.
func (h *Handler) Markers(c *gin.Context) {
	sessionID := session.FromContext(c)

	state, ok := h.provider.CurrentMapState(sessionID)
	if !ok {
		center := MunicipalityCenter(c.Query("municipality"))
		httpkit.OK(c, BuildMarkers(center, "", nil))
		return
	}

	httpkit.OK(c, BuildMarkers(state.Center, state.Address, state.Result))
}

// Municipalities lists the selectable municipalities and their centers.
func (h *Handler) Municipalities(c *gin.Context) {
	type entry struct {
		Key    string                `json:"key"`
		Center transport.Coordinates `json:"center"`
	}
	out := make([]entry, 0, len(municipalityCenters))
	for key, center := range municipalityCenters {
		out = append(out, entry{Key: key, Center: center})
	}
	httpkit.OK(c, gin.H{"municipalities": out, "defaultZoom": DefaultZoom})
}
