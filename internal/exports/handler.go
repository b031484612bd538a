package exports

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sgiach_demo_backend/internal/analysis/client"
	"sgiach_demo_backend/internal/events"
	"sgiach_demo_backend/internal/placement"
	"sgiach_demo_backend/internal/results"
	"sgiach_demo_backend/internal/session"
	"sgiach_demo_backend/platform/httpkit"
	"sgiach_demo_backend/platform/logger"
)

// OpportunitySource yields the session's latest opportunity analysis.
type OpportunitySource interface {
	Latest(sessionID uuid.UUID) (client.OpportunityOutcome, error)
}

// PlacementSource yields the session's placement records.
type PlacementSource interface {
	Records(sessionID uuid.UUID) []placement.ExportRecord
}

// Handler serves the download endpoints.
type Handler struct {
	opportunities OpportunitySource
	placements    PlacementSource
	bus           events.Bus
	log           *logger.Logger
}

func NewHandler(opportunities OpportunitySource, placements PlacementSource, bus events.Bus, log *logger.Logger) *Handler {
	return &Handler{
		opportunities: opportunities,
		placements:    placements,
		bus:           bus,
		log:           log,
	}
}

// OpportunitiesCSV streams the session's latest opportunity table.
func (h *Handler) OpportunitiesCSV(c *gin.Context) {
	sessionID := session.FromContext(c)
	outcome, err := h.opportunities.Latest(sessionID)
	if httpkit.HandleError(c, err) {
		return
	}

	cards := results.BuildOpportunityCards(outcome.Response)

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=development-opportunities.csv")
	if err := WriteOpportunityCSV(c.Writer, cards); err != nil {
		return
	}

	h.publishGenerated(c, sessionID, "opportunities", "csv", len(cards))
}

// PlacementsCSV streams the session's placement layout as CSV.
func (h *Handler) PlacementsCSV(c *gin.Context) {
	sessionID := session.FromContext(c)
	records := h.placements.Records(sessionID)

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=building-placements.csv")
	if err := WritePlacementCSV(c.Writer, records); err != nil {
		return
	}

	h.publishGenerated(c, sessionID, "placements", "csv", len(records))
}

// PlacementsJSON serves the placement layout as a JSON download.
func (h *Handler) PlacementsJSON(c *gin.Context) {
	sessionID := session.FromContext(c)
	records := h.placements.Records(sessionID)

	c.Header("Content-Disposition", "attachment; filename=building-placements.json")
	c.JSON(http.StatusOK, gin.H{"placements": records})

	h.publishGenerated(c, sessionID, "placements", "json", len(records))
}

func (h *Handler) publishGenerated(c *gin.Context, sessionID uuid.UUID, kind, format string, rows int) {
	h.bus.Publish(c.Request.Context(), events.ExportGenerated{
		BaseEvent: events.NewBaseEvent(),
		SessionID: sessionID.String(),
		Kind:      kind,
		Format:    format,
		Rows:      rows,
	})
}
