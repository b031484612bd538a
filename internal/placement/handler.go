package placement

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sgiach_demo_backend/internal/session"
	"sgiach_demo_backend/platform/httpkit"
	"sgiach_demo_backend/platform/validator"
)

// Handler exposes the placement sandbox endpoints.
type Handler struct {
	svc *Service
	val *validator.Validator
}

func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// PlaceRequest is one drop attempt: the palette item and the raw drop
// point relative to the grid container. Coordinates are not range-checked
// here; a slightly negative drop still snaps and goes through the normal
// bounds check.
type PlaceRequest struct {
	Type string `json:"type" validate:"required"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (h *Handler) Place(c *gin.Context) {
	var req PlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	sessionID := session.FromContext(c)
	outcome, err := h.svc.Place(c.Request.Context(), sessionID, req.Type, req.X, req.Y)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, outcome)
}

func (h *Handler) List(c *gin.Context) {
	sessionID := session.FromContext(c)
	httpkit.OK(c, gin.H{
		"palette":   Palette,
		"buildable": Buildable,
		"placed":    h.svc.List(sessionID),
	})
}

func (h *Handler) Remove(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid building id", nil)
		return
	}

	sessionID := session.FromContext(c)
	if err := h.svc.Remove(sessionID, id); httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{"removed": id})
}
