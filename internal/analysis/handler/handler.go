// Package handler exposes the property-analysis HTTP endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sgiach_demo_backend/internal/analysis/client"
	"sgiach_demo_backend/internal/analysis/service"
	"sgiach_demo_backend/internal/analysis/transport"
	"sgiach_demo_backend/internal/mapview"
	"sgiach_demo_backend/internal/results"
	"sgiach_demo_backend/internal/session"
	"sgiach_demo_backend/platform/httpkit"
	"sgiach_demo_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.RunAnalysis)
	rg.GET("/current", h.Current)
	rg.GET("/status", h.Status)
	rg.POST("/validation-request", h.RequestValidation)
}

// AnalysisView is the full render payload for one analysis: the raw result
// plus the summary card and the marker set derived from it.
type AnalysisView struct {
	Source     client.Source            `json:"source"`
	Reason     string                   `json:"reason,omitempty"`
	Superseded bool                     `json:"superseded,omitempty"`
	Result     transport.AnalysisResult `json:"result"`
	Summary    results.SummaryCard      `json:"summary"`
	Markers    mapview.MarkerSet        `json:"markers"`
}

func (h *Handler) RunAnalysis(c *gin.Context) {
	var req transport.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	sessionID := session.FromContext(c)
	current, superseded := h.svc.RunAnalysis(c.Request.Context(), sessionID, req)

	httpkit.OK(c, buildView(current, superseded))
}

func (h *Handler) Current(c *gin.Context) {
	sessionID := session.FromContext(c)
	current, ok := h.svc.Current(sessionID)
	if !ok {
		httpkit.Error(c, http.StatusNotFound, "no analysis available for this session", nil)
		return
	}

	httpkit.OK(c, buildView(current, false))
}

func (h *Handler) Status(c *gin.Context) {
	sessionID := session.FromContext(c)
	report := h.svc.CheckConnectivity(c.Request.Context(), sessionID)
	httpkit.OK(c, report)
}

type validationRequestBody struct {
	ValidationType string `json:"validationType" validate:"required"`
}

func (h *Handler) RequestValidation(c *gin.Context) {
	var body validationRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}
	if err := h.val.Struct(body); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	sessionID := session.FromContext(c)
	ticket, err := h.svc.RequestValidation(c.Request.Context(), sessionID, body.ValidationType)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{"validationRequest": ticket})
}

func buildView(current service.CurrentAnalysis, superseded bool) AnalysisView {
	return AnalysisView{
		Source:     current.Source,
		Reason:     current.Reason,
		Superseded: superseded,
		Result:     current.Result,
		Summary:    results.BuildSummary(current.Result),
		Markers:    mapview.BuildMarkers(current.Center, current.Address, &current.Result),
	}
}
