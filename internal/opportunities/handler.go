package opportunities

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sgiach_demo_backend/internal/analysis/client"
	"sgiach_demo_backend/internal/analysis/transport"
	"sgiach_demo_backend/internal/results"
	"sgiach_demo_backend/internal/session"
	"sgiach_demo_backend/platform/httpkit"
	"sgiach_demo_backend/platform/validator"
)

// Handler exposes the opportunity analysis endpoints.
type Handler struct {
	svc *Service
	val *validator.Validator
}

func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// OpportunityView is what the landing page renders: the ready-made cards
// plus the raw response for anything card rendering leaves out.
type OpportunityView struct {
	Source        client.Source             `json:"source"`
	Reason        string                    `json:"reason,omitempty"`
	Summary       transport.AnalysisSummary `json:"summary"`
	Cards         []results.OpportunityCard `json:"cards"`
	DataSources   []string                  `json:"dataSources"`
	AnalysisStamp string                    `json:"analysisTimestamp"`
}

func buildView(outcome client.OpportunityOutcome) OpportunityView {
	return OpportunityView{
		Source:        outcome.Source,
		Reason:        outcome.Reason,
		Summary:       outcome.Response.Summary,
		Cards:         results.BuildOpportunityCards(outcome.Response),
		DataSources:   outcome.Response.DataSources,
		AnalysisStamp: outcome.Response.AnalysisTimestamp,
	}
}

func (h *Handler) Analyze(c *gin.Context) {
	var req transport.OpportunitySearch
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	sessionID := session.FromContext(c)
	outcome := h.svc.Analyze(c.Request.Context(), sessionID, req)
	httpkit.OK(c, buildView(outcome))
}

func (h *Handler) Quick(c *gin.Context) {
	sessionID := session.FromContext(c)
	outcome := h.svc.QuickAnalysis(c.Request.Context(), sessionID)
	httpkit.OK(c, buildView(outcome))
}
