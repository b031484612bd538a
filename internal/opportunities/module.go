package opportunities

import (
	apphttp "sgiach_demo_backend/internal/http"
	"sgiach_demo_backend/platform/logger"
	"sgiach_demo_backend/platform/validator"
)

// Module wires the opportunity search HTTP routes.
type Module struct {
	service *Service
	handler *Handler
}

func NewModule(c OpportunityClient, val *validator.Validator, log *logger.Logger) *Module {
	svc := NewService(c, log)
	h := NewHandler(svc, val)
	return &Module{service: svc, handler: h}
}

func (m *Module) Name() string {
	return "opportunities"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/opportunities")
	group.POST("/analyze", m.handler.Analyze)
	group.GET("/quick", m.handler.Quick)
}

// Service exposes the service so the exports module can read the session's
// latest response.
func (m *Module) Service() *Service {
	return m.service
}

var _ apphttp.Module = (*Module)(nil)
