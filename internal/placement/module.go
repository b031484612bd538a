package placement

import (
	"sgiach_demo_backend/internal/events"
	apphttp "sgiach_demo_backend/internal/http"
	"sgiach_demo_backend/platform/logger"
	"sgiach_demo_backend/platform/validator"
)

// Module wires the placement sandbox HTTP routes.
type Module struct {
	service *Service
	handler *Handler
}

func NewModule(bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	svc := NewService(bus, log)
	h := NewHandler(svc, val)
	return &Module{service: svc, handler: h}
}

func (m *Module) Name() string {
	return "placement"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/placement")
	group.POST("", m.handler.Place)
	group.GET("", m.handler.List)
	group.DELETE("/:id", m.handler.Remove)
}

// Service exposes the placement service so the exports module can read
// the session's records.
func (m *Module) Service() *Service {
	return m.service
}

var _ apphttp.Module = (*Module)(nil)
