package mapview

import (
	apphttp "sgiach_demo_backend/internal/http"
)

// Module wires the map presentation routes.
type Module struct {
	handler *Handler
}

func NewModule(provider CurrentAnalysisProvider) *Module {
	return &Module{handler: NewHandler(provider)}
}

func (m *Module) Name() string {
	return "mapview"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/map")
	group.GET("/markers", m.handler.Markers)
	group.GET("/municipalities", m.handler.Municipalities)
}

var _ apphttp.Module = (*Module)(nil)
