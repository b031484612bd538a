package exports

import (
	"sgiach_demo_backend/internal/events"
	apphttp "sgiach_demo_backend/internal/http"
	"sgiach_demo_backend/platform/logger"
)

// Module wires the download routes.
type Module struct {
	handler *Handler
}

func NewModule(opportunities OpportunitySource, placements PlacementSource, bus events.Bus, log *logger.Logger) *Module {
	return &Module{handler: NewHandler(opportunities, placements, bus, log)}
}

func (m *Module) Name() string {
	return "exports"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/exports")
	group.GET("/opportunities.csv", m.handler.OpportunitiesCSV)
	group.GET("/placements.csv", m.handler.PlacementsCSV)
	group.GET("/placements.json", m.handler.PlacementsJSON)
}

var _ apphttp.Module = (*Module)(nil)
