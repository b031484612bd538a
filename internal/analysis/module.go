// Package analysis wires the property-analysis bounded context: the
// upstream API client, the per-session orchestration service, and the
// HTTP handlers.
package analysis

import (
	apphttp "sgiach_demo_backend/internal/http"

	"sgiach_demo_backend/internal/analysis/client"
	"sgiach_demo_backend/internal/analysis/handler"
	"sgiach_demo_backend/internal/analysis/service"
	"sgiach_demo_backend/internal/events"
	"sgiach_demo_backend/platform/config"
	"sgiach_demo_backend/platform/logger"
	"sgiach_demo_backend/platform/validator"
)

type Module struct {
	client  *client.Client
	service *service.Service
	handler *handler.Handler
}

func NewModule(cfg config.UpstreamConfig, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	apiClient := client.New(cfg, log)
	svc := service.New(apiClient, bus, log)
	h := handler.New(svc, val)

	return &Module{client: apiClient, service: svc, handler: h}
}

func (m *Module) Name() string {
	return "analysis"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/analysis")
	m.handler.RegisterRoutes(group)
}

// Service exposes the analysis service for cross-module wiring
// (map markers, opportunity search share the same upstream client).
func (m *Module) Service() *service.Service {
	return m.service
}

// Client exposes the upstream API client for modules that issue their own
// calls against the same base URL.
func (m *Module) Client() *client.Client {
	return m.client
}
