package notification

import (
	"sgiach_demo_backend/internal/events"
	apphttp "sgiach_demo_backend/internal/http"
	"sgiach_demo_backend/internal/notification/sse"
	"sgiach_demo_backend/internal/session"
	"sgiach_demo_backend/platform/logger"
)

// Module wires the toast stream endpoint and the bus subscriptions.
type Module struct {
	streams    *sse.Service
	subscriber *Subscriber
}

func NewModule(bus events.Bus, log *logger.Logger) *Module {
	streams := sse.New(log)
	sub := NewSubscriber(streams, log)
	sub.Register(bus)
	return &Module{streams: streams, subscriber: sub}
}

func (m *Module) Name() string {
	return "notification"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/notifications")
	group.GET("/stream", m.streams.Handler(session.FromContext))
}

// Close shuts down all open streams.
func (m *Module) Close() {
	m.streams.Close()
}

var _ apphttp.Module = (*Module)(nil)
