// Package notification turns domain events into session-scoped toasts
// delivered over Server-Sent Events.
package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"sgiach_demo_backend/internal/events"
	"sgiach_demo_backend/internal/notification/sse"
	"sgiach_demo_backend/platform/logger"
)

// ToastPublisher delivers toasts to a session's open streams.
type ToastPublisher interface {
	Publish(sessionID uuid.UUID, toast sse.Toast)
}

// Subscriber maps bus events to toasts.
type Subscriber struct {
	streams ToastPublisher
	log     *logger.Logger
}

func NewSubscriber(streams ToastPublisher, log *logger.Logger) *Subscriber {
	return &Subscriber{streams: streams, log: log}
}

// Register attaches the subscriber to every event it toasts on.
func (s *Subscriber) Register(bus events.Bus) {
	bus.Subscribe(events.AnalysisCompletedName, events.HandlerFunc(s.onAnalysisCompleted))
	bus.Subscribe(events.ConnectionStatusChangedName, events.HandlerFunc(s.onConnectionStatusChanged))
	bus.Subscribe(events.PlacementRejectedName, events.HandlerFunc(s.onPlacementRejected))
	bus.Subscribe(events.ExportGeneratedName, events.HandlerFunc(s.onExportGenerated))
}

func (s *Subscriber) onAnalysisCompleted(_ context.Context, event events.Event) error {
	e, ok := event.(events.AnalysisCompleted)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}
	sessionID, err := uuid.Parse(e.SessionID)
	if err != nil {
		return err
	}

	if e.Source == "fallback" {
		s.streams.Publish(sessionID, sse.Warning("Analysis complete - using sample data"))
		return nil
	}
	s.streams.Publish(sessionID, sse.Info("Analysis complete for "+e.Address))
	return nil
}

func (s *Subscriber) onConnectionStatusChanged(_ context.Context, event events.Event) error {
	e, ok := event.(events.ConnectionStatusChanged)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}
	sessionID, err := uuid.Parse(e.SessionID)
	if err != nil {
		return err
	}

	// Status changes are informational either way; a disconnect already
	// carries the "Using Test Data" message.
	s.streams.Publish(sessionID, sse.Info(e.Message))
	return nil
}

func (s *Subscriber) onPlacementRejected(_ context.Context, event events.Event) error {
	e, ok := event.(events.PlacementRejected)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}
	sessionID, err := uuid.Parse(e.SessionID)
	if err != nil {
		return err
	}

	s.streams.Publish(sessionID, sse.Warning("Buildings must be placed inside the buildable area"))
	return nil
}

func (s *Subscriber) onExportGenerated(_ context.Context, event events.Event) error {
	e, ok := event.(events.ExportGenerated)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}
	sessionID, err := uuid.Parse(e.SessionID)
	if err != nil {
		return err
	}

	s.streams.Publish(sessionID, sse.Info(fmt.Sprintf("Exported %d %s rows as %s", e.Rows, e.Kind, e.Format)))
	return nil
}
