package events

import platformevents "sgiach_demo_backend/platform/events"

// Event names for the demo session lifecycle.
const (
	AnalysisCompletedName       = "analysis.completed"
	ConnectionStatusChangedName = "connection.status_changed"
	PlacementRejectedName       = "placement.rejected"
	ExportGeneratedName         = "export.generated"
)

// AnalysisCompleted fires when a comprehensive analysis finishes and the
// session's current result has been replaced. Source is "live" or "fallback".
type AnalysisCompleted struct {
	platformevents.BaseEvent
	SessionID string
	Address   string
	Source    string
	Reason    string
}

func (AnalysisCompleted) EventName() string { return AnalysisCompletedName }

// ConnectionStatusChanged fires when a connectivity check changes the
// session's tri-state indicator.
type ConnectionStatusChanged struct {
	platformevents.BaseEvent
	SessionID string
	Status    string
	Message   string
}

func (ConnectionStatusChanged) EventName() string { return ConnectionStatusChangedName }

// PlacementRejected fires when a drop lands outside the buildable region.
type PlacementRejected struct {
	platformevents.BaseEvent
	SessionID    string
	BuildingType string
	X            int
	Y            int
}

func (PlacementRejected) EventName() string { return PlacementRejectedName }

// ExportGenerated fires when a download artifact has been produced.
type ExportGenerated struct {
	platformevents.BaseEvent
	SessionID string
	Kind      string
	Format    string
	Rows      int
}

func (ExportGenerated) EventName() string { return ExportGeneratedName }
