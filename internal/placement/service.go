package placement

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"sgiach_demo_backend/internal/events"
	"sgiach_demo_backend/platform/apperr"
	"sgiach_demo_backend/platform/logger"
)

// PlaceOutcome reports the result of one drop attempt. Rejections are an
// expected outcome, not an error path.
type PlaceOutcome struct {
	Placed   bool            `json:"placed"`
	SnappedX int             `json:"snappedX"`
	SnappedY int             `json:"snappedY"`
	Building *PlacedBuilding `json:"building,omitempty"`
}

type board struct {
	mu     sync.Mutex
	placed []PlacedBuilding
}

// Service tracks each session's placement board.
type Service struct {
	bus events.Bus
	log *logger.Logger

	mu     sync.Mutex
	boards map[uuid.UUID]*board
}

func NewService(bus events.Bus, log *logger.Logger) *Service {
	return &Service{
		bus:    bus,
		log:    log,
		boards: make(map[uuid.UUID]*board),
	}
}

func (s *Service) board(sessionID uuid.UUID) *board {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.boards[sessionID]
	if !ok {
		b = &board{}
		s.boards[sessionID] = b
	}
	return b
}

// Place snaps and validates one drop. On acceptance the record is appended
// to the session board; on rejection a placement.rejected event fires and
// no record is created.
func (s *Service) Place(ctx context.Context, sessionID uuid.UUID, typeKey string, rawX, rawY int) (PlaceOutcome, error) {
	bt, ok := PaletteType(typeKey)
	if !ok {
		return PlaceOutcome{}, apperr.Validation("unknown building type: " + typeKey).WithOp("placement.Place")
	}

	snappedX, snappedY, accepted := Validate(rawX, rawY, bt.Width, bt.Height)
	if !accepted {
		s.bus.Publish(ctx, events.PlacementRejected{
			BaseEvent:    events.NewBaseEvent(),
			SessionID:    sessionID.String(),
			BuildingType: bt.Key,
			X:            snappedX,
			Y:            snappedY,
		})
		return PlaceOutcome{Placed: false, SnappedX: snappedX, SnappedY: snappedY}, nil
	}

	placed := PlacedBuilding{
		ID:     uuid.New(),
		Type:   bt.Key,
		X:      snappedX,
		Y:      snappedY,
		Width:  bt.Width,
		Height: bt.Height,
	}

	b := s.board(sessionID)
	b.mu.Lock()
	b.placed = append(b.placed, placed)
	b.mu.Unlock()

	return PlaceOutcome{Placed: true, SnappedX: snappedX, SnappedY: snappedY, Building: &placed}, nil
}

// Remove deletes a placed building by ID (the double-click removal).
func (s *Service) Remove(sessionID, id uuid.UUID) error {
	b := s.board(sessionID)
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, placed := range b.placed {
		if placed.ID == id {
			b.placed = append(b.placed[:i], b.placed[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("placed building not found").WithOp("placement.Remove")
}

// List returns the session's placed buildings in insertion order.
func (s *Service) List(sessionID uuid.UUID) []PlacedBuilding {
	b := s.board(sessionID)
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]PlacedBuilding, len(b.placed))
	copy(out, b.placed)
	return out
}

// Records returns the session's placements in export form.
func (s *Service) Records(sessionID uuid.UUID) []ExportRecord {
	placed := s.List(sessionID)
	records := make([]ExportRecord, len(placed))
	for i, p := range placed {
		records[i] = ExportRecord{Type: p.Type, X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
	}
	return records
}
