// Package opportunities drives the landing-page opportunity search: full
// analysis with search criteria, the one-click quick analysis, and the
// session's latest response kept around for export.
package opportunities

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"sgiach_demo_backend/internal/analysis/client"
	"sgiach_demo_backend/internal/analysis/transport"
	"sgiach_demo_backend/platform/apperr"
	"sgiach_demo_backend/platform/logger"
)

// OpportunityClient is the slice of the analysis API client this service needs.
type OpportunityClient interface {
	Analyze(ctx context.Context, req transport.OpportunitySearch) client.OpportunityOutcome
	QuickAnalysis(ctx context.Context) client.OpportunityOutcome
}

// Service runs opportunity analyses and remembers each session's latest
// outcome so exports always reflect what the session last saw.
type Service struct {
	client OpportunityClient
	log    *logger.Logger

	mu     sync.Mutex
	latest map[uuid.UUID]client.OpportunityOutcome
}

func NewService(c OpportunityClient, log *logger.Logger) *Service {
	return &Service{
		client: c,
		log:    log,
		latest: make(map[uuid.UUID]client.OpportunityOutcome),
	}
}

// Analyze runs the full opportunity search and stores the outcome for the
// session. Fallback substitution happens inside the client; this never fails.
func (s *Service) Analyze(ctx context.Context, sessionID uuid.UUID, req transport.OpportunitySearch) client.OpportunityOutcome {
	outcome := s.client.Analyze(ctx, req)
	s.store(sessionID, outcome)
	return outcome
}

// QuickAnalysis runs the no-criteria variant.
func (s *Service) QuickAnalysis(ctx context.Context, sessionID uuid.UUID) client.OpportunityOutcome {
	outcome := s.client.QuickAnalysis(ctx)
	s.store(sessionID, outcome)
	return outcome
}

// Latest returns the session's most recent analysis outcome.
func (s *Service) Latest(sessionID uuid.UUID) (client.OpportunityOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	outcome, ok := s.latest[sessionID]
	if !ok {
		return client.OpportunityOutcome{}, apperr.NotFound("no opportunity analysis has been run").WithOp("opportunities.Latest")
	}
	return outcome, nil
}

func (s *Service) store(sessionID uuid.UUID, outcome client.OpportunityOutcome) {
	s.mu.Lock()
	s.latest[sessionID] = outcome
	s.mu.Unlock()
}
