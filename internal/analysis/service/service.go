// Package service orchestrates property analysis calls and owns the
// per-session analysis state: exactly one current result at a time,
// replaced wholesale by each newer analysis.
package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"sgiach_demo_backend/internal/analysis/client"
	"sgiach_demo_backend/internal/analysis/transport"
	"sgiach_demo_backend/internal/events"
	"sgiach_demo_backend/internal/mapview"
	"sgiach_demo_backend/platform/apperr"
	"sgiach_demo_backend/platform/logger"
)

// AnalysisClient is the outbound port to the development-analysis API.
type AnalysisClient interface {
	ComprehensiveAnalysis(ctx context.Context, req transport.AnalysisRequest) client.AnalysisOutcome
	RequestValidation(ctx context.Context, req transport.ValidationRequest) (*transport.ValidationResponse, error)
	CheckConnectivity(ctx context.Context) (transport.ConnectionStatus, string)
}

// CurrentAnalysis is a snapshot of a session's committed analysis state.
type CurrentAnalysis struct {
	Address  string
	Center   transport.Coordinates
	Source   client.Source
	Reason   string
	Result   transport.AnalysisResult
	Sequence uint64
}

type sessionState struct {
	mu          sync.Mutex
	nextSeq     uint64
	committed   uint64
	current     *CurrentAnalysis
	connStatus  transport.ConnectionStatus
	connMessage string
}

// Service runs analyses and tracks session state.
type Service struct {
	client AnalysisClient
	bus    events.Bus
	log    *logger.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*sessionState
}

// New creates the analysis service.
func New(apiClient AnalysisClient, bus events.Bus, log *logger.Logger) *Service {
	return &Service{
		client:   apiClient,
		bus:      bus,
		log:      log,
		sessions: make(map[uuid.UUID]*sessionState),
	}
}

func (s *Service) session(id uuid.UUID) *sessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.sessions[id]
	if !ok {
		st = &sessionState{connStatus: transport.StatusConnecting}
		s.sessions[id] = st
	}
	return st
}

// RunAnalysis performs one comprehensive analysis for the session. Each
// request takes a sequence number before the upstream call; a completion
// whose sequence is lower than the last committed one is dropped, so a
// slow earlier request can never overwrite a newer result. The second
// return value reports whether this request was superseded.
func (s *Service) RunAnalysis(ctx context.Context, sessionID uuid.UUID, req transport.AnalysisRequest) (CurrentAnalysis, bool) {
	st := s.session(sessionID)

	if req.Coordinates == (transport.Coordinates{}) {
		req.Coordinates = mapview.MunicipalityCenter(req.Municipality)
	}

	st.mu.Lock()
	st.nextSeq++
	seq := st.nextSeq
	st.mu.Unlock()

	outcome := s.client.ComprehensiveAnalysis(ctx, req)

	st.mu.Lock()
	defer st.mu.Unlock()

	if seq < st.committed {
		// Stale completion; the session already holds a newer result.
		s.log.Warn("stale analysis dropped", "session_id", sessionID.String(), "sequence", seq, "committed", st.committed)
		return *st.current, true
	}

	st.committed = seq
	st.current = &CurrentAnalysis{
		Address:  req.Address,
		Center:   req.Coordinates,
		Source:   outcome.Source,
		Reason:   outcome.Reason,
		Result:   outcome.Result,
		Sequence: seq,
	}

	s.bus.Publish(ctx, events.AnalysisCompleted{
		BaseEvent: events.NewBaseEvent(),
		SessionID: sessionID.String(),
		Address:   req.Address,
		Source:    string(outcome.Source),
		Reason:    outcome.Reason,
	})

	return *st.current, false
}

// Current returns the session's committed analysis, if any.
func (s *Service) Current(sessionID uuid.UUID) (CurrentAnalysis, bool) {
	st := s.session(sessionID)
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.current == nil {
		return CurrentAnalysis{}, false
	}
	return *st.current, true
}

// CurrentMapState returns the committed analysis in the form the map
// presenter consumes.
func (s *Service) CurrentMapState(sessionID uuid.UUID) (mapview.MapState, bool) {
	current, ok := s.Current(sessionID)
	if !ok {
		return mapview.MapState{}, false
	}
	return mapview.MapState{
		Center:  current.Center,
		Address: current.Address,
		Result:  &current.Result,
	}, true
}

// RequestValidation files a professional validation request for the
// session's current analysis. Upstream failures are surfaced, not
// substituted.
func (s *Service) RequestValidation(ctx context.Context, sessionID uuid.UUID, validationType string) (transport.ValidationTicket, error) {
	current, ok := s.Current(sessionID)
	if !ok {
		return transport.ValidationTicket{}, apperr.NotFound("no analysis available for this session").
			WithOp("analysis.RequestValidation")
	}

	resp, err := s.client.RequestValidation(ctx, transport.ValidationRequest{
		ValidationType: validationType,
		PropertyData:   current.Result.PropertyData,
	})
	if err != nil {
		return transport.ValidationTicket{}, err
	}

	return resp.ValidationRequest, nil
}

// ConnectivityReport is the user-visible connectivity indicator state.
type ConnectivityReport struct {
	Status  transport.ConnectionStatus `json:"status"`
	Message string                     `json:"message"`
}

// CheckConnectivity probes the upstream and updates the session's tri-state
// indicator. A disconnect is broadcast so the page shows the "using test
// data" toast.
func (s *Service) CheckConnectivity(ctx context.Context, sessionID uuid.UUID) ConnectivityReport {
	st := s.session(sessionID)

	st.mu.Lock()
	st.connStatus = transport.StatusConnecting
	st.mu.Unlock()

	status, upstreamMsg := s.client.CheckConnectivity(ctx)

	var message string
	switch status {
	case transport.StatusConnected:
		message = "API Connected - " + upstreamMsg
	default:
		message = "API Disconnected - Using Test Data"
	}

	st.mu.Lock()
	st.connStatus = status
	st.connMessage = message
	st.mu.Unlock()

	s.bus.Publish(ctx, events.ConnectionStatusChanged{
		BaseEvent: events.NewBaseEvent(),
		SessionID: sessionID.String(),
		Status:    string(status),
		Message:   message,
	})

	return ConnectivityReport{Status: status, Message: message}
}

// Connectivity returns the session's last known connectivity state.
func (s *Service) Connectivity(sessionID uuid.UUID) ConnectivityReport {
	st := s.session(sessionID)
	st.mu.Lock()
	defer st.mu.Unlock()
	return ConnectivityReport{Status: st.connStatus, Message: st.connMessage}
}
