// Package sse provides Server-Sent Events support for toast notifications.
package sse

import (
	"encoding/json"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sgiach_demo_backend/platform/logger"
)

// Level controls toast styling and display duration in the UI.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
)

// Display durations per level, in milliseconds.
const (
	InfoDurationMs    = 4000
	WarningDurationMs = 2000
)

// Toast is one notification pushed to a session's stream.
type Toast struct {
	Level      Level  `json:"level"`
	Message    string `json:"message"`
	DurationMs int    `json:"durationMs"`
}

// Info builds an info toast with the standard duration.
func Info(message string) Toast {
	return Toast{Level: LevelInfo, Message: message, DurationMs: InfoDurationMs}
}

// Warning builds a warning toast with the standard duration.
func Warning(message string) Toast {
	return Toast{Level: LevelWarning, Message: message, DurationMs: WarningDurationMs}
}

// client represents one connected SSE stream.
type client struct {
	sessionID uuid.UUID
	toasts    chan Toast
}

// Service manages SSE connections and toast delivery, keyed by session.
type Service struct {
	log *logger.Logger

	mu      sync.RWMutex
	clients map[uuid.UUID][]*client
}

// New creates a new SSE service.
func New(log *logger.Logger) *Service {
	return &Service{
		log:     log,
		clients: make(map[uuid.UUID][]*client),
	}
}

func (s *Service) addClient(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[c.sessionID] = append(s.clients[c.sessionID], c)
}

func (s *Service) removeClient(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clients := s.clients[c.sessionID]
	for i, cl := range clients {
		if cl == c {
			s.clients[c.sessionID] = append(clients[:i], clients[i+1:]...)
			break
		}
	}
	if len(s.clients[c.sessionID]) == 0 {
		delete(s.clients, c.sessionID)
	}

	close(c.toasts)
}

// Publish delivers a toast to every stream the session has open. Full
// buffers are skipped rather than blocked on. Sends happen under the
// read lock: channels are only closed under the write lock, so a send
// can never hit a closed channel.
func (s *Service) Publish(sessionID uuid.UUID, toast Toast) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.clients[sessionID] {
		select {
		case c.toasts <- toast:
		default:
			s.log.Warn("sse buffer full, toast dropped", "session_id", sessionID.String())
		}
	}
}

// ClientCount reports how many streams a session has open.
func (s *Service) ClientCount(sessionID uuid.UUID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients[sessionID])
}

// Handler returns a Gin handler for SSE connections. The session ID is
// resolved by the caller so this package stays transport-agnostic.
func (s *Service) Handler(getSessionID func(*gin.Context) uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := getSessionID(c)

		c.Writer.Header().Set("Content-Type", "text/event-stream")
		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.Writer.Header().Set("Connection", "keep-alive")
		c.Writer.Header().Set("X-Accel-Buffering", "no")

		cl := &client{
			sessionID: sessionID,
			toasts:    make(chan Toast, 32),
		}
		s.addClient(cl)
		defer s.removeClient(cl)

		c.SSEvent("connected", gin.H{"sessionId": sessionID})
		c.Writer.Flush()

		clientGone := c.Request.Context().Done()
		for {
			select {
			case <-clientGone:
				return
			case toast, ok := <-cl.toasts:
				if !ok {
					return
				}
				data, _ := json.Marshal(toast)
				c.SSEvent("toast", string(data))
				c.Writer.Flush()
			}
		}
	}
}

// Close shuts down all streams.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, clients := range s.clients {
		for _, c := range clients {
			close(c.toasts)
		}
	}
	s.clients = make(map[uuid.UUID][]*client)
}
