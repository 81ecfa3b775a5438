package app

import (
	"sync"

	"travelbuddy/internal/domain"
)

// Session holds the process-wide travel-data bundle for one page session.
// The orchestrator is the only writer: replaceBundle is unexported, so only
// this package can swap the bundle, and the renderer and router see the
// session through its read side. The bundle is replaced as a whole; whichever
// fetch chain resolves last wins.
type Session struct {
	mu     sync.RWMutex
	bundle *domain.Bundle
}

func NewSession() *Session { return &Session{} }

// Bundle returns the current bundle, or nil before the first successful
// fetch. Callers must treat it as immutable.
func (s *Session) Bundle() *domain.Bundle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bundle
}

func (s *Session) replaceBundle(b *domain.Bundle) {
	s.mu.Lock()
	s.bundle = b
	s.mu.Unlock()
}

// StatusLine is the single user-visible status line above the fetch
// controls. Last write wins; there is no queue and no history.
type StatusLine struct {
	mu    sync.Mutex
	msg   string
	isErr bool
}

func (s *StatusLine) Set(msg string, isError bool) {
	s.mu.Lock()
	s.msg, s.isErr = msg, isError
	s.mu.Unlock()
}

func (s *StatusLine) Current() (msg string, isError bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.msg, s.isErr
}
