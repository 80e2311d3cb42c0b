// Package session holds the process-wide answer to "who is logged in".
//
// The session is a small state machine. It starts in StatusInitializing,
// leaves it exactly once when rehydration from the credential store
// completes, and from then on is either anonymous or authenticated:
//
//	Initializing ──rehydrate──▶ Anonymous ◀──logout── Authenticated
//	                                │                      ▲
//	                                └───────login──────────┘
//
// A session never again reports StatusInitializing once it has left it.
// User and token travel together: every observable state holds either both
// or neither.
//
// The auth service is the only writer; screens and the API client only read.
package session

import (
	"sync"

	"github.com/jdisla/medioambiente-cli/internal/models"
)

type Status int

const (
	// StatusInitializing gates all reads until rehydration completes.
	StatusInitializing Status = iota
	StatusAnonymous
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusInitializing:
		return "initializing"
	case StatusAnonymous:
		return "anonymous"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// State is an immutable snapshot of the session. User and Token are only
// meaningful when Status is StatusAuthenticated.
type State struct {
	Status Status
	User   models.User
	Token  string
}

// Session is safe for concurrent readers. Transitions are applied whole:
// a reader never observes a user without its token or vice versa.
type Session struct {
	mu    sync.RWMutex
	state State
}

// New returns a Session in StatusInitializing.
func New() *Session {
	return &Session{state: State{Status: StatusInitializing}}
}

// Snapshot returns the current state as one consistent value.
func (s *Session) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Status
}

// Loading reports whether rehydration has not finished yet.
func (s *Session) Loading() bool {
	return s.Status() == StatusInitializing
}

func (s *Session) LoggedIn() bool {
	return s.Status() == StatusAuthenticated
}

// User returns the authenticated user, if any.
func (s *Session) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.Status != StatusAuthenticated {
		return models.User{}, false
	}
	return s.state.User, true
}

// Token returns the current bearer token, if any. Requests built after a
// logout see no token; requests already in flight keep the one they carried.
func (s *Session) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.Status != StatusAuthenticated {
		return "", false
	}
	return s.state.Token, true
}

// SetAuthenticated replaces the session wholesale with the given pair.
// Called on login, register, and rehydration of a persisted session.
func (s *Session) SetAuthenticated(user models.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{Status: StatusAuthenticated, User: user, Token: token}
}

// SetAnonymous clears the session. It is also the transition that completes
// a rehydration that found no valid persisted record.
func (s *Session) SetAnonymous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{Status: StatusAnonymous}
}
