package client

import (
	"context"
	"sync"

	"github.com/janhq/reel-api/internal/domain/reel"
)

// State is the lifecycle of a lookup as shown to the user.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateError   State = "error"
)

// Resolver resolves a link into a reel.
type Resolver interface {
	Resolve(ctx context.Context, link string) (*reel.Reel, error)
}

// View is a consistent copy of the session state.
type View struct {
	State   State
	Seq     uint64
	Result  *reel.Reel
	Best    *reel.Media
	Message string
}

// DownloadURL is the primary download target, falling back to the source link.
func (v View) DownloadURL() string {
	if v.Best != nil {
		return v.Best.URL
	}
	if v.Result != nil {
		return v.Result.SourceURL
	}
	return ""
}

// Session tracks the latest lookup. Responses that arrive for a superseded
// submission are discarded so a slow earlier request never overwrites a newer one.
type Session struct {
	resolver Resolver

	mu   sync.Mutex
	seq  uint64
	view View
}

// NewSession creates an idle session.
func NewSession(resolver Resolver) *Session {
	return &Session{
		resolver: resolver,
		view:     View{State: StateIdle},
	}
}

// Begin starts a new submission and returns its sequence number.
func (s *Session) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.view = View{State: StateLoading, Seq: s.seq}
	return s.seq
}

// Complete applies the outcome of submission seq. It reports false when seq is stale.
func (s *Session) Complete(seq uint64, result *reel.Reel, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		return false
	}

	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = DefaultErrorMessage
		}
		s.view = View{State: StateError, Seq: seq, Message: msg}
		return true
	}

	view := View{State: StateSuccess, Seq: seq, Result: result}
	if result != nil {
		if best, ok := reel.SelectBest(result.Medias); ok {
			view.Best = &best
		}
	}
	s.view = view
	return true
}

// Submit resolves link and returns the session view once this submission settles.
// If a newer submission started meanwhile, the returned view reflects that one instead.
func (s *Session) Submit(ctx context.Context, link string) View {
	seq := s.Begin()
	result, err := s.resolver.Resolve(ctx, link)
	s.Complete(seq, result, err)
	return s.View()
}

// View returns the current state.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}
