package router

import (
	"sync"

	"github.com/muurk/authdeck/internal/logging"
)

// Route identifies a screen.
type Route string

const (
	// RouteLogin is the login screen inside the auth group.
	RouteLogin Route = "/(auth)"
	// RouteRegister is the register screen, pushed on top of login.
	RouteRegister Route = "/(auth)/register"
	// RouteHome is the main area reached after a successful login.
	RouteHome Route = "/(tabs)"
)

// String returns a short screen name for logs and headers.
func (r Route) String() string {
	switch r {
	case RouteLogin:
		return "login"
	case RouteRegister:
		return "register"
	case RouteHome:
		return "home"
	default:
		return string(r)
	}
}

// ChangeFunc is called after the current route changes.
type ChangeFunc func(from, to Route)

// Stack is a history-stack router. Push adds an entry, Replace swaps the top
// entry so the previous screen cannot be returned to, and Back pops.
//
// Stack is safe for concurrent use. Listeners run on the caller's goroutine
// after the lock is released.
type Stack struct {
	mu        sync.Mutex
	entries   []Route
	listeners []ChangeFunc
}

// NewStack returns a router whose only entry is initial.
func NewStack(initial Route) *Stack {
	return &Stack{entries: []Route{initial}}
}

// OnChange registers fn to be called on every route change.
func (s *Stack) OnChange(fn ChangeFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Current returns the route on top of the stack.
func (s *Stack) Current() Route {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries[len(s.entries)-1]
}

// Depth returns the number of entries in the history.
func (s *Stack) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Push navigates to route, keeping the current entry in history.
func (s *Stack) Push(route Route) {
	s.mu.Lock()
	from := s.entries[len(s.entries)-1]
	s.entries = append(s.entries, route)
	listeners := s.snapshot()
	s.mu.Unlock()

	logging.LogNavigation("push", from.String(), route.String())
	notify(listeners, from, route)
}

// Replace navigates to route, discarding the current entry.
func (s *Stack) Replace(route Route) {
	s.mu.Lock()
	from := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = route
	listeners := s.snapshot()
	s.mu.Unlock()

	logging.LogNavigation("replace", from.String(), route.String())
	notify(listeners, from, route)
}

// Back pops the current entry. It reports false, and does nothing, when the
// current entry is the last one.
func (s *Stack) Back() bool {
	s.mu.Lock()
	if len(s.entries) <= 1 {
		s.mu.Unlock()
		return false
	}
	from := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	to := s.entries[len(s.entries)-1]
	listeners := s.snapshot()
	s.mu.Unlock()

	logging.LogNavigation("back", from.String(), to.String())
	notify(listeners, from, to)
	return true
}

// History returns a copy of the stack, bottom first.
func (s *Stack) History() []Route {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Route, len(s.entries))
	copy(out, s.entries)
	return out
}

// snapshot must be called with mu held.
func (s *Stack) snapshot() []ChangeFunc {
	out := make([]ChangeFunc, len(s.listeners))
	copy(out, s.listeners)
	return out
}

func notify(listeners []ChangeFunc, from, to Route) {
	for _, fn := range listeners {
		fn(from, to)
	}
}
