package router

import (
	"reflect"
	"testing"
)

func TestNewStack(t *testing.T) {
	s := NewStack(RouteLogin)
	if s.Current() != RouteLogin {
		t.Errorf("Current() = %s, want %s", s.Current(), RouteLogin)
	}
	if s.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", s.Depth())
	}
}

func TestPushAndBack(t *testing.T) {
	s := NewStack(RouteLogin)
	s.Push(RouteRegister)

	if s.Current() != RouteRegister || s.Depth() != 2 {
		t.Fatalf("after Push: current=%s depth=%d", s.Current(), s.Depth())
	}
	if !s.Back() {
		t.Fatal("Back() = false, want true")
	}
	if s.Current() != RouteLogin {
		t.Errorf("Current() = %s, want %s", s.Current(), RouteLogin)
	}
	if s.Back() {
		t.Error("Back() on the root entry should report false")
	}
	if s.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", s.Depth())
	}
}

func TestReplace_IsNotReversible(t *testing.T) {
	s := NewStack(RouteLogin)
	s.Replace(RouteHome)

	if s.Current() != RouteHome {
		t.Errorf("Current() = %s, want %s", s.Current(), RouteHome)
	}
	if s.Back() {
		t.Error("Back() after Replace on root should report false")
	}
}

func TestRegisterThenLogin(t *testing.T) {
	s := NewStack(RouteLogin)
	s.Push(RouteRegister)
	s.Push(RouteLogin)
	s.Replace(RouteHome)

	want := []Route{RouteLogin, RouteRegister, RouteHome}
	if got := s.History(); !reflect.DeepEqual(got, want) {
		t.Errorf("History() = %v, want %v", got, want)
	}
}

func TestOnChange(t *testing.T) {
	s := NewStack(RouteLogin)

	type change struct{ from, to Route }
	var got []change
	s.OnChange(func(from, to Route) {
		got = append(got, change{from, to})
	})

	s.Push(RouteRegister)
	s.Back()
	s.Replace(RouteHome)
	s.Back() // no-op, no notification

	want := []change{
		{RouteLogin, RouteRegister},
		{RouteRegister, RouteLogin},
		{RouteLogin, RouteHome},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("changes = %v, want %v", got, want)
	}
}

func TestOnChange_ListenerMayReadRouter(t *testing.T) {
	s := NewStack(RouteLogin)
	var seen Route
	s.OnChange(func(_, _ Route) {
		seen = s.Current()
	})

	s.Push(RouteRegister)
	if seen != RouteRegister {
		t.Errorf("listener saw %s, want %s", seen, RouteRegister)
	}
}

func TestRouteString(t *testing.T) {
	tests := []struct {
		route Route
		want  string
	}{
		{RouteLogin, "login"},
		{RouteRegister, "register"},
		{RouteHome, "home"},
		{Route("/other"), "/other"},
	}
	for _, tt := range tests {
		if got := tt.route.String(); got != tt.want {
			t.Errorf("%q.String() = %q, want %q", string(tt.route), got, tt.want)
		}
	}
}
