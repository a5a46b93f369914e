package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/authdeck/internal/form"
	"github.com/muurk/authdeck/internal/logging"
	"github.com/muurk/authdeck/internal/router"
	"github.com/muurk/authdeck/internal/submit"
)

// DefaultFrameInterval drives label animations at 60 frames per second.
const DefaultFrameInterval = time.Second / 60

// submitDoneMsg carries a finished submit back to the update loop.
type submitDoneMsg struct {
	screen  int
	email   string
	outcome submit.Outcome
}

// Options configure an AppModel.
type Options struct {
	// APIURL is shown in the header.
	APIURL string

	// AllowConcurrentSubmit lets Enter send again while a request is in flight.
	AllowConcurrentSubmit bool

	// FrameInterval is the delay between animation frames.
	FrameInterval time.Duration

	// Clock defaults to time.Now.
	Clock func() time.Time
}

// routeWatch records route changes made through the router so the app can
// mount the new screen after the change.
type routeWatch struct {
	changed bool
}

// AppModel is the top-level coordinator model that owns the router, the
// submit controller and the alert overlay, and mounts a fresh screen each
// time the route changes.
type AppModel struct {
	CurrentScreen router.Route

	// Screen models
	Auth AuthModel
	Home HomeModel

	// Shared application state
	Router     *router.Stack
	Controller *submit.Controller
	Session    *Session

	// UI state
	Width  int
	Height int

	Help      help.Model
	AlertKeys alertKeyMap

	opts   Options
	alerts *alertQueue
	watch  *routeWatch
	nextID int
}

// NewAppModel creates the application on the login screen, talking to api.
func NewAppModel(api submit.API, opts Options) AppModel {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = DefaultFrameInterval
	}

	stack := router.NewStack(router.RouteLogin)
	watch := &routeWatch{}
	stack.OnChange(func(_, _ router.Route) {
		watch.changed = true
	})

	alerts := &alertQueue{}
	m := AppModel{
		Router:    stack,
		Help:      help.New(),
		AlertKeys: newAlertKeyMap(),
		opts:      opts,
		alerts:    alerts,
		watch:     watch,
	}
	m.Controller = submit.NewController(api, stack, alerts, submit.Options{
		AllowConcurrent: opts.AllowConcurrentSubmit,
	})
	m.mount(router.RouteLogin)
	return m
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	if m.CurrentScreen == router.RouteHome {
		return nil
	}
	return m.Auth.Init()
}

// AlertVisible reports whether an alert is blocking input.
func (m AppModel) AlertVisible() bool {
	return m.alerts.visible()
}

// Update handles all messages and routes them to the appropriate screen
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Auth, _ = m.Auth.Update(msg)
		m.Home, _ = m.Home.Update(msg)
		return m, nil

	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// Alerts are modal: keys only dismiss them
		if m.alerts.visible() {
			if key.Matches(msg, m.AlertKeys.Dismiss) {
				m.alerts.dismiss()
			}
			return m, nil
		}

	case submitDoneMsg:
		return m.handleSubmitDone(msg)
	}

	return m.updateCurrentScreen(msg)
}

// updateCurrentScreen routes updates to the currently active screen
func (m AppModel) updateCurrentScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.CurrentScreen {
	case router.RouteLogin, router.RouteRegister:
		m.Auth, cmd = m.Auth.Update(msg)

		switch {
		case m.Auth.submitRequested:
			m.Auth.submitRequested = false
			return m.startSubmit(cmd)

		case m.Auth.linkRequested:
			m.Auth.linkRequested = false
			if m.Auth.Action == submit.Login {
				m.Router.Push(router.RouteRegister)
			} else {
				m.Router.Push(router.RouteLogin)
			}
			return m.syncScreen()

		case m.Auth.backRequested:
			m.Auth.backRequested = false
			m.Router.Back()
			return m.syncScreen()
		}

	case router.RouteHome:
		m.Home, cmd = m.Home.Update(msg)

		if m.Home.signOutRequested {
			m.Home.signOutRequested = false
			m.Session = nil
			m.Router.Replace(router.RouteLogin)
			return m.syncScreen()
		}
	}

	return m, cmd
}

// startSubmit sends the current form off the update loop.
func (m AppModel) startSubmit(pending tea.Cmd) (tea.Model, tea.Cmd) {
	if m.Auth.Submitting > 0 && !m.opts.AllowConcurrentSubmit {
		logging.Debug("Submit ignored, request in flight", zap.String("form", m.Auth.Action.String()))
		return m, pending
	}

	ctrl := m.Controller
	screen := m.Auth.id
	action := m.Auth.Action
	values := m.Auth.Form.Values()
	spin := m.Auth.startSubmit()

	send := func() tea.Msg {
		return submitDoneMsg{
			screen:  screen,
			email:   values[form.FieldEmail],
			outcome: ctrl.Send(context.Background(), action, values),
		}
	}
	return m, tea.Batch(pending, send, spin)
}

// handleSubmitDone applies an outcome on the update loop. The request is not
// tied to the screen that sent it, so it is applied even if the user has
// navigated away since.
func (m AppModel) handleSubmitDone(msg submitDoneMsg) (tea.Model, tea.Cmd) {
	if msg.screen == m.Auth.id {
		m.Auth.finishSubmit()
	}

	out := msg.outcome
	if out.Kind == submit.OutcomeSuccess && out.Action == submit.Login {
		m.Session = &Session{Email: msg.email}
		if tok, ok := out.Payload["token"].(string); ok {
			m.Session.Token = tok
		}
		if text, ok := out.Payload["message"].(string); ok {
			m.Session.Message = text
		}
	}

	m.Controller.Apply(out)
	return m.syncScreen()
}

// syncScreen mounts a fresh screen if the route changed.
func (m AppModel) syncScreen() (tea.Model, tea.Cmd) {
	if !m.watch.changed {
		return m, nil
	}
	m.watch.changed = false
	return m, m.mount(m.Router.Current())
}

// mount replaces the screen model for route. Form state of the previous
// screen is dropped.
func (m *AppModel) mount(route router.Route) tea.Cmd {
	m.CurrentScreen = route
	m.nextID++

	switch route {
	case router.RouteHome:
		m.Home = NewHomeModel(m.Session)
		m.Home.Width, m.Home.Height = m.Width, m.Height
		m.Home.APIURL = m.opts.APIURL
		return nil

	default:
		action := submit.Login
		if route == router.RouteRegister {
			action = submit.Register
		}
		m.Auth = NewAuthModel(action, m.nextID, m.Router.Depth() > 1, m.opts.Clock, m.opts.FrameInterval)
		m.Auth.APIURL = m.opts.APIURL
		if m.Width > 0 {
			m.Auth, _ = m.Auth.Update(tea.WindowSizeMsg{Width: m.Width, Height: m.Height})
		}
		return m.Auth.Init()
	}
}

// View renders the current screen, with the first pending alert on top
func (m AppModel) View() string {
	if m.alerts.visible() {
		return RenderModal(renderAlert(m.alerts.current(), m.Help.View(m.AlertKeys), m.Width), m.Width, m.Height)
	}

	switch m.CurrentScreen {
	case router.RouteHome:
		return m.Home.View()
	default:
		return m.Auth.View()
	}
}
