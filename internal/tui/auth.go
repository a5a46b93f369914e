package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/authdeck/internal/form"
	"github.com/muurk/authdeck/internal/submit"
)

// frameMsg advances label animations of the screen that scheduled it.
type frameMsg struct {
	screen int
	at     time.Time
}

// authKeyMap defines key bindings for the login and register screens
type authKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Link   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k authKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Link, k.Back, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k authKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Submit},
		{k.Link, k.Back, k.Quit},
	}
}

func newAuthKeyMap(action submit.Action, canGoBack bool) authKeyMap {
	link := key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "register"),
	)
	if action == submit.Register {
		link = key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "login"),
		)
	}

	back := key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	)
	back.SetEnabled(canGoBack)

	return authKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "previous"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Link: link,
		Back: back,
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// AuthModel is the login or register screen.
type AuthModel struct {
	Action submit.Action
	Form   *form.Form
	Inputs []textinput.Model

	// Focus is an index into Inputs; len(Inputs) is the submit button.
	Focus int

	// Submitting counts requests in flight from this screen.
	Submitting int

	// UI state
	Width   int
	Height  int
	APIURL  string
	Spinner spinner.Model
	Help    help.Model
	Keys    authKeyMap

	id            int
	clock         func() time.Time
	frameInterval time.Duration
	ticking       bool

	// Requests read and cleared by AppModel.
	submitRequested bool
	linkRequested   bool
	backRequested   bool
}

// NewAuthModel creates the screen for action with a fresh form.
func NewAuthModel(action submit.Action, id int, canGoBack bool, clock func() time.Time, frameInterval time.Duration) AuthModel {
	fields := form.LoginFields()
	if action == submit.Register {
		fields = form.RegisterFields()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	m := AuthModel{
		Action:        action,
		Form:          form.New(fields),
		Inputs:        make([]textinput.Model, len(fields)),
		Spinner:       s,
		Help:          help.New(),
		Keys:          newAuthKeyMap(action, canGoBack),
		id:            id,
		clock:         clock,
		frameInterval: frameInterval,
	}

	for i, f := range fields {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 128
		if f.Secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		m.Inputs[i] = in
	}
	m.resize(DefaultWidth)
	return m
}

// Init focuses the first field.
func (m *AuthModel) Init() tea.Cmd {
	return m.setFocus(0)
}

// Update handles messages and updates the model
func (m AuthModel) Update(msg tea.Msg) (AuthModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resize(msg.Width)
		return m, nil

	case frameMsg:
		if msg.screen != m.id {
			return m, nil
		}
		m.ticking = false
		cmd := m.nextFrame()
		return m, cmd

	case spinner.TickMsg:
		if m.Submitting == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	if m.Focus < len(m.Inputs) {
		var cmd tea.Cmd
		m.Inputs[m.Focus], cmd = m.Inputs[m.Focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m AuthModel) updateKeys(msg tea.KeyMsg) (AuthModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Next):
		cmd := m.moveFocus(m.Focus + 1)
		return m, cmd

	case key.Matches(msg, m.Keys.Prev):
		cmd := m.moveFocus(m.Focus - 1)
		return m, cmd

	case key.Matches(msg, m.Keys.Submit):
		if m.Focus >= len(m.Inputs)-1 {
			m.submitRequested = true
			return m, nil
		}
		cmd := m.moveFocus(m.Focus + 1)
		return m, cmd

	case key.Matches(msg, m.Keys.Link):
		m.linkRequested = true
		return m, nil

	case key.Matches(msg, m.Keys.Back):
		m.backRequested = true
		return m, nil
	}

	if m.Focus >= len(m.Inputs) {
		return m, nil
	}

	var cmd tea.Cmd
	in := &m.Inputs[m.Focus]
	before := in.Value()
	*in, cmd = in.Update(msg)
	if after := in.Value(); after != before {
		_ = m.Form.Set(m.fieldID(m.Focus), after, m.clock())
	}
	frame := m.nextFrame()
	return m, tea.Batch(cmd, frame)
}

// moveFocus focuses index i and starts frames for the labels it retargets.
func (m *AuthModel) moveFocus(i int) tea.Cmd {
	focus := m.setFocus(i)
	return tea.Batch(focus, m.nextFrame())
}

// setFocus moves focus to index i, wrapping around the fields and the button.
func (m *AuthModel) setFocus(i int) tea.Cmd {
	n := len(m.Inputs) + 1
	i = ((i % n) + n) % n
	m.Focus = i

	now := m.clock()
	var cmd tea.Cmd
	for j := range m.Inputs {
		if j == i {
			cmd = m.Inputs[j].Focus()
			continue
		}
		m.Inputs[j].Blur()
	}
	if i < len(m.Inputs) {
		_ = m.Form.Focus(m.fieldID(i), now)
	} else {
		m.Form.Blur(now)
	}
	return cmd
}

// nextFrame schedules one animation frame while any label is mid-tween.
func (m *AuthModel) nextFrame() tea.Cmd {
	if m.ticking || !m.Form.Animating(m.clock()) {
		return nil
	}
	m.ticking = true
	id := m.id
	return tea.Tick(m.frameInterval, func(t time.Time) tea.Msg {
		return frameMsg{screen: id, at: t}
	})
}

// startSubmit marks a request in flight and returns the spinner tick when it
// is the first one.
func (m *AuthModel) startSubmit() tea.Cmd {
	m.Submitting++
	if m.Submitting == 1 {
		return m.Spinner.Tick
	}
	return nil
}

func (m *AuthModel) finishSubmit() {
	if m.Submitting > 0 {
		m.Submitting--
	}
}

func (m *AuthModel) resize(width int) {
	w := FieldWidth(width)
	for i, f := range m.Form.Fields() {
		m.Inputs[i].Width = w - 5 - lipgloss.Width(f.Label)
	}
}

func (m AuthModel) fieldID(i int) form.FieldID {
	return m.Form.Fields()[i].ID
}

// View renders the screen
func (m AuthModel) View() string {
	return RenderApplicationContainer(m.buildContent(), m.Help.View(m.Keys), m.APIURL, m.Width, m.Height)
}

func (m AuthModel) buildContent() string {
	now := m.clock()
	width := m.Width
	if width <= 0 {
		width = DefaultWidth
	}
	fieldWidth := FieldWidth(width)

	title, button, prompt, link := "Login", "Login", "You don't have an account? ", "Register"
	if m.Action == submit.Register {
		title, button, prompt, link = "Sign Up", "Sign Up", "Already have an account? ", "Login"
	}

	var b strings.Builder
	b.WriteString(RenderTitle(title))
	b.WriteString("\n")

	for i, f := range m.Form.Fields() {
		b.WriteString(RenderField(f.Label, m.Form.Label(f.ID, now), m.Inputs[i].View(), i == m.Focus, fieldWidth))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	btn := RenderButton(button, m.Focus == len(m.Inputs))
	if m.Submitting > 0 {
		btn = lipgloss.JoinHorizontal(lipgloss.Center, btn, "  ", m.Spinner.View())
	}
	b.WriteString(btn)
	b.WriteString("\n\n")

	b.WriteString(RenderSubtitle(prompt))
	b.WriteString(LinkStyle.Render(link))
	b.WriteString(RenderSubtitle(" (" + m.Keys.Link.Help().Key + ")"))

	return lipgloss.Place(width-4, 0, lipgloss.Center, lipgloss.Top,
		lipgloss.NewStyle().Width(fieldWidth).Render(b.String()))
}
