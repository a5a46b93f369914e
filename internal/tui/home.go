package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Session is what the home screen knows about the signed-in user.
type Session struct {
	Email   string
	Token   string
	Message string
}

// homeKeyMap defines key bindings for the home screen
type homeKeyMap struct {
	SignOut key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k homeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SignOut, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k homeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.SignOut, k.Quit}}
}

// HomeModel is the screen shown after a successful login.
type HomeModel struct {
	Session *Session

	Width  int
	Height int
	APIURL string
	Help   help.Model
	Keys   homeKeyMap

	signOutRequested bool
}

// NewHomeModel creates the home screen for session.
func NewHomeModel(session *Session) HomeModel {
	return HomeModel{
		Session: session,
		Help:    help.New(),
		Keys: homeKeyMap{
			SignOut: key.NewBinding(
				key.WithKeys("l"),
				key.WithHelp("l", "sign out"),
			),
			Quit: key.NewBinding(
				key.WithKeys("q", "ctrl+c"),
				key.WithHelp("q", "quit"),
			),
		},
	}
}

// Update handles messages and updates the model
func (m HomeModel) Update(msg tea.Msg) (HomeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.SignOut):
			m.signOutRequested = true
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the screen
func (m HomeModel) View() string {
	return RenderApplicationContainer(m.buildContent(), m.Help.View(m.Keys), m.APIURL, m.Width, m.Height)
}

func (m HomeModel) buildContent() string {
	var b strings.Builder

	b.WriteString(RenderTitle("✓ Signed in"))
	b.WriteString("\n")

	if s := m.Session; s != nil {
		if s.Message != "" {
			b.WriteString(SuccessBoxStyle.Render(s.Message))
			b.WriteString("\n\n")
		}
		if s.Email != "" {
			b.WriteString(fmt.Sprintf("  Email:  %s\n", s.Email))
		}
		if s.Token != "" {
			b.WriteString(fmt.Sprintf("  Token:  %s\n", maskToken(s.Token)))
		}
	}

	return lipgloss.NewStyle().Padding(0, 2).Render(b.String())
}

// maskToken keeps the first and last four characters of long tokens.
func maskToken(token string) string {
	if len(token) <= 12 {
		return strings.Repeat("•", len(token))
	}
	return token[:4] + strings.Repeat("•", 8) + token[len(token)-4:]
}
