package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/authdeck/internal/submit"
)

type alert struct {
	title   string
	message string
}

// alertQueue collects alerts raised by the submit controller. It is only
// touched from the Bubble Tea update loop, and is shared by pointer so every
// copy of AppModel sees the same queue.
type alertQueue struct {
	items []alert
}

// Alert implements submit.Alerter.
func (q *alertQueue) Alert(title, message string) {
	q.items = append(q.items, alert{title: title, message: message})
}

func (q *alertQueue) visible() bool {
	return len(q.items) > 0
}

func (q *alertQueue) current() alert {
	return q.items[0]
}

func (q *alertQueue) dismiss() {
	if len(q.items) > 0 {
		q.items = q.items[1:]
	}
}

// alertKeyMap defines key bindings while an alert is showing
type alertKeyMap struct {
	Dismiss key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k alertKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Dismiss}
}

// FullHelp returns keybindings for the expanded help view
func (k alertKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Dismiss}}
}

func newAlertKeyMap() alertKeyMap {
	return alertKeyMap{
		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter", "ok"),
		),
	}
}

func renderAlert(a alert, helpText string, width int) string {
	style := AlertStyle
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor)
	if a.title == submit.TitleError {
		style = ErrorAlertStyle
		titleStyle = titleStyle.Foreground(ErrorColor)
	}

	w := FieldWidth(width)
	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(a.title),
		"",
		lipgloss.NewStyle().Width(w-8).Render(a.message),
		"",
		BuildFooterContent(helpText),
	)
	return style.Render(body)
}
