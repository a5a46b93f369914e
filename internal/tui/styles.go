package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/authdeck/internal/form"
	"github.com/muurk/authdeck/internal/urls"
	"github.com/muurk/authdeck/internal/version"
)

// Application branding
const AppName = "AUTHDECK"

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 48 // Minimum supported terminal width
	MaxFieldWidth    = 56 // Widest an input box gets
	DefaultWidth     = 80 // Used before the first WindowSizeMsg
	DefaultHeight    = 24
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color(form.FloatedColorHex) // Blue, matches the floated label
	SecondaryColor = lipgloss.Color("#43BF6D")            // Green
	ErrorColor     = lipgloss.Color("#FF0000")            // Red

	TextColor   = lipgloss.Color("#FFFFFF")
	SubtleColor = lipgloss.Color("#626262")
	BorderColor = lipgloss.Color(form.FloatedColorHex)
	IdleColor   = lipgloss.Color("#cccccc") // Input border while blurred
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true).
			Padding(1, 0)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	LinkStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(PrimaryColor).
			Bold(true).
			Padding(0, 2)

	BlurredButtonStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(SubtleColor).
				Padding(0, 2)

	SuccessBoxStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	// Alert modal
	AlertStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 3)

	ErrorAlertStyle = AlertStyle.
			BorderForeground(ErrorColor)
)

// RenderTitle renders a title with consistent styling
func RenderTitle(text string) string {
	return TitleStyle.Render(text)
}

// RenderSubtitle renders a subtitle with consistent styling
func RenderSubtitle(text string) string {
	return SubtitleStyle.Render(text)
}

// BuildHeaderContent creates header content with app name, API target and project URL
func BuildHeaderContent(apiURL string) string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + version.Version)

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(apiURL + "  " + urls.ProjectURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// BuildFooterContent creates footer content with help text
func BuildFooterContent(helpText string) string {
	return lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(helpText)
}

// RenderApplicationContainer wraps a screen in the full-terminal frame:
// header, content, and a footer carrying the screen's help text.
//
// Every screen renders through it:
//
//	func (m Model) View() string {
//	    return RenderApplicationContainer(m.buildContent(), m.Help.View(m.Keys), m.apiURL, m.Width, m.Height)
//	}
func RenderApplicationContainer(content, footerText, apiURL string, terminalWidth, terminalHeight int) string {
	if terminalWidth <= 0 {
		terminalWidth = DefaultWidth
	}
	if terminalHeight <= 0 {
		terminalHeight = DefaultHeight
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4). // Leave room for outer border
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth - 4)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(BuildHeaderContent(apiURL)),
		contentStyle.Render(content),
		footerStyle.Render(BuildFooterContent(footerText)),
	)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		borderStyle.Render(innerContent),
	)
}

// RenderModal centers modalContent over a dimmed screen.
func RenderModal(modalContent string, terminalWidth, terminalHeight int) string {
	if terminalWidth <= 0 {
		terminalWidth = DefaultWidth
	}
	if terminalHeight <= 0 {
		terminalHeight = DefaultHeight
	}
	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Center,
		lipgloss.Center,
		modalContent,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("240")),
	)
}

// FieldWidth returns the outer width of an input box for a terminal width.
func FieldWidth(terminalWidth int) int {
	if terminalWidth <= 0 {
		terminalWidth = DefaultWidth
	}
	w := terminalWidth - 8
	if w > MaxFieldWidth {
		w = MaxFieldWidth
	}
	if w < MinTerminalWidth-8 {
		w = MinTerminalWidth - 8
	}
	return w
}

// LabelTextStyle maps an interpolated label style onto terminal attributes:
// the blended color, and bold while the label is still at its larger size.
func LabelTextStyle(s form.LabelStyle) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.Hex())).
		Bold(!s.Small())
}

// RenderField draws one input box of the given outer width. A floated label
// sits on the top border; a resting label sits inside the box, in front of
// the input.
func RenderField(label string, s form.LabelStyle, input string, focused bool, width int) string {
	borderColor := IdleColor
	if focused {
		borderColor = PrimaryColor
	}
	border := lipgloss.NewStyle().Foreground(borderColor)
	inner := width - 2

	var top string
	body := " " + input
	if s.Floated() {
		tag := " " + LabelTextStyle(s).Render(label) + " "
		fill := inner - 1 - lipgloss.Width(tag)
		if fill < 0 {
			fill = 0
		}
		top = border.Render("╭─") + tag + border.Render(strings.Repeat("─", fill)+"╮")
	} else {
		top = border.Render("╭" + strings.Repeat("─", inner) + "╮")
		body = " " + LabelTextStyle(s).Render(label) + " " + input
	}

	pad := inner - lipgloss.Width(body)
	if pad < 0 {
		pad = 0
	}
	middle := border.Render("│") + body + strings.Repeat(" ", pad) + border.Render("│")
	bottom := border.Render("╰" + strings.Repeat("─", inner) + "╯")

	return top + "\n" + middle + "\n" + bottom
}

// RenderButton draws the submit button.
func RenderButton(text string, focused bool) string {
	if focused {
		return ButtonStyle.Render(text)
	}
	return BlurredButtonStyle.Render(text)
}
