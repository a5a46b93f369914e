package form

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Resting and floated endpoints of the label style. Offset and size are in
// the mobile layout's points; the terminal renderer maps them onto rows and
// weight.
const (
	RestingOffset = 20.0
	FloatedOffset = -10.0

	RestingFontSize = 16.0
	FloatedFontSize = 12.0

	RestingColorHex = "#aaaaaa"
	FloatedColorHex = "#007BFF"
)

var (
	restingColor = mustHex(RestingColorHex)
	floatedColor = mustHex(FloatedColorHex)
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// LabelStyle is the visual state of a label at a given progress.
type LabelStyle struct {
	Progress float64
	Offset   float64
	FontSize float64
	Color    colorful.Color
}

// StyleAt interpolates every property between resting and floated using the
// same progress value. Progress is clamped to [0,1].
func StyleAt(progress float64) LabelStyle {
	p := math.Max(0, math.Min(1, progress))
	return LabelStyle{
		Progress: p,
		Offset:   lerp(RestingOffset, FloatedOffset, p),
		FontSize: lerp(RestingFontSize, FloatedFontSize, p),
		Color:    restingColor.BlendRgb(floatedColor, p).Clamped(),
	}
}

// Hex returns the label color as #rrggbb for lipgloss.
func (s LabelStyle) Hex() string {
	return s.Color.Hex()
}

// Floated reports whether the label sits closer to the floated position than
// to the resting one. The terminal has no sub-row positioning, so the label
// jumps rows at the midpoint while color and weight keep tweening.
func (s LabelStyle) Floated() bool {
	return s.Offset < (RestingOffset+FloatedOffset)/2
}

// Small reports whether the font size has shrunk past the midpoint.
func (s LabelStyle) Small() bool {
	return s.FontSize < (RestingFontSize+FloatedFontSize)/2
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
