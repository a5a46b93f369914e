package ui

import (
	"bufio"
	"io"
	"strings"
)

// Confirm prints a warning box with the question and reads a y/N answer
// from in. Anything but "y" or "yes" declines, including EOF.
func (p *Printer) Confirm(in io.Reader, title string, warnings []string, question string) bool {
	p.PrintWarning(title, warnings)
	_, _ = io.WriteString(p.out, "\n"+question+" [y/N]: ")

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		p.Newline()
		return false
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
