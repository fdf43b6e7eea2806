// Package style provides shared colors and icons for terminal output.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/osw/internal/core/domain"
)

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
	Circle  = "○"
)

// StepIcon returns the icon and color for a step outcome.
func StepIcon(v domain.StepValue) (string, lipgloss.Color) {
	switch v {
	case domain.StepSuccess:
		return Check, Green
	case domain.StepFail:
		return Cross, Red
	case domain.StepNA:
		return Tilde, Yellow
	case domain.StepSkip:
		return Circle, Slate
	default:
		return Dot, Slate
	}
}

// RunIcon returns the icon and color for a run outcome.
func RunIcon(s domain.RunStatus) (string, lipgloss.Color) {
	switch s {
	case domain.RunSuccess:
		return Check, Green
	case domain.RunHalted:
		return Warning, Yellow
	default:
		return Cross, Red
	}
}
