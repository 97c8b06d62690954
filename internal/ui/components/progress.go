package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/asengupta/cyberquest/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar with an optional
// "current/target" fraction after it.
type ProgressBar struct {
	Label    string
	Current  int
	Target   int
	ShowFrac bool
	Width    int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, current, target int, showFrac bool, width int) ProgressBar {
	return ProgressBar{
		Label:    label,
		Current:  current,
		Target:   target,
		ShowFrac: showFrac,
		Width:    width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	frac := ""
	if p.ShowFrac {
		frac = fmt.Sprintf("  %d/%d", p.Current, p.Target)
	}

	labelWidth := lipgloss.Width(result)
	barWidth := p.Width - labelWidth - len(frac)
	if barWidth < 4 {
		barWidth = 4
	}

	ratio := 0.0
	if p.Target > 0 {
		ratio = float64(p.Current) / float64(p.Target)
	}

	filled := int(float64(barWidth) * ratio)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	if p.ShowFrac {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(frac)
	}

	return result
}
