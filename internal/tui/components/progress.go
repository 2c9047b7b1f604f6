// Package components holds small Bubbletea widgets shared by the TUIs.
package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Progress renders how many tutorial steps of a document are done.
type Progress struct {
	bar   progress.Model
	total int
}

// NewProgress creates a progress component for the given number of steps.
func NewProgress(total int, width int) Progress {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = width
	return Progress{bar: bar, total: total}
}

// Total returns the number of steps tracked.
func (p Progress) Total() int {
	return p.total
}

// View renders the label and bar for the given number of completed steps.
func (p Progress) View(done int) string {
	ratio := 0.0
	if p.total > 0 {
		ratio = math.Min(1.0, float64(done)/float64(p.total))
	}
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d/%d steps", done, p.total))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", p.bar.ViewAs(ratio))
}
