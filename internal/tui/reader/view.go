package reader

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/folio/internal/tui/components"
)

const progressWidth = 12

// View renders the current model state
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		m.viewport.View(),
		m.footerView(),
	)
}

func (m Model) headerView() string {
	doc := m.view.Document()
	title := doc.Title
	if title == "" {
		title = doc.ID
	}
	if title == "" {
		title = "folio"
	}

	right := positionStyle.Render(fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100))
	if done, total := m.StepsDone(); total > 0 {
		right = components.NewProgress(total, progressWidth).View(done) + "  " + right
	}
	left := titleStyle.Render(title)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) footerView() string {
	helpView := m.help.View(m.keys)
	if m.status == "" {
		return helpView
	}
	style := statusStyle
	if m.statusErr {
		style = errorStyle
	}
	return lipgloss.JoinVertical(lipgloss.Left, style.Render(m.status), helpView)
}
