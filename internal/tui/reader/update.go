package reader

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/folio/internal/copyblock"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.renderer = m.newRender(msg.Width)
		m.resize()
		m.redraw()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case refreshMsg:
		m.redraw()
		return m, waitForRefresh(m.events)

	case copyDoneMsg:
		if errors.Is(msg.Err, copyblock.ErrDisposed) {
			// The copy was started on a view a reload has since replaced.
			return m, nil
		}
		if msg.Err != nil {
			m.log.WithFields(map[string]any{"index": msg.Index}).Error(msg.Err, "copy failed")
			cmd := m.setStatus(fmt.Sprintf("Copy failed: %v", msg.Err), true)
			m.redraw()
			return m, cmd
		}
		cmd := m.setStatus("Copied!", false)
		m.redraw()
		return m, cmd

	case ReloadedMsg:
		next := waitForReload(m.changes, m.load)
		if msg.Err != nil {
			m.log.Error(msg.Err, "reload failed")
			return m, tea.Batch(next, m.setStatus(fmt.Sprintf("Reload failed: %v", msg.Err), true))
		}
		m.log.WithFields(map[string]any{"sections": len(msg.Document.Sections)}).Debug("document reloaded")
		m.mount(msg.Document)
		m.redraw()
		return m, tea.Batch(next, m.setStatus("Reloaded", false))

	case clearStatusMsg:
		if msg.Seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
			m.resize()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.view.Dispose()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		block, ok := m.Focused()
		switch {
		case !ok:
			return m, nil
		case block.Step != nil:
			block.Step.Toggle()
			m.redraw()
			return m, nil
		case block.Copy != nil:
			return m, copyCmd(block.Index, block.Copy)
		}
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		block, ok := m.Focused()
		if !ok || block.Copy == nil {
			return m, nil
		}
		return m, copyCmd(block.Index, block.Copy)

	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)
	case key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.HalfViewDown()
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.HalfViewUp()
	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
	}

	return m, nil
}

// moveFocus cycles through the interactive blocks.
func (m *Model) moveFocus(delta int) {
	n := len(m.view.Interactive())
	if n == 0 {
		return
	}
	m.focus = ((m.focus+delta)%n + n) % n
	m.redraw()
	m.scrollToFocus()
}

func (m *Model) focusKey() string {
	block, ok := m.Focused()
	if !ok {
		return ""
	}
	return m.blockKeys[block.Index]
}

// redraw re-renders the document with the controllers' current state.
func (m *Model) redraw() {
	tree, keys := m.view.RenderKeyed()
	m.blockKeys = keys
	m.layout = m.renderer.Layout(tree, m.focusKey())
	m.viewport.SetContent(m.layout.Text)
}

// scrollToFocus brings the focused block into view, aligning its top when
// it does not fit.
func (m *Model) scrollToFocus() {
	span, ok := m.layout.Span(m.focusKey())
	if !ok {
		return
	}
	top, height := m.viewport.YOffset, m.viewport.Height
	switch {
	case span.Start < top || span.End-span.Start > height:
		m.viewport.SetYOffset(span.Start)
	case span.End > top+height:
		m.viewport.SetYOffset(span.End - height)
	}
}

// resize fits the viewport between the header and the footer.
func (m *Model) resize() {
	if !m.ready {
		return
	}
	body := m.height - lipgloss.Height(m.headerView()) - lipgloss.Height(m.footerView())
	if body < 1 {
		body = 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = body
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusErr = isErr
	m.resize()
	return clearStatusCmd(m.statusSeq)
}
