package reader

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/folio/internal/copyblock"
)

const (
	copyTimeout   = 5 * time.Second
	reloadTimeout = 10 * time.Second
	statusTTL     = 3 * time.Second
)

// waitForRefresh blocks until a controller reports a change made outside
// the update loop.
func waitForRefresh(events <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-events
		return refreshMsg{}
	}
}

// waitForReload blocks until the watched source changes, then loads it.
func waitForReload(changes <-chan struct{}, load Loader) tea.Cmd {
	if changes == nil || load == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		ctx, cancel := context.WithTimeout(context.Background(), reloadTimeout)
		defer cancel()
		doc, err := load(ctx)
		return ReloadedMsg{Document: doc, Err: err}
	}
}

// copyCmd writes a copy block to the clipboard off the update loop.
func copyCmd(index int, ctl *copyblock.Controller) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), copyTimeout)
		defer cancel()
		return copyDoneMsg{Index: index, Err: ctl.Copy(ctx)}
	}
}

func clearStatusCmd(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{Seq: seq}
	})
}
