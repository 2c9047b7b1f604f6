package components

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestNewProgress(t *testing.T) {
	t.Parallel()

	p := NewProgress(4, 12)
	require.Equal(t, 4, p.Total())
	require.Equal(t, 12, p.bar.Width)
}

func TestProgressView(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		total int
		done  int
		want  string
	}{
		{name: "no steps", total: 0, done: 0, want: "0/0 steps"},
		{name: "partial", total: 4, done: 1, want: "1/4 steps"},
		{name: "complete", total: 4, done: 4, want: "4/4 steps"},
		{name: "beyond total", total: 4, done: 6, want: "6/4 steps"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			view := ansi.Strip(NewProgress(tc.total, 10).View(tc.done))
			require.Contains(t, view, tc.want)
			require.Equal(t, len([]rune(tc.want))+1+10, ansi.StringWidth(view))
		})
	}
}
