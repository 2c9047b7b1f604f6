package compose

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/folio/internal/clipboard"
	"github.com/alexisbeaulieu97/folio/internal/clock"
	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/copyblock"
	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/node"
	"github.com/alexisbeaulieu97/folio/internal/render"
	"github.com/alexisbeaulieu97/folio/internal/tutorial"
)

func tutorialDoc() content.Document {
	return content.Document{
		ID:    "doc-1",
		Title: "Shell basics",
		Sections: []content.Section{
			{Type: content.TypeIntro, Content: "Welcome"},
			{Type: content.TypeTutorialStep, StepNumber: 1, Title: "Open a terminal", Content: "Any will do."},
			{Type: content.TypePrompt, Title: "Try it", Content: "echo hi"},
			{Type: content.TypeTip, Content: "Use tab completion."},
			{Type: content.TypeTutorialStep, StepNumber: 2, Title: "List files", Content: "Run ls."},
			{Type: content.TypePrompt, Content: "ls -la"},
		},
	}
}

func TestRenderFiltersIntro(t *testing.T) {
	t.Parallel()

	tree := Render([]content.Section{
		{Type: content.TypeIntro, Content: "X"},
		{Type: content.TypeTip, Title: "T", Content: "Y"},
	})

	require.Equal(t, node.KindDocument, tree.Kind)
	require.Len(t, tree.Children, 1)
	assert.Equal(t, "tip", tree.Children[0].Attr(node.AttrType))
	assert.NotContains(t, tree.PlainText(), "X")
	assert.Contains(t, tree.PlainText(), "Y")
}

func TestRenderPreservesAuthorOrder(t *testing.T) {
	t.Parallel()

	tree := Render([]content.Section{
		{Type: content.TypeTutorialStep, StepNumber: 3, Content: "third"},
		{Type: content.TypeTutorialStep, StepNumber: 1, Content: "first"},
		{Type: content.TypeFact, Content: "fact"},
	})

	require.Len(t, tree.Children, 3)
	assert.Equal(t, "step-3", tree.Children[0].Key)
	assert.Equal(t, "step-1", tree.Children[1].Key)
	assert.Equal(t, "block-2", tree.Children[2].Key)
}

func TestRenderSkipsEmptyHashtags(t *testing.T) {
	t.Parallel()

	tree := Render([]content.Section{
		{Type: content.TypeHashtags, Content: "no tags here"},
		{Type: content.TypeHashtags, Content: "#go"},
	})
	require.Len(t, tree.Children, 1)
	assert.Equal(t, "block-1", tree.Children[0].Key)
}

func TestRenderDeduplicatesKeys(t *testing.T) {
	t.Parallel()

	tree := Render([]content.Section{
		{Type: content.TypeTutorialStep, StepNumber: 1, Content: "a"},
		{Type: content.TypeTutorialStep, StepNumber: 1, Content: "b"},
	})
	require.Len(t, tree.Children, 2)
	assert.Equal(t, "step-1", tree.Children[0].Key)
	assert.Equal(t, "step-1-1", tree.Children[1].Key)
}

func TestRenderEmptyDocument(t *testing.T) {
	t.Parallel()

	tree := Render(nil)
	assert.Equal(t, node.KindDocument, tree.Kind)
	assert.Empty(t, tree.Children)
}

type panicky struct {
	next SectionRenderer
}

func (p panicky) Render(sec content.Section, ctl render.Controls) *node.Node {
	if sec.Type == content.TypeGraph {
		panic("chart data missing")
	}
	return p.next.Render(sec, ctl)
}

func TestRenderRecoversFromPanics(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	c := New(WithRenderer(panicky{next: render.New()}), WithLogger(log))
	tree := c.Render([]content.Section{
		{Type: content.TypeTip, Content: "before"},
		{Type: content.TypeGraph, Content: "{}"},
		{Type: content.TypeTip, Content: "after"},
	})

	require.Len(t, tree.Children, 3)
	failed := tree.Children[1]
	assert.Equal(t, node.KindError, failed.Kind)
	assert.Equal(t, "graph", failed.Attr(node.AttrType))
	assert.Equal(t, "block-1", failed.Key)
	assert.Equal(t, FailedSectionText, failed.PlainText())
	assert.Contains(t, tree.Children[2].PlainText(), "after")

	assert.Contains(t, buf.String(), "section rendering panicked")
	assert.Contains(t, buf.String(), "chart data missing")
}

func TestRenderLogsUnknownTypes(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	tree := New(WithLogger(log)).Render([]content.Section{{Type: "banner", Content: "hello"}})
	require.Len(t, tree.Children, 1)
	assert.Equal(t, node.KindCallout, tree.Children[0].Kind)
	assert.Contains(t, buf.String(), "unknown section type")
	assert.Contains(t, buf.String(), "banner")
}

func TestMountCreatesControllerPerInteractiveSection(t *testing.T) {
	t.Parallel()

	view := Mount(tutorialDoc(), clipboard.NewMemory(), WithClock(clock.Fake(time.Unix(0, 0))))
	defer view.Dispose()

	blocks := view.Interactive()
	require.Len(t, blocks, 4)
	assert.Equal(t, []int{1, 2, 4, 5}, []int{blocks[0].Index, blocks[1].Index, blocks[2].Index, blocks[3].Index})
	assert.NotNil(t, blocks[0].Step)
	assert.Nil(t, blocks[0].Copy)
	assert.NotNil(t, blocks[1].Copy)

	require.Len(t, view.Steps(), 2)
	assert.Equal(t, 2, view.Steps()[1].StepNumber())
	require.Len(t, view.CopyBlocks(), 2)
	assert.Equal(t, "ls -la", view.CopyBlocks()[1].Content())

	_, ok := view.Block(3)
	assert.False(t, ok, "a tip has no controller")
}

func TestViewRenderReflectsStepState(t *testing.T) {
	t.Parallel()

	var toggles []tutorial.State
	view := Mount(tutorialDoc(), clipboard.NewMemory(),
		WithStepObserver(func(index int, s tutorial.State) {
			assert.Equal(t, 4, index)
			toggles = append(toggles, s)
		}))
	defer view.Dispose()

	step := view.Steps()[1]
	require.Equal(t, tutorial.StateDone, step.Toggle())

	tree := view.Render()
	first := tree.Children[0]
	second := tree.Children[3]
	assert.Equal(t, "pending", first.Attr(node.AttrState), "steps do not share state")
	assert.Equal(t, "done", second.Attr(node.AttrState))
	assert.Equal(t, []tutorial.State{tutorial.StateDone}, toggles)
}

func TestViewCopyFlow(t *testing.T) {
	t.Parallel()

	fake := clock.Fake(time.Unix(0, 0))
	clip := clipboard.NewMemory()
	var states []copyblock.State
	view := Mount(tutorialDoc(), clip,
		WithClock(fake),
		WithCopyObserver(func(index int, s copyblock.State) {
			assert.Equal(t, 2, index)
			states = append(states, s)
		}))
	defer view.Dispose()

	block, ok := view.Block(2)
	require.True(t, ok)
	require.NoError(t, block.Copy.Copy(context.Background()))

	prompt := view.Render().Children[1]
	assert.Equal(t, "copied", prompt.Attr(node.AttrState))
	assert.Contains(t, prompt.Find(node.KindButton).PlainText(), render.CopiedLabel)

	fake.Advance(copyblock.ResetDelay)
	prompt = view.Render().Children[1]
	assert.Equal(t, "idle", prompt.Attr(node.AttrState))
	assert.Equal(t, []string{"echo hi"}, clip.Writes())
	assert.Equal(t, []copyblock.State{copyblock.StateCopied, copyblock.StateIdle}, states)
}

func TestRemountResetsState(t *testing.T) {
	t.Parallel()

	doc := tutorialDoc()
	first := Mount(doc, clipboard.NewMemory())
	first.Steps()[0].Toggle()
	first.Dispose()

	second := Mount(doc, clipboard.NewMemory())
	defer second.Dispose()
	assert.False(t, second.Steps()[0].Done())
	assert.Equal(t, "pending", second.Render().Children[0].Attr(node.AttrState))
}

func TestDisposeCancelsPendingResets(t *testing.T) {
	t.Parallel()

	fake := clock.Fake(time.Unix(0, 0))
	view := Mount(tutorialDoc(), clipboard.NewMemory(), WithClock(fake), WithCopyDelay(time.Second))

	for _, block := range view.CopyBlocks() {
		require.NoError(t, block.Copy(context.Background()))
	}
	require.Equal(t, 2, fake.Pending())

	view.Dispose()
	assert.Zero(t, fake.Pending())
	for _, block := range view.CopyBlocks() {
		assert.ErrorIs(t, block.Copy(context.Background()), copyblock.ErrDisposed)
	}
}

func TestInitialRenderMatchesStatelessRender(t *testing.T) {
	t.Parallel()

	doc := tutorialDoc()
	view := Mount(doc, clipboard.NewMemory())
	defer view.Dispose()

	assert.Equal(t, Render(doc.Sections), view.Render())
}

func TestRenderKeyedMatchesTreeKeys(t *testing.T) {
	t.Parallel()

	view := Mount(tutorialDoc(), clipboard.NewMemory())
	defer view.Dispose()

	tree, keys := view.RenderKeyed()
	assert.Equal(t, map[int]string{
		1: "step-1",
		2: "block-2",
		3: "block-3",
		4: "step-2",
		5: "block-5",
	}, keys)
	require.Len(t, tree.Children, len(keys))
	assert.Equal(t, "step-2", tree.Children[3].Key)
}
