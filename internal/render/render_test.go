package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/node"
)

type stepDone bool

func (s stepDone) Done() bool { return bool(s) }

type copied bool

func (c copied) Copied() bool { return bool(c) }

func TestRenderTagsEveryNodeWithType(t *testing.T) {
	t.Parallel()

	r := New()
	for _, typ := range append(content.KnownTypes(), "mystery") {
		sec := content.Section{Type: typ, Content: "#tag body", Title: "T", StepNumber: 1}
		out := r.Render(sec, Controls{})
		require.NotNil(t, out, typ)
		assert.Equal(t, string(typ), out.Attr(node.AttrType))
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	t.Parallel()

	r := New()
	for _, typ := range append(content.KnownTypes(), "mystery") {
		sec := content.Section{Type: typ, Content: "Some *text*\nwith #tags", Title: "Title", Icon: "Zap", Quote: "q", StepNumber: 2}
		first := r.Render(sec, Controls{})
		second := r.Render(sec, Controls{})
		assert.Empty(t, cmp.Diff(first, second), typ)
	}
}

func TestRenderDoesNotMutateSection(t *testing.T) {
	t.Parallel()

	sec := content.Section{Type: content.TypeTip, Content: "x", Title: "y", Icon: "Lightbulb"}
	before := sec
	New().Render(sec, Controls{})
	assert.Equal(t, before, sec)
}

func TestHashtags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"ascii", "#go #rust and words", []string{"#go", "#rust"}},
		{"unicode", "#café #日本語 #naïve_1", []string{"#café", "#日本語", "#naïve_1"}},
		{"duplicates kept", "#a #a", []string{"#a", "#a"}},
		{"stops at punctuation", "#end. #x-y", []string{"#end", "#x"}},
		{"none", "no tags here # alone", nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := New().Render(content.Section{Type: content.TypeHashtags, Content: tt.content}, Controls{})
			if tt.want == nil {
				assert.Nil(t, out)
				return
			}
			require.NotNil(t, out)
			assert.Equal(t, node.KindBadges, out.Kind)

			var got []string
			for _, badge := range out.FindAll(node.KindBadge) {
				got = append(got, badge.PlainText())
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, Hashtags(tt.content), got)
		})
	}
}

func TestIntroIsPlainEmphasis(t *testing.T) {
	t.Parallel()

	out := New().Render(content.Section{Type: content.TypeIntro, Content: "Hello", Icon: "Rocket"}, Controls{})
	assert.Equal(t, node.KindParagraph, out.Kind)
	assert.NotNil(t, out.Find(node.KindEmphasis))
	assert.Nil(t, out.Find(node.KindIcon))
	assert.Equal(t, []string{"intro"}, out.Classes)
}

func TestCalloutHeaderWhenTitled(t *testing.T) {
	t.Parallel()

	for _, typ := range []content.SectionType{
		content.TypeSection, content.TypeSarcasm, content.TypeWarning,
		content.TypeTip, content.TypeFact, content.TypeGraph,
	} {
		out := New().Render(content.Section{Type: typ, Title: "Heads up", Content: "Body"}, Controls{})
		require.Equal(t, node.KindCallout, out.Kind, typ)
		require.Len(t, out.Children, 2, typ)

		header := out.Children[0]
		assert.Equal(t, node.KindHeader, header.Kind)
		assert.Equal(t, node.KindIcon, header.Children[0].Kind)
		assert.Equal(t, "Heads up", header.Children[1].PlainText())
		assert.Equal(t, node.KindBody, out.Children[1].Kind)
		assert.Nil(t, out.Children[1].Find(node.KindIcon))
	}
}

func TestCalloutInlineIconWhenUntitled(t *testing.T) {
	t.Parallel()

	out := New().Render(content.Section{Type: content.TypeWarning, Content: "Careful"}, Controls{})
	require.Len(t, out.Children, 1)
	body := out.Children[0]
	assert.Equal(t, node.KindBody, body.Kind)
	require.NotEmpty(t, body.Children)
	assert.Equal(t, node.KindIcon, body.Children[0].Kind)
	assert.Equal(t, "alert-triangle", body.Children[0].Attr(node.AttrIcon))
	assert.Equal(t, "Careful", body.Attr(node.AttrSource))
}

func TestCalloutParsesMarkdown(t *testing.T) {
	t.Parallel()

	out := New().Render(content.Section{Type: content.TypeTip, Content: "- one\n- [two](https://x.y)\n\nrun `ls`"}, Controls{})
	assert.NotNil(t, out.Find(node.KindList))
	assert.Equal(t, "https://x.y", out.Find(node.KindLink).Attr(node.AttrHref))
	assert.Equal(t, "ls", out.Find(node.KindCode).Text)
}

func TestCalloutEmptyContent(t *testing.T) {
	t.Parallel()

	out := New().Render(content.Section{Type: content.TypeFact}, Controls{})
	require.NotNil(t, out)
	body := out.Find(node.KindBody)
	require.NotNil(t, body)
	require.Len(t, body.Children, 1, "only the icon remains")
}

func TestUnknownTypeFallsBackToSectionCallout(t *testing.T) {
	t.Parallel()

	unknown := New().Render(content.Section{Type: "future-type", Content: "x"}, Controls{})
	section := New().Render(content.Section{Type: content.TypeSection, Content: "x"}, Controls{})

	assert.Equal(t, node.KindCallout, unknown.Kind)
	assert.Equal(t, section.Classes, unknown.Classes)
	assert.Equal(t, "book-open", unknown.Find(node.KindIcon).Attr(node.AttrIcon))
}

func TestSectionBorderOverride(t *testing.T) {
	t.Parallel()

	out := New().Render(content.Section{Type: content.TypeSection, Icon: "TrendingDown", Content: "down"}, Controls{})
	assert.True(t, out.HasClass("border-red-400"))
	assert.True(t, out.HasClass("bg-slate-50"))
	assert.True(t, out.Find(node.KindIcon).HasClass("text-blue-600"), "icon colour keeps the base accent")

	tip := New().Render(content.Section{Type: content.TypeTip, Icon: "TrendingDown", Content: "down"}, Controls{})
	assert.True(t, tip.HasClass("border-green-400"))
}

func TestUnknownIconFallsBackToDefault(t *testing.T) {
	t.Parallel()

	out := New().Render(content.Section{Type: content.TypeTip, Icon: "Deprecated", Content: "x"}, Controls{})
	assert.Equal(t, "lightbulb", out.Find(node.KindIcon).Attr(node.AttrIcon))
}

func TestImageSourceIsVerbatim(t *testing.T) {
	t.Parallel()

	src := "https://cdn.example.com/a_b*c*.png?x=[1](2)"
	out := New().Render(content.Section{Type: content.TypeImage, Content: src, Title: "A chart", Icon: "Rocket"}, Controls{})

	assert.Equal(t, node.KindFigure, out.Kind)
	img := out.Find(node.KindImage)
	require.NotNil(t, img)
	assert.Equal(t, src, img.Attr(node.AttrSrc))
	assert.Equal(t, "A chart", img.Attr(node.AttrAlt))
	assert.Equal(t, "A chart", out.Find(node.KindCaption).PlainText())
	assert.Nil(t, out.Find(node.KindIcon))

	bare := New().Render(content.Section{Type: content.TypeImage, Content: src}, Controls{})
	assert.Nil(t, bare.Find(node.KindCaption))
}

func TestOpinionAndQuoteAreIdentical(t *testing.T) {
	t.Parallel()

	opinion := New().Render(content.Section{Type: content.TypeOpinion, Content: "a\nb", Icon: "Heart"}, Controls{})
	quote := New().Render(content.Section{Type: content.TypeQuote, Content: "a\nb", Icon: "Heart"}, Controls{})

	assert.Equal(t, node.KindBlockquote, opinion.Kind)
	para := opinion.Find(node.KindParagraph)
	require.NotNil(t, para)
	assert.Equal(t, node.KindIcon, para.Children[0].Kind)
	assert.NotNil(t, para.Find(node.KindBreak), "line breaks are preserved")

	assert.Equal(t, shape(opinion), shape(quote))
	assert.True(t, opinion.HasClass("border-amber-400"))
	assert.True(t, quote.HasClass("border-slate-400"))
}

func TestCTA(t *testing.T) {
	t.Parallel()

	out := New().Render(content.Section{Type: content.TypeCTA, Content: "Sign up\ntoday", Icon: "Rocket"}, Controls{})
	assert.Equal(t, node.KindCard, out.Kind)
	assert.True(t, out.HasClass("text-center"))
	assert.True(t, out.Find(node.KindIcon).HasClass("animate-pulse"))
	paras := out.FindAll(node.KindParagraph)
	require.Len(t, paras, 1)
	assert.Equal(t, "Sign up\ntoday", paras[0].PlainText())
}

func TestAuthorComment(t *testing.T) {
	t.Parallel()

	out := New().Render(content.Section{Type: content.TypeAuthorComment, Content: "*not markdown*"}, Controls{})
	assert.Equal(t, "Author's note", out.Find(node.KindTitle).PlainText())
	body := out.Find(node.KindBody)
	assert.Equal(t, "*not markdown*", body.PlainText())
	assert.True(t, body.Find(node.KindParagraph).HasClass("text-muted"))

	custom := New(WithAuthorNoteTitle("Editor")).Render(content.Section{Type: content.TypeAuthorComment}, Controls{})
	assert.Equal(t, "Editor", custom.Find(node.KindTitle).PlainText())

	titled := New().Render(content.Section{Type: content.TypeAuthorComment, Title: "PS"}, Controls{})
	assert.Equal(t, "PS", titled.Find(node.KindTitle).PlainText())
}

func TestSecret(t *testing.T) {
	t.Parallel()

	out := New().Render(content.Section{Type: content.TypeSecret, Content: "the **key** is [here](x)"}, Controls{})
	assert.Equal(t, node.KindCard, out.Kind)
	assert.True(t, out.HasClass("bg-slate-900"))
	assert.Contains(t, out.Find(node.KindLabel).PlainText(), "Confidential")
	assert.Equal(t, `"the **key** is [here](x)"`, out.Find(node.KindParagraph).PlainText())
	assert.Nil(t, out.Find(node.KindLink))
}

func TestPromptCopyBlock(t *testing.T) {
	t.Parallel()

	sec := content.Section{Type: content.TypePrompt, Content: "echo *hi*\n  indented", Title: "Run it"}

	idle := New().Render(sec, Controls{})
	assert.Equal(t, node.KindCopyBlock, idle.Kind)
	assert.Equal(t, "idle", idle.Attr(node.AttrState))
	assert.Equal(t, "echo *hi*\n  indented", idle.Find(node.KindCodeBlock).Text)
	assert.Equal(t, "Run it", idle.Find(node.KindTitle).PlainText())

	button := idle.Find(node.KindButton)
	assert.Equal(t, ActionCopy, button.Attr(node.AttrAction))
	assert.Contains(t, button.PlainText(), CopyLabel)
	assert.Equal(t, "copy", button.Find(node.KindIcon).Attr(node.AttrIcon))

	done := New().Render(sec, Controls{Copy: copied(true)})
	assert.Equal(t, "copied", done.Attr(node.AttrState))
	assert.Contains(t, done.Find(node.KindButton).PlainText(), CopiedLabel)
	assert.Equal(t, "check", done.Find(node.KindButton).Find(node.KindIcon).Attr(node.AttrIcon))

	untitled := New().Render(content.Section{Type: content.TypePrompt, Content: "ls"}, Controls{})
	assert.Nil(t, untitled.Find(node.KindHeader))
}

func TestTutorialStepMarker(t *testing.T) {
	t.Parallel()

	sec := content.Section{Type: content.TypeTutorialStep, StepNumber: 3, Title: "Install", Content: "Run the installer", Quote: "Tip"}

	pending := New().Render(sec, Controls{})
	assert.Equal(t, "step-3", pending.Key)
	marker := pending.Find(node.KindMarker)
	require.NotNil(t, marker)
	assert.Equal(t, "3", marker.PlainText())
	assert.True(t, marker.HasClass("bg-blue-500"))
	assert.Equal(t, MarkDoneLabel, pending.Find(node.KindButton).PlainText())
	assert.Equal(t, "Tip", pending.Find(node.KindBlockquote).PlainText())

	done := New().Render(sec, Controls{Step: stepDone(true)})
	marker = done.Find(node.KindMarker)
	assert.Equal(t, "✓", marker.PlainText())
	assert.True(t, marker.HasClass("bg-green-500"))
	assert.False(t, marker.HasClass("bg-blue-500"))
	assert.Contains(t, done.Find(node.KindButton).PlainText(), DoneLabel)
	assert.Equal(t, "done", done.Attr(node.AttrState))
}

func TestTutorialStepCheckedBeforeEverythingElse(t *testing.T) {
	t.Parallel()

	out := New().Render(content.Section{Type: content.TypeTutorialStep, Content: "#not a hashtag list"}, Controls{})
	assert.Equal(t, node.KindTutorialStep, out.Kind)
	assert.Equal(t, "•", out.Find(node.KindMarker).PlainText(), "missing step numbers fall back to a bullet")
	assert.Nil(t, out.Find(node.KindBlockquote))
}

// shape flattens a tree to kinds and text, ignoring colour classes.
func shape(n *node.Node) []string {
	var out []string
	n.Walk(func(c *node.Node) bool {
		out = append(out, string(c.Kind)+":"+c.Text)
		return true
	})
	return out
}
