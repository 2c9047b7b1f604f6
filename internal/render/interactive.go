package render

import (
	"fmt"
	"strconv"

	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/icons"
	"github.com/alexisbeaulieu97/folio/internal/node"
	"github.com/alexisbeaulieu97/folio/internal/styles"
)

// Button labels and actions hosts dispatch on.
const (
	CopyLabel     = "Copy"
	CopiedLabel   = "Copied!"
	MarkDoneLabel = "Mark as done"
	DoneLabel     = "Done"

	ActionCopy       = "copy"
	ActionToggleStep = "toggle-step"
)

// StepKey is the stable key of a tutorial step node.
func StepKey(stepNumber int) string {
	return fmt.Sprintf("step-%d", stepNumber)
}

func (r *Renderer) tutorialStep(sec content.Section, done bool) *node.Node {
	style := styles.For(content.TypeTutorialStep)

	var marker *node.Node
	state := "pending"
	if done {
		state = "done"
		marker = node.New(node.KindMarker, iconNode(icons.Lookup(icons.Check))).
			WithClass("marker", styles.StepDone.Class("bg"))
	} else {
		label := "•"
		if sec.StepNumber > 0 {
			label = strconv.Itoa(sec.StepNumber)
		}
		marker = node.New(node.KindMarker, node.TextNode(label)).
			WithClass("marker", styles.StepPending.Class("bg"))
	}

	header := node.New(node.KindHeader, marker)
	if sec.Title != "" {
		header.Append(node.New(node.KindTitle, node.TextNode(sec.Title)))
	}

	var quote *node.Node
	if sec.Quote != "" {
		quote = node.New(node.KindBlockquote, paragraph(sec.Quote)).
			WithClass("border-l-4", style.Border.Class("border"))
	}

	button := node.New(node.KindButton).
		WithAttr(node.AttrAction, ActionToggleStep).
		WithAttr(node.AttrState, state)
	if done {
		button.Append(iconNode(icons.Lookup(icons.Check)), node.TextNode(DoneLabel)).
			WithClass(styles.StepDone.Class("bg"))
	} else {
		button.Append(node.TextNode(MarkDoneLabel)).
			WithClass(styles.StepPending.Class("bg"))
	}

	return node.New(node.KindTutorialStep,
		header,
		quote,
		node.New(node.KindBody, paragraph(sec.Content)),
		button,
	).
		WithKey(StepKey(sec.StepNumber)).
		WithAttr(node.AttrState, state).
		WithClass("tutorial-step").
		WithClass(style.Classes()...)
}

func (r *Renderer) copyBlock(sec content.Section, copied bool) *node.Node {
	style := styles.For(content.TypePrompt)

	var header *node.Node
	if sec.Title != "" {
		header = node.New(node.KindHeader,
			sectionIcon(sec, style),
			node.New(node.KindTitle, node.TextNode(sec.Title)),
		)
	}

	state := "idle"
	button := node.New(node.KindButton).WithAttr(node.AttrAction, ActionCopy)
	if copied {
		state = "copied"
		button.Append(iconNode(icons.Lookup(icons.Check)), node.TextNode(CopiedLabel))
	} else {
		button.Append(iconNode(icons.Lookup(icons.Copy)), node.TextNode(CopyLabel))
	}
	button.WithAttr(node.AttrState, state)

	code := node.New(node.KindCodeBlock).
		WithText(sec.Content).
		WithClass("font-mono", style.Accent.Class("text"))

	return node.New(node.KindCopyBlock, header, code, button).
		WithAttr(node.AttrState, state).
		WithClass("copy-block").
		WithClass(style.Classes()...)
}
