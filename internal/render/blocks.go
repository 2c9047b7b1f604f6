package render

import (
	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/icons"
	"github.com/alexisbeaulieu97/folio/internal/markdown"
	"github.com/alexisbeaulieu97/folio/internal/node"
	"github.com/alexisbeaulieu97/folio/internal/styles"
)

// callout is the bordered block shared by the informational types and by
// any type this renderer does not know. It is the only markdown branch.
func (r *Renderer) callout(sec content.Section) *node.Node {
	style := styles.Resolved(sec.Type, sec.Icon)
	if !sec.Type.Known() {
		style = styles.Resolved(content.TypeSection, sec.Icon)
	}
	icon := iconNode(styles.Icon(sec.Type, sec.Icon), style.Accent.Class("text"))

	out := node.New(node.KindCallout).WithClass("callout", "border-l-4").WithClass(style.Classes()...)
	body := node.New(node.KindBody).WithAttr(node.AttrSource, sec.Content)

	if sec.Title != "" {
		out.Append(node.New(node.KindHeader, icon, node.New(node.KindTitle, node.TextNode(sec.Title))))
	} else {
		body.Append(icon)
	}
	body.Append(markdown.Parse(sec.Content)...)
	return out.Append(body)
}

func (r *Renderer) hashtags(sec content.Section) *node.Node {
	tags := Hashtags(sec.Content)
	if len(tags) == 0 {
		return nil
	}
	style := styles.For(content.TypeHashtags)
	out := node.New(node.KindBadges).WithClass("hashtags")
	for _, tag := range tags {
		out.Append(node.New(node.KindBadge, node.TextNode(tag)).
			WithClass("badge", style.Background.Class("bg"), style.Accent.Class("text")))
	}
	return out
}

func (r *Renderer) intro(sec content.Section) *node.Node {
	return node.New(node.KindParagraph, node.New(node.KindEmphasis, node.Lines(sec.Content)...)).
		WithClass("intro")
}

func (r *Renderer) cta(sec content.Section) *node.Node {
	style := styles.For(content.TypeCTA)
	return node.New(node.KindCard,
		sectionIcon(sec, style, "animate-pulse"),
		paragraph(sec.Content),
	).WithClass("cta", "text-center").WithClass(style.Classes()...)
}

func (r *Renderer) blockquote(sec content.Section) *node.Node {
	style := styles.For(sec.Type)
	para := node.New(node.KindParagraph, sectionIcon(sec, style)).Append(node.Lines(sec.Content)...)
	return node.New(node.KindBlockquote, para).
		WithClass("border-l-4", style.Border.Class("border"), style.Background.Class("bg"))
}

func (r *Renderer) authorComment(sec content.Section) *node.Node {
	style := styles.For(content.TypeAuthorComment)
	title := sec.Title
	if title == "" {
		title = r.authorNoteTitle
	}
	return node.New(node.KindCallout,
		node.New(node.KindHeader, sectionIcon(sec, style), node.New(node.KindTitle, node.TextNode(title))),
		node.New(node.KindBody, paragraph(sec.Content, "text-sm", "text-muted")),
	).WithClass("callout", "author-comment").WithClass(style.Classes()...)
}

func (r *Renderer) secret(sec content.Section) *node.Node {
	style := styles.For(content.TypeSecret)
	label := node.New(node.KindLabel,
		iconNode(icons.Lookup(icons.Lock), style.Accent.Class("text")),
		node.TextNode(r.secretLabel),
	).WithClass("uppercase", style.Accent.Class("text"))
	line := node.New(node.KindParagraph,
		node.New(node.KindEmphasis, node.TextNode(`"`+sec.Content+`"`)),
	).WithClass("italic")
	return node.New(node.KindCard, label, line).WithClass("secret").WithClass(style.Classes()...)
}

func (r *Renderer) image(sec content.Section) *node.Node {
	img := node.New(node.KindImage).
		WithAttr(node.AttrSrc, sec.Content).
		WithAttr(node.AttrAlt, sec.Title)
	var caption *node.Node
	if sec.Title != "" {
		caption = node.New(node.KindCaption, node.New(node.KindEmphasis, node.TextNode(sec.Title))).WithClass("italic")
	}
	return node.New(node.KindFigure, img, caption)
}
