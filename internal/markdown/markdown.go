// Package markdown converts section bodies to presentation nodes. goldmark
// does the parsing; malformed input degrades to literal text, never an error.
package markdown

import (
	"strconv"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/alexisbeaulieu97/folio/internal/node"
)

// The parser configuration never changes and goldmark parsers are safe to
// share; per-call state lives in the reader.
var (
	parserInstance goldmark.Markdown
	parserOnce     sync.Once
)

func parser() goldmark.Markdown {
	parserOnce.Do(func() {
		parserInstance = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})
	return parserInstance
}

// Parse converts markdown source into block-level nodes.
func Parse(source string) []*node.Node {
	if strings.TrimSpace(source) == "" {
		return nil
	}
	src := []byte(source)
	doc := parser().Parser().Parse(text.NewReader(src))
	c := converter{src: src}
	return c.children(doc)
}

type converter struct {
	src []byte
}

func (c converter) children(parent ast.Node) []*node.Node {
	var out []*node.Node
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		out = append(out, c.convert(child)...)
	}
	return out
}

func (c converter) lines(n ast.Node) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		b.Write(segment.Value(c.src))
	}
	return b.String()
}

func (c converter) convert(n ast.Node) []*node.Node {
	switch n := n.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		return one(node.New(node.KindParagraph, c.children(n)...))

	case *ast.Heading:
		return one(node.New(node.KindHeading, c.children(n)...).
			WithAttr(node.AttrLevel, strconv.Itoa(n.Level)))

	case *ast.List:
		list := node.New(node.KindList, c.children(n)...)
		if n.IsOrdered() {
			list.WithAttr(node.AttrOrdered, "true").WithAttr(node.AttrStart, strconv.Itoa(n.Start))
		}
		return one(list)

	case *ast.ListItem:
		return one(node.New(node.KindListItem, c.children(n)...))

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		code := strings.TrimRight(c.lines(n), "\n")
		block := node.New(node.KindCodeBlock).WithText(code)
		if fenced, ok := n.(*ast.FencedCodeBlock); ok {
			if lang := string(fenced.Language(c.src)); lang != "" {
				block.WithAttr(node.AttrLang, lang)
			}
		}
		return one(block)

	case *ast.Blockquote:
		return one(node.New(node.KindBlockquote, c.children(n)...))

	case *ast.ThematicBreak:
		return one(node.New(node.KindRule))

	case *ast.HTMLBlock:
		raw := strings.TrimRight(c.lines(n), "\n")
		if n.HasClosure() {
			raw += string(n.ClosureLine.Value(c.src))
		}
		return one(node.New(node.KindParagraph, node.Lines(raw)...))

	case *ast.Text:
		value := n.Segment.Value(c.src)
		if !n.IsRaw() {
			value = unescape(value)
		}
		out := []*node.Node{node.TextNode(string(value))}
		switch {
		case n.HardLineBreak():
			out = append(out, node.New(node.KindBreak))
		case n.SoftLineBreak():
			out[0].Text += " "
		}
		return out

	case *ast.String:
		return one(node.TextNode(string(n.Value)))

	case *ast.CodeSpan:
		var b strings.Builder
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			switch child := child.(type) {
			case *ast.Text:
				b.Write(child.Segment.Value(c.src))
			case *ast.String:
				b.Write(child.Value)
			}
		}
		return one(node.New(node.KindCode).WithText(b.String()))

	case *ast.Emphasis:
		kind := node.KindEmphasis
		if n.Level >= 2 {
			kind = node.KindStrong
		}
		return one(node.New(kind, c.children(n)...))

	case *ast.Link:
		if !SafeURL(string(n.Destination)) {
			return c.children(n)
		}
		link := node.New(node.KindLink, c.children(n)...).WithAttr(node.AttrHref, string(n.Destination))
		if len(n.Title) > 0 {
			link.WithAttr(node.AttrTitle, string(n.Title))
		}
		return one(link)

	case *ast.AutoLink:
		label := string(n.Label(c.src))
		href := string(n.URL(c.src))
		if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(strings.ToLower(href), "mailto:") {
			href = "mailto:" + href
		}
		if !SafeURL(href) {
			return one(node.TextNode(label))
		}
		return one(node.New(node.KindLink, node.TextNode(label)).WithAttr(node.AttrHref, href))

	case *ast.Image:
		alt := node.New(node.KindText, c.children(n)...).PlainText()
		if !SafeURL(string(n.Destination)) {
			if alt == "" {
				return nil
			}
			return one(node.TextNode(alt))
		}
		return one(node.New(node.KindImage).
			WithAttr(node.AttrSrc, string(n.Destination)).
			WithAttr(node.AttrAlt, alt))

	case *ast.RawHTML:
		var b strings.Builder
		for i := 0; i < n.Segments.Len(); i++ {
			segment := n.Segments.At(i)
			b.Write(segment.Value(c.src))
		}
		return one(node.TextNode(b.String()))

	case *extast.Strikethrough:
		return one(node.New(node.KindStrike, c.children(n)...))

	case *extast.TaskCheckBox:
		box := "[ ] "
		if n.IsChecked {
			box = "[x] "
		}
		return one(node.TextNode(box).WithAttr(node.AttrChecked, strconv.FormatBool(n.IsChecked)))

	case *extast.Table:
		return c.table(n)

	default:
		return c.children(n)
	}
}

// table flattens a GFM table into one paragraph per row, cells separated by pipes.
func (c converter) table(t *extast.Table) []*node.Node {
	var out []*node.Node
	for row := t.FirstChild(); row != nil; row = row.NextSibling() {
		para := node.New(node.KindParagraph)
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			if cell != row.FirstChild() {
				para.Append(node.TextNode(" | "))
			}
			para.Append(c.children(cell)...)
		}
		if row.Kind() == extast.KindTableHeader {
			para = node.New(node.KindParagraph, node.New(node.KindStrong, para.Children...))
		}
		out = append(out, para)
	}
	return out
}

// SafeURL reports whether url may be used as a link or image destination.
// Script schemes, file URLs and non-image data URLs are refused.
func SafeURL(url string) bool {
	return !gmhtml.IsDangerousURL([]byte(strings.TrimSpace(url)))
}

// unescape resolves backslash escapes and character references in text.
func unescape(value []byte) []byte {
	value = util.UnescapePunctuations(value)
	value = util.ResolveNumericReferences(value)
	return util.ResolveEntityNames(value)
}

func one(n *node.Node) []*node.Node {
	return []*node.Node{n}
}
