// Package html writes presentation trees as HTML fragments or pages.
package html

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alexisbeaulieu97/folio/internal/markdown"
	"github.com/alexisbeaulieu97/folio/internal/node"
)

var tags = map[node.Kind]atom.Atom{
	node.KindDocument:     atom.Article,
	node.KindCallout:      atom.Aside,
	node.KindHeader:       atom.Header,
	node.KindBody:         atom.Div,
	node.KindParagraph:    atom.P,
	node.KindIcon:         atom.Span,
	node.KindTitle:        atom.H3,
	node.KindBadges:       atom.Div,
	node.KindBadge:        atom.Span,
	node.KindCard:         atom.Div,
	node.KindLabel:        atom.Span,
	node.KindBlockquote:   atom.Blockquote,
	node.KindFigure:       atom.Figure,
	node.KindImage:        atom.Img,
	node.KindCaption:      atom.Figcaption,
	node.KindCopyBlock:    atom.Div,
	node.KindButton:       atom.Button,
	node.KindTutorialStep: atom.Section,
	node.KindMarker:       atom.Span,
	node.KindListItem:     atom.Li,
	node.KindLink:         atom.A,
	node.KindCode:         atom.Code,
	node.KindStrong:       atom.Strong,
	node.KindEmphasis:     atom.Em,
	node.KindStrike:       atom.Del,
	node.KindRule:         atom.Hr,
	node.KindBreak:        atom.Br,
	node.KindError:        atom.Div,
}

// Attributes that only steer tag selection.
var structural = map[string]bool{
	node.AttrLevel:   true,
	node.AttrOrdered: true,
}

// Convert builds the x/net/html tree for n.
func Convert(n *node.Node) *html.Node {
	if n == nil {
		return nil
	}
	if n.Kind == node.KindText {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}

	el := element(tagFor(n))
	setAttrs(el, n)

	switch n.Kind {
	case node.KindCodeBlock:
		code := element(atom.Code)
		if lang := n.Attr(node.AttrLang); lang != "" {
			code.Attr = append(code.Attr, html.Attribute{Key: "class", Val: "language-" + lang})
		}
		code.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text})
		el.AppendChild(code)
		return el
	case node.KindIcon:
		el.Attr = append(el.Attr, html.Attribute{Key: "aria-hidden", Val: "true"})
	case node.KindButton:
		el.Attr = append(el.Attr, html.Attribute{Key: "type", Val: "button"})
	case node.KindError:
		el.Attr = append(el.Attr, html.Attribute{Key: "role", Val: "alert"})
	case node.KindList:
		if n.Attr(node.AttrOrdered) == "true" {
			if start := n.Attr(node.AttrStart); start != "" && start != "1" {
				el.Attr = append(el.Attr, html.Attribute{Key: "start", Val: start})
			}
		}
	}

	if isVoid(el.DataAtom) {
		return el
	}
	if n.Text != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text})
	}
	for _, child := range n.Children {
		if converted := Convert(child); converted != nil {
			el.AppendChild(converted)
		}
	}
	return el
}

func tagFor(n *node.Node) atom.Atom {
	switch n.Kind {
	case node.KindCodeBlock:
		return atom.Pre
	case node.KindList:
		if n.Attr(node.AttrOrdered) == "true" {
			return atom.Ol
		}
		return atom.Ul
	case node.KindHeading:
		return headingAtom(n.Attr(node.AttrLevel))
	}
	if a, ok := tags[n.Kind]; ok {
		return a
	}
	return atom.Div
}

func headingAtom(level string) atom.Atom {
	n, err := strconv.Atoi(level)
	if err != nil {
		n = 2
	}
	switch {
	case n <= 1:
		return atom.H1
	case n == 2:
		return atom.H2
	case n == 3:
		return atom.H3
	case n == 4:
		return atom.H4
	case n == 5:
		return atom.H5
	default:
		return atom.H6
	}
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func isVoid(a atom.Atom) bool {
	return a == atom.Img || a == atom.Br || a == atom.Hr
}

func setAttrs(el *html.Node, n *node.Node) {
	if n.Key != "" {
		el.Attr = append(el.Attr, html.Attribute{Key: "data-key", Val: n.Key})
	}
	classes := append([]string{"folio-" + string(n.Kind)}, n.Classes...)
	el.Attr = append(el.Attr, html.Attribute{Key: "class", Val: strings.Join(classes, " ")})

	keys := make([]string, 0, len(n.Attrs))
	for key := range n.Attrs {
		if !structural[key] {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		if n.Kind == node.KindCodeBlock && key == node.AttrLang {
			continue
		}
		if (key == node.AttrHref || key == node.AttrSrc) && !markdown.SafeURL(n.Attrs[key]) {
			continue
		}
		el.Attr = append(el.Attr, html.Attribute{Key: key, Val: n.Attrs[key]})
	}
}

// Render writes the fragment for tree.
func Render(w io.Writer, tree *node.Node) error {
	root := Convert(tree)
	if root == nil {
		return nil
	}
	if err := html.Render(w, root); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// RenderPage writes a complete HTML document with tree as its body.
func RenderPage(w io.Writer, title string, tree *node.Node) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html)
	root.Attr = []html.Attribute{{Key: "lang", Val: "en"}}
	doc.AppendChild(root)

	head := element(atom.Head)
	meta := element(atom.Meta)
	meta.Attr = []html.Attribute{{Key: "charset", Val: "utf-8"}}
	head.AppendChild(meta)
	titleEl := element(atom.Title)
	titleEl.AppendChild(&html.Node{Type: html.TextNode, Data: title})
	head.AppendChild(titleEl)
	root.AppendChild(head)

	body := element(atom.Body)
	if converted := Convert(tree); converted != nil {
		body.AppendChild(converted)
	}
	root.AppendChild(body)

	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("render html page: %w", err)
	}
	return nil
}
