// Package node is the backend-neutral presentation tree produced by the
// section renderer and consumed by the HTML, terminal and JSON backends.
package node

import "strings"

// Kind names what a node represents.
type Kind string

const (
	KindDocument     Kind = "document"
	KindCallout      Kind = "callout"
	KindHeader       Kind = "header"
	KindBody         Kind = "body"
	KindParagraph    Kind = "paragraph"
	KindText         Kind = "text"
	KindBreak        Kind = "break"
	KindIcon         Kind = "icon"
	KindTitle        Kind = "title"
	KindBadges       Kind = "badges"
	KindBadge        Kind = "badge"
	KindCard         Kind = "card"
	KindLabel        Kind = "label"
	KindBlockquote   Kind = "blockquote"
	KindFigure       Kind = "figure"
	KindImage        Kind = "image"
	KindCaption      Kind = "caption"
	KindCopyBlock    Kind = "copy-block"
	KindCodeBlock    Kind = "code-block"
	KindButton       Kind = "button"
	KindTutorialStep Kind = "tutorial-step"
	KindMarker       Kind = "marker"
	KindList         Kind = "list"
	KindListItem     Kind = "list-item"
	KindLink         Kind = "link"
	KindCode         Kind = "code"
	KindStrong       Kind = "strong"
	KindEmphasis     Kind = "emphasis"
	KindStrike       Kind = "strike"
	KindHeading      Kind = "heading"
	KindRule         Kind = "rule"
	KindError        Kind = "error"
)

// Well-known attribute names.
const (
	AttrType    = "data-type"
	AttrSrc     = "src"
	AttrAlt     = "alt"
	AttrHref    = "href"
	AttrTitle   = "title"
	AttrAction  = "data-action"
	AttrState   = "data-state"
	AttrIcon    = "data-icon"
	AttrLevel   = "level"
	AttrOrdered = "ordered"
	AttrStart   = "start"
	AttrSource  = "data-source"
	AttrChecked = "checked"
	AttrLang    = "lang"
)

// Node is one element of a presentation tree.
type Node struct {
	Kind     Kind              `json:"kind"`
	Key      string            `json:"key,omitempty"`
	Text     string            `json:"text,omitempty"`
	Classes  []string          `json:"classes,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Children []*Node           `json:"children,omitempty"`
}

// New builds a node; nil children are dropped.
func New(kind Kind, children ...*Node) *Node {
	n := &Node{Kind: kind}
	return n.Append(children...)
}

// TextNode builds a leaf holding literal text.
func TextNode(text string) *Node {
	return &Node{Kind: KindText, Text: text}
}

// Append adds children, skipping nils.
func (n *Node) Append(children ...*Node) *Node {
	for _, child := range children {
		if child != nil {
			n.Children = append(n.Children, child)
		}
	}
	return n
}

// WithClass adds class tokens, skipping empty ones.
func (n *Node) WithClass(classes ...string) *Node {
	for _, class := range classes {
		if class != "" {
			n.Classes = append(n.Classes, class)
		}
	}
	return n
}

// WithAttr sets an attribute.
func (n *Node) WithAttr(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
	return n
}

// WithKey sets the stable identity used by hosts to keep per-node state.
func (n *Node) WithKey(key string) *Node {
	n.Key = key
	return n
}

// WithText sets the literal text of the node.
func (n *Node) WithText(text string) *Node {
	n.Text = text
	return n
}

// Attr returns an attribute value or "".
func (n *Node) Attr(key string) string {
	if n == nil {
		return ""
	}
	return n.Attrs[key]
}

// HasClass reports whether the node carries the class token.
func (n *Node) HasClass(class string) bool {
	if n == nil {
		return false
	}
	for _, c := range n.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// Walk visits n and its descendants depth first. Returning false from fn
// skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Find returns the first node in depth-first order with the given kind.
func (n *Node) Find(kind Kind) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.Kind == kind {
			found = c
			return false
		}
		return true
	})
	return found
}

// FindAll returns every node of the given kind in depth-first order.
func (n *Node) FindAll(kind Kind) []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		if c.Kind == kind {
			out = append(out, c)
		}
		return true
	})
	return out
}

// PlainText flattens the subtree to text. Breaks become newlines.
func (n *Node) PlainText() string {
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n *Node) writeText(b *strings.Builder) {
	if n == nil {
		return
	}
	if n.Kind == KindBreak {
		b.WriteByte('\n')
		return
	}
	b.WriteString(n.Text)
	for _, child := range n.Children {
		child.writeText(b)
	}
}

// Clone returns a deep copy.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{Kind: n.Kind, Key: n.Key, Text: n.Text}
	if n.Classes != nil {
		out.Classes = append([]string(nil), n.Classes...)
	}
	if n.Attrs != nil {
		out.Attrs = make(map[string]string, len(n.Attrs))
		for k, v := range n.Attrs {
			out.Attrs[k] = v
		}
	}
	for _, child := range n.Children {
		out.Children = append(out.Children, child.Clone())
	}
	return out
}

// Lines turns text into text nodes separated by breaks, preserving every
// embedded line break. Empty text yields no nodes.
func Lines(text string) []*Node {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, "\n")
	out := make([]*Node, 0, len(parts)*2-1)
	for i, part := range parts {
		if i > 0 {
			out = append(out, New(KindBreak))
		}
		if part != "" {
			out = append(out, TextNode(part))
		}
	}
	return out
}
