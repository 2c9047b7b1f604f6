// Package icons holds the closed icon vocabulary sections may name.
package icons

import (
	"sort"
	"strings"
	"unicode"
)

// Name is a canonical icon name such as "AlertTriangle".
type Name string

const (
	AlertTriangle Name = "AlertTriangle"
	AlertCircle   Name = "AlertCircle"
	AlertOctagon  Name = "AlertOctagon"
	Info          Name = "Info"
	HelpCircle    Name = "HelpCircle"
	Lightbulb     Name = "Lightbulb"
	TrendingUp    Name = "TrendingUp"
	TrendingDown  Name = "TrendingDown"
	Check         Name = "Check"
	CheckCircle   Name = "CheckCircle"
	X             Name = "X"
	XCircle       Name = "XCircle"
	Copy          Name = "Copy"
	Clipboard     Name = "Clipboard"
	Quote         Name = "Quote"
	Lock          Name = "Lock"
	Unlock        Name = "Unlock"
	Key           Name = "Key"
	Eye           Name = "Eye"
	EyeOff        Name = "EyeOff"
	BookOpen      Name = "BookOpen"
	Book          Name = "Book"
	FileText      Name = "FileText"
	Smile         Name = "Smile"
	Frown         Name = "Frown"
	Laugh         Name = "Laugh"
	MessageCircle Name = "MessageCircle"
	MessageSquare Name = "MessageSquare"
	Megaphone     Name = "Megaphone"
	Rocket        Name = "Rocket"
	Hash          Name = "Hash"
	Tag           Name = "Tag"
	Terminal      Name = "Terminal"
	Code          Name = "Code"
	Command       Name = "Command"
	PenTool       Name = "PenTool"
	Edit          Name = "Edit"
	Feather       Name = "Feather"
	Image         Name = "Image"
	Camera        Name = "Camera"
	BarChart      Name = "BarChart"
	PieChart      Name = "PieChart"
	LineChart     Name = "LineChart"
	Activity      Name = "Activity"
	ListChecks    Name = "ListChecks"
	List          Name = "List"
	Zap           Name = "Zap"
	Heart         Name = "Heart"
	Flame         Name = "Flame"
	Star          Name = "Star"
	ShieldAlert   Name = "ShieldAlert"
	Shield        Name = "Shield"
	Target        Name = "Target"
	DollarSign    Name = "DollarSign"
	Sparkles      Name = "Sparkles"
	Brain         Name = "Brain"
	Globe         Name = "Globe"
	Link          Name = "Link"
	Clock         Name = "Clock"
	Calendar      Name = "Calendar"
	Coffee        Name = "Coffee"
	Trophy        Name = "Trophy"
	ThumbsUp      Name = "ThumbsUp"
	ThumbsDown    Name = "ThumbsDown"
	Users         Name = "Users"
	User          Name = "User"
	Bell          Name = "Bell"
	Bookmark      Name = "Bookmark"
	Flag          Name = "Flag"
	Gift          Name = "Gift"
	Wrench        Name = "Wrench"
	Settings      Name = "Settings"
	ArrowRight    Name = "ArrowRight"
	ExternalLink  Name = "ExternalLink"
	Download      Name = "Download"
	Search        Name = "Search"
)

// Icon is a resolved vocabulary entry. The zero Icon means "no icon".
type Icon struct {
	Name  Name
	Glyph string
	Slug  string
}

// IsNone reports whether the icon is the absent icon.
func (i Icon) IsNone() bool {
	return i.Name == ""
}

var glyphs = map[Name]string{
	AlertTriangle: "⚠",
	AlertCircle:   "⊘",
	AlertOctagon:  "⛔",
	Info:          "ℹ",
	HelpCircle:    "?",
	Lightbulb:     "💡",
	TrendingUp:    "↗",
	TrendingDown:  "↘",
	Check:         "✓",
	CheckCircle:   "✔",
	X:             "✗",
	XCircle:       "⊗",
	Copy:          "⧉",
	Clipboard:     "📋",
	Quote:         "❝",
	Lock:          "🔒",
	Unlock:        "🔓",
	Key:           "🔑",
	Eye:           "👁",
	EyeOff:        "◌",
	BookOpen:      "📖",
	Book:          "📘",
	FileText:      "📄",
	Smile:         "☺",
	Frown:         "☹",
	Laugh:         "😄",
	MessageCircle: "💬",
	MessageSquare: "🗨",
	Megaphone:     "📣",
	Rocket:        "🚀",
	Hash:          "#",
	Tag:           "🏷",
	Terminal:      "❯",
	Code:          "⌨",
	Command:       "⌘",
	PenTool:       "✒",
	Edit:          "✎",
	Feather:       "🪶",
	Image:         "🖼",
	Camera:        "📷",
	BarChart:      "▇",
	PieChart:      "◔",
	LineChart:     "📈",
	Activity:      "〰",
	ListChecks:    "☑",
	List:          "≡",
	Zap:           "⚡",
	Heart:         "♥",
	Flame:         "🔥",
	Star:          "★",
	ShieldAlert:   "⛨",
	Shield:        "🛡",
	Target:        "◎",
	DollarSign:    "$",
	Sparkles:      "✨",
	Brain:         "🧠",
	Globe:         "🌐",
	Link:          "🔗",
	Clock:         "⏱",
	Calendar:      "📅",
	Coffee:        "☕",
	Trophy:        "🏆",
	ThumbsUp:      "👍",
	ThumbsDown:    "👎",
	Users:         "👥",
	User:          "👤",
	Bell:          "🔔",
	Bookmark:      "🔖",
	Flag:          "⚑",
	Gift:          "🎁",
	Wrench:        "🔧",
	Settings:      "⚙",
	ArrowRight:    "→",
	ExternalLink:  "↗",
	Download:      "⬇",
	Search:        "🔍",
}

// folded maps a lower-case, separator-free spelling to its canonical name.
var folded = func() map[string]Name {
	m := make(map[string]Name, len(glyphs))
	for name := range glyphs {
		m[fold(string(name))] = name
	}
	return m
}()

func fold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '-' || r == '_' || r == ' ':
			continue
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// Resolve maps a symbolic name to an icon. Exact canonical names match first;
// kebab-case and lower-case spellings are accepted as a fallback. Unknown
// names yield the zero Icon.
func Resolve(name string) Icon {
	if name == "" {
		return Icon{}
	}
	if icon := Lookup(Name(name)); !icon.IsNone() {
		return icon
	}
	if canonical, ok := folded[fold(name)]; ok {
		return Lookup(canonical)
	}
	return Icon{}
}

// Lookup returns the icon for a canonical name, or the zero Icon.
func Lookup(name Name) Icon {
	glyph, ok := glyphs[name]
	if !ok {
		return Icon{}
	}
	return Icon{Name: name, Glyph: glyph, Slug: Slug(name)}
}

// Known reports whether name resolves to an icon.
func Known(name string) bool {
	return !Resolve(name).IsNone()
}

// Names lists the vocabulary in sorted order.
func Names() []Name {
	out := make([]Name, 0, len(glyphs))
	for name := range glyphs {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Slug converts a canonical name to kebab-case: "AlertTriangle" -> "alert-triangle".
func Slug(name Name) string {
	var b strings.Builder
	for i, r := range string(name) {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
