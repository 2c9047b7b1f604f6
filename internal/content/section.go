// Package content defines the section model shared by every part of folio:
// a document is an ordered list of typed sections.
package content

// SectionType is the discriminant of a section. Values outside KnownTypes are
// carried verbatim and rendered with the generic callout presentation.
type SectionType string

const (
	TypeIntro         SectionType = "intro"
	TypeSection       SectionType = "section"
	TypeSarcasm       SectionType = "sarcasm"
	TypeWarning       SectionType = "warning"
	TypeTip           SectionType = "tip"
	TypeFact          SectionType = "fact"
	TypeOpinion       SectionType = "opinion"
	TypeQuote         SectionType = "quote"
	TypeCTA           SectionType = "cta"
	TypeHashtags      SectionType = "hashtags"
	TypePrompt        SectionType = "prompt"
	TypeAuthorComment SectionType = "author-comment"
	TypeImage         SectionType = "image"
	TypeGraph         SectionType = "graph"
	TypeTutorialStep  SectionType = "tutorial-step"
	TypeSecret        SectionType = "secret"
)

var knownTypes = []SectionType{
	TypeIntro,
	TypeSection,
	TypeSarcasm,
	TypeWarning,
	TypeTip,
	TypeFact,
	TypeOpinion,
	TypeQuote,
	TypeCTA,
	TypeHashtags,
	TypePrompt,
	TypeAuthorComment,
	TypeImage,
	TypeGraph,
	TypeTutorialStep,
	TypeSecret,
}

// KnownTypes returns the recognised section types in declaration order.
func KnownTypes() []SectionType {
	out := make([]SectionType, len(knownTypes))
	copy(out, knownTypes)
	return out
}

// Known reports whether t is one of the recognised section types.
func (t SectionType) Known() bool {
	for _, known := range knownTypes {
		if t == known {
			return true
		}
	}
	return false
}

func (t SectionType) String() string {
	return string(t)
}

// Section is one block of a document. Quote and StepNumber only carry
// meaning for tutorial steps.
type Section struct {
	Type       SectionType `json:"type" yaml:"type"`
	Content    string      `json:"content" yaml:"content"`
	Title      string      `json:"title,omitempty" yaml:"title,omitempty"`
	Icon       string      `json:"icon,omitempty" yaml:"icon,omitempty"`
	Quote      string      `json:"quote,omitempty" yaml:"quote,omitempty"`
	StepNumber int         `json:"stepNumber,omitempty" yaml:"stepNumber,omitempty"`
}

// Interactive reports whether the section owns per-view state.
func (s Section) Interactive() bool {
	return s.Type == TypeTutorialStep || s.Type == TypePrompt
}

// Kind classifies the document a section list belongs to. It is informational only.
type Kind string

const (
	KindPost    Kind = "post"
	KindArticle Kind = "article"
	KindPrompt  Kind = "prompt"
)

// Document is a post, article or prompt page. Only order relates its sections.
type Document struct {
	ID       string    `json:"id,omitempty" yaml:"id,omitempty"`
	Title    string    `json:"title,omitempty" yaml:"title,omitempty"`
	Slug     string    `json:"slug,omitempty" yaml:"slug,omitempty"`
	Excerpt  string    `json:"excerpt,omitempty" yaml:"excerpt,omitempty"`
	Kind     Kind      `json:"kind,omitempty" yaml:"kind,omitempty"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// Visible returns the sections a reader sees: everything except intros,
// which are shown elsewhere as an excerpt.
func (d Document) Visible() []Section {
	out := make([]Section, 0, len(d.Sections))
	for _, sec := range d.Sections {
		if sec.Type == TypeIntro {
			continue
		}
		out = append(out, sec)
	}
	return out
}
