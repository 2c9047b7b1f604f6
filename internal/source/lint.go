package source

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/icons"
	"github.com/alexisbeaulieu97/folio/internal/render"
)

// Warning is a problem that does not stop a document from rendering.
type Warning struct {
	Index   int
	Field   string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("sections[%d].%s: %s", w.Index, w.Field, w.Message)
}

// Lint reports authoring mistakes the renderer silently tolerates.
func Lint(doc content.Document) []Warning {
	var warnings []Warning
	add := func(index int, field, format string, args ...any) {
		warnings = append(warnings, Warning{Index: index, Field: field, Message: fmt.Sprintf(format, args...)})
	}

	lastStep := 0
	for i, sec := range doc.Sections {
		if !sec.Type.Known() {
			if known, ok := respelled(sec.Type); ok {
				add(i, "type", "unknown section type %q renders as a plain callout (did you mean %q?)", sec.Type, known)
			} else {
				add(i, "type", "unknown section type %q renders as a plain callout", sec.Type)
			}
		}
		if sec.Icon != "" && !icons.Known(sec.Icon) {
			add(i, "icon", "unknown icon %q falls back to the type default", sec.Icon)
		}

		switch sec.Type {
		case content.TypeTutorialStep:
			switch {
			case sec.StepNumber <= 0:
				add(i, "stepNumber", "tutorial step has no step number")
			case sec.StepNumber <= lastStep:
				add(i, "stepNumber", "step %d does not follow step %d", sec.StepNumber, lastStep)
			}
			if sec.StepNumber > lastStep {
				lastStep = sec.StepNumber
			}
		case content.TypeHashtags:
			if len(render.Hashtags(sec.Content)) == 0 {
				add(i, "content", "hashtag section contains no #tags and will not be shown")
			}
		case content.TypeImage:
			if strings.TrimSpace(sec.Content) == "" {
				add(i, "content", "image section has no source URL")
			}
		default:
			if sec.Quote != "" {
				add(i, "quote", "quote is only shown on tutorial steps")
			}
			if sec.StepNumber != 0 {
				add(i, "stepNumber", "step numbers are only shown on tutorial steps")
			}
		}

		if sec.Type != content.TypeImage && sec.Type != content.TypeHashtags && strings.TrimSpace(sec.Content) == "" {
			add(i, "content", "section has no content")
		}
	}
	return warnings
}

// respelled matches t against the known types ignoring case, surrounding
// spaces and underscores used in place of hyphens.
func respelled(t content.SectionType) (content.SectionType, bool) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(string(t))), "_", "-")
	for _, known := range content.KnownTypes() {
		if string(known) == normalized {
			return known, true
		}
	}
	return "", false
}
