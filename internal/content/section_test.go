package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownTypes(t *testing.T) {
	t.Parallel()

	types := KnownTypes()
	require.Len(t, types, 16)
	assert.Equal(t, TypeIntro, types[0])
	assert.Equal(t, TypeSecret, types[len(types)-1])

	types[0] = "mutated"
	assert.Equal(t, TypeIntro, KnownTypes()[0], "callers must not be able to edit the table")
}

func TestSectionTypeKnown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		typ   SectionType
		known bool
	}{
		{"tutorial step", TypeTutorialStep, true},
		{"author comment", "author-comment", true},
		{"unknown", "mystery", false},
		{"case sensitive", "Warning", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.known, tt.typ.Known())
		})
	}
}

func TestSectionInteractive(t *testing.T) {
	t.Parallel()

	assert.True(t, Section{Type: TypePrompt}.Interactive())
	assert.True(t, Section{Type: TypeTutorialStep}.Interactive())
	assert.False(t, Section{Type: TypeTip}.Interactive())
}

func TestDocumentVisibleDropsIntros(t *testing.T) {
	t.Parallel()

	doc := Document{Sections: []Section{
		{Type: TypeIntro, Content: "hello"},
		{Type: TypeTip, Content: "a"},
		{Type: TypeIntro, Content: "again"},
		{Type: TypeWarning, Content: "b"},
	}}

	visible := doc.Visible()
	require.Len(t, visible, 2)
	assert.Equal(t, TypeTip, visible[0].Type)
	assert.Equal(t, TypeWarning, visible[1].Type)
	assert.Len(t, doc.Sections, 4)
}
