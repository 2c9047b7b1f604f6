package source

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/folio/internal/content"
	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

func openDB(t *testing.T) *SQLSource {
	t.Helper()

	src, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "folio.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = src.Close() })
	return src
}

func TestSQLRoundTripKeepsOrder(t *testing.T) {
	t.Parallel()

	src := openDB(t)
	ctx := context.Background()

	doc := content.Document{
		ID:    "shell",
		Title: "Shell basics",
		Kind:  content.KindArticle,
		Sections: []content.Section{
			{Type: content.TypeTutorialStep, StepNumber: 3, Title: "Third", Content: "c", Quote: "q"},
			{Type: content.TypeTutorialStep, StepNumber: 1, Title: "First", Content: "a"},
			{Type: content.TypePrompt, Content: "echo hi"},
			{Type: "banner", Icon: "Rocket", Content: "unknown types survive storage"},
		},
	}
	require.NoError(t, src.Save(ctx, doc))

	loaded, err := src.Load(ctx, "shell")
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)
}

func TestSQLSaveReplaces(t *testing.T) {
	t.Parallel()

	src := openDB(t)
	ctx := context.Background()

	require.NoError(t, src.Save(ctx, content.Document{ID: "a", Title: "one", Sections: []content.Section{
		{Type: content.TypeTip, Content: "x"},
		{Type: content.TypeTip, Content: "y"},
	}}))
	require.NoError(t, src.Save(ctx, content.Document{ID: "a", Title: "two", Sections: []content.Section{
		{Type: content.TypeFact, Content: "z"},
	}}))

	loaded, err := src.Load(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "two", loaded.Title)
	require.Len(t, loaded.Sections, 1)
	assert.Equal(t, content.TypeFact, loaded.Sections[0].Type)
}

func TestSQLList(t *testing.T) {
	t.Parallel()

	src := openDB(t)
	ctx := context.Background()
	require.NoError(t, src.Save(ctx, content.Document{ID: "b", Title: "B", Kind: content.KindPost, Sections: []content.Section{}}))
	require.NoError(t, src.Save(ctx, content.Document{ID: "a", Title: "A", Kind: content.KindPrompt, Sections: []content.Section{}}))

	list, err := src.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Summary{
		{ID: "a", Title: "A", Kind: content.KindPrompt},
		{ID: "b", Title: "B", Kind: content.KindPost},
	}, list)
}

func TestSQLErrors(t *testing.T) {
	t.Parallel()

	src := openDB(t)
	ctx := context.Background()

	_, err := src.Load(ctx, "missing")
	var sourceErr *folioerrors.SourceError
	require.ErrorAs(t, err, &sourceErr)
	assert.Equal(t, "missing", sourceErr.Ref)
	assert.ErrorIs(t, err, ErrNotFound)

	err = src.Save(ctx, content.Document{Title: "no id"})
	var validationErr *folioerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "id", validationErr.Field)
}
