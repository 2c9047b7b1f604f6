package jsontree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/folio/internal/compose"
	"github.com/alexisbeaulieu97/folio/internal/content"
)

func TestEncodeKeepsTreeShape(t *testing.T) {
	t.Parallel()

	tree := compose.Render([]content.Section{
		{Type: content.TypeTip, Title: "T", Content: "a < b && c"},
		{Type: content.TypePrompt, Content: "echo hi"},
	})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Envelope{ID: "doc-1", Tree: tree}, false))
	assert.Contains(t, buf.String(), `"version":1`)
	assert.Contains(t, buf.String(), "a < b && c", "HTML characters are not escaped")

	env, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "doc-1", env.ID)
	if diff := cmp.Diff(tree, env.Tree); diff != "" {
		t.Fatalf("tree changed in transit (-want +got):\n%s", diff)
	}
}

func TestEncodeIndented(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Envelope{Tree: compose.Render(nil)}, true))
	assert.True(t, strings.HasPrefix(buf.String(), "{\n  \"version\": 1"))
}

func TestDecodeRejectsOtherVersions(t *testing.T) {
	t.Parallel()

	_, err := Decode(strings.NewReader(`{"version":7,"tree":{"kind":"document"}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported version 7")

	_, err = Decode(strings.NewReader(`{`))
	require.Error(t, err)
}
