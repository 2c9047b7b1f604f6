package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/folio/internal/icons"
)

func TestIconsCommand(t *testing.T) {
	isolate(t)

	stdout, err := execute(t, "icons")
	require.NoError(t, err)
	assert.Contains(t, stdout, "NAME")
	assert.Contains(t, stdout, "AlertTriangle")
	assert.Contains(t, stdout, "alert-triangle")

	stdout, err = execute(t, "icons", "--json")
	require.NoError(t, err)
	var entries []iconEntry
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	assert.Len(t, entries, len(icons.Names()))

	stdout, err = execute(t, "icons", "--types")
	require.NoError(t, err)
	assert.Contains(t, stdout, "tutorial-step")
	assert.Contains(t, stdout, "Lightbulb")
}
