package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const shellDoc = `id: shell
title: Shell basics
kind: article
sections:
  - type: intro
    content: Welcome aboard
  - type: tutorial-step
    stepNumber: 1
    title: Open a terminal
    content: Any terminal will do.
  - type: prompt
    content: echo hi
  - type: hashtags
    content: "#go #cli"
`

// isolate points configuration lookup at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("FOLIO_CONFIG", filepath.Join(dir, "config.yaml"))
	return dir
}

func writeDoc(t *testing.T, dir, name, contents string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd(newAppContext())
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), err
}
