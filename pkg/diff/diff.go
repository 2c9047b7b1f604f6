// Package diff compares rendered output with what is already on disk.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	// MaxLines caps the diff body; longer diffs end with TruncateMessage.
	MaxLines        = 2000
	TruncateMessage = "... (diff truncated) ..."
)

// Lines returns a line-oriented diff of before and after with "-" and "+"
// prefixes, or "" when both are identical. Unchanged runs longer than twice
// the context are collapsed to a hunk marker.
func Lines(before, after []byte, beforeLabel, afterLabel string, context int) string {
	if bytes.Equal(before, after) {
		return ""
	}
	if context < 0 {
		context = 0
	}

	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n+++ %s\n", beforeLabel, afterLabel)

	written := 0
	emit := func(prefix byte, line string) bool {
		if written >= MaxLines {
			return false
		}
		buf.WriteByte(prefix)
		buf.WriteString(line)
		buf.WriteByte('\n')
		written++
		return true
	}

	oldLine, newLine := 1, 1
	for i, d := range diffs {
		lines := splitLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			head, tail := context, context
			if i == 0 {
				head = 0
			}
			if i == len(diffs)-1 {
				tail = 0
			}
			if len(lines) > head+tail {
				for _, line := range lines[:head] {
					emit(' ', line)
				}
				skipped := len(lines) - head - tail
				oldLine += head + skipped
				newLine += head + skipped
				if tail > 0 {
					fmt.Fprintf(&buf, "@@ -%d +%d @@\n", oldLine, newLine)
				}
				for _, line := range lines[len(lines)-tail:] {
					emit(' ', line)
				}
				oldLine += tail
				newLine += tail
				continue
			}
			for _, line := range lines {
				emit(' ', line)
			}
			oldLine += len(lines)
			newLine += len(lines)
		case diffmatchpatch.DiffDelete:
			for _, line := range lines {
				emit('-', line)
			}
			oldLine += len(lines)
		case diffmatchpatch.DiffInsert:
			for _, line := range lines {
				emit('+', line)
			}
			newLine += len(lines)
		}
		if written >= MaxLines {
			buf.WriteString(TruncateMessage + "\n")
			break
		}
	}

	return buf.String()
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{""}
	}
	return strings.Split(text, "\n")
}
