// Package jsontree serialises presentation trees for hosts that draw them
// themselves.
package jsontree

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexisbeaulieu97/folio/internal/node"
)

// Envelope is the document written by Encode.
type Envelope struct {
	Version int        `json:"version"`
	ID      string     `json:"id,omitempty"`
	Title   string     `json:"title,omitempty"`
	Tree    *node.Node `json:"tree"`
}

// FormatVersion is bumped whenever the node shape changes incompatibly.
const FormatVersion = 1

// Encode writes tree as JSON. Indented output is meant for people.
func Encode(w io.Writer, env Envelope, indent bool) error {
	env.Version = FormatVersion
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("encode tree: %w", err)
	}
	return nil
}

// Decode reads an envelope written by Encode.
func Decode(r io.Reader) (Envelope, error) {
	var env Envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return Envelope{}, fmt.Errorf("decode tree: %w", err)
	}
	if env.Version != FormatVersion {
		return Envelope{}, fmt.Errorf("decode tree: unsupported version %d", env.Version)
	}
	return env, nil
}
