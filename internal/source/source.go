// Package source loads documents from files, git repositories and SQLite
// databases, and checks them before they reach the renderer.
package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/folio/internal/content"
	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

// Format is the encoding of a document file.
type Format string

const (
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
	FormatJSONC Format = "jsonc"
)

// FormatFor picks the format from a file extension; anything unknown is YAML.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".jsonc":
		return FormatJSONC
	default:
		return FormatYAML
	}
}

// ParseFormat validates a user supplied format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatYAML, FormatJSON, FormatJSONC:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown document format %q", name)
	}
}

// LoadFile reads, decodes and validates the document at path.
func LoadFile(path string) (content.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return content.Document{}, folioerrors.NewParseError(path, 0, err)
	}
	doc, err := Parse(path, data, FormatFor(path))
	if err != nil {
		return content.Document{}, err
	}
	if doc.ID == "" {
		doc.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return doc, nil
}

// Parse decodes data in the given format and validates the result. name is
// only used in error messages.
func Parse(name string, data []byte, format Format) (content.Document, error) {
	var rec documentRecord

	switch format {
	case FormatJSON, FormatJSONC:
		if format == FormatJSONC {
			data = jsonc.ToJSON(data)
		}
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&rec); err != nil {
			return content.Document{}, folioerrors.NewParseError(name, jsonLine(data, err), err)
		}
	default:
		if err := yaml.Unmarshal(data, &rec); err != nil {
			return content.Document{}, folioerrors.NewParseError(name, yamlLine(err), err)
		}
	}

	if err := validateRecord(&rec); err != nil {
		return content.Document{}, err
	}
	return rec.document(), nil
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

func yamlLine(err error) int {
	if err == nil {
		return 0
	}
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}

// jsonLine maps the byte offset of a JSON error to a 1-based line.
func jsonLine(data []byte, err error) int {
	var offset int64
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	default:
		return 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	return bytes.Count(data[:offset], []byte("\n")) + 1
}
