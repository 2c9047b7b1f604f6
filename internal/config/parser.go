package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

// EnvPath names the environment variable that overrides DefaultPath.
const EnvPath = "FOLIO_CONFIG"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// DefaultPath returns $FOLIO_CONFIG, or folio/config.yaml under the user
// configuration directory.
func DefaultPath() string {
	if path := os.Getenv(EnvPath); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "folio", "config.yaml")
}

// Load reads the configuration at path. A missing file yields Default when
// the path was not chosen explicitly.
func Load(path string, explicit bool) (*Config, error) {
	if path == "" {
		cfg := Default()
		return &cfg, nil
	}
	cfg, err := ParseConfig(path)
	if err != nil && !explicit && errors.Is(err, fs.ErrNotExist) {
		def := Default()
		return &def, nil
	}
	return cfg, err
}

// ParseConfig loads a configuration file from disk, validates it, and returns the resulting model.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, folioerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates configuration bytes. Unknown keys are rejected.
func Parse(name string, data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, folioerrors.NewParseError(name, extractLine(err), err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// ValidateConfig checks field constraints.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return folioerrors.NewValidationError("config", "configuration is nil", nil)
	}
	return convertValidationError(validatorInstance().Struct(cfg))
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
