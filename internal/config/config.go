package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/catena/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// EnvVar names the defaults file when no --config flag is given.
const EnvVar = "CATENA_CONFIG"

// Defaults holds the literals and switches a defaults file may set.
// Command-line flags are applied on top of them.
type Defaults struct {
	EndMarker       string `mapstructure:"end_marker" json:"end_marker" yaml:"end_marker"`
	TabMarker       string `mapstructure:"tab_marker" json:"tab_marker" yaml:"tab_marker"`
	Number          string `mapstructure:"number" json:"number" yaml:"number"`
	SqueezeBlank    bool   `mapstructure:"squeeze_blank" json:"squeeze_blank" yaml:"squeeze_blank"`
	ShowNonPrinting bool   `mapstructure:"show_nonprinting" json:"show_nonprinting" yaml:"show_nonprinting"`
}

// Builtin returns the defaults used when no file is configured.
func Builtin() Defaults {
	return Defaults{
		EndMarker: "$",
		TabMarker: "^I",
		Number:    domain.NumberNone.String(),
	}
}

// Numbering returns the parsed numbering mode.
func (d Defaults) Numbering() (domain.NumberingMode, error) {
	return domain.ParseNumberingMode(d.Number)
}

// Resolve returns the defaults file path: flagPath if set, else $CATENA_CONFIG.
// An empty result means no file.
func Resolve(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return os.Getenv(EnvVar)
}

// Load reads a defaults file (YAML, or JSON for a .json extension) and lays it
// over Builtin. An empty path returns Builtin unchanged.
func Load(path string) (Defaults, error) {
	d := Builtin()
	if path == "" {
		return d, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return d, fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return d, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return d, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	if err := decode(raw, &d); err != nil {
		return d, fmt.Errorf("invalid config %s: %w", filepath.Base(path), err)
	}
	if _, err := d.Numbering(); err != nil {
		return d, fmt.Errorf("invalid config %s: %w", filepath.Base(path), err)
	}
	return d, nil
}

func decode(raw map[string]any, out *Defaults) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}
