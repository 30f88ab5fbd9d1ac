// Package presets supplies named example geometries used to pre-populate
// the calculator. A preset is nothing special to the core: selecting one is
// identical to typing the same numbers by hand.
package presets

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"jigcalc/pkg/geometry"
)

//go:embed presets.yaml
var defaultPresets []byte

// Preset is one named example: a mode plus a full field tuple.
type Preset struct {
	Name   string                   `yaml:"name"`
	Mode   geometry.Mode            `yaml:"mode"`
	Params geometry.FrameParameters `yaml:"params"`
}

// Load returns the built-in example presets.
func Load() ([]Preset, error) {
	return parse(defaultPresets)
}

// LoadFile reads additional presets from a YAML file and appends them to the
// built-in set. A user preset with the same name as a built-in one replaces
// it.
func LoadFile(path string) ([]Preset, error) {
	builtin, err := Load()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets file: %w", err)
	}
	user, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("presets file %s: %w", path, err)
	}

	byName := make(map[string]int, len(builtin))
	for i, p := range builtin {
		byName[p.Name] = i
	}
	merged := builtin
	for _, p := range user {
		if i, ok := byName[p.Name]; ok {
			merged[i] = p
		} else {
			merged = append(merged, p)
		}
	}
	return merged, nil
}

// Find returns the preset with the given name.
func Find(presets []Preset, name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

func parse(data []byte) ([]Preset, error) {
	var doc struct {
		Presets []Preset `yaml:"presets"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}
	for _, p := range doc.Presets {
		if p.Name == "" {
			return nil, fmt.Errorf("preset without a name")
		}
		if !p.Mode.IsValid() {
			return nil, fmt.Errorf("preset %q: unknown mode %q", p.Name, p.Mode)
		}
	}
	return doc.Presets, nil
}
