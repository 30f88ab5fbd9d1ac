// Package params reads and writes frame parameter snapshots, the file
// interface used by the one-shot CLI and watch mode.
package params

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"jigcalc/pkg/geometry"
)

// Snapshot is one parameter file: the active mode plus the raw inputs.
type Snapshot struct {
	Mode   geometry.Mode            `yaml:"mode"`
	Params geometry.FrameParameters `yaml:"params"`
}

// Load reads a snapshot from a YAML file.
func Load(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read parameters file: %w", err)
	}

	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if s.Mode == "" {
		s.Mode = geometry.ModeStackReach
	}
	if !s.Mode.IsValid() {
		return Snapshot{}, fmt.Errorf("%s: unknown mode %q", path, s.Mode)
	}
	return s, nil
}

// Save writes a snapshot as YAML.
func Save(path string, s Snapshot) error {
	if !s.Mode.IsValid() {
		return fmt.Errorf("unknown mode %q", s.Mode)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Template returns a starter snapshot with a typical road geometry, used by
// the CLI to seed a new parameters file.
func Template() Snapshot {
	v := func(f float64) *float64 { return &f }
	return Snapshot{
		Mode: geometry.ModeStackReach,
		Params: geometry.FrameParameters{
			HTA:      v(72),
			STA:      v(73.5),
			Stack:    v(560),
			Reach:    v(385),
			HTLength: v(145),
			CSLength: v(420),
			BBDrop:   v(70),
		},
	}
}
