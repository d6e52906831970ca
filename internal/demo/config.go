package demo

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/invlab/invlab/internal/inventory"
)

// DefaultItems is the item count used when a profile doesn't set one.
const DefaultItems = 50

// Profile configures a single demo pass.
type Profile struct {
	// Name identifies this profile in logs and reports.
	Name string `yaml:"name"`

	// Description explains what this profile exercises.
	Description string `yaml:"description,omitempty"`

	// Items is the number of inventory items to generate.
	// Must lie in [0, 8999], the size of the ID space.
	Items int `yaml:"items"`

	// Seed initializes the random source for generation, shuffling,
	// and sample selection. Equal seeds reproduce equal passes.
	Seed int64 `yaml:"seed"`

	// RunToken optionally fixes the run token for deterministic
	// transcripts. When empty the runner draws one from its
	// TokenSource.
	RunToken string `yaml:"run_token,omitempty"`

	// SkipReport suppresses the final-order block. Reporting only;
	// the sort itself always runs.
	SkipReport bool `yaml:"skip_report,omitempty"`
}

// DefaultProfile returns the profile the CLI uses when no file or
// flags are given.
func DefaultProfile() *Profile {
	return &Profile{
		Name:  "default",
		Items: DefaultItems,
		Seed:  1,
	}
}

// LoadProfile reads and parses a profile YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or fails validation.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	// Strict field validation catches typos like "item:" vs "items:".
	var p Profile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return &p, nil
}

// Validate checks that required fields are present and in range.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.Items < 0 {
		return fmt.Errorf("items must be non-negative, got %d", p.Items)
	}
	if space := inventory.IDMax - inventory.IDMin; p.Items > space {
		return fmt.Errorf("items must not exceed the ID space of %d, got %d", space, p.Items)
	}
	return nil
}
