package resolve

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Rules defines which plan tier is benchmarked and which distinct price
// point is selected. The defaults reproduce the standard benchmark: the
// second lowest cost Silver plan.
type Rules struct {
	// MetalLevel is matched against plan tiers exactly, case included:
	// "Silver" does not match "silver".
	MetalLevel string `yaml:"metal_level" json:"metal_level"`

	// RateRank selects the n-th lowest distinct rate (1 = lowest).
	// Zipcodes with fewer distinct rates than the rank stay unresolved.
	RateRank int `yaml:"rate_rank" json:"rate_rank"`
}

// RuleError is a rules validation failure (fatal at startup).
type RuleError struct {
	Field   string
	Message string
}

func (e RuleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// DefaultRules returns the standard benchmark rules.
func DefaultRules() Rules {
	return Rules{
		MetalLevel: "Silver",
		RateRank:   2,
	}
}

// LoadRules reads a YAML rules file. Unknown fields fail immediately so a
// typo cannot silently fall back to a default. Fields the file omits keep
// their default values; an empty file means all defaults.
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("read rules file: %w", err)
	}

	rules := DefaultRules()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&rules); err != nil && !errors.Is(err, io.EOF) {
		return Rules{}, fmt.Errorf("parse rules file %s: %w", path, err)
	}

	if err := rules.Validate(); err != nil {
		return Rules{}, err
	}
	return rules, nil
}

// Validate checks rule constraints.
func (r Rules) Validate() error {
	if r.MetalLevel == "" {
		return RuleError{"metal_level", "required"}
	}
	if r.RateRank < 1 {
		return RuleError{"rate_rank", "must be >= 1"}
	}
	return nil
}
