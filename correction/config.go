package correction

import (
	"math"

	"github.com/fulmenhq/spellguard/guard"
	"github.com/fulmenhq/spellguard/spellerr"
)

// PatternSpec mirrors spec §6.3's protected_patterns entry: a caller
// regex source plus its flags.
type PatternSpec struct {
	Source          string
	CaseInsensitive bool
	Multiline       bool
	Extended        bool
}

// LoadConfig is spec §6.3's configuration surface, as consumed by
// Engine.Load/Engine.Reload.
type LoadConfig struct {
	DictionaryPath     string // required
	ProtectedPath      string // optional; empty means no protected-terms file
	ProtectedPatterns  []PatternSpec
	EditDistance       int     // default 1
	FrequencyThreshold float64 // default 10.0; ignored unless FrequencyThresholdSet

	// FrequencyThresholdSet distinguishes "caller left FrequencyThreshold
	// unset" from "caller explicitly configured 0". spec §6.3 / §6.5
	// define frequency_threshold as a finite real >= 0 with 0 a
	// legitimate, distinct value (accept every distance-1 correction
	// regardless of frequency) — a bare zero-value check here would
	// silently replace an explicit 0 with the stricter 10.0 default.
	FrequencyThresholdSet bool

	SkipURLs         bool
	SkipEmails       bool
	SkipHostnames    bool
	SkipCodePatterns bool
	SkipNumbers      bool
}

// withDefaults fills in the documented defaults (spec §6.3:
// edit_distance: 1, frequency_threshold: 10.0). EditDistance has no
// legitimate zero value (valid values are 1 or 2), so a bare
// zero-value check is safe there; FrequencyThreshold's legitimate zero
// value means it is only defaulted when FrequencyThresholdSet is
// false.
func (c LoadConfig) withDefaults() LoadConfig {
	if c.EditDistance == 0 {
		c.EditDistance = 1
	}
	if !c.FrequencyThresholdSet {
		c.FrequencyThreshold = 10.0
	}
	return c
}

func (c LoadConfig) validate() error {
	if c.DictionaryPath == "" {
		return spellerr.New(spellerr.InvalidArgument, "dictionary_path is required")
	}
	if c.EditDistance != 1 && c.EditDistance != 2 {
		return spellerr.New(spellerr.InvalidArgument, "edit_distance must be 1 or 2").
			WithDetails(map[string]any{"edit_distance": c.EditDistance})
	}
	if math.IsNaN(c.FrequencyThreshold) || math.IsInf(c.FrequencyThreshold, 0) || c.FrequencyThreshold < 0 {
		return spellerr.New(spellerr.InvalidArgument, "frequency_threshold must be a finite number >= 0").
			WithDetails(map[string]any{"frequency_threshold": c.FrequencyThreshold})
	}
	return nil
}

func (c LoadConfig) builtinFlags() guard.BuiltinFlags {
	return guard.BuiltinFlags{
		SkipURLs:         c.SkipURLs,
		SkipEmails:       c.SkipEmails,
		SkipHostnames:    c.SkipHostnames,
		SkipCodePatterns: c.SkipCodePatterns,
		SkipNumbers:      c.SkipNumbers,
	}
}

func (c LoadConfig) callerPatterns() []*guard.Pattern {
	patterns := make([]*guard.Pattern, 0, len(c.ProtectedPatterns))
	for _, spec := range c.ProtectedPatterns {
		patterns = append(patterns, guard.NewPattern(spec.Source, guard.PatternOptions{
			CaseInsensitive: spec.CaseInsensitive,
			Multiline:       spec.Multiline,
			Extended:        spec.Extended,
		}))
	}
	return patterns
}
