// Package config loads spellguard's YAML configuration file (spec
// §6.5), validating it against an embedded JSON Schema and layering
// environment variable overrides on top, following the teacher's
// schema.Validator / config.LoadEnvOverrides precedence (env wins over
// file).
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/fulmenhq/spellguard/correction"
	"github.com/fulmenhq/spellguard/logging"
	"github.com/fulmenhq/spellguard/spellerr"
)

// PatternSpec mirrors correction.PatternSpec for the YAML surface.
type PatternSpec struct {
	Source          string `yaml:"source"`
	CaseInsensitive bool   `yaml:"case_insensitive"`
	Multiline       bool   `yaml:"multiline"`
	Extended        bool   `yaml:"extended"`
}

// LoggingSpec is the optional `logging:` block of the config file.
type LoggingSpec struct {
	Level      string `yaml:"level"`
	JSON       bool   `yaml:"json"`
	FilePath   string `yaml:"file_path"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxAgeDays int    `yaml:"max_age_days"`
	MaxBackups int    `yaml:"max_backups"`
	Compress   bool   `yaml:"compress"`
}

// File is the on-disk shape of a spellguard config file.
//
// FrequencyThreshold is a *float64, not a float64: spec §6.3 / §6.5
// define frequency_threshold as a finite real >= 0 with 0 a
// legitimate, distinct value, so the file/env layer must be able to
// tell "absent, use the correction package's default" apart from
// "present and explicitly 0" — a bare float64 zero value cannot.
type File struct {
	DictionaryPath     string        `yaml:"dictionary_path"`
	ProtectedPath      string        `yaml:"protected_path"`
	EditDistance       int           `yaml:"edit_distance"`
	FrequencyThreshold *float64      `yaml:"frequency_threshold"`
	SkipURLs           bool          `yaml:"skip_urls"`
	SkipEmails         bool          `yaml:"skip_emails"`
	SkipHostnames      bool          `yaml:"skip_hostnames"`
	SkipCodePatterns   bool          `yaml:"skip_code_patterns"`
	SkipNumbers        bool          `yaml:"skip_numbers"`
	ProtectedPatterns  []PatternSpec `yaml:"protected_patterns"`
	Logging            *LoggingSpec  `yaml:"logging"`
}

var compiledSchema = func() *jsonschema.Schema {
	s, err := jsonschema.CompileString("spellguard://config.schema.json", schemaJSON)
	if err != nil {
		panic(fmt.Sprintf("config: embedded schema failed to compile: %v", err))
	}
	return s
}()

// Load reads path as YAML, validates it against the embedded schema,
// applies environment overrides, and returns the resulting engine and
// logging configuration. Any failure (read, parse, or schema
// validation) is reported as spellerr.InvalidArgument or
// spellerr.FileNotFound.
func Load(path string) (correction.LoadConfig, *LoggingSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return correction.LoadConfig{}, nil, spellerr.Wrap(spellerr.FileNotFound, "reading config file", err).
			WithDetails(map[string]any{"path": path})
	}

	var doc File
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return correction.LoadConfig{}, nil, spellerr.Wrap(spellerr.InvalidArgument, "parsing config YAML", err)
	}

	if err := validateAgainstSchema(raw); err != nil {
		return correction.LoadConfig{}, nil, err
	}

	applyEnvOverrides(&doc)

	patterns := make([]correction.PatternSpec, 0, len(doc.ProtectedPatterns))
	for _, p := range doc.ProtectedPatterns {
		patterns = append(patterns, correction.PatternSpec{
			Source:          p.Source,
			CaseInsensitive: p.CaseInsensitive,
			Multiline:       p.Multiline,
			Extended:        p.Extended,
		})
	}

	cfg := correction.LoadConfig{
		DictionaryPath:    doc.DictionaryPath,
		ProtectedPath:     doc.ProtectedPath,
		ProtectedPatterns: patterns,
		EditDistance:      doc.EditDistance,
		SkipURLs:          doc.SkipURLs,
		SkipEmails:        doc.SkipEmails,
		SkipHostnames:     doc.SkipHostnames,
		SkipCodePatterns:  doc.SkipCodePatterns,
		SkipNumbers:       doc.SkipNumbers,
	}
	if doc.FrequencyThreshold != nil {
		cfg.FrequencyThreshold = *doc.FrequencyThreshold
		cfg.FrequencyThresholdSet = true
	}

	return cfg, doc.Logging, nil
}

// validateAgainstSchema re-parses raw as a generic document (YAML is a
// superset of JSON for our purposes) and validates it, converting a
// jsonschema.ValidationError into spellerr.InvalidArgument with the
// validation detail attached.
func validateAgainstSchema(raw []byte) error {
	var generic interface{}
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return spellerr.Wrap(spellerr.InvalidArgument, "parsing config for schema validation", err)
	}
	generic = normalizeForSchema(generic)

	if err := compiledSchema.Validate(generic); err != nil {
		return spellerr.Wrap(spellerr.InvalidArgument, "config failed schema validation", err)
	}
	return nil
}

// normalizeForSchema converts the map[interface{}]interface{} nodes
// gopkg.in/yaml.v3 can produce into map[string]interface{}, which the
// jsonschema validator requires.
func normalizeForSchema(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, vv := range val {
			out[k] = normalizeForSchema(vv)
		}
		return out
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, vv := range val {
			out[fmt.Sprintf("%v", k)] = normalizeForSchema(vv)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, vv := range val {
			out[i] = normalizeForSchema(vv)
		}
		return out
	default:
		return v
	}
}

// applyEnvOverrides layers SPELLGUARD_* environment variables on top of
// the parsed file, env taking precedence (spec §6.5).
func applyEnvOverrides(doc *File) {
	if v, ok := os.LookupEnv("SPELLGUARD_DICTIONARY_PATH"); ok {
		doc.DictionaryPath = v
	}
	if v, ok := os.LookupEnv("SPELLGUARD_PROTECTED_PATH"); ok {
		doc.ProtectedPath = v
	}
	if v, ok := os.LookupEnv("SPELLGUARD_EDIT_DISTANCE"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			doc.EditDistance = n
		}
	}
	if v, ok := os.LookupEnv("SPELLGUARD_FREQUENCY_THRESHOLD"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			doc.FrequencyThreshold = &f
		}
	}
	for env, target := range map[string]*bool{
		"SPELLGUARD_SKIP_URLS":          &doc.SkipURLs,
		"SPELLGUARD_SKIP_EMAILS":        &doc.SkipEmails,
		"SPELLGUARD_SKIP_HOSTNAMES":     &doc.SkipHostnames,
		"SPELLGUARD_SKIP_CODE_PATTERNS": &doc.SkipCodePatterns,
		"SPELLGUARD_SKIP_NUMBERS":       &doc.SkipNumbers,
	} {
		if v, ok := os.LookupEnv(env); ok {
			*target = parseBool(v)
		}
	}
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// LoggingConfig converts a parsed LoggingSpec into a logging.Config,
// with Service set to the given service name. A nil spec yields a
// console-only INFO logger.
func LoggingConfig(spec *LoggingSpec, service string) logging.Config {
	if spec == nil {
		return logging.Config{Level: "INFO", Service: service}
	}
	cfg := logging.Config{Level: spec.Level, Service: service, JSON: spec.JSON}
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	if spec.FilePath != "" {
		cfg.File = &logging.FileSink{
			Path:       spec.FilePath,
			MaxSizeMB:  spec.MaxSizeMB,
			MaxAgeDays: spec.MaxAgeDays,
			MaxBackups: spec.MaxBackups,
			Compress:   spec.Compress,
		}
	}
	return cfg
}
