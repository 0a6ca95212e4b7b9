package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "spellguard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, `
dictionary_path: /tmp/dict.tsv
edit_distance: 2
frequency_threshold: 25
skip_urls: true
protected_patterns:
  - source: "^[A-Z]{3,4}\\d+$"
    case_insensitive: true
`)

	cfg, logSpec, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/dict.tsv", cfg.DictionaryPath)
	assert.Equal(t, 2, cfg.EditDistance)
	assert.Equal(t, 25.0, cfg.FrequencyThreshold)
	assert.True(t, cfg.SkipURLs)
	require.Len(t, cfg.ProtectedPatterns, 1)
	assert.True(t, cfg.ProtectedPatterns[0].CaseInsensitive)
	assert.Nil(t, logSpec)
}

func TestLoadExplicitZeroFrequencyThreshold(t *testing.T) {
	path := writeConfig(t, "dictionary_path: /tmp/dict.tsv\nfrequency_threshold: 0\n")

	cfg, _, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.0, cfg.FrequencyThreshold)
	assert.True(t, cfg.FrequencyThresholdSet, "explicit frequency_threshold: 0 must be distinguished from an absent field")
}

func TestLoadAbsentFrequencyThresholdLeavesDefaultToCorrectionPackage(t *testing.T) {
	path := writeConfig(t, "dictionary_path: /tmp/dict.tsv\n")

	cfg, _, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.FrequencyThresholdSet, "absent frequency_threshold must leave the correction package's default in effect")
}

func TestLoadMissingRequiredField(t *testing.T) {
	path := writeConfig(t, "edit_distance: 1\n")
	_, _, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsUnknownField(t *testing.T) {
	path := writeConfig(t, "dictionary_path: /tmp/dict.tsv\nbogus_field: true\n")
	_, _, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsInvalidEditDistanceEnum(t *testing.T) {
	path := writeConfig(t, "dictionary_path: /tmp/dict.tsv\nedit_distance: 7\n")
	_, _, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestEnvOverridesTakePrecedence(t *testing.T) {
	path := writeConfig(t, "dictionary_path: /tmp/dict.tsv\nedit_distance: 1\n")
	t.Setenv("SPELLGUARD_EDIT_DISTANCE", "2")
	t.Setenv("SPELLGUARD_FREQUENCY_THRESHOLD", "42.5")
	t.Setenv("SPELLGUARD_SKIP_URLS", "true")

	cfg, _, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.EditDistance)
	assert.Equal(t, 42.5, cfg.FrequencyThreshold)
	assert.True(t, cfg.SkipURLs)
}

func TestLoggingConfigDefaults(t *testing.T) {
	cfg := LoggingConfig(nil, "spellguard")
	assert.Equal(t, "INFO", cfg.Level)
	assert.Equal(t, "spellguard", cfg.Service)
	assert.Nil(t, cfg.File)
}

func TestLoggingConfigFromSpec(t *testing.T) {
	spec := &LoggingSpec{Level: "DEBUG", FilePath: "/var/log/spellguard.log", MaxSizeMB: 10}
	cfg := LoggingConfig(spec, "spellguard")
	assert.Equal(t, "DEBUG", cfg.Level)
	require.NotNil(t, cfg.File)
	assert.Equal(t, "/var/log/spellguard.log", cfg.File.Path)
}
