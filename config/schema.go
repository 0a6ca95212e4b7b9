package config

// schemaJSON is the embedded JSON Schema against which a parsed config
// file is validated (spec §6.5), grounded on the teacher's
// schema.Validator pattern of validating a YAML-sourced document against
// a JSON Schema after re-marshaling it to plain interface{} values.
const schemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["dictionary_path"],
  "properties": {
    "dictionary_path": {"type": "string", "minLength": 1},
    "protected_path": {"type": "string"},
    "edit_distance": {"type": "integer", "enum": [1, 2]},
    "frequency_threshold": {"type": "number", "minimum": 0},
    "skip_urls": {"type": "boolean"},
    "skip_emails": {"type": "boolean"},
    "skip_hostnames": {"type": "boolean"},
    "skip_code_patterns": {"type": "boolean"},
    "skip_numbers": {"type": "boolean"},
    "protected_patterns": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["source"],
        "properties": {
          "source": {"type": "string", "minLength": 1},
          "case_insensitive": {"type": "boolean"},
          "multiline": {"type": "boolean"},
          "extended": {"type": "boolean"}
        },
        "additionalProperties": false
      }
    },
    "logging": {
      "type": "object",
      "properties": {
        "level": {"type": "string", "enum": ["DEBUG", "INFO", "WARN", "ERROR"]},
        "json": {"type": "boolean"},
        "file_path": {"type": "string"},
        "max_size_mb": {"type": "integer", "minimum": 1},
        "max_age_days": {"type": "integer", "minimum": 1},
        "max_backups": {"type": "integer", "minimum": 0},
        "compress": {"type": "boolean"}
      },
      "additionalProperties": false
    }
  },
  "additionalProperties": false
}`
