// Package config loads typed configuration structs from environment
// variables (with optional .env support for development) or from a
// YAML profile file.
//
// Struct fields declare their sources with `env` tags for Load and
// `yaml` tags for LoadFromFile. Both loaders return joined sentinel
// errors so callers can distinguish a missing file from a parse
// failure with errors.Is.
package config
