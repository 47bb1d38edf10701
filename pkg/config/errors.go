package config

import "errors"

var (
	// ErrParsingConfig is returned when a source cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("config: failed to parse configuration")

	// ErrNilPointer is returned when a nil pointer is passed to a loader.
	ErrNilPointer = errors.New("config: nil pointer provided")

	// ErrMissingPath is returned by LoadFromFile without a file path.
	ErrMissingPath = errors.New("config: file path is required")

	// ErrReadingFile is returned when the profile file cannot be read.
	ErrReadingFile = errors.New("config: failed to read file")
)
