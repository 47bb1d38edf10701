package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var defaultEnvLoaded sync.Once

// Load populates the configuration struct from environment variables,
// loading the default .env file first if one exists.
//
// Example:
//
//	type APIConfig struct {
//		BaseURL string `env:"GIFTCHAIN_API_URL,required"`
//		Timeout time.Duration `env:"GIFTCHAIN_API_TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg APIConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional; a missing one is not an error.
		_ = godotenv.Load()
	})

	if v == nil {
		return ErrNilPointer
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure. Intended for
// configuration the host application cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadFromFile populates the configuration struct from a YAML profile
// file, e.g. ~/.giftchain.yaml for desktop clients. Environment
// variables are not consulted; combine with Load when both sources
// apply (file first, env second so env wins).
func LoadFromFile[T any](path string, v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if path == "" {
		return ErrMissingPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrReadingFile, err)
	}

	if err := yaml.Unmarshal(data, v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}
