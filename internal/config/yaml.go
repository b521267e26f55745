package config

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	errNilDestination = errors.New("nil destination pointer")
	errInputTooLarge  = errors.New("input exceeds maximum size")
)

// decodeStrict decodes data onto v, rejecting unknown fields. Keys absent
// from data leave the corresponding fields of v untouched.
func decodeStrict(data []byte, v any) error {
	if v == nil {
		return errNilDestination
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", errInputTooLarge, len(data), MaxInputSize)
	}
	return yaml.UnmarshalWithOptions(data, v, yaml.Strict())
}

// Marshal encodes cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
