package assets

import (
	"fmt"
	"strings"
)

// maxNameLength bounds style names; it matches the settings file limit.
const maxNameLength = 64

// ValidateAssetName accepts bare style names only: no separators, no dots,
// at most maxNameLength bytes.
func ValidateAssetName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	case len(name) > maxNameLength:
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInvalidAssetName, len(name), maxNameLength)
	case strings.ContainsAny(name, "/\\.\x00"):
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
