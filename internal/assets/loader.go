package assets

// DefaultStyleName is the built-in style used when none is configured.
const DefaultStyleName = "default"

// StyleLoader loads a page stylesheet by name (without the .css extension).
// Implementations return ErrStyleNotFound for unknown names and
// ErrInvalidAssetName for names that are not plain identifiers.
type StyleLoader interface {
	LoadStyle(name string) (string, error)
}

var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads an embedded style by name.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}
