package assets

import "errors"

// StyleResolver tries a custom directory first and falls back to the
// embedded styles when the custom directory lacks the requested name.
type StyleResolver struct {
	custom   StyleLoader // nil when no custom directory is configured
	embedded StyleLoader
}

// NewStyleResolver creates a StyleResolver. An empty customBasePath uses
// embedded styles only.
func NewStyleResolver(customBasePath string) (*StyleResolver, error) {
	r := &StyleResolver{embedded: NewEmbeddedLoader()}
	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		r.custom = fsLoader
	}
	return r, nil
}

// LoadStyle implements StyleLoader. Only ErrStyleNotFound triggers the
// fallback; validation and I/O errors are returned as is.
func (r *StyleResolver) LoadStyle(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadStyle(name)
	}

	content, err := r.custom.LoadStyle(name)
	if err == nil {
		return content, nil
	}
	if !errors.Is(err, ErrStyleNotFound) {
		return "", err
	}
	return r.embedded.LoadStyle(name)
}

// HasCustomLoader reports whether a custom directory is configured.
func (r *StyleResolver) HasCustomLoader() bool {
	return r.custom != nil
}

var _ StyleLoader = (*StyleResolver)(nil)
