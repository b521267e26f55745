// Package assets loads the page stylesheets embedded in standalone HTML
// documents.
//
//	StyleLoader (interface)
//	    ├── EmbeddedLoader    built-in styles compiled into the binary
//	    ├── FilesystemLoader  {basePath}/styles/{name}.css on disk
//	    └── StyleResolver     custom directory first, embedded fallback
//
// Style names are validated before any lookup, and FilesystemLoader
// resolves symlinks and refuses paths that leave its base directory.
package assets
