package emit

import (
	"path/filepath"
	"strings"
)

// Format is the serialization of the generated site configuration.
type Format string

const (
	FormatJS   Format = "js"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Valid reports whether f is a known format. Empty means "infer".
func (f Format) Valid() bool {
	switch f {
	case "", FormatJS, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// FormatFromPath infers the format from a file extension, defaulting to JS.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJS
	}
}
