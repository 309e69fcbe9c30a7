// Package emit serializes the assembled site configuration for the site build.
package emit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"

	ferrors "github.com/wirelineio/wns-docs/internal/foundation/errors"
	"github.com/wirelineio/wns-docs/internal/siteconfig"
)

// GeneratedHeader marks emitted JS modules as generated.
const GeneratedHeader = "// Code generated by docsconfig. DO NOT EDIT."

// Render writes cfg to w in format f.
func Render(w io.Writer, cfg siteconfig.SiteConfig, f Format) error {
	switch f {
	case FormatJSON:
		return encodeJSON(w, cfg)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return ferrors.EncodingError("encode yaml").WithCause(err).Build()
		}
		if err := enc.Close(); err != nil {
			return ferrors.EncodingError("encode yaml").WithCause(err).Build()
		}
		return nil
	case FormatJS, "":
		var body bytes.Buffer
		if err := encodeJSON(&body, cfg); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "%s\n\nmodule.exports = %s;\n", GeneratedHeader, bytes.TrimRight(body.Bytes(), "\n"))
		return err
	default:
		return ferrors.ValidationError("unsupported output format").WithContext("format", string(f)).Build()
	}
}

func encodeJSON(w io.Writer, cfg siteconfig.SiteConfig) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return ferrors.EncodingError("encode json").WithCause(err).Build()
	}
	return nil
}

// Bytes renders cfg into memory.
func Bytes(cfg siteconfig.SiteConfig, f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, cfg, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile atomically replaces path with the rendered configuration. It
// reports false without touching the file when the content is unchanged, so
// file watchers in the site build do not fire for no-op regenerations.
func WriteFile(path string, cfg siteconfig.SiteConfig, f Format) (bool, error) {
	data, err := Bytes(cfg, f)
	if err != nil {
		return false, err
	}

	// #nosec G304 -- output path comes from configuration
	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, data) {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, ferrors.FileSystemError("create output directory").
			WithContext("path", path).WithCause(err).Build()
	}

	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return false, ferrors.FileSystemError("create pending output file").
			WithContext("path", path).WithCause(err).Build()
	}
	defer func() { _ = pending.Cleanup() }()

	if _, err := pending.Write(data); err != nil {
		return false, ferrors.FileSystemError("write output file").
			WithContext("path", path).WithCause(err).Build()
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return false, ferrors.FileSystemError("replace output file").
			WithContext("path", path).WithCause(err).Build()
	}
	return true, nil
}
