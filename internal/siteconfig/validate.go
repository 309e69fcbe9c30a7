package siteconfig

import (
	"strings"

	ferrors "github.com/wirelineio/wns-docs/internal/foundation/errors"
)

// Validate checks the invariants the site build relies on: a well formed path
// prefix, a non-empty pipeline led by the theme plugin, and named entries.
func Validate(cfg SiteConfig) error {
	if p := cfg.PathPrefix; p != "" {
		if !strings.HasPrefix(p, "/") {
			return ferrors.ValidationError("path prefix must start with '/'").
				WithContext("path_prefix", p).Build()
		}
		if strings.HasSuffix(p, "/") {
			return ferrors.ValidationError("path prefix must not end with '/'").
				WithContext("path_prefix", p).Build()
		}
	}
	if len(cfg.Plugins) == 0 {
		return ferrors.ValidationError("plugin pipeline is empty").Build()
	}
	if cfg.Plugins[0].Name != ThemePlugin {
		return ferrors.ValidationError("theme plugin must lead the pipeline").
			WithContext("first", cfg.Plugins[0].Name).Build()
	}
	for i, p := range cfg.Plugins {
		if strings.TrimSpace(p.Name) == "" || strings.ContainsAny(p.Name, " \t\n") {
			return ferrors.ValidationError("invalid plugin name").
				WithContext("index", i).WithContext("name", p.Name).Build()
		}
		if i > 0 && p.Name == ThemePlugin {
			return ferrors.ValidationError("theme plugin registered more than once").
				WithContext("index", i).Build()
		}
	}
	return nil
}
