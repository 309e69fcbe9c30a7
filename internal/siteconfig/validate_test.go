package siteconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"

	ferrors "github.com/wirelineio/wns-docs/internal/foundation/errors"
)

func TestValidate(t *testing.T) {
	valid := BuildConfig(nil, WNSSite("/srv/docs"))

	tests := []struct {
		name    string
		mutate  func(c *SiteConfig)
		wantErr bool
	}{
		{"wns config", func(*SiteConfig) {}, false},
		{"empty prefix", func(c *SiteConfig) { c.PathPrefix = "" }, false},
		{"relative prefix", func(c *SiteConfig) { c.PathPrefix = "wns" }, true},
		{"trailing slash", func(c *SiteConfig) { c.PathPrefix = "/wns/" }, true},
		{"no plugins", func(c *SiteConfig) { c.Plugins = nil }, true},
		{"theme not first", func(c *SiteConfig) { c.Plugins[0], c.Plugins[1] = c.Plugins[1], c.Plugins[0] }, true},
		{"blank name", func(c *SiteConfig) { c.Plugins = append(c.Plugins, Named(" ")) }, true},
		{"duplicate theme", func(c *SiteConfig) { c.Plugins = append(c.Plugins, Named(ThemePlugin)) }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := SiteConfig{PathPrefix: valid.PathPrefix, Plugins: append([]PluginEntry(nil), valid.Plugins...)}
			tt.mutate(&cfg)
			err := Validate(cfg)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
		})
	}
}
