// Package themeoptions supplies the shared documentation theme options that
// the site configuration is merged over.
package themeoptions

import (
	"context"

	"github.com/wirelineio/wns-docs/internal/siteconfig"
)

// Provider returns a base options map. Implementations return a fresh map on
// every call so callers may modify it freely.
type Provider interface {
	Name() string
	Load(ctx context.Context) (siteconfig.OptionsMap, error)
}

// DefaultProviderName is the provider used when none is configured.
const DefaultProviderName = "dxos"

// Source selects where base options come from. File wins over Provider.
type Source struct {
	Provider string
	File     string
}

// Resolve picks the provider described by src.
func Resolve(reg *Registry, src Source) (Provider, error) {
	if src.File != "" {
		return NewFileProvider(src.File), nil
	}
	name := src.Provider
	if name == "" {
		name = DefaultProviderName
	}
	return reg.Get(name)
}
