package themeoptions

import (
	"context"

	"github.com/wirelineio/wns-docs/internal/siteconfig"
)

// Defaults is the shared DXOS docs theme configuration.
type Defaults struct{}

func (Defaults) Name() string { return DefaultProviderName }

func (Defaults) Load(ctx context.Context) (siteconfig.OptionsMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return siteconfig.OptionsMap{
		"siteName":      "DXOS",
		"pageTitle":     "DXOS Docs",
		"menuTitle":     "DXOS",
		"baseUrl":       "https://docs.dxos.org",
		"logoLink":      "https://dxos.org",
		"twitterHandle": "dxos_org",
		"baseDir":       "docs",
		"contentDir":    "content",
		"navConfig": map[string]any{
			"DXOS": map[string]any{
				"url":         "https://docs.dxos.org",
				"description": "The Decentralized Operating System",
			},
		},
		"footerNavConfig": map[string]any{
			"GitHub": map[string]any{
				"href":   "https://github.com/dxos",
				"target": "_blank",
				"rel":    "noopener noreferrer",
			},
			"Blog": map[string]any{
				"href":   "https://blog.dxos.org",
				"target": "_blank",
				"rel":    "noopener noreferrer",
			},
		},
	}, nil
}
