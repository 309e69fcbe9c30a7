package siteconfig

import "path/filepath"

// Local option keys merged over the base theme options.
const (
	OptionRoot              = "root"
	OptionGithubRepo        = "githubRepo"
	OptionDescription       = "description"
	OptionSubtitle          = "subtitle"
	OptionSidebarCategories = "sidebarCategories"
)

// ImagesSourceName is the name the filesystem source registers images under.
const ImagesSourceName = "images"

// DefaultImagesDir is the images directory relative to the site root.
const DefaultImagesDir = "src/assets/img"

// Site is the local identity of one documentation site.
type Site struct {
	PathPrefix  string
	Root        string
	GithubRepo  string
	Description string
	Subtitle    string
	Sidebar     SidebarCategories
	// ImagesPath overrides <Root>/src/assets/img when set.
	ImagesPath string
	// ExtraPlugins run after the built-in pipeline, in order.
	ExtraPlugins []PluginEntry
}

// WNSSite returns the identity of the WNS documentation site rooted at root.
func WNSSite(root string) Site {
	return Site{
		PathPrefix:  "/wns",
		Root:        root,
		GithubRepo:  "wirelineio/wns",
		Description: "DXOS - The Decentralized Operating System",
		Subtitle:    "DXOS WNS",
		Sidebar:     NewSidebar("index"),
	}
}

// ImagesDir resolves the directory served by the images source plugin.
func (s Site) ImagesDir() string {
	if s.ImagesPath != "" {
		return s.ImagesPath
	}
	return filepath.Join(s.Root, filepath.FromSlash(DefaultImagesDir))
}

// ThemeOptions merges the local identity over base.
func (s Site) ThemeOptions(base OptionsMap) OptionsMap {
	return MergeOptions(base,
		Override{Key: OptionRoot, Value: s.Root},
		Override{Key: OptionGithubRepo, Value: s.GithubRepo},
		Override{Key: OptionDescription, Value: s.Description},
		Override{Key: OptionSubtitle, Value: s.Subtitle},
		Override{Key: OptionSidebarCategories, Value: s.Sidebar},
	)
}

// BuildConfig assembles the site configuration. The pipeline is the theme
// with merged options, the images filesystem source, the two sharp image
// plugins, then the site's extra plugins.
func BuildConfig(base OptionsMap, site Site) SiteConfig {
	plugins := make([]PluginEntry, 0, 4+len(site.ExtraPlugins))
	plugins = append(plugins,
		WithOptions(ThemePlugin, site.ThemeOptions(base)),
		WithOptions(SourceFilesystemPlugin, OptionsMap{
			"name": ImagesSourceName,
			"path": site.ImagesDir(),
		}),
		Named(SharpPlugin),
		Named(TransformerSharpPlugin),
	)
	for _, p := range site.ExtraPlugins {
		plugins = append(plugins, p.Clone())
	}
	return SiteConfig{PathPrefix: site.PathPrefix, Plugins: plugins}
}
