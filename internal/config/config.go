// Package config loads the docsconfig tool configuration (docsconfig.yaml).
package config

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/wirelineio/wns-docs/internal/emit"
	ferrors "github.com/wirelineio/wns-docs/internal/foundation/errors"
	"github.com/wirelineio/wns-docs/internal/logfields"
	"github.com/wirelineio/wns-docs/internal/siteconfig"
	"github.com/wirelineio/wns-docs/internal/themeoptions"
)

// DefaultPath is the configuration file used when none is given.
const DefaultPath = "docsconfig.yaml"

// Config represents the tool configuration.
type Config struct {
	Version    string                   `yaml:"version"`
	Site       SiteSection              `yaml:"site"`
	Theme      ThemeSection             `yaml:"theme"`
	Plugins    []siteconfig.PluginEntry `yaml:"plugins,omitempty"`
	Output     OutputSection            `yaml:"output"`
	DetectRepo bool                     `yaml:"detect_repo,omitempty"`

	// dir is the directory of the loaded file; relative paths resolve against it.
	dir string
}

// SiteSection holds the local identity merged over the theme options.
type SiteSection struct {
	PathPrefix  string                       `yaml:"path_prefix,omitempty"`
	Root        string                       `yaml:"root,omitempty"`
	GithubRepo  string                       `yaml:"github_repo,omitempty"`
	Description string                       `yaml:"description,omitempty"`
	Subtitle    string                       `yaml:"subtitle,omitempty"`
	ImagesPath  string                       `yaml:"images_path,omitempty"`
	Sidebar     siteconfig.SidebarCategories `yaml:"sidebar_categories,omitempty"`
}

// ThemeSection selects the base theme options. OptionsFile wins over Provider.
type ThemeSection struct {
	Provider    string `yaml:"provider,omitempty"`
	OptionsFile string `yaml:"options_file,omitempty"`
}

// OutputSection controls where and how the site configuration is written.
type OutputSection struct {
	Path   string      `yaml:"path,omitempty"`
	Format emit.Format `yaml:"format,omitempty"`
}

// Defaults returns the configuration of the WNS documentation site.
func Defaults() *Config {
	wns := siteconfig.WNSSite("")
	return &Config{
		Version: "1",
		Site: SiteSection{
			PathPrefix:  wns.PathPrefix,
			GithubRepo:  wns.GithubRepo,
			Description: wns.Description,
			Subtitle:    wns.Subtitle,
			Sidebar:     wns.Sidebar,
		},
		Theme:  ThemeSection{Provider: themeoptions.DefaultProviderName},
		Output: OutputSection{Path: "gatsby-config.js"},
	}
}

// Load reads configPath, expands environment variables and fills unset
// fields from Defaults. A .env or .env.local next to the file is loaded
// first; variables already set in the process are kept.
func Load(configPath string) (*Config, error) {
	dir, err := filepath.Abs(filepath.Dir(configPath))
	if err != nil {
		return nil, ferrors.ConfigError("resolve configuration directory").
			WithContext("path", configPath).WithCause(err).Build()
	}
	loadEnvFiles(dir)

	// #nosec G304 -- user supplied configuration path
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ferrors.ConfigError("configuration file not found").
				WithContext("path", configPath).Build()
		}
		return nil, ferrors.FileSystemError("read configuration file").
			WithContext("path", configPath).WithCause(err).Build()
	}

	cfg, err := Parse(data)
	if err != nil {
		if _, ok := ferrors.AsClassified(err); ok {
			return nil, err
		}
		return nil, ferrors.ConfigError("parse configuration file").
			WithContext("path", configPath).WithCause(err).Build()
	}
	cfg.dir = dir
	slog.Debug("Loaded configuration", logfields.Path(configPath))
	return cfg, nil
}

// Parse decodes a configuration document, applies defaults and validates it.
// Relative paths resolve against the working directory.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() error {
	defaults := Defaults()
	if c.DetectRepo {
		// left empty so the repository identity can be detected
		defaults.Site.GithubRepo = ""
	}
	return mergo.Merge(c, defaults)
}

// Validate checks fields that defaults cannot repair.
func (c *Config) Validate() error {
	if !c.Output.Format.Valid() {
		return ferrors.ValidationError("unsupported output format").
			WithContext("format", string(c.Output.Format)).Build()
	}
	if c.Output.Path == "" {
		return ferrors.ValidationError("output path is required").Build()
	}
	for i, p := range c.Plugins {
		if p.Name == "" {
			return ferrors.ValidationError("plugin name is required").WithContext("index", i).Build()
		}
	}
	return nil
}

// Dir returns the directory relative paths resolve against.
func (c *Config) Dir() string {
	if c.dir == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return c.dir
}

func (c *Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Dir(), p)
}

// RootDir is the absolute site root. It defaults to the configuration directory.
func (c *Config) RootDir() string {
	if c.Site.Root == "" {
		return c.Dir()
	}
	return c.resolve(c.Site.Root)
}

// SiteIdentity converts the configuration into the assembler's input.
func (c *Config) SiteIdentity() siteconfig.Site {
	root := c.RootDir()
	images := c.Site.ImagesPath
	if images != "" && !filepath.IsAbs(images) {
		images = filepath.Join(root, images)
	}
	extra := make([]siteconfig.PluginEntry, len(c.Plugins))
	for i, p := range c.Plugins {
		extra[i] = p.Clone()
	}
	return siteconfig.Site{
		PathPrefix:   c.Site.PathPrefix,
		Root:         root,
		GithubRepo:   c.Site.GithubRepo,
		Description:  c.Site.Description,
		Subtitle:     c.Site.Subtitle,
		Sidebar:      c.Site.Sidebar.Clone(),
		ImagesPath:   images,
		ExtraPlugins: extra,
	}
}

// ThemeSource describes where base theme options come from.
func (c *Config) ThemeSource() themeoptions.Source {
	return themeoptions.Source{
		Provider: c.Theme.Provider,
		File:     c.resolve(c.Theme.OptionsFile),
	}
}

// OutputPath is the output path resolved against the configuration directory.
func (c *Config) OutputPath() string {
	return c.resolve(c.Output.Path)
}

// OutputFormat is the configured format, inferred from the output path when unset.
func (c *Config) OutputFormat() emit.Format {
	if c.Output.Format != "" {
		return c.Output.Format
	}
	return emit.FormatFromPath(c.Output.Path)
}

// WatchPaths lists the files whose changes affect the generated output.
func (c *Config) WatchPaths(configPath string) []string {
	paths := []string{configPath}
	if f := c.ThemeSource().File; f != "" {
		paths = append(paths, f)
	}
	return paths
}

func loadEnvFiles(dir string) {
	for _, name := range []string{".env", ".env.local"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			slog.Warn("Failed to load environment file", logfields.Path(p), logfields.Error(err))
			continue
		}
		slog.Debug("Loaded environment file", logfields.Path(p))
	}
}
