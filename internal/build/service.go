package build

import (
	"context"
	"log/slog"
	"time"

	"github.com/wirelineio/wns-docs/internal/config"
	"github.com/wirelineio/wns-docs/internal/emit"
	"github.com/wirelineio/wns-docs/internal/git"
	"github.com/wirelineio/wns-docs/internal/logfields"
	"github.com/wirelineio/wns-docs/internal/siteconfig"
	"github.com/wirelineio/wns-docs/internal/themeoptions"
)

// RepoDetector returns the owner/repo identifier for a site root.
type RepoDetector func(dir string) (string, error)

// Options override output settings from the configuration file.
type Options struct {
	OutputPath string
	Format     emit.Format
}

// Result describes one generation run.
type Result struct {
	Config     siteconfig.SiteConfig
	Provider   string
	OutputPath string
	Format     emit.Format
	Written    bool
	Duration   time.Duration
}

// Service assembles and writes site configurations.
type Service struct {
	registry   *themeoptions.Registry
	detectRepo RepoDetector
}

// NewService creates a Service with the built-in providers and git detection.
func NewService() *Service {
	return &Service{
		registry:   themeoptions.NewDefaultRegistry(),
		detectRepo: git.DetectRepository,
	}
}

// WithRegistry replaces the provider registry.
func (s *Service) WithRegistry(r *themeoptions.Registry) *Service {
	s.registry = r
	return s
}

// WithRepoDetector replaces repository detection (for testing).
func (s *Service) WithRepoDetector(d RepoDetector) *Service {
	s.detectRepo = d
	return s
}

// Assemble builds and validates the site configuration described by cfg.
// It returns the name of the provider that supplied the base options.
func (s *Service) Assemble(ctx context.Context, cfg *config.Config) (siteconfig.SiteConfig, string, error) {
	site := s.siteIdentity(cfg)

	provider, err := themeoptions.Resolve(s.registry, cfg.ThemeSource())
	if err != nil {
		return siteconfig.SiteConfig{}, "", err
	}
	base, err := provider.Load(ctx)
	if err != nil {
		return siteconfig.SiteConfig{}, provider.Name(), err
	}
	slog.Debug("Loaded base theme options", logfields.Provider(provider.Name()), slog.Int("keys", len(base)))

	sc := siteconfig.BuildConfig(base, site)
	if err := siteconfig.Validate(sc); err != nil {
		return siteconfig.SiteConfig{}, provider.Name(), err
	}
	for i, p := range sc.Plugins {
		slog.Debug("Plugin pipeline entry", slog.Int("index", i), logfields.Plugin(p.Name), slog.Bool("options", p.HasOptions()))
	}
	return sc, provider.Name(), nil
}

func (s *Service) siteIdentity(cfg *config.Config) siteconfig.Site {
	site := cfg.SiteIdentity()
	if !cfg.DetectRepo || site.GithubRepo != "" {
		return site
	}
	fallback := siteconfig.WNSSite("").GithubRepo
	if s.detectRepo == nil {
		site.GithubRepo = fallback
		return site
	}
	repo, err := s.detectRepo(site.Root)
	if err != nil {
		slog.Warn("Repository detection failed, using default",
			logfields.Path(site.Root), logfields.Repository(fallback), logfields.Error(err))
		site.GithubRepo = fallback
		return site
	}
	slog.Debug("Detected repository", logfields.Repository(repo))
	site.GithubRepo = repo
	return site
}

// Generate assembles the configuration and writes it to the output path.
func (s *Service) Generate(ctx context.Context, cfg *config.Config, opts Options) (*Result, error) {
	start := time.Now()

	sc, provider, err := s.Assemble(ctx, cfg)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Config:     sc,
		Provider:   provider,
		OutputPath: cfg.OutputPath(),
		Format:     cfg.OutputFormat(),
	}
	if opts.OutputPath != "" {
		res.OutputPath = opts.OutputPath
		res.Format = emit.FormatFromPath(opts.OutputPath)
	}
	if opts.Format != "" {
		res.Format = opts.Format
	}

	written, err := emit.WriteFile(res.OutputPath, sc, res.Format)
	if err != nil {
		return nil, err
	}
	res.Written = written
	res.Duration = time.Since(start)

	slog.Info("Generated site configuration",
		logfields.Path(res.OutputPath),
		logfields.Format(string(res.Format)),
		logfields.Plugins(len(sc.Plugins)),
		logfields.Provider(provider),
		slog.Bool("changed", written),
		logfields.DurationMS(float64(res.Duration.Microseconds())/1000))
	return res, nil
}
