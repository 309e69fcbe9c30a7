package commands

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/wirelineio/wns-docs/internal/build"
	"github.com/wirelineio/wns-docs/internal/config"
	"github.com/wirelineio/wns-docs/internal/logfields"
)

// Global carries dependencies shared by all subcommands.
type Global struct {
	Service *build.Service
	Stdout  io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"docsconfig.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" default:"1" help:"Write the site configuration (default command)"`
	Print    PrintCmd    `cmd:"" help:"Print the site configuration to stdout"`
	Validate ValidateCmd `cmd:"" help:"Assemble and validate the site configuration without writing it"`
	Init     InitCmd     `cmd:"" help:"Initialize a new configuration file"`
	Watch    WatchCmd    `cmd:"" help:"Regenerate the site configuration whenever its inputs change"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

func (g *Global) service() *build.Service {
	if g.Service == nil {
		g.Service = build.NewService()
	}
	return g.Service
}

func (g *Global) stdout() io.Writer {
	if g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

// loadConfig loads the file named by --config. A missing default file falls
// back to the built-in WNS configuration rooted at the working directory.
func loadConfig(root *CLI) (*config.Config, error) {
	path := root.Config
	if path == "" {
		path = config.DefaultPath
	}
	if _, err := os.Stat(path); os.IsNotExist(err) && isDefaultPath(path) {
		slog.Debug("No configuration file, using built-in defaults", logfields.Path(path))
		return config.Parse(nil)
	}
	return config.Load(path)
}

func isDefaultPath(path string) bool {
	if path == config.DefaultPath {
		return true
	}
	wd, err := os.Getwd()
	return err == nil && path == filepath.Join(wd, config.DefaultPath)
}
