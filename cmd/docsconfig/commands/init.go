package commands

import (
	"fmt"
	"log/slog"

	"github.com/wirelineio/wns-docs/internal/config"
	"github.com/wirelineio/wns-docs/internal/logfields"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(global *Global, root *CLI) error {
	slog.Info("Initializing configuration", logfields.Path(root.Config), slog.Bool("force", i.Force))
	if err := config.Init(root.Config, i.Force); err != nil {
		return err
	}
	_, err := fmt.Fprintf(global.stdout(), "wrote %s\n", root.Config)
	return err
}
