package commands

import (
	"context"

	"github.com/wirelineio/wns-docs/internal/emit"
)

// PrintCmd implements the 'print' command.
type PrintCmd struct {
	Format string `short:"f" help:"Output format: js, json or yaml" enum:"js,json,yaml" default:"json"`
}

func (p *PrintCmd) Run(global *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	sc, _, err := global.service().Assemble(context.Background(), cfg)
	if err != nil {
		return err
	}
	return emit.Render(global.stdout(), sc, emit.Format(p.Format))
}
