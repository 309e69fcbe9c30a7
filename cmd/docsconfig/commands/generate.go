package commands

import (
	"context"
	"fmt"

	"github.com/wirelineio/wns-docs/internal/build"
	"github.com/wirelineio/wns-docs/internal/emit"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Output string `short:"o" help:"Output file (overrides output.path)" type:"path"`
	Format string `short:"f" help:"Output format: js, json or yaml (default: from output path)"`
}

func (g *GenerateCmd) Run(global *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	res, err := global.service().Generate(context.Background(), cfg, build.Options{
		OutputPath: g.Output,
		Format:     emit.Format(g.Format),
	})
	if err != nil {
		return err
	}
	status := "unchanged"
	if res.Written {
		status = "written"
	}
	_, err = fmt.Fprintf(global.stdout(), "%s (%s, %d plugins, %s)\n", res.OutputPath, res.Format, len(res.Config.Plugins), status)
	return err
}
