package commands

import (
	"context"
	"fmt"
	"strings"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct{}

func (v *ValidateCmd) Run(global *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	sc, provider, err := global.service().Assemble(context.Background(), cfg)
	if err != nil {
		return err
	}
	out := global.stdout()
	_, _ = fmt.Fprintf(out, "path prefix: %q\n", sc.PathPrefix)
	_, _ = fmt.Fprintf(out, "theme options: %s\n", provider)
	_, err = fmt.Fprintf(out, "plugins: %s\n", strings.Join(sc.PluginNames(), " -> "))
	return err
}
