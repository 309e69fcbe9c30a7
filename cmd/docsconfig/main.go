package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/wirelineio/wns-docs/cmd/docsconfig/commands"
	"github.com/wirelineio/wns-docs/internal/build"
	ferrors "github.com/wirelineio/wns-docs/internal/foundation/errors"
	"github.com/wirelineio/wns-docs/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("docsconfig"),
		kong.Description("Assemble the documentation site configuration from shared theme options and local site identity."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	global := &commands.Global{Service: build.NewService(), Stdout: os.Stdout}
	err := parser.Run(global, cli)
	os.Exit(ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err))
}
