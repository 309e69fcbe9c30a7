package config

import (
	"os"

	ferrors "github.com/wirelineio/wns-docs/internal/foundation/errors"
)

const exampleConfig = `# docsconfig configuration
version: "1"

site:
  path_prefix: /wns
  # root defaults to the directory of this file
  github_repo: wirelineio/wns
  description: DXOS - The Decentralized Operating System
  subtitle: DXOS WNS
  sidebar_categories:
    null:
      - index

theme:
  provider: dxos
  # options_file: theme-options.yaml

# Extra plugins appended after the built-in pipeline.
# plugins:
#   - gatsby-plugin-sitemap
#   - resolve: gatsby-plugin-manifest
#     options:
#       name: WNS

output:
  path: gatsby-config.js
`

// Init writes an example configuration file.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.NewError(ferrors.CategoryAlreadyExists, "configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).Build()
	}
	// #nosec G306 -- configuration is not secret
	if err := os.WriteFile(configPath, []byte(exampleConfig), 0o644); err != nil {
		return ferrors.FileSystemError("write configuration file").
			WithContext("path", configPath).WithCause(err).Build()
	}
	return nil
}
