package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/grc-lab/riskreport/pkg/cli/config"
	"github.com/grc-lab/riskreport/pkg/utils/logging"
)

func cmdValidate() *cli.Command {
	var appCfg config.AppConfig

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate a configuration file",
		Flags:   appCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			registry, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "configuration validation failed")
			}

			logger.Info("Configuration validation passed",
				"template_count", len(registry.Templates),
				"category_count", len(registry.Categories),
			)
			for _, tpl := range registry.Templates {
				logger.Info("Template validated",
					"id", tpl.ID,
					"name", tpl.Name,
					"type", tpl.Type.String(),
				)
			}

			return nil
		},
	}
}
