/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package command

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/suparena/primer/internal/config"
	mylog "github.com/suparena/primer/internal/log"
)

const metaConfig = "config"

// InitApp loads the config file named by --config (or found in the standard
// locations) and builds the root command around it.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	cfg, err := config.Load(configPathFromArgs(args))
	if err != nil {
		return nil, err
	}

	if os.Getenv(mylog.EnvLevel) == "" && cfg.Log.Level != "" {
		mylog.InitLoggerWithLevel(cfg.Log.Level)
	}
	log.Debugf("config source: %q", cfg.Source)

	app := &cli.Command{
		Name:  "primer",
		Usage: "Record, summation and API demos",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "primer version info",
				HideDefault: true,
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "config file",
				Sources: cli.NewValueSourceChain(
					cli.EnvVar(config.EnvConfig),
				),
			},
			NewOutputFlag(cfg),
		},
		Metadata: map[string]any{
			metaConfig: cfg,
		},
	}

	app.Commands = append(app.Commands,
		RecordCommandBuilder(app),
		SumCommandBuilder(app, cfg),
		APICommandBuilder(app, cfg),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}

// configPathFromArgs finds --config before flag parsing, since flag sources
// need the file up front.
func configPathFromArgs(args []string) string {
	for i, a := range args {
		switch {
		case a == "--config" || a == "-config":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(a, "--config="):
			return strings.TrimPrefix(a, "--config=")
		case strings.HasPrefix(a, "-config="):
			return strings.TrimPrefix(a, "-config=")
		}
	}
	return ""
}

// configFrom returns the config loaded by InitApp.
func configFrom(cmd *cli.Command) config.Type {
	if cfg, ok := cmd.Root().Metadata[metaConfig].(config.Type); ok {
		return cfg
	}
	return config.Defaults()
}
