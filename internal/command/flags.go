/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/suparena/primer/internal/config"
	"github.com/suparena/primer/internal/output"
)

// NewOutputFlag constructs the --output flag, defaulting from PRIMER_OUTPUT
// and the config file.
func NewOutputFlag(cfg config.Type) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format (text, json, yaml)",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("PRIMER_OUTPUT"),
			yaml.YAML("output", altsrc.StringSourcer(cfg.Source)),
		),
		Value: "text",
		Validator: func(value string) error {
			return FlagValidators(value, JammedFlagValidator, output.OutputValidator)
		},
	}
}

// NewStoreFlags constructs the flags that select and configure the api
// datastore backend.
func NewStoreFlags(cfg config.Type) []cli.Flag {
	return []cli.Flag{
		ConfigFileFlag(cfg.Source, "store.backend", &cli.StringFlag{
			Name:  "backend",
			Usage: "datastore backend (memory, disk, sqlite, dynamodb)",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("PRIMER_STORE_BACKEND"),
			),
			Value: config.BackendMemory,
			Validator: func(value string) error {
				return FlagValidators(value, BackendValidator)
			},
		}),
		ConfigFileFlag(cfg.Source, "store.path", &cli.StringFlag{
			Name:  "path",
			Usage: "database file for the disk and sqlite backends",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("PRIMER_STORE_PATH"),
			),
		}),
		ConfigFileFlag(cfg.Source, "store.table", &cli.StringFlag{
			Name:  "table",
			Usage: "DynamoDB table for the dynamodb backend",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("PRIMER_STORE_TABLE"),
			),
		}),
		ConfigFileFlag(cfg.Source, "seed", &cli.StringFlag{
			Name:  "seed",
			Usage: "YAML file with the initial users and posts",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("PRIMER_SEED"),
			),
		}),
	}
}

// NewAWSFlags constructs the --region and --profile flags used by the S3 and
// DynamoDB clients.
func NewAWSFlags(cfg config.Type) []cli.Flag {
	return []cli.Flag{
		ConfigFileFlag(cfg.Source, "store.region", &cli.StringFlag{
			Name:  "region",
			Usage: "AWS region",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("AWS_REGION"),
			),
		}),
		ConfigFileFlag(cfg.Source, "store.profile", &cli.StringFlag{
			Name:  "profile",
			Usage: "AWS shared config profile",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("AWS_PROFILE"),
			),
		}),
	}
}

// ConfigFileFlag appends a config file source for key to the flag's Sources
// chain, after the env vars already there.
func ConfigFileFlag(path, key string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(key, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)
	return flag
}
