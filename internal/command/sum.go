/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package command

import (
	"context"
	"errors"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	awsx "github.com/suparena/primer/internal/aws"
	"github.com/suparena/primer/internal/config"
	"github.com/suparena/primer/numsum"
)

// sumOutput is the rendered outcome of one sum.
type sumOutput struct {
	Source string   `json:"source" yaml:"source"`
	Total  *float64 `json:"total,omitempty" yaml:"total,omitempty"`
	Error  string   `json:"error,omitempty" yaml:"error,omitempty"`

	result numsum.Result
}

func (s sumOutput) String() string {
	return "Sum: " + s.result.String()
}

func SumCommandBuilder(root *cli.Command, cfg config.Type) *cli.Command {
	return &cli.Command{
		Name:      "sum",
		Usage:     "add up a file holding one number per line",
		ArgsUsage: "PATH|s3://bucket/key",
		Flags:     NewAWSFlags(cfg),
		Action:    SumCommandAction,
	}
}

func SumCommandAction(ctx context.Context, cmd *cli.Command) error {
	source := cmd.Args().First()
	if source == "" {
		return errors.New("a source path is required")
	}
	log.Debugf("summing %s", source)

	var opts []numsum.Option
	if strings.HasPrefix(source, "s3://") {
		awsCfg, err := awsx.LoadAWSConfig(ctx,
			awsx.WithProfile(cmd.String("profile")),
			awsx.WithRegion(cmd.String("region")),
		)
		if err != nil {
			return err
		}
		opts = append(opts, numsum.WithObjectGetter(awsx.NewS3(awsCfg)))
	}

	res := numsum.New(opts...).Evaluate(ctx, source)

	out := sumOutput{Source: source, result: res}
	if res.OK() {
		out.Total = &res.Total
	} else {
		out.Error = res.String()
	}
	return emit(cmd, out)
}
