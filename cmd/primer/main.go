/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"

	"github.com/suparena/primer"
	"github.com/suparena/primer/internal/command"
	"github.com/suparena/primer/internal/config"
	mylog "github.com/suparena/primer/internal/log"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

func realMain() int {
	// .env may set PRIMER_LOG, so load it first.
	envErr := config.LoadEnv()
	mylog.InitLogger()
	if envErr != nil {
		fmt.Fprintln(os.Stderr, envErr)
	}

	args := os.Args
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "No command specified.")
		args = append(args, "--help")
	}

	// Short-circuit --version/-v.
	for _, a := range args[1:] {
		if a == "--version" || a == "-v" {
			info := primer.GetVersionInfo()
			fmt.Printf("%s (%s, %s, %s)\n", info.Version, info.GitCommit, info.BuildDate, info.GoVersion)
			return 0
		}
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		log.WithError(err).Debug("command failed")
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	return 0
}
