/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package command

import (
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/suparena/primer/internal/output"
)

// writer returns the root command's writer, stdout by default.
func writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// emit renders v in the --output format.
func emit(cmd *cli.Command, v any) error {
	return output.Write(writer(cmd), cmd.String("output"), v)
}

// structured reports whether --output asks for json or yaml.
func structured(cmd *cli.Command) bool {
	f := cmd.String("output")
	return f == output.FormatJSON || f == output.FormatYAML
}
