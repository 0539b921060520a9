/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the accepted --output values.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// Tabular results render as a table in text mode.
type Tabular interface {
	Table() (headers []string, rows [][]string)
}

// Write renders v to w in the given format.
func Write(w io.Writer, format string, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		return writeText(w, v)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeText(w io.Writer, v any) error {
	switch t := v.(type) {
	case Tabular:
		headers, rows := t.Table()
		_, err := fmt.Fprintln(w, Table(headers, rows))
		return err
	case fmt.Stringer:
		_, err := fmt.Fprintln(w, t.String())
		return err
	default:
		_, err := fmt.Fprintf(w, "%v\n", v)
		return err
	}
}

// Table lays rows out in borderless, left aligned columns.
func Table(headers []string, rows [][]string) string {
	cellStyle := lipgloss.NewStyle().Align(lipgloss.Left)

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col > 0 {
				return cellStyle.PaddingLeft(1)
			}
			return cellStyle
		}).
		Headers(headers...).
		BorderHeader(false).
		Rows(rows...)

	return t.String()
}

// OutputValidator accepts the values in Formats.
func OutputValidator(value any) error {
	s, _ := value.(string)
	if !slices.Contains(Formats, s) {
		return fmt.Errorf("must be one of %v", Formats)
	}
	return nil
}
