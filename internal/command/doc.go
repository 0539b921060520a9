// Package command defines the CLI command set for primer. It wires flags,
// validators and actions for the record, sum and api subcommands.
package command
