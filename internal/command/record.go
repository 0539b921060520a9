/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/suparena/primer/record"
)

func RecordCommandBuilder(root *cli.Command) *cli.Command {
	return &cli.Command{
		Name:   "record",
		Usage:  "build a person record, add a field and list it",
		Action: RecordCommandAction,
	}
}

func RecordCommandAction(ctx context.Context, cmd *cli.Command) error {
	person := record.Person()
	name, _ := person.Get("name")
	age, _ := person.Get("age")

	person.Set("email", "alice@example.com")
	log.Debugf("record has %d keys", person.Len())

	if structured(cmd) {
		return emit(cmd, person)
	}

	w := writer(cmd)
	fmt.Fprintf(w, "Name: %s\n", name)
	fmt.Fprintf(w, "Age: %s\n", age)
	for k, v := range person.All() {
		fmt.Fprintf(w, "  %s: %s\n", k, v)
	}
	return nil
}
