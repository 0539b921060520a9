/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package command

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/suparena/primer/api"
	"github.com/suparena/primer/errors"
	"github.com/suparena/primer/internal/config"
	"github.com/suparena/primer/storagemodels"
)

// userRow is a user with its id, as listed by list-users.
type userRow struct {
	ID       int `json:"id" yaml:"id"`
	api.User `yaml:",inline"`
}

type userRows []userRow

func (r userRows) Table() ([]string, [][]string) {
	rows := make([][]string, 0, len(r))
	for _, u := range r {
		rows = append(rows, []string{strconv.Itoa(u.ID), u.Name, strconv.Itoa(u.Age), u.Email.String()})
	}
	return []string{"ID", "NAME", "AGE", "EMAIL"}, rows
}

type postRows []api.Post

func (r postRows) Table() ([]string, [][]string) {
	rows := make([][]string, 0, len(r))
	for _, p := range r {
		rows = append(rows, []string{strconv.Itoa(p.ID), p.Title, p.Content})
	}
	return []string{"ID", "TITLE", "CONTENT"}, rows
}

// demoStep is one call of the api demo and what it returned.
type demoStep struct {
	Call   string `json:"call" yaml:"call"`
	Result any    `json:"result" yaml:"result"`
}

type demoSteps []demoStep

func (d demoSteps) String() string {
	lines := make([]string, 0, len(d))
	for _, s := range d {
		b, err := json.Marshal(s.Result)
		if err != nil {
			b = []byte(err.Error())
		}
		lines = append(lines, fmt.Sprintf("%s: %s", s.Call, b))
	}
	return strings.Join(lines, "\n")
}

func APICommandBuilder(root *cli.Command, cfg config.Type) *cli.Command {
	flags := append(NewStoreFlags(cfg), NewAWSFlags(cfg)...)

	return &cli.Command{
		Name:   "api",
		Usage:  "run the user and post API demo, or one API call",
		Flags:  flags,
		Action: APIDemoAction,
		Commands: []*cli.Command{
			{
				Name:      "get-user",
				Usage:     "show one user",
				ArgsUsage: "ID",
				Action:    APIGetUserAction,
			},
			{
				Name:  "list-users",
				Usage: "list users in insertion order",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "maximum number of users, 0 for all",
						Validator: func(value int) error {
							return FlagValidators(value, NonNegativeValidator)
						},
					},
					&cli.IntFlag{
						Name:  "offset",
						Usage: "number of users to skip",
						Validator: func(value int) error {
							return FlagValidators(value, NonNegativeValidator)
						},
					},
				},
				Action: APIListUsersAction,
			},
			{
				Name:   "list-posts",
				Usage:  "list posts",
				Action: APIListPostsAction,
			},
			{
				Name:  "add-user",
				Usage: "add a user under the next free id",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "user name", Required: true},
					&cli.IntFlag{Name: "age", Usage: "user age"},
					&cli.StringFlag{Name: "email", Usage: "user email"},
				},
				Action: APIAddUserAction,
			},
		},
	}
}

// APIDemoAction runs the scripted sequence of calls against a fresh service.
func APIDemoAction(ctx context.Context, cmd *cli.Command) error {
	return withService(ctx, cmd, func(svc *api.Service) error {
		var steps demoSteps

		getUser := func(id int) error {
			call := fmt.Sprintf("get_user(%d)", id)
			u, err := svc.GetUser(ctx, id)
			switch {
			case err == nil:
				steps = append(steps, demoStep{Call: call, Result: u})
			case errors.IsNotFound(err):
				steps = append(steps, demoStep{Call: call, Result: api.ErrorPayloadFor(err)})
			default:
				return err
			}
			return nil
		}
		allUsers := func() error {
			users, err := svc.GetAllUsers(ctx)
			if err != nil {
				return err
			}
			steps = append(steps, demoStep{Call: "get_all_users()", Result: users})
			return nil
		}

		if err := getUser(1); err != nil {
			return err
		}
		if err := getUser(999); err != nil {
			return err
		}
		if err := allUsers(); err != nil {
			return err
		}

		res, err := svc.AddUser(ctx, "David", 28, "david@example.com")
		if err != nil {
			return err
		}
		steps = append(steps, demoStep{Call: `add_user("David", 28, "david@example.com")`, Result: res})

		if err := allUsers(); err != nil {
			return err
		}

		posts, err := svc.GetPosts(ctx)
		if err != nil {
			return err
		}
		steps = append(steps, demoStep{Call: "get_posts()", Result: posts})

		log.Debugf("api demo ran %d calls", len(steps))
		return emit(cmd, steps)
	})
}

func APIGetUserAction(ctx context.Context, cmd *cli.Command) error {
	id, err := strconv.Atoi(cmd.Args().First())
	if err != nil {
		return fmt.Errorf("invalid user id %q", cmd.Args().First())
	}

	return withService(ctx, cmd, func(svc *api.Service) error {
		u, err := svc.GetUser(ctx, id)
		if err != nil {
			if errors.IsNotFound(err) {
				return emit(cmd, api.ErrorPayloadFor(err))
			}
			return err
		}
		if structured(cmd) {
			return emit(cmd, u)
		}
		return emit(cmd, userRows{{ID: id, User: *u}})
	})
}

func APIListUsersAction(ctx context.Context, cmd *cli.Command) error {
	params := &storagemodels.QueryParams{
		Limit:  cmd.Int("limit"),
		Offset: cmd.Int("offset"),
	}

	return withService(ctx, cmd, func(svc *api.Service) error {
		items, err := svc.ListUsers(ctx, params)
		if err != nil {
			return err
		}

		rows := make(userRows, 0, len(items))
		for _, it := range items {
			rows = append(rows, userRow{ID: it.ID, User: it.Entity})
		}
		return emit(cmd, rows)
	})
}

func APIListPostsAction(ctx context.Context, cmd *cli.Command) error {
	return withService(ctx, cmd, func(svc *api.Service) error {
		posts, err := svc.GetPosts(ctx)
		if err != nil {
			return err
		}
		return emit(cmd, postRows(posts))
	})
}

func APIAddUserAction(ctx context.Context, cmd *cli.Command) error {
	return withService(ctx, cmd, func(svc *api.Service) error {
		res, err := svc.AddUser(ctx, cmd.String("name"), cmd.Int("age"), cmd.String("email"))
		if err != nil {
			return err
		}
		if structured(cmd) {
			return emit(cmd, res)
		}
		_, err = fmt.Fprintf(writer(cmd), "%s: %d\n", res.Message, res.ID)
		return err
	})
}

