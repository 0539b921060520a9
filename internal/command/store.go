/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/suparena/primer"
	"github.com/suparena/primer/api"
	"github.com/suparena/primer/datastore"
	"github.com/suparena/primer/datastore/ddb"
	"github.com/suparena/primer/datastore/disk"
	"github.com/suparena/primer/datastore/memory"
	"github.com/suparena/primer/datastore/sqlite"
	awsx "github.com/suparena/primer/internal/aws"
	"github.com/suparena/primer/internal/config"
)

// storeOptions is the backend selection read from flags.
type storeOptions struct {
	Backend string
	Path    string
	Table   string
	Region  string
	Profile string
}

func storeOptionsFrom(cmd *cli.Command) storeOptions {
	return storeOptions{
		Backend: cmd.String("backend"),
		Path:    cmd.String("path"),
		Table:   cmd.String("table"),
		Region:  cmd.String("region"),
		Profile: cmd.String("profile"),
	}
}

// OpenStorage registers the user and post stores of the selected backend
// under api.UsersKey and api.PostsKey. The returned close func releases the
// stores and any file or connection behind them.
func OpenStorage(ctx context.Context, opts storeOptions) (*primer.MultiTypeStorage, func() error, error) {
	var (
		users   datastore.DataStore[api.User]
		posts   datastore.DataStore[api.Post]
		release func() error
	)

	switch opts.Backend {
	case config.BackendMemory, "":
		users = memory.New[api.User]().WithTypeName("User")
		posts = memory.New[api.Post]().WithTypeName("Post")

	case config.BackendDisk:
		db, err := disk.Open(opts.Path, disk.DefaultTimeout)
		if err != nil {
			return nil, nil, err
		}
		u, err := disk.New[api.User](db, api.UsersKey)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		p, err := disk.New[api.Post](db, api.PostsKey)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		users, posts, release = u.WithTypeName("User"), p.WithTypeName("Post"), db.Close

	case config.BackendSQLite:
		db, err := sqlite.Open(ctx, opts.Path)
		if err != nil {
			return nil, nil, err
		}
		u, err := sqlite.New[api.User](db, api.UsersKey)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		p, err := sqlite.New[api.Post](db, api.PostsKey)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		users, posts, release = u.WithTypeName("User"), p.WithTypeName("Post"), db.Close

	case config.BackendDynamoDB:
		awsCfg, err := awsx.LoadAWSConfig(ctx,
			awsx.WithProfile(opts.Profile),
			awsx.WithRegion(opts.Region),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		client := ddb.NewClient(awsCfg)
		u, err := ddb.NewDynamodbDataStore[api.User](client, opts.Table)
		if err != nil {
			return nil, nil, err
		}
		p, err := ddb.NewDynamodbDataStore[api.Post](client, opts.Table)
		if err != nil {
			return nil, nil, err
		}
		users, posts = u, p

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", opts.Backend)
	}

	mts := primer.NewMultiTypeStorage()
	if err := primer.RegisterDataStore(mts, api.UsersKey, users); err != nil {
		return nil, nil, err
	}
	if err := primer.RegisterDataStore(mts, api.PostsKey, posts); err != nil {
		return nil, nil, err
	}

	log.WithFields(log.Fields{
		"backend": opts.Backend,
		"path":    opts.Path,
		"table":   opts.Table,
		"users":   primer.ListDataStores[api.User](mts),
		"posts":   primer.ListDataStores[api.Post](mts),
	}).Debug("opened storage")

	closeFn := func() error {
		err := mts.Close()
		if release != nil {
			err = errors.Join(err, release())
		}
		return err
	}
	return mts, closeFn, nil
}

// withService opens storage from the command's flags, builds the api service
// and runs fn against it.
func withService(ctx context.Context, cmd *cli.Command, fn func(*api.Service) error) (err error) {
	seed := api.DefaultSeed()
	if path := cmd.String("seed"); path != "" {
		if seed, err = api.LoadSeed(path); err != nil {
			return err
		}
	}

	mts, closeFn, err := OpenStorage(ctx, storeOptionsFrom(cmd))
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, closeFn())
	}()

	svc, err := api.NewFromStorage(ctx, mts, seed)
	if err != nil {
		return err
	}
	return fn(svc)
}
