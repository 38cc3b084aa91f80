package main

import (
	"context"
	"fmt"

	"github.com/doramarin/wedding-rsvp/internal/core/ports"
	mongodb "github.com/doramarin/wedding-rsvp/internal/infrastructure/db/mongo"
	"github.com/doramarin/wedding-rsvp/internal/infrastructure/db/sqlite"
	"github.com/doramarin/wedding-rsvp/internal/pkg/config"
)

// store bundles the repositories of one backend.
type store struct {
	accounts  ports.AccountRepository
	persons   ports.PersonRepository
	responses ports.ResponseRepository
	comments  ports.CommentRepository
	activity  ports.ActivityRepository

	ping  func(ctx context.Context) error
	close func()
}

func openStore(ctx context.Context, cfg *config.Config) (*store, error) {
	switch cfg.StoreDriver {
	case config.StoreSQLite:
		db, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		return &store{
			accounts:  sqlite.NewAccountStore(db),
			persons:   sqlite.NewPersonStore(db),
			responses: sqlite.NewResponseStore(db),
			comments:  sqlite.NewCommentStore(db),
			activity:  sqlite.NewActivityStore(db),
			ping:      func(ctx context.Context) error { return sqlite.Ping(ctx, db) },
			close:     func() { _ = db.Close() },
		}, nil

	case config.StoreMongo:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return &store{
			accounts:  mongodb.NewAccountRepository(db),
			persons:   mongodb.NewPersonRepository(db),
			responses: mongodb.NewResponseRepository(db),
			comments:  mongodb.NewCommentRepository(db),
			activity:  mongodb.NewActivityRepository(db),
			ping:      func(ctx context.Context) error { return mongodb.Ping(ctx, client) },
			close:     func() { _ = client.Disconnect(context.Background()) },
		}, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
