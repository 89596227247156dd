package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/AriqGChowdhury/WSU-Forum/config"
	subforummodels "github.com/AriqGChowdhury/WSU-Forum/internal/subforum/model"
)

// Connect opens the Postgres pool and verifies it with a ping.
func Connect(ctx context.Context, cfg config.Config) (*bun.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Bun.DSN)))
	db := bun.NewDB(sqldb, pgdialect.New())

	// join tables must be registered before any query touches the m2m
	// relation
	db.RegisterModel((*subforummodels.SubforumTagLink)(nil))

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return nil, err
	}
	return db, nil
}
