// Package migrations embeds the PostgreSQL schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var fs embed.FS

// Run applies all pending migrations against db.
func Run(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(fs)

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "setting dialect")
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "running migrations")
	}

	return nil
}

// Files lists the embedded migration files in apply order.
func Files() ([]string, error) {
	entries, err := fs.ReadDir(".")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	return names, nil
}
