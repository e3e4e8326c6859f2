package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"catalogsync/internal/errors"
	"catalogsync/internal/infra/persistence/postgres/migrations"

	"github.com/pressly/goose/v3"
)

// gooseUp is swapped in tests.
var gooseUp = func(ctx context.Context, db *sql.DB, dir string) error {
	return goose.UpContext(ctx, db, dir)
}

// runMigrations applies the embedded migrations.
func runMigrations(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "set goose dialect")
	}

	if err := gooseUp(ctx, db, "."); err != nil {
		return errors.Wrap(err, "apply snapshot migrations")
	}

	logger.InfoContext(ctx, "snapshot migrations applied")

	return nil
}
