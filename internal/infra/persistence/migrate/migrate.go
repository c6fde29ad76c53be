// Package migrate applies the embedded SQL migrations with a plain pgx pool.
package migrate

import (
	"context"
	"io/fs"
	"log/slog"
	"sort"
	"strings"

	"socialdesk/internal/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createVersionTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version    varchar(255) PRIMARY KEY,
    applied_at timestamptz NOT NULL DEFAULT now()
)`

// Result lists the migrations applied by one run.
type Result struct {
	Applied []string
	Skipped []string
}

// Apply executes every *.sql file of filesystem in lexicographical order. Each file runs in
// its own transaction together with its schema_migrations row, so a file is applied at most once.
func Apply(ctx context.Context, pool *pgxpool.Pool, filesystem fs.FS, logger *slog.Logger) (*Result, error) {
	if _, err := pool.Exec(ctx, createVersionTable); err != nil {
		return nil, errors.Wrap(err, "create schema_migrations")
	}

	names, err := migrationNames(filesystem)
	if err != nil {
		return nil, err
	}

	applied, err := appliedVersions(ctx, pool)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, name := range names {
		if _, done := applied[name]; done {
			result.Skipped = append(result.Skipped, name)

			continue
		}

		sqlBytes, err := fs.ReadFile(filesystem, name)
		if err != nil {
			return result, errors.Wrapf(err, "read migration %s", name)
		}
		if len(strings.TrimSpace(string(sqlBytes))) == 0 {
			continue
		}

		err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, string(sqlBytes)); err != nil {
				return err
			}
			_, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, name)

			return err
		})
		if err != nil {
			return result, errors.Wrapf(err, "execute migration %s", name)
		}

		if logger != nil {
			logger.InfoContext(ctx, "Migration applied", slog.String("version", name))
		}
		result.Applied = append(result.Applied, name)
	}

	return result, nil
}

func migrationNames(filesystem fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(filesystem, ".")
	if err != nil {
		return nil, errors.Wrap(err, "read migrations")
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	return names, nil
}

func appliedVersions(ctx context.Context, pool *pgxpool.Pool) (map[string]struct{}, error) {
	rows, err := pool.Query(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, errors.Wrap(err, "list applied migrations")
	}

	versions, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, errors.Wrap(err, "scan applied migrations")
	}

	applied := make(map[string]struct{}, len(versions))
	for _, v := range versions {
		applied[v] = struct{}{}
	}

	return applied, nil
}
