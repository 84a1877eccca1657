package postgresql

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4/pgxpool"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsTable = "schema_migrations"

type Storage struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func New(ctx context.Context, dsn string) (*Storage, error) {
	const op = "storage.postgresql.New"

	db, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}, nil
}

func (s *Storage) Pool() *pgxpool.Pool {
	return s.db
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *Storage) Stop() {
	s.db.Close()
}

// Migrate applies every embedded migration that is not yet recorded in
// schema_migrations, in file name order.
func (s *Storage) Migrate(ctx context.Context) error {
	const op = "storage.postgresql.Migrate"

	if _, err := s.db.Exec(ctx, `CREATE TABLE IF NOT EXISTS `+migrationsTable+` (
		version TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`); err != nil {
		return fmt.Errorf("%s: ensure %s: %w", op, migrationsTable, err)
	}

	files, err := migrationFiles()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, fname := range files {
		version := strings.TrimSuffix(fname, path.Ext(fname))

		query, args, err := s.sb.Select("COUNT(1)").
			From(migrationsTable).
			Where(sq.Eq{"version": version}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		var count int
		if err := s.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
			return fmt.Errorf("%s: check %s: %w", op, version, err)
		}
		if count > 0 {
			continue
		}

		b, err := fs.ReadFile(migrationsFS, path.Join("migrations", fname))
		if err != nil {
			return fmt.Errorf("%s: read %s: %w", op, fname, err)
		}

		tx, err := s.db.Begin(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		if _, err := tx.Exec(ctx, string(b)); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("%s: exec %s: %w", op, fname, err)
		}

		query, args, err = s.sb.Insert(migrationsTable).Columns("version").Values(version).ToSql()
		if err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("%s: %w", op, err)
		}

		if _, err := tx.Exec(ctx, query, args...); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("%s: record %s: %w", op, fname, err)
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("%s: commit %s: %w", op, fname, err)
		}
	}

	return nil
}

func migrationFiles() ([]string, error) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".sql") {
			continue
		}
		files = append(files, e.Name())
	}
	sort.Strings(files)

	return files, nil
}
