package database

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// advisoryLockID serializes concurrent migration runs against one database.
const advisoryLockID int64 = 4180217

// ApplyMigrations runs every *.up.sql file in fsys, in lexical order, that
// has not been applied yet. Applied files are tracked with a checksum so a
// migration edited after the fact is rejected instead of silently skipped.
func ApplyMigrations(ctx context.Context, db *pgxpool.Pool, fsys fs.FS) error {
	if _, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			checksum TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`); err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	if _, err := db.Exec(ctx, `SELECT pg_advisory_lock($1)`, advisoryLockID); err != nil {
		return fmt.Errorf("acquire migration lock: %w", err)
	}
	defer func() {
		_, _ = db.Exec(context.Background(), `SELECT pg_advisory_unlock($1)`, advisoryLockID)
	}()

	names, err := fs.Glob(fsys, "*.up.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		version := strings.TrimSuffix(name, ".up.sql")

		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}

		sum := sha256.Sum256(raw)
		checksum := hex.EncodeToString(sum[:])

		applied, err := appliedChecksum(ctx, db, version)
		if err != nil {
			return err
		}
		if applied != "" {
			if applied != checksum {
				return fmt.Errorf("migration %s was changed after being applied", version)
			}
			continue
		}

		if err := runMigration(ctx, db, version, string(raw), checksum); err != nil {
			return err
		}
	}

	return nil
}

func runMigration(ctx context.Context, db *pgxpool.Pool, version, sql, checksum string) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin migration %s: %w", version, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, sql); err != nil {
		return fmt.Errorf("apply migration %s: %w", version, err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO schema_migrations (version, checksum)
		VALUES ($1, $2)
	`, version, checksum); err != nil {
		return fmt.Errorf("record migration %s: %w", version, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit migration %s: %w", version, err)
	}
	return nil
}

// appliedChecksum returns the recorded checksum for version, or "" when the
// migration has not run yet.
func appliedChecksum(ctx context.Context, db *pgxpool.Pool, version string) (string, error) {
	var checksum string
	err := db.QueryRow(ctx, `
		SELECT checksum
		FROM schema_migrations
		WHERE version=$1
	`, version).Scan(&checksum)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read migration state %s: %w", version, err)
	}
	return checksum, nil
}
