package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// migration is one ordered schema step. Steps run inside their own transaction
// and are recorded in schema_migrations, so reruns are no-ops.
type migration struct {
	version int
	name    string
	stmts   []string
}

var migrations = []migration{
	{
		version: 1,
		name:    "assignments",
		stmts: []string{
			`CREATE TABLE IF NOT EXISTS assignments (
				id TEXT PRIMARY KEY,
				date TEXT NOT NULL,
				project_id TEXT NOT NULL,
				created_at TEXT NOT NULL,
				updated_at TEXT NOT NULL,
				UNIQUE (date, project_id)
			)`,
			`CREATE INDEX IF NOT EXISTS idx_assignments_date ON assignments (date)`,
			`CREATE TABLE IF NOT EXISTS assignment_resources (
				assignment_id TEXT NOT NULL REFERENCES assignments (id) ON DELETE CASCADE,
				kind TEXT NOT NULL,
				resource_id TEXT NOT NULL,
				UNIQUE (assignment_id, kind, resource_id)
			)`,
			`CREATE INDEX IF NOT EXISTS idx_assignment_resources_assignment ON assignment_resources (assignment_id)`,
		},
	},
	{
		version: 2,
		name:    "catalog",
		stmts: []string{
			`CREATE TABLE IF NOT EXISTS employees (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				role TEXT NOT NULL DEFAULT '',
				status TEXT NOT NULL DEFAULT 'active'
			)`,
			`CREATE TABLE IF NOT EXISTS equipment (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				number TEXT NOT NULL DEFAULT '',
				category TEXT NOT NULL DEFAULT '',
				status TEXT NOT NULL DEFAULT 'active'
			)`,
			`CREATE TABLE IF NOT EXISTS attachments (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				number TEXT NOT NULL DEFAULT '',
				status TEXT NOT NULL DEFAULT 'active'
			)`,
			`CREATE TABLE IF NOT EXISTS tools (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				number TEXT NOT NULL DEFAULT '',
				category TEXT NOT NULL DEFAULT '',
				status TEXT NOT NULL DEFAULT 'active'
			)`,
			`CREATE TABLE IF NOT EXISTS projects (
				id TEXT PRIMARY KEY,
				number TEXT NOT NULL DEFAULT '',
				name TEXT NOT NULL,
				status TEXT NOT NULL DEFAULT 'active'
			)`,
		},
	},
}

// Migrate applies pending schema migrations in version order.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.pool.DB().ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		applied_at TEXT NOT NULL
	)`); err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	for _, m := range migrations {
		applied, err := s.migrationApplied(ctx, m.version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		err = s.pool.WithTransaction(ctx, func(tx *sql.Tx) error {
			for _, stmt := range m.stmts {
				if _, err := tx.Exec(stmt); err != nil {
					return fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
				}
			}
			_, err := tx.Exec(
				"INSERT INTO schema_migrations (version, name, applied_at) VALUES (?, ?, datetime('now'))",
				m.version, m.name,
			)
			return err
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) migrationApplied(ctx context.Context, version int) (bool, error) {
	var count int
	err := s.pool.DB().QueryRowContext(ctx,
		"SELECT COUNT(*) FROM schema_migrations WHERE version = ?", version,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to read schema_migrations: %w", err)
	}
	return count > 0, nil
}
