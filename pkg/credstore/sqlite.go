package credstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/cordalabs/adminsdk/pkg/credstore/migrations"

	_ "modernc.org/sqlite"
)

// SQLite is a durable Store backed by a single-row SQLite table. The
// credential is sealed at rest; the file on disk never contains the bearer
// token in the clear.
type SQLite struct {
	db     *sql.DB
	secret []byte
}

// NewSQLite opens (or creates) the credential database at path and applies
// any pending schema migrations. The secret seals the credential at rest
// and must be stable across restarts or stored credentials become
// unreadable.
func NewSQLite(path string, secret []byte) (*SQLite, error) {
	if len(secret) == 0 {
		return nil, errors.New("credstore: store secret must not be empty")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("credstore: open %s: %w", path, err)
	}

	if _, err := db.ExecContext(context.Background(), `PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &SQLite{db: db, secret: secret}
	if err := s.applyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("credstore: migrate: %w", err)
	}
	return s, nil
}

func (s *SQLite) Close() error { return s.db.Close() }

// applyMigrations runs the embedded migrations against the open database.
func (s *SQLite) applyMigrations() error {
	driver, err := migratesqlite.WithInstance(s.db, &migratesqlite.Config{})
	if err != nil {
		return err
	}

	src, err := iofs.New(migrations.Files, ".")
	if err != nil {
		return err
	}

	instance, err := migrate.NewWithInstance("iofs", src, "", driver)
	if err != nil {
		return err
	}

	if err := instance.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func (s *SQLite) Get(ctx context.Context) (string, error) {
	var sealed []byte
	err := s.db.QueryRowContext(ctx, `SELECT sealed FROM credential WHERE id = 1`).Scan(&sealed)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("credstore: get: %w", err)
	}
	return open(s.secret, sealed)
}

func (s *SQLite) Set(ctx context.Context, credential string) error {
	sealed, err := seal(s.secret, credential)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO credential (id, sealed, updated_at) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET sealed = excluded.sealed, updated_at = excluded.updated_at
	`, sealed, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("credstore: set: %w", err)
	}
	return nil
}

func (s *SQLite) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM credential WHERE id = 1`); err != nil {
		return fmt.Errorf("credstore: clear: %w", err)
	}
	return nil
}
