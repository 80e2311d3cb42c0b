package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"

	"github.com/jdisla/medioambiente-cli/internal/dbx"
	"github.com/jdisla/medioambiente-cli/internal/store/migrations"

	_ "modernc.org/sqlite"
)

// Store owns the SQLite handle behind a sealed credential repository.
type Store struct {
	Repository

	sealed *SealedRepository
	db     *sql.DB
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the credential database at dsn, applies
// migrations, and wraps it in a sealing layer keyed by the file at keyPath.
// On first open the installation is assigned a random ID.
func Open(ctx context.Context, dsn string, keyPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open credential db: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate credential db: %w", err)
	}

	key, err := LoadOrCreateKey(keyPath)
	if err != nil {
		db.Close()
		return nil, err
	}

	sealed, err := NewSealedRepository(NewSQLiteRepository(db), key)
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &Store{Repository: sealed, sealed: sealed, db: db}
	if err := s.ensureInstallationID(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// ensureInstallationID assigns the installation ID on first open. The
// check and the insert run in one transaction.
func (s *Store) ensureInstallationID(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.sealed.withInner(NewSQLiteRepository(tx))

		id, err := repo.Get(ctx, keyInstallID)
		if err != nil {
			return err
		}
		if id != nil {
			return nil
		}
		return repo.Set(ctx, keyInstallID, []byte(uuid.NewString()))
	})
}

// InstallationID returns the ID assigned to this installation on first open.
func (s *Store) InstallationID(ctx context.Context) (string, error) {
	id, err := s.Get(ctx, keyInstallID)
	if err != nil {
		return "", err
	}
	return string(id), nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
