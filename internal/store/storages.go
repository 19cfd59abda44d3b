package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/agrohive/agrigate/internal/config"
	"github.com/agrohive/agrigate/internal/logger"
)

// Storages bundles every repository backed by the shared database
// connection.
type Storages struct {
	UserRepository  UserRepository
	TokenRepository TokenRepository

	db *DB
}

// NewStorages connects to the backend selected by the DSN scheme
// ("postgres://" picks PostgreSQL, anything else is a SQLite file path),
// applies pending migrations, and wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	if strings.HasPrefix(cfg.DB.DSN, "postgres://") || strings.HasPrefix(cfg.DB.DSN, "postgresql://") {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		TokenRepository: NewTokenRepository(db, log),
		db:              db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
