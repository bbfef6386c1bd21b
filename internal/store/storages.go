package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
)

// Storages bundles every persistence dependency of the service layer.
type Storages struct {
	UserRepository UserRepository
	AvatarStorage  AvatarStorage

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and builds the
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error creating storages: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error creating storages: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		AvatarStorage:  NewAvatarFileStorage(cfg.Files.AvatarDir, log),
		db:             db,
	}, nil
}

// Close releases the database pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
