package store

import (
	"context"

	"github.com/MKhiriev/go-syncml/internal/config"
	"github.com/MKhiriev/go-syncml/internal/logger"
)

// Storages bundles the database backed collaborators of the command core.
type Storages struct {
	DB          *DB
	Items       StoragePlugin
	UIDMappings UIDMappingRepository
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	return &Storages{
		DB:          db,
		Items:       NewItemRepository(db, cfg.Plugin, log),
		UIDMappings: NewUIDMappingRepository(db, log),
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	return s.DB.Close()
}
