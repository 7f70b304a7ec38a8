// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-syncml/internal/logger"
	"github.com/MKhiriev/go-syncml/models"
)

// uidMappingRepository persists UID mappings in the "uid_mappings" table.
type uidMappingRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUIDMappingRepository constructs a [UIDMappingRepository] backed by db.
func NewUIDMappingRepository(db *DB, log *logger.Logger) UIDMappingRepository {
	log.Debug().Msg("creating uid mapping repository")
	return &uidMappingRepository{
		db:     db,
		logger: log,
	}
}

// LoadMappings returns every mapping of the category ordered by remote UID.
func (r *uidMappingRepository) LoadMappings(ctx context.Context, sourceURI string) ([]models.UIDMapping, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.loadMappingsQuery(sourceURI)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*uidMappingRepository.LoadMappings").Msg("error loading mappings")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var mappings []models.UIDMapping
	for rows.Next() {
		var m models.UIDMapping
		if err = rows.Scan(&m.RemoteUID, &m.LocalUID); err != nil {
			log.Err(err).Str("func", "*uidMappingRepository.LoadMappings").Msg("error scanning mapping")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		mappings = append(mappings, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return mappings, nil
}

// SaveMapping inserts mapping or replaces the local UID of an existing
// mapping with the same remote UID.
func (r *uidMappingRepository) SaveMapping(ctx context.Context, sourceURI string, mapping models.UIDMapping) error {
	query, args, err := r.db.saveMappingQuery(sourceURI, mapping)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.execWithRetry(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*uidMappingRepository.SaveMapping").
			Str("remote_uid", mapping.RemoteUID).
			Str("local_uid", mapping.LocalUID).
			Msg("error saving mapping")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteMapping removes every mapping of the category pointing at localUID.
// Removing a mapping that does not exist is not an error.
func (r *uidMappingRepository) DeleteMapping(ctx context.Context, sourceURI string, localUID string) error {
	query, args, err := r.db.deleteMappingQuery(sourceURI, localUID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.execWithRetry(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*uidMappingRepository.DeleteMapping").
			Str("local_uid", localUID).
			Msg("error deleting mapping")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
