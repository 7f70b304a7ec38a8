// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/MKhiriev/go-syncml/internal/logger"
	"github.com/MKhiriev/go-syncml/internal/store"
	"github.com/MKhiriev/go-syncml/models"
)

// syncTarget keeps the UID table of one category in memory and writes every
// change through to the mapping repository before applying it.
type syncTarget struct {
	plugin         store.StoragePlugin
	targetDatabase string
	mappings       map[string]string // remote → local
	repository     store.UIDMappingRepository
	logger         *logger.Logger
}

// NewSyncTarget builds a [SyncTarget] for plugin and loads its persisted UID
// table. repository may be nil, in which case the table lives in memory only.
func NewSyncTarget(ctx context.Context, plugin store.StoragePlugin, targetDatabase string, repository store.UIDMappingRepository, logger *logger.Logger) (SyncTarget, error) {
	t := &syncTarget{
		plugin:         plugin,
		targetDatabase: targetDatabase,
		mappings:       make(map[string]string),
		repository:     repository,
		logger:         logger,
	}

	if repository == nil {
		return t, nil
	}

	mappings, err := repository.LoadMappings(ctx, plugin.SourceURI())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadingUIDMappings, err)
	}
	for _, m := range mappings {
		t.mappings[m.RemoteUID] = m.LocalUID
	}

	logger.Debug().Str("func", "NewSyncTarget").
		Str("source_uri", plugin.SourceURI()).
		Int("mappings", len(mappings)).
		Msg("sync target ready")

	return t, nil
}

func (t *syncTarget) Plugin() store.StoragePlugin {
	return t.plugin
}

func (t *syncTarget) SourceDatabase() string {
	return t.plugin.SourceURI()
}

func (t *syncTarget) TargetDatabase() string {
	return t.targetDatabase
}

func (t *syncTarget) MapToLocalUID(remoteUID string) string {
	return t.mappings[remoteUID]
}

// AddUIDMapping registers mapping, replacing any mapping of the same remote
// UID.
func (t *syncTarget) AddUIDMapping(ctx context.Context, mapping models.UIDMapping) error {
	if mapping.RemoteUID == "" || mapping.LocalUID == "" {
		return ErrEmptyUIDMapping
	}

	if t.repository != nil {
		if err := t.repository.SaveMapping(ctx, t.plugin.SourceURI(), mapping); err != nil {
			return fmt.Errorf("%w: %w", ErrSavingUIDMapping, err)
		}
	}

	t.mappings[mapping.RemoteUID] = mapping.LocalUID
	return nil
}

// RemoveUIDMapping drops every mapping pointing at localUID.
func (t *syncTarget) RemoveUIDMapping(ctx context.Context, localUID string) error {
	if t.repository != nil {
		if err := t.repository.DeleteMapping(ctx, t.plugin.SourceURI(), localUID); err != nil {
			return fmt.Errorf("%w: %w", ErrRemovingUIDMapping, err)
		}
	}

	for remote, local := range t.mappings {
		if local == localUID {
			delete(t.mappings, remote)
		}
	}
	return nil
}

// UIDMappings returns the table ordered by remote UID.
func (t *syncTarget) UIDMappings() []models.UIDMapping {
	out := make([]models.UIDMapping, 0, len(t.mappings))
	for remote, local := range t.mappings {
		out = append(out, models.UIDMapping{RemoteUID: remote, LocalUID: local})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RemoteUID < out[j].RemoteUID })
	return out
}
