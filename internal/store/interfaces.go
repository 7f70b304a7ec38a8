// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-syncml/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// StoragePlugin persists the items of one data category.
//
// Batch methods return exactly one result per input, in input order. A failed
// item never aborts the rest of the batch.
type StoragePlugin interface {
	// SourceURI is the local database URI of the category.
	SourceURI() string
	// MaxObjectSize is the largest accepted item in bytes; zero means unlimited.
	MaxObjectSize() int64
	// Exists reports whether an item with key is stored.
	Exists(ctx context.Context, key string) (bool, error)

	AddItems(ctx context.Context, items []models.StorageItem) []models.PluginResult
	ReplaceItems(ctx context.Context, items []models.StorageItem) []models.PluginResult
	DeleteItems(ctx context.Context, keys []string) []models.PluginResult
}

// ConflictResolver decides whether a remote change collides with a local one
// and which side wins.
type ConflictResolver interface {
	// IsConflict reports whether the local item identified by localKey was
	// changed locally in a way that collides with the incoming remote change.
	// remoteDeleted is true when the remote change is a delete.
	IsConflict(localKey string, remoteDeleted bool) bool
	// LocalSideWins reports whether the local version survives a conflict.
	LocalSideWins() bool
}

// StorageHandler stages remote changes for one batch and commits them to a
// StoragePlugin. It owns the single large-object slot.
type StorageHandler interface {
	BuildingLargeObject() bool
	StartLargeObjectAdd(plugin StoragePlugin, remoteKey, parentKey, itemType, format string, size int64) bool
	StartLargeObjectReplace(plugin StoragePlugin, localKey, parentKey, itemType, format string, size int64) bool
	AppendLargeObjectData(data []byte) bool
	MatchesLargeObject(key string) bool
	FinishLargeObject(id models.ItemID) bool

	AddItem(id models.ItemID, plugin StoragePlugin, remoteKey, parentKey, itemType, format string, data []byte) bool
	ReplaceItem(id models.ItemID, plugin StoragePlugin, localKey, parentKey, itemType, format string, data []byte) bool
	DeleteItem(id models.ItemID, localKey string) bool

	CommitAddedItems(ctx context.Context, plugin StoragePlugin) map[models.ItemID]models.CommitResult
	CommitReplacedItems(ctx context.Context, plugin StoragePlugin, resolver ConflictResolver) map[models.ItemID]models.CommitResult
	CommitDeletedItems(ctx context.Context, plugin StoragePlugin, resolver ConflictResolver) map[models.ItemID]models.CommitResult
}

// UIDMappingRepository persists the remote↔local key table of each category.
type UIDMappingRepository interface {
	LoadMappings(ctx context.Context, sourceURI string) ([]models.UIDMapping, error)
	SaveMapping(ctx context.Context, sourceURI string, mapping models.UIDMapping) error
	DeleteMapping(ctx context.Context, sourceURI string, localUID string) error
}

// KeyGenerator produces keys for newly stored items.
type KeyGenerator interface {
	Generate() string
}

// ErrorClassificator classifies driver errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
