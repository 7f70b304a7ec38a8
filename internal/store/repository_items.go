// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-syncml/internal/config"
	"github.com/MKhiriev/go-syncml/internal/logger"
	"github.com/MKhiriev/go-syncml/internal/utils"
	"github.com/MKhiriev/go-syncml/models"
)

// itemRepository is the SQL implementation of [StoragePlugin]. Every row it
// touches is scoped by the plugin's source URI, so several data categories
// can share one database.
type itemRepository struct {
	db             *DB
	sourceURI      string
	maxObjectSize  int64
	maxItems       int64
	supportedTypes map[string]struct{}
	keys           KeyGenerator
	logger         *logger.Logger
}

// NewItemRepository constructs a [StoragePlugin] for the category described
// by cfg. New item keys are UUID v7 strings.
func NewItemRepository(db *DB, cfg config.Plugin, log *logger.Logger) StoragePlugin {
	return newItemRepository(db, cfg, utils.NewUUIDGenerator(), log)
}

func newItemRepository(db *DB, cfg config.Plugin, keys KeyGenerator, log *logger.Logger) *itemRepository {
	log.Debug().Str("source_uri", cfg.SourceURI).Msg("creating item repository")

	types := make(map[string]struct{}, len(cfg.SupportedTypes))
	for _, f := range cfg.SupportedTypes {
		types[f] = struct{}{}
	}

	return &itemRepository{
		db:             db,
		sourceURI:      cfg.SourceURI,
		maxObjectSize:  cfg.MaxObjectSize,
		maxItems:       cfg.MaxItems,
		supportedTypes: types,
		keys:           keys,
		logger:         log,
	}
}

func (r *itemRepository) SourceURI() string {
	return r.sourceURI
}

func (r *itemRepository) MaxObjectSize() int64 {
	return r.maxObjectSize
}

// Exists reports whether key is stored in this category.
func (r *itemRepository) Exists(ctx context.Context, key string) (bool, error) {
	query, args, err := r.db.itemExistsQuery(r.sourceURI, key)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*itemRepository.Exists").Str("key", key).Msg("error checking item")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

// AddItems stores every item under a freshly generated key. An item whose
// content is already stored in the category is reported as a duplicate
// carrying the existing key.
func (r *itemRepository) AddItems(ctx context.Context, items []models.StorageItem) []models.PluginResult {
	log := logger.FromContext(ctx)
	results := make([]models.PluginResult, len(items))

	count, err := r.countItems(ctx)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.AddItems").Msg("error counting items")
		for i := range results {
			results[i] = models.PluginResult{Status: models.PluginError}
		}
		return results
	}

	for i, item := range items {
		if status, ok := r.precheck(item); !ok {
			results[i] = models.PluginResult{Status: status}
			continue
		}
		if r.maxItems > 0 && count >= r.maxItems {
			results[i] = models.PluginResult{Status: models.PluginNotEnoughSpace}
			continue
		}

		hash := utils.ContentHash(item.Type, item.Data)
		existing, err := r.findByHash(ctx, hash)
		if err != nil {
			log.Err(err).Str("func", "*itemRepository.AddItems").Msg("error looking up content hash")
			results[i] = models.PluginResult{Status: models.PluginError}
			continue
		}
		if existing != "" {
			results[i] = models.PluginResult{Key: existing, Status: models.PluginDuplicate}
			continue
		}

		key := r.keys.Generate()
		query, args, err := r.db.insertItemQuery(r.sourceURI, key, hash, item)
		if err != nil {
			log.Err(err).Str("func", "*itemRepository.AddItems").Msg("error building insert query")
			results[i] = models.PluginResult{Status: models.PluginError}
			continue
		}
		if _, err = r.db.execWithRetry(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*itemRepository.AddItems").Str("key", key).Msg("error inserting item")
			results[i] = models.PluginResult{Status: r.statusFromError(err)}
			continue
		}

		count++
		results[i] = models.PluginResult{Key: key, Status: models.PluginOK}
	}

	return results
}

// ReplaceItems overwrites stored items. A key that is not stored yields
// PluginNotFound.
func (r *itemRepository) ReplaceItems(ctx context.Context, items []models.StorageItem) []models.PluginResult {
	log := logger.FromContext(ctx)
	results := make([]models.PluginResult, len(items))

	for i, item := range items {
		results[i].Key = item.Key
		if status, ok := r.precheck(item); !ok {
			results[i].Status = status
			continue
		}

		hash := utils.ContentHash(item.Type, item.Data)
		query, args, err := r.db.updateItemQuery(r.sourceURI, hash, item)
		if err != nil {
			log.Err(err).Str("func", "*itemRepository.ReplaceItems").Msg("error building update query")
			results[i].Status = models.PluginError
			continue
		}

		res, err := r.db.execWithRetry(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", "*itemRepository.ReplaceItems").Str("key", item.Key).Msg("error updating item")
			results[i].Status = r.statusFromError(err)
			continue
		}
		results[i].Status = statusFromRowsAffected(res)
	}

	return results
}

// DeleteItems removes stored items. A key that is not stored yields
// PluginNotFound.
func (r *itemRepository) DeleteItems(ctx context.Context, keys []string) []models.PluginResult {
	log := logger.FromContext(ctx)
	results := make([]models.PluginResult, len(keys))

	for i, key := range keys {
		results[i].Key = key

		query, args, err := r.db.deleteItemQuery(r.sourceURI, key)
		if err != nil {
			log.Err(err).Str("func", "*itemRepository.DeleteItems").Msg("error building delete query")
			results[i].Status = models.PluginError
			continue
		}

		res, err := r.db.execWithRetry(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", "*itemRepository.DeleteItems").Str("key", key).Msg("error deleting item")
			results[i].Status = models.PluginError
			continue
		}
		results[i].Status = statusFromRowsAffected(res)
	}

	return results
}

// precheck applies the content type and size limits of the category.
func (r *itemRepository) precheck(item models.StorageItem) (models.PluginStatus, bool) {
	if len(r.supportedTypes) > 0 {
		if _, ok := r.supportedTypes[item.Type]; !ok {
			return models.PluginUnsupportedFormat, false
		}
	}
	if r.maxObjectSize > 0 && int64(len(item.Data)) > r.maxObjectSize {
		return models.PluginItemTooBig, false
	}

	return models.PluginOK, true
}

func (r *itemRepository) countItems(ctx context.Context) (int64, error) {
	query, args, err := r.db.countItemsQuery(r.sourceURI)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// findByHash returns the key of an item with the given content hash, or ""
// when there is none.
func (r *itemRepository) findByHash(ctx context.Context, hash string) (string, error) {
	query, args, err := r.db.findItemByHashQuery(r.sourceURI, hash)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var key string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return key, nil
}

func (r *itemRepository) statusFromError(err error) models.PluginStatus {
	if r.db.classify(err) == Duplicate {
		return models.PluginDuplicate
	}
	return models.PluginError
}

func statusFromRowsAffected(res sql.Result) models.PluginStatus {
	n, err := res.RowsAffected()
	if err != nil {
		return models.PluginError
	}
	if n == 0 {
		return models.PluginNotFound
	}
	return models.PluginOK
}
