// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-syncml/models"
)

const (
	itemsTable    = "sync_items"
	mappingsTable = "uid_mappings"
)

func itemWhere(sourceURI, key string) sq.And {
	return sq.And{sq.Eq{"source_uri": sourceURI}, sq.Eq{"item_key": key}}
}

func (db *DB) countItemsQuery(sourceURI string) (string, []any, error) {
	return db.builder.
		Select("COUNT(*)").
		From(itemsTable).
		Where(sq.Eq{"source_uri": sourceURI}).
		ToSql()
}

func (db *DB) itemExistsQuery(sourceURI, key string) (string, []any, error) {
	return db.builder.
		Select("COUNT(*)").
		From(itemsTable).
		Where(itemWhere(sourceURI, key)).
		ToSql()
}

func (db *DB) findItemByHashQuery(sourceURI, hash string) (string, []any, error) {
	return db.builder.
		Select("item_key").
		From(itemsTable).
		Where(sq.And{sq.Eq{"source_uri": sourceURI}, sq.Eq{"content_hash": hash}}).
		Limit(1).
		ToSql()
}

func (db *DB) insertItemQuery(sourceURI, key, hash string, item models.StorageItem) (string, []any, error) {
	return db.builder.
		Insert(itemsTable).
		Columns("source_uri", "item_key", "parent_key", "content_type", "format", "data", "content_hash").
		Values(sourceURI, key, item.ParentKey, item.Type, item.Format, item.Data, hash).
		ToSql()
}

func (db *DB) updateItemQuery(sourceURI, hash string, item models.StorageItem) (string, []any, error) {
	return db.builder.
		Update(itemsTable).
		Set("parent_key", item.ParentKey).
		Set("content_type", item.Type).
		Set("format", item.Format).
		Set("data", item.Data).
		Set("content_hash", hash).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(itemWhere(sourceURI, item.Key)).
		ToSql()
}

func (db *DB) deleteItemQuery(sourceURI, key string) (string, []any, error) {
	return db.builder.
		Delete(itemsTable).
		Where(itemWhere(sourceURI, key)).
		ToSql()
}

func (db *DB) loadMappingsQuery(sourceURI string) (string, []any, error) {
	return db.builder.
		Select("remote_uid", "local_uid").
		From(mappingsTable).
		Where(sq.Eq{"source_uri": sourceURI}).
		OrderBy("remote_uid").
		ToSql()
}

// saveMappingQuery upserts on (source_uri, remote_uid). Both SQLite and
// PostgreSQL accept the ON CONFLICT ... excluded form.
func (db *DB) saveMappingQuery(sourceURI string, mapping models.UIDMapping) (string, []any, error) {
	return db.builder.
		Insert(mappingsTable).
		Columns("source_uri", "remote_uid", "local_uid").
		Values(sourceURI, mapping.RemoteUID, mapping.LocalUID).
		Suffix("ON CONFLICT (source_uri, remote_uid) DO UPDATE SET local_uid = excluded.local_uid").
		ToSql()
}

func (db *DB) deleteMappingQuery(sourceURI, localUID string) (string, []any, error) {
	return db.builder.
		Delete(mappingsTable).
		Where(sq.And{sq.Eq{"source_uri": sourceURI}, sq.Eq{"local_uid": localUID}}).
		ToSql()
}
