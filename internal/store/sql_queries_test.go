package store

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-syncml/internal/config"
	"github.com/MKhiriev/go-syncml/internal/logger"
	"github.com/MKhiriev/go-syncml/models"
)

func newQueryDB(driver string) *DB {
	return NewDB(&sql.DB{}, driver, logger.Nop())
}

// ─────────────────────────────────────────────────────────────────────────────
// Placeholder formats
// ─────────────────────────────────────────────────────────────────────────────

func TestQueries_SQLitePlaceholders(t *testing.T) {
	db := newQueryDB(config.DriverSQLite)

	query, args, err := db.itemExistsQuery("./contacts", "k1")
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM sync_items WHERE (source_uri = ? AND item_key = ?)", query)
	assert.Equal(t, []any{"./contacts", "k1"}, args)
}

func TestQueries_PostgresPlaceholders(t *testing.T) {
	db := newQueryDB(config.DriverPostgres)

	query, args, err := db.itemExistsQuery("./contacts", "k1")
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM sync_items WHERE (source_uri = $1 AND item_key = $2)", query)
	assert.Equal(t, []any{"./contacts", "k1"}, args)
}

// ─────────────────────────────────────────────────────────────────────────────
// Item queries
// ─────────────────────────────────────────────────────────────────────────────

func TestQueries_Items(t *testing.T) {
	db := newQueryDB(config.DriverPostgres)
	item := models.StorageItem{Key: "k1", ParentKey: "p1", Type: "text/x-vcard", Format: "b64", Data: []byte("data")}

	t.Run("count", func(t *testing.T) {
		query, args, err := db.countItemsQuery("./contacts")
		require.NoError(t, err)
		assert.Equal(t, "SELECT COUNT(*) FROM sync_items WHERE source_uri = $1", query)
		assert.Equal(t, []any{"./contacts"}, args)
	})

	t.Run("find by hash", func(t *testing.T) {
		query, args, err := db.findItemByHashQuery("./contacts", "h1")
		require.NoError(t, err)
		assert.Equal(t, "SELECT item_key FROM sync_items WHERE (source_uri = $1 AND content_hash = $2) LIMIT 1", query)
		assert.Equal(t, []any{"./contacts", "h1"}, args)
	})

	t.Run("insert", func(t *testing.T) {
		query, args, err := db.insertItemQuery("./contacts", "k1", "h1", item)
		require.NoError(t, err)
		assert.Equal(t, "INSERT INTO sync_items (source_uri,item_key,parent_key,content_type,format,data,content_hash) VALUES ($1,$2,$3,$4,$5,$6,$7)", query)
		assert.Equal(t, []any{"./contacts", "k1", "p1", "text/x-vcard", "b64", []byte("data"), "h1"}, args)
	})

	t.Run("update", func(t *testing.T) {
		query, args, err := db.updateItemQuery("./contacts", "h1", item)
		require.NoError(t, err)
		assert.Equal(t, "UPDATE sync_items SET parent_key = $1, content_type = $2, format = $3, data = $4, content_hash = $5, updated_at = CURRENT_TIMESTAMP WHERE (source_uri = $6 AND item_key = $7)", query)
		assert.Len(t, args, 7)
	})

	t.Run("delete", func(t *testing.T) {
		query, args, err := db.deleteItemQuery("./contacts", "k1")
		require.NoError(t, err)
		assert.Equal(t, "DELETE FROM sync_items WHERE (source_uri = $1 AND item_key = $2)", query)
		assert.Equal(t, []any{"./contacts", "k1"}, args)
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Mapping queries
// ─────────────────────────────────────────────────────────────────────────────

func TestQueries_Mappings(t *testing.T) {
	db := newQueryDB(config.DriverSQLite)

	t.Run("load", func(t *testing.T) {
		query, args, err := db.loadMappingsQuery("./contacts")
		require.NoError(t, err)
		assert.Equal(t, "SELECT remote_uid, local_uid FROM uid_mappings WHERE source_uri = ? ORDER BY remote_uid", query)
		assert.Equal(t, []any{"./contacts"}, args)
	})

	t.Run("save upserts", func(t *testing.T) {
		query, args, err := db.saveMappingQuery("./contacts", models.UIDMapping{RemoteUID: "r1", LocalUID: "l1"})
		require.NoError(t, err)
		assert.Equal(t, "INSERT INTO uid_mappings (source_uri,remote_uid,local_uid) VALUES (?,?,?) ON CONFLICT (source_uri, remote_uid) DO UPDATE SET local_uid = excluded.local_uid", query)
		assert.Equal(t, []any{"./contacts", "r1", "l1"}, args)
	})

	t.Run("delete", func(t *testing.T) {
		query, args, err := db.deleteMappingQuery("./contacts", "l1")
		require.NoError(t, err)
		assert.Equal(t, "DELETE FROM uid_mappings WHERE (source_uri = ? AND local_uid = ?)", query)
		assert.Equal(t, []any{"./contacts", "l1"}, args)
	})
}
