// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
)

// StructuredConfig is the top-level configuration container for the sync
// agent. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings: the protocol role and log level.
	App App `envPrefix:"APP_"`

	// Storage holds the database connection and storage plugin settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds command-processing settings such as the conflict policy.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Role is the SyncML role of this agent: "client" or "server".
	// Env: APP_ROLE
	Role string `env:"ROLE"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration of the local item store.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Plugin describes the data category served by the storage plugin.
	Plugin Plugin `envPrefix:"PLUGIN_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// Driver is the database/sql driver name: "sqlite3" or "pgx".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the data source name passed to sql.Open
	// (a file path for sqlite3, a postgres:// URL for pgx).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Plugin holds the settings of the storage plugin for one data category.
type Plugin struct {
	// SourceURI is the local database URI of the category (e.g. "./contacts").
	// Env: STORAGE_PLUGIN_SOURCE_URI
	SourceURI string `env:"SOURCE_URI"`

	// TargetURI is the remote database URI the category syncs with.
	// Env: STORAGE_PLUGIN_TARGET_URI
	TargetURI string `env:"TARGET_URI"`

	// MaxObjectSize is the largest item, in bytes, the plugin accepts.
	// Zero means unlimited.
	// Env: STORAGE_PLUGIN_MAX_OBJECT_SIZE
	MaxObjectSize int64 `env:"MAX_OBJECT_SIZE"`

	// MaxItems is the item quota of the category. Zero means unlimited.
	// Env: STORAGE_PLUGIN_MAX_ITEMS
	MaxItems int64 `env:"MAX_ITEMS"`

	// SupportedTypes lists accepted content types. Empty accepts any.
	// Env: STORAGE_PLUGIN_SUPPORTED_TYPES (comma separated)
	SupportedTypes []string `env:"SUPPORTED_TYPES" envSeparator:","`
}

// Sync holds command-processing settings.
type Sync struct {
	// ConflictPolicy selects the winner of a detected conflict:
	// "prefer-local" or "prefer-remote". Only used in the server role.
	// Env: SYNC_CONFLICT_POLICY
	ConflictPolicy string `env:"CONFLICT_POLICY"`

	// BatchFile is the path of a JSON-encoded Sync package to replay.
	// Env: SYNC_BATCH_FILE
	BatchFile string `env:"BATCH_FILE"`
}

// Supported values.
const (
	RoleClient = "client"
	RoleServer = "server"

	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"

	PolicyPreferLocal  = "prefer-local"
	PolicyPreferRemote = "prefer-remote"
)

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
