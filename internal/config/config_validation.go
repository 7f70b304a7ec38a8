// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DriverSQLite
	}
	if cfg.Sync.ConflictPolicy == "" {
		cfg.Sync.ConflictPolicy = PolicyPreferRemote
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.Role {
	case RoleClient, RoleServer:
	default:
		return fmt.Errorf("%w: unknown role %q", ErrInvalidAppConfigs, cfg.App.Role)
	}

	switch cfg.Storage.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.Plugin.SourceURI == "" {
		return fmt.Errorf("%w: empty source URI", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.Plugin.MaxObjectSize < 0 || cfg.Storage.Plugin.MaxItems < 0 {
		return fmt.Errorf("%w: negative plugin limits", ErrInvalidStorageConfigs)
	}

	switch cfg.Sync.ConflictPolicy {
	case PolicyPreferLocal, PolicyPreferRemote:
	default:
		return fmt.Errorf("%w: unknown conflict policy %q", ErrInvalidSyncConfigs, cfg.Sync.ConflictPolicy)
	}

	return nil
}
