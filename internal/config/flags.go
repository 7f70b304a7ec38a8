// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"strings"
)

// typeList collects a comma separated list of content types.
// It implements the flag.Value interface.
type typeList []string

func (f *typeList) String() string {
	if f == nil {
		return ""
	}
	return strings.Join(*f, ",")
}

func (f *typeList) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*f = append(*f, part)
		}
	}
	return nil
}

// ParseFlags parses the configuration flags found in args.
//
// Flags:
//
//	-role client|server
//	-log-level zerolog level name
//	-driver database driver (sqlite3|pgx)
//	-d database DSN
//	-source local database URI of the category
//	-target remote database URI of the category
//	-max-object-size largest accepted item in bytes
//	-max-items item quota of the category
//	-types comma separated accepted content types
//	-conflict-policy prefer-local|prefer-remote
//	-batch JSON-encoded Sync package to replay
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("syncml-agent", flag.ContinueOnError)

	var (
		role, logLevel            string
		driver, dsn               string
		sourceURI, targetURI      string
		maxObjectSize, maxItems   int64
		types                     typeList
		conflictPolicy, batchFile string
		jsonConfigPath            string
	)

	fs.StringVar(&role, "role", "", "SyncML role (client|server)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&driver, "driver", "", "Database driver (sqlite3|pgx)")
	fs.StringVar(&dsn, "d", "", "Database DSN")
	fs.StringVar(&sourceURI, "source", "", "Local database URI")
	fs.StringVar(&targetURI, "target", "", "Remote database URI")
	fs.Int64Var(&maxObjectSize, "max-object-size", 0, "Largest accepted item in bytes")
	fs.Int64Var(&maxItems, "max-items", 0, "Item quota")
	fs.Var(&types, "types", "Comma separated accepted content types")
	fs.StringVar(&conflictPolicy, "conflict-policy", "", "Conflict policy (prefer-local|prefer-remote)")
	fs.StringVar(&batchFile, "batch", "", "JSON-encoded Sync package to replay")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Role:     role,
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: driver,
				DSN:    dsn,
			},
			Plugin: Plugin{
				SourceURI:      sourceURI,
				TargetURI:      targetURI,
				MaxObjectSize:  maxObjectSize,
				MaxItems:       maxItems,
				SupportedTypes: []string(types),
			},
		},
		Sync: Sync{
			ConflictPolicy: conflictPolicy,
			BatchFile:      batchFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
