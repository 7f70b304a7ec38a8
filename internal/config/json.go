// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig is the on-disk shape of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		Role     string `json:"role"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Plugin struct {
			SourceURI      string   `json:"source_uri"`
			TargetURI      string   `json:"target_uri"`
			MaxObjectSize  int64    `json:"max_object_size"`
			MaxItems       int64    `json:"max_items"`
			SupportedTypes []string `json:"supported_types"`
		} `json:"plugin,omitempty"`
	} `json:"storage,omitempty"`

	Sync struct {
		ConflictPolicy string `json:"conflict_policy"`
		BatchFile      string `json:"batch_file"`
	} `json:"sync,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Role:     jsonCfg.App.Role,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Plugin: Plugin{
				SourceURI:      jsonCfg.Storage.Plugin.SourceURI,
				TargetURI:      jsonCfg.Storage.Plugin.TargetURI,
				MaxObjectSize:  jsonCfg.Storage.Plugin.MaxObjectSize,
				MaxItems:       jsonCfg.Storage.Plugin.MaxItems,
				SupportedTypes: jsonCfg.Storage.Plugin.SupportedTypes,
			},
		},
		Sync: Sync{
			ConflictPolicy: jsonCfg.Sync.ConflictPolicy,
			BatchFile:      jsonCfg.Sync.BatchFile,
		},
	}

	return cfg, nil
}
