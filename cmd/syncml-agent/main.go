// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/go-syncml/internal/config"
	"github.com/MKhiriev/go-syncml/internal/logger"
	"github.com/MKhiriev/go-syncml/internal/service"
	"github.com/MKhiriev/go-syncml/internal/store"
	"github.com/MKhiriev/go-syncml/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.App.Role, cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := log.WithContext(context.Background())
	ctx = utils.WithSessionID(ctx, utils.NewUUIDGenerator().Generate())

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	batch, err := readBatch(cfg.Sync.BatchFile)
	if err != nil {
		log.Fatal().Err(err).Msg("error reading batch")
	}

	target, err := service.NewSyncTarget(ctx, storages.Items, cfg.Storage.Plugin.TargetURI, storages.UIDMappings, log.Component("sync_target"))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating sync target")
	}

	services := service.NewServices(*cfg, log)
	agent := newAgent(services, target, store.NewStorageHandler(log.Component("storage_handler")), log)

	report := agent.replay(ctx, batch, service.NewConflictResolver(batch.LocalChanges, cfg.Sync.ConflictPolicy))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err = enc.Encode(report); err != nil {
		log.Fatal().Err(err).Msg("error writing report")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
