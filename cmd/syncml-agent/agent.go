// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-syncml/internal/logger"
	"github.com/MKhiriev/go-syncml/internal/response"
	"github.com/MKhiriev/go-syncml/internal/service"
	"github.com/MKhiriev/go-syncml/internal/store"
	"github.com/MKhiriev/go-syncml/models"
)

var (
	// ErrNoBatchFile is returned when no batch file is configured.
	ErrNoBatchFile = errors.New("no batch file configured")

	// ErrReadingBatch is returned when the batch file cannot be read or decoded.
	ErrReadingBatch = errors.New("error reading batch file")
)

// agent replays one batch against a single sync target.
type agent struct {
	services *service.Services
	target   service.SyncTarget
	storage  store.StorageHandler
	logger   *logger.Logger
}

func newAgent(services *service.Services, target service.SyncTarget, storage store.StorageHandler, logger *logger.Logger) *agent {
	return &agent{
		services: services,
		target:   target,
		storage:  storage,
		logger:   logger,
	}
}

// replay processes inbound statuses first, then Map commands, then Sync
// packages. A status that aborts the session leaves every Sync unprocessed.
func (a *agent) replay(ctx context.Context, batch models.Batch, resolver store.ConflictResolver) models.BatchReport {
	var report models.BatchReport
	sink := &eventLog{logger: a.logger}

	for _, status := range batch.Statuses {
		events := a.services.StatusHandler.HandleStatus(status)
		service.DispatchEvents(events, sink)
		report.Events = append(report.Events, events...)
	}

	for _, m := range batch.Maps {
		report.MapCodes = append(report.MapCodes, a.services.CommandHandler.HandleMap(ctx, m, a.target))
	}

	gen := response.NewGenerator()
	for _, params := range batch.Syncs {
		if sink.aborted {
			a.logger.Warn().Str("func", "*agent.replay").
				Int("cmd_id", params.CmdID).
				Msg("session aborted, skipping sync")
			continue
		}
		a.services.CommandHandler.HandleSync(ctx, params, a.target, a.storage, gen, resolver)
	}

	report.Statuses = gen.Statuses()
	report.Packages = gen.Packages()
	report.UIDMappings = a.target.UIDMappings()
	return report
}

func readBatch(path string) (models.Batch, error) {
	var batch models.Batch
	if path == "" {
		return batch, ErrNoBatchFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return batch, fmt.Errorf("%w: %w", ErrReadingBatch, err)
	}
	if err = json.Unmarshal(data, &batch); err != nil {
		return batch, fmt.Errorf("%w: %w", ErrReadingBatch, err)
	}

	return batch, nil
}

// eventLog is the session layer of the agent: it has no session to drive, so
// it logs what it is told.
type eventLog struct {
	logger  *logger.Logger
	aborted bool
}

func (e *eventLog) ItemAcknowledged(msgRef, cmdRef int, sourceRef string) {
	e.logger.Debug().Str("func", "*eventLog.ItemAcknowledged").
		Int("msg_ref", msgRef).
		Int("cmd_ref", cmdRef).
		Str("source_ref", sourceRef).
		Msg("item acknowledged")
}

func (e *eventLog) MappingAcknowledged(msgRef, cmdRef int) {
	e.logger.Debug().Str("func", "*eventLog.MappingAcknowledged").
		Int("msg_ref", msgRef).
		Int("cmd_ref", cmdRef).
		Msg("mapping acknowledged")
}

func (e *eventLog) AbortSync(code models.StatusCode) {
	e.aborted = true
	e.logger.Warn().Str("func", "*eventLog.AbortSync").
		Int("code", int(code)).
		Msg("peer aborted sync")
}
