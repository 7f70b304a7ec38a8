// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-syncml/internal/store"
	"github.com/MKhiriev/go-syncml/models"
)

// CommandHandler processes inbound Sync and Map commands.
type CommandHandler interface {
	// HandleSync stages every item of params, commits the batch in
	// Add, Replace, Delete order and writes one status per item. resolver is
	// consulted on the server role only.
	HandleSync(ctx context.Context, params models.SyncParams, target SyncTarget, storage store.StorageHandler, response ResponseGenerator, resolver store.ConflictResolver)
	// RejectSync answers every action of params with code without touching
	// storage.
	RejectSync(params models.SyncParams, response ResponseGenerator, code models.StatusCode)
	// HandleMap records the remote↔local pairs of a Map command.
	HandleMap(ctx context.Context, params models.MapParams, target SyncTarget) models.StatusCode
}

// StatusHandler interprets Status elements received from the peer.
type StatusHandler interface {
	HandleStatus(status models.StatusParams) []models.SessionEvent
	HandleRedirection(code models.StatusCode) models.StatusCode
}

// SyncTarget is one data category being synchronized: its storage plugin,
// the database URIs on both sides and the remote↔local UID table.
type SyncTarget interface {
	Plugin() store.StoragePlugin
	SourceDatabase() string
	TargetDatabase() string

	// MapToLocalUID returns the local key mapped to remoteUID, or "" when
	// there is none.
	MapToLocalUID(remoteUID string) string
	AddUIDMapping(ctx context.Context, mapping models.UIDMapping) error
	RemoveUIDMapping(ctx context.Context, localUID string) error
	UIDMappings() []models.UIDMapping
}

// ResponseGenerator collects the status elements and alert packages of the
// outgoing message.
type ResponseGenerator interface {
	AddPackageStatus(params models.SyncParams, code models.StatusCode)
	AddActionStatus(action models.SyncActionData, code models.StatusCode)
	AddItemStatus(action models.SyncActionData, item models.ItemParams, code models.StatusCode)
	AddPackage(alert models.AlertPackage)
}

// SessionEvents receives the session-level reactions produced by
// StatusHandler.
type SessionEvents interface {
	ItemAcknowledged(msgRef, cmdRef int, sourceRef string)
	MappingAcknowledged(msgRef, cmdRef int)
	AbortSync(code models.StatusCode)
}

// CommandHandlerWrapper defines middleware composition for CommandHandler.
type CommandHandlerWrapper interface {
	Wrap(CommandHandler) CommandHandler // returns a decorated CommandHandler applying additional behavior
}
