// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-syncml/internal/logger"
	"github.com/MKhiriev/go-syncml/internal/store"
	"github.com/MKhiriev/go-syncml/internal/utils"
	"github.com/MKhiriev/go-syncml/models"
)

// commandHandler is the role-aware implementation of [CommandHandler].
//
// Per-batch state (the final code of every item) is carried in an explicit
// accumulator through staging, commit and result mapping, so one handler can
// serve many batches.
type commandHandler struct {
	role   models.Role
	logger *logger.Logger
}

// NewCommandHandler constructs a [CommandHandler] acting as role.
func NewCommandHandler(role models.Role, logger *logger.Logger) CommandHandler {
	return &commandHandler{
		role:   role,
		logger: logger,
	}
}

// itemCodes holds the final status code of every item that is already
// decided. Items absent from it are waiting for their commit result.
type itemCodes map[models.ItemID]models.StatusCode

func (h *commandHandler) HandleSync(ctx context.Context, params models.SyncParams, target SyncTarget, storage store.StorageHandler, response ResponseGenerator, resolver store.ConflictResolver) {
	log := h.batchLogger(ctx, params.CmdID)

	if !params.NoResp {
		response.AddPackageStatus(params, models.Success)
	}

	codes := make(itemCodes)
	for _, action := range params.Actions {
		for i, item := range action.Items {
			id := models.ItemID{CmdID: action.CmdID, ItemIndex: i}
			if code, final := h.stageItem(log, id, action, item, target, storage, response); final {
				codes[id] = code
			}
		}
	}

	results := h.commit(ctx, log, target.Plugin(), storage, resolver)
	h.mapResults(ctx, log, params, target, codes, results)

	for _, action := range params.Actions {
		if action.NoResp {
			continue
		}
		for i, item := range action.Items {
			response.AddItemStatus(action, item, codes[models.ItemID{CmdID: action.CmdID, ItemIndex: i}])
		}
	}
}

func (h *commandHandler) RejectSync(params models.SyncParams, response ResponseGenerator, code models.StatusCode) {
	h.logger.Debug().Str("func", "*commandHandler.RejectSync").
		Int("cmd_id", params.CmdID).
		Int("code", int(code)).
		Msg("rejecting sync")

	if !params.NoResp {
		response.AddPackageStatus(params, code)
	}
	for _, action := range params.Actions {
		if !action.NoResp {
			response.AddActionStatus(action, code)
		}
	}
}

// HandleMap records every map item as remote=Source, local=Target.
func (h *commandHandler) HandleMap(ctx context.Context, params models.MapParams, target SyncTarget) models.StatusCode {
	log := h.batchLogger(ctx, params.CmdID)

	code := models.Success
	for _, item := range params.MapItems {
		mapping := models.UIDMapping{RemoteUID: item.Source, LocalUID: item.Target}
		if err := target.AddUIDMapping(ctx, mapping); err != nil {
			log.Err(err).Str("func", "*commandHandler.HandleMap").
				Str("remote_uid", item.Source).
				Str("local_uid", item.Target).
				Msg("cannot record mapping")
			code = models.CommandFailed
		}
	}

	return code
}

// stageItem hands one item to storage. final is true when the returned code
// is the item's final status; otherwise the item waits for the commit.
func (h *commandHandler) stageItem(log *logger.Logger, id models.ItemID, action models.SyncActionData, item models.ItemParams, target SyncTarget, storage store.StorageHandler, response ResponseGenerator) (code models.StatusCode, final bool) {
	itemType := firstNonEmpty(item.Meta.Type, action.Meta.Type)
	format := firstNonEmpty(item.Meta.Format, action.Meta.Format)

	log.Debug().Str("func", "*commandHandler.stageItem").
		Str("action", string(action.Action)).
		Int("cmd_id", id.CmdID).
		Int("item_index", id.ItemIndex).
		Bool("more_data", item.MoreData).
		Msg("processing item")

	switch action.Action {
	case models.CommandAdd, models.CommandReplace:
		key := h.itemKey(action.Action, item, target)
		parent := h.parentKey(action.Action, item, target)

		if item.MoreData {
			return h.stageChunk(log, id, action.Action, item, key, parent, itemType, format, target, storage, response)
		}
		if storage.BuildingLargeObject() {
			return h.stageLastChunk(log, id, item, key, target, storage, response)
		}

		var staged bool
		if action.Action == models.CommandAdd {
			staged = storage.AddItem(id, target.Plugin(), key, parent, itemType, format, item.Data)
		} else {
			staged = storage.ReplaceItem(id, target.Plugin(), key, parent, itemType, format, item.Data)
		}
		if !staged {
			return models.CommandFailed, true
		}
		return 0, false

	case models.CommandDelete:
		if !storage.DeleteItem(id, h.itemKey(action.Action, item, target)) {
			return models.CommandFailed, true
		}
		return 0, false

	default:
		return models.NotSupported, true
	}
}

// stageChunk handles a non-final chunk of a large object, starting the
// object when none is being built.
func (h *commandHandler) stageChunk(log *logger.Logger, id models.ItemID, kind models.CommandKind, item models.ItemParams, key, parent, itemType, format string, target SyncTarget, storage store.StorageHandler, response ResponseGenerator) (models.StatusCode, bool) {
	if !storage.BuildingLargeObject() {
		if item.Meta.Size == 0 {
			log.Error().Str("func", "*commandHandler.stageChunk").
				Int("cmd_id", id.CmdID).
				Int("item_index", id.ItemIndex).
				Msg("chunked item without declared size")
			return models.SizeRequired, true
		}

		var started bool
		if kind == models.CommandAdd {
			started = storage.StartLargeObjectAdd(target.Plugin(), key, parent, itemType, format, item.Meta.Size)
		} else {
			started = storage.StartLargeObjectReplace(target.Plugin(), key, parent, itemType, format, item.Meta.Size)
		}
		if !started {
			return models.CommandFailed, true
		}
	}

	if !storage.AppendLargeObjectData(item.Data) {
		return models.CommandFailed, true
	}

	response.AddPackage(models.AlertPackage{
		Code:           models.AlertNextMessage,
		SourceDatabase: target.SourceDatabase(),
		TargetDatabase: target.TargetDatabase(),
	})
	return models.ChunkedItemAccepted, true
}

// stageLastChunk completes the large object being built. A final chunk for
// another key leaves the object untouched.
func (h *commandHandler) stageLastChunk(log *logger.Logger, id models.ItemID, item models.ItemParams, key string, target SyncTarget, storage store.StorageHandler, response ResponseGenerator) (models.StatusCode, bool) {
	if !storage.MatchesLargeObject(key) {
		log.Warn().Str("func", "*commandHandler.stageLastChunk").
			Int("cmd_id", id.CmdID).
			Int("item_index", id.ItemIndex).
			Str("key", key).
			Msg("item does not continue the large object in progress")

		response.AddPackage(models.AlertPackage{
			Code:           models.AlertNoEndOfData,
			SourceDatabase: target.SourceDatabase(),
			TargetDatabase: target.TargetDatabase(),
		})
		return models.CommandNotAllowed, true
	}

	if !storage.AppendLargeObjectData(item.Data) || !storage.FinishLargeObject(id) {
		return models.CommandFailed, true
	}
	return 0, false
}

// itemKey resolves the storage key of an item. Adds carry the remote key;
// replaces and deletes address the local item.
func (h *commandHandler) itemKey(kind models.CommandKind, item models.ItemParams, target SyncTarget) string {
	switch {
	case kind == models.CommandAdd:
		return item.Source
	case h.role == models.RoleClient:
		return item.Target
	default:
		return target.MapToLocalUID(item.Source)
	}
}

// parentKey resolves the local parent of an added or replaced item. The
// server maps SourceParent of a replace even when it is empty.
func (h *commandHandler) parentKey(kind models.CommandKind, item models.ItemParams, target SyncTarget) string {
	if h.role == models.RoleServer && kind == models.CommandReplace {
		return target.MapToLocalUID(item.SourceParent)
	}
	if item.SourceParent != "" {
		return target.MapToLocalUID(item.SourceParent)
	}
	if h.role == models.RoleClient {
		return item.TargetParent
	}
	return ""
}

// commit runs the three commit phases in fixed order. Only the server
// resolves conflicts; the client defers to it.
func (h *commandHandler) commit(ctx context.Context, log *logger.Logger, plugin store.StoragePlugin, storage store.StorageHandler, resolver store.ConflictResolver) map[models.ItemID]models.CommitResult {
	if h.role != models.RoleServer && resolver != nil {
		log.Debug().Str("func", "*commandHandler.commit").Msg("ignoring conflict resolver on client")
		resolver = nil
	}

	results := storage.CommitAddedItems(ctx, plugin)
	if results == nil {
		results = make(map[models.ItemID]models.CommitResult)
	}
	mergeResults(results, storage.CommitReplacedItems(ctx, plugin, resolver))
	mergeResults(results, storage.CommitDeletedItems(ctx, plugin, resolver))

	return results
}

// mergeResults copies src into dst without overwriting existing keys.
func mergeResults(dst, src map[models.ItemID]models.CommitResult) {
	for id, result := range src {
		if _, ok := dst[id]; !ok {
			dst[id] = result
		}
	}
}

// mapResults fills codes for every item still waiting for its commit result
// and applies the resulting UID table changes.
func (h *commandHandler) mapResults(ctx context.Context, log *logger.Logger, params models.SyncParams, target SyncTarget, codes itemCodes, results map[models.ItemID]models.CommitResult) {
	for _, action := range params.Actions {
		for i, item := range action.Items {
			id := models.ItemID{CmdID: action.CmdID, ItemIndex: i}
			if _, done := codes[id]; done {
				continue
			}

			result, ok := results[id]
			if !ok {
				log.Error().Str("func", "*commandHandler.mapResults").
					Int("cmd_id", id.CmdID).
					Int("item_index", id.ItemIndex).
					Msg("no commit result for staged item")
				codes[id] = models.CommandFailed
				continue
			}

			code, effect := commitResultCode(result, h.role)
			codes[id] = code

			var err error
			switch effect {
			case mappingAdd:
				err = target.AddUIDMapping(ctx, models.UIDMapping{RemoteUID: item.Source, LocalUID: result.ItemKey})
			case mappingRemove:
				err = target.RemoveUIDMapping(ctx, result.ItemKey)
			}
			if err != nil {
				log.Err(err).Str("func", "*commandHandler.mapResults").
					Int("cmd_id", id.CmdID).
					Int("item_index", id.ItemIndex).
					Str("key", result.ItemKey).
					Msg("cannot update uid mapping")
			}
		}
	}
}

func (h *commandHandler) batchLogger(ctx context.Context, cmdID int) *logger.Logger {
	l := h.logger.With().Int("sync_cmd_id", cmdID)
	if sessionID, ok := utils.GetSessionIDFromContext(ctx); ok {
		l = l.Str("session_id", sessionID)
	}
	return &logger.Logger{Logger: l.Logger()}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
