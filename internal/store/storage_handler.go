// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-syncml/internal/logger"
	"github.com/MKhiriev/go-syncml/models"
)

type stagedItem struct {
	id   models.ItemID
	item models.StorageItem
}

type stagedDelete struct {
	id  models.ItemID
	key string
}

// storageHandler is the in-memory implementation of [StorageHandler]. Staged
// changes live until the matching Commit* call; the large-object slot lives
// for the lifetime of the handler so chunks can span several batches.
type storageHandler struct {
	lo       largeObject
	added    []stagedItem
	replaced []stagedItem
	deleted  []stagedDelete
	staged   map[models.ItemID]struct{}
	logger   *logger.Logger
}

// NewStorageHandler constructs an empty [StorageHandler].
func NewStorageHandler(log *logger.Logger) StorageHandler {
	return &storageHandler{
		staged: make(map[models.ItemID]struct{}),
		logger: log,
	}
}

func (h *storageHandler) BuildingLargeObject() bool {
	return h.lo.building()
}

func (h *storageHandler) StartLargeObjectAdd(plugin StoragePlugin, remoteKey, parentKey, itemType, format string, size int64) bool {
	return h.startLargeObject(largeObjectBuildingAdd, plugin, remoteKey, parentKey, itemType, format, size)
}

func (h *storageHandler) StartLargeObjectReplace(plugin StoragePlugin, localKey, parentKey, itemType, format string, size int64) bool {
	return h.startLargeObject(largeObjectBuildingReplace, plugin, localKey, parentKey, itemType, format, size)
}

func (h *storageHandler) startLargeObject(state largeObjectState, plugin StoragePlugin, key, parentKey, itemType, format string, size int64) bool {
	if h.lo.building() {
		h.logger.Warn().Str("func", "*storageHandler.startLargeObject").
			Str("key", key).
			Str("current_key", h.lo.key).
			Msg("large object already in progress")
		return false
	}

	if err := h.lo.start(state, plugin, key, parentKey, itemType, format, size); err != nil {
		h.logger.Err(err).Str("func", "*storageHandler.startLargeObject").
			Str("key", key).
			Int64("size", size).
			Msg("cannot start large object")
		return false
	}

	h.logger.Debug().Str("func", "*storageHandler.startLargeObject").
		Str("state", state.String()).
		Str("key", key).
		Int64("size", size).
		Msg("large object started")
	return true
}

func (h *storageHandler) AppendLargeObjectData(data []byte) bool {
	if err := h.lo.append(data); err != nil {
		h.logger.Err(err).Str("func", "*storageHandler.AppendLargeObjectData").
			Int("chunk_size", len(data)).
			Msg("cannot append large object data")
		return false
	}
	return true
}

func (h *storageHandler) MatchesLargeObject(key string) bool {
	return h.lo.matches(key)
}

// FinishLargeObject stages the assembled object under id. The slot is idle
// afterwards whether or not staging succeeded.
func (h *storageHandler) FinishLargeObject(id models.ItemID) bool {
	item, state, err := h.lo.finish()
	if err != nil {
		h.logger.Err(err).Str("func", "*storageHandler.FinishLargeObject").Msg("cannot finish large object")
		return false
	}

	if !h.markStaged(id) {
		return false
	}

	if state == largeObjectBuildingReplace {
		h.replaced = append(h.replaced, stagedItem{id: id, item: item})
	} else {
		h.added = append(h.added, stagedItem{id: id, item: item})
	}
	return true
}

func (h *storageHandler) AddItem(id models.ItemID, plugin StoragePlugin, remoteKey, parentKey, itemType, format string, data []byte) bool {
	if plugin == nil || !h.markStaged(id) {
		return false
	}

	h.added = append(h.added, stagedItem{id: id, item: models.StorageItem{
		Key:       remoteKey,
		ParentKey: parentKey,
		Type:      itemType,
		Format:    format,
		Data:      data,
	}})
	return true
}

// ReplaceItem stages a replace. An empty localKey is accepted: such an item
// is unknown locally and is committed as an add.
func (h *storageHandler) ReplaceItem(id models.ItemID, plugin StoragePlugin, localKey, parentKey, itemType, format string, data []byte) bool {
	if plugin == nil || !h.markStaged(id) {
		return false
	}

	h.replaced = append(h.replaced, stagedItem{id: id, item: models.StorageItem{
		Key:       localKey,
		ParentKey: parentKey,
		Type:      itemType,
		Format:    format,
		Data:      data,
	}})
	return true
}

func (h *storageHandler) DeleteItem(id models.ItemID, localKey string) bool {
	if localKey == "" {
		h.logger.Err(ErrEmptyItemKey).Str("func", "*storageHandler.DeleteItem").
			Int("cmd_id", id.CmdID).
			Int("item_index", id.ItemIndex).
			Msg("cannot stage delete")
		return false
	}
	if !h.markStaged(id) {
		return false
	}

	h.deleted = append(h.deleted, stagedDelete{id: id, key: localKey})
	return true
}

func (h *storageHandler) markStaged(id models.ItemID) bool {
	if _, ok := h.staged[id]; ok {
		h.logger.Err(ErrItemAlreadyStaged).Str("func", "*storageHandler.markStaged").
			Int("cmd_id", id.CmdID).
			Int("item_index", id.ItemIndex).
			Msg("cannot stage item")
		return false
	}
	h.staged[id] = struct{}{}
	return true
}

// CommitAddedItems writes the staged adds through plugin.
func (h *storageHandler) CommitAddedItems(ctx context.Context, plugin StoragePlugin) map[models.ItemID]models.CommitResult {
	staged := h.added
	h.added = nil
	h.unmark(staged)

	out := make(map[models.ItemID]models.CommitResult, len(staged))
	h.commitAdds(ctx, plugin, staged, out)
	return out
}

// CommitReplacedItems writes the staged replaces through plugin. When
// resolver reports a conflict the local side may keep its version, in which
// case nothing is written. Replaces of keys the plugin does not hold are
// committed as adds.
func (h *storageHandler) CommitReplacedItems(ctx context.Context, plugin StoragePlugin, resolver ConflictResolver) map[models.ItemID]models.CommitResult {
	log := logger.FromContext(ctx)

	staged := h.replaced
	h.replaced = nil
	h.unmark(staged)

	out := make(map[models.ItemID]models.CommitResult, len(staged))
	var toAdd, toReplace []stagedItem
	conflicts := make(map[models.ItemID]models.ConflictResult)

	for _, s := range staged {
		key := s.item.Key

		conflict := models.ConflictNone
		if resolver != nil && key != "" && resolver.IsConflict(key, false) {
			if resolver.LocalSideWins() {
				out[s.id] = models.CommitResult{Status: models.CommitReplaced, Conflict: models.ConflictLocalWin, ItemKey: key}
				continue
			}
			conflict = models.ConflictRemoteWin
		}

		exists := false
		if key != "" {
			var err error
			if exists, err = plugin.Exists(ctx, key); err != nil {
				log.Err(err).Str("func", "*storageHandler.CommitReplacedItems").Str("key", key).Msg("error checking item")
				out[s.id] = models.CommitResult{Status: models.CommitFailed, ItemKey: key}
				continue
			}
		}

		if !exists {
			toAdd = append(toAdd, s)
			continue
		}
		conflicts[s.id] = conflict
		toReplace = append(toReplace, s)
	}

	if len(toReplace) > 0 {
		items := make([]models.StorageItem, len(toReplace))
		for i, s := range toReplace {
			items[i] = s.item
		}
		results := plugin.ReplaceItems(ctx, items)

		for i, s := range toReplace {
			result := pluginResultAt(results, i)
			commit := models.CommitResult{Status: replaceStatus(result.Status), ItemKey: s.item.Key}
			if commit.Status == models.CommitReplaced {
				commit.Conflict = conflicts[s.id]
			}
			out[s.id] = commit
		}
	}

	h.commitAdds(ctx, plugin, toAdd, out)

	return out
}

// CommitDeletedItems deletes the staged keys through plugin, honouring
// resolver the same way CommitReplacedItems does.
func (h *storageHandler) CommitDeletedItems(ctx context.Context, plugin StoragePlugin, resolver ConflictResolver) map[models.ItemID]models.CommitResult {
	staged := h.deleted
	h.deleted = nil
	for _, s := range staged {
		delete(h.staged, s.id)
	}

	out := make(map[models.ItemID]models.CommitResult, len(staged))
	var toDelete []stagedDelete
	conflicts := make(map[models.ItemID]models.ConflictResult)

	for _, s := range staged {
		conflict := models.ConflictNone
		if resolver != nil && resolver.IsConflict(s.key, true) {
			if resolver.LocalSideWins() {
				out[s.id] = models.CommitResult{Status: models.CommitDeleted, Conflict: models.ConflictLocalWin, ItemKey: s.key}
				continue
			}
			conflict = models.ConflictRemoteWin
		}
		conflicts[s.id] = conflict
		toDelete = append(toDelete, s)
	}

	if len(toDelete) == 0 {
		return out
	}

	keys := make([]string, len(toDelete))
	for i, s := range toDelete {
		keys[i] = s.key
	}
	results := plugin.DeleteItems(ctx, keys)

	for i, s := range toDelete {
		commit := models.CommitResult{ItemKey: s.key}
		switch pluginResultAt(results, i).Status {
		case models.PluginOK:
			commit.Status = models.CommitDeleted
			commit.Conflict = conflicts[s.id]
		case models.PluginNotFound:
			commit.Status = models.CommitNotDeleted
		default:
			commit.Status = models.CommitFailed
		}
		out[s.id] = commit
	}

	return out
}

func (h *storageHandler) commitAdds(ctx context.Context, plugin StoragePlugin, staged []stagedItem, out map[models.ItemID]models.CommitResult) {
	if len(staged) == 0 {
		return
	}

	items := make([]models.StorageItem, len(staged))
	for i, s := range staged {
		items[i] = s.item
	}
	results := plugin.AddItems(ctx, items)

	for i, s := range staged {
		result := pluginResultAt(results, i)
		out[s.id] = models.CommitResult{Status: addStatus(result.Status), ItemKey: result.Key}
	}
}

func (h *storageHandler) unmark(staged []stagedItem) {
	for _, s := range staged {
		delete(h.staged, s.id)
	}
}

// pluginResultAt tolerates plugins that return fewer results than inputs.
func pluginResultAt(results []models.PluginResult, i int) models.PluginResult {
	if i < len(results) {
		return results[i]
	}
	return models.PluginResult{Status: models.PluginError}
}

func addStatus(status models.PluginStatus) models.CommitStatus {
	switch status {
	case models.PluginOK:
		return models.CommitAdded
	default:
		return commonStatus(status)
	}
}

func replaceStatus(status models.PluginStatus) models.CommitStatus {
	switch status {
	case models.PluginOK:
		return models.CommitReplaced
	default:
		return commonStatus(status)
	}
}

func commonStatus(status models.PluginStatus) models.CommitStatus {
	switch status {
	case models.PluginDuplicate:
		return models.CommitDuplicate
	case models.PluginItemTooBig:
		return models.CommitItemTooBig
	case models.PluginNotEnoughSpace:
		return models.CommitNotEnoughSpace
	case models.PluginUnsupportedFormat:
		return models.CommitUnsupportedFormat
	default:
		return models.CommitFailed
	}
}
