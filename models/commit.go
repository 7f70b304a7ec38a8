// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CommitStatus is the outcome of committing one staged item to storage.
type CommitStatus int

const (
	CommitFailed CommitStatus = iota
	CommitAdded
	CommitReplaced
	CommitDeleted
	CommitDuplicate
	CommitNotDeleted
	CommitUnsupportedFormat
	CommitItemTooBig
	CommitNotEnoughSpace
)

// ConflictResult tells which side won when a conflict was detected.
type ConflictResult int

const (
	ConflictNone ConflictResult = iota
	ConflictLocalWin
	ConflictRemoteWin
)

// CommitResult is the outcome of committing one staged item.
type CommitResult struct {
	Status   CommitStatus
	Conflict ConflictResult
	// ItemKey is the local key the outcome refers to (the new key for adds).
	ItemKey string
}

// StorageItem is an item handed to a storage plugin.
type StorageItem struct {
	Key       string
	ParentKey string
	Type      string
	Format    string
	Data      []byte
}

// PluginStatus is the per-item result reported by a storage plugin.
type PluginStatus int

const (
	PluginOK PluginStatus = iota
	PluginError
	PluginDuplicate
	PluginNotFound
	PluginItemTooBig
	PluginNotEnoughSpace
	PluginUnsupportedFormat
)

// PluginResult is the outcome of one item in a storage plugin batch call.
// Key carries the key of the stored item (the generated key for adds).
type PluginResult struct {
	Key    string
	Status PluginStatus
}
