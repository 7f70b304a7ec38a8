// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"

	"github.com/MKhiriev/go-syncml/models"
)

// largeObjectState is the state of the large-object slot.
type largeObjectState int

const (
	largeObjectIdle largeObjectState = iota
	largeObjectBuildingAdd
	largeObjectBuildingReplace
)

func (s largeObjectState) String() string {
	switch s {
	case largeObjectBuildingAdd:
		return "building-add"
	case largeObjectBuildingReplace:
		return "building-replace"
	default:
		return "idle"
	}
}

// largeObject reassembles one item delivered in chunks across messages.
// The zero value is an idle slot.
type largeObject struct {
	state     largeObjectState
	key       string
	parentKey string
	itemType  string
	format    string
	size      int64
	data      bytes.Buffer
}

func (lo *largeObject) building() bool {
	return lo.state != largeObjectIdle
}

// start moves an idle slot into state. key identifies the object for the
// final chunk and must not be empty. size is the declared total size and
// must fit the plugin's maximum object size.
func (lo *largeObject) start(state largeObjectState, plugin StoragePlugin, key, parentKey, itemType, format string, size int64) error {
	if lo.building() {
		return ErrLargeObjectInProgress
	}
	if key == "" {
		return ErrEmptyItemKey
	}
	if size <= 0 {
		return ErrLargeObjectSizeRequired
	}
	if limit := plugin.MaxObjectSize(); limit > 0 && size > limit {
		return ErrLargeObjectTooBig
	}

	lo.state = state
	lo.key = key
	lo.parentKey = parentKey
	lo.itemType = itemType
	lo.format = format
	lo.size = size
	lo.data.Reset()

	return nil
}

// append adds a chunk. A chunk that would overflow the declared size
// discards the whole object and returns the slot to idle.
func (lo *largeObject) append(chunk []byte) error {
	if !lo.building() {
		return ErrNoLargeObject
	}
	if int64(lo.data.Len())+int64(len(chunk)) > lo.size {
		lo.reset()
		return ErrLargeObjectOverflow
	}

	lo.data.Write(chunk)
	return nil
}

func (lo *largeObject) matches(key string) bool {
	return lo.building() && lo.key == key
}

// finish returns the assembled item together with the state it was built
// in and resets the slot.
func (lo *largeObject) finish() (models.StorageItem, largeObjectState, error) {
	if !lo.building() {
		return models.StorageItem{}, largeObjectIdle, ErrNoLargeObject
	}

	item := models.StorageItem{
		Key:       lo.key,
		ParentKey: lo.parentKey,
		Type:      lo.itemType,
		Format:    lo.format,
		Data:      bytes.Clone(lo.data.Bytes()),
	}
	state := lo.state
	lo.reset()

	return item, state, nil
}

func (lo *largeObject) reset() {
	lo.state = largeObjectIdle
	lo.key = ""
	lo.parentKey = ""
	lo.itemType = ""
	lo.format = ""
	lo.size = 0
	lo.data.Reset()
}
