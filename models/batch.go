// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Batch is one inbound message as replayed by the agent: the commands of a
// single data category plus the local change set used for conflict detection.
type Batch struct {
	LocalChanges LocalChanges   `json:"local_changes"`
	Syncs        []SyncParams   `json:"syncs,omitempty"`
	Maps         []MapParams    `json:"maps,omitempty"`
	Statuses     []StatusParams `json:"statuses,omitempty"`
}

// BatchReport is what the agent produced while replaying a Batch.
type BatchReport struct {
	Statuses    []StatusElement `json:"statuses"`
	Packages    []AlertPackage  `json:"packages,omitempty"`
	MapCodes    []StatusCode    `json:"map_codes,omitempty"`
	Events      []SessionEvent  `json:"events,omitempty"`
	UIDMappings []UIDMapping    `json:"uid_mappings"`
}
