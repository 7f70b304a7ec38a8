// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AlertCode is a SyncML alert code.
type AlertCode int

const (
	AlertNextMessage AlertCode = 222
	AlertNoEndOfData AlertCode = 223
)

// AlertPackage is an outbound Alert addressed to a pair of databases.
type AlertPackage struct {
	Code           AlertCode `json:"code"`
	SourceDatabase string    `json:"source_database"`
	TargetDatabase string    `json:"target_database"`
}

// StatusElement is one outbound Status. Package and command level elements
// leave SourceRef and TargetRef empty.
type StatusElement struct {
	CmdRef    int         `json:"cmd_ref"`
	Cmd       CommandKind `json:"cmd"`
	SourceRef string      `json:"source_ref,omitempty"`
	TargetRef string      `json:"target_ref,omitempty"`
	Code      StatusCode  `json:"code"`
}

// StatusParams is an inbound Status returned by the peer for a command we sent.
type StatusParams struct {
	MsgRef    int         `json:"msg_ref"`
	CmdRef    int         `json:"cmd_ref"`
	Cmd       CommandKind `json:"cmd"`
	SourceRef string      `json:"source_ref,omitempty"`
	TargetRef string      `json:"target_ref,omitempty"`
	Data      StatusCode  `json:"data"`
}

// SessionEventKind is the kind of a SessionEvent.
type SessionEventKind int

const (
	EventItemAcknowledged SessionEventKind = iota + 1
	EventMappingAcknowledged
	EventAbortSync
)

// SessionEvent is a reaction to an inbound status that the owning session
// layer must dispatch.
type SessionEvent struct {
	Kind      SessionEventKind `json:"kind"`
	MsgRef    int              `json:"msg_ref"`
	CmdRef    int              `json:"cmd_ref"`
	SourceRef string           `json:"source_ref,omitempty"`
	Code      StatusCode       `json:"code,omitempty"`
}
