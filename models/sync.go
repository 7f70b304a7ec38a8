// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role determines the direction of key resolution and which side of a
// conflict maps to which status code.
type Role string

const (
	RoleClient Role = "client"
	RoleServer Role = "server"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleClient || r == RoleServer
}

// CommandKind is the SyncML element name of a command.
type CommandKind string

const (
	CommandAdd     CommandKind = "Add"
	CommandReplace CommandKind = "Replace"
	CommandDelete  CommandKind = "Delete"
	CommandCopy    CommandKind = "Copy"
	CommandMove    CommandKind = "Move"
	CommandMap     CommandKind = "Map"
	CommandSync    CommandKind = "Sync"
	CommandAlert   CommandKind = "Alert"
)

// ItemID identifies one item within a batch: the command it belongs to and
// its position inside that command. It is used as a map key across staging,
// commit and response writing.
type ItemID struct {
	CmdID     int `json:"cmd_id"`
	ItemIndex int `json:"item_index"`
}

// Meta carries the content type, format and declared size of an item or the
// defaults of a command.
type Meta struct {
	Type   string `json:"type,omitempty"`
	Format string `json:"format,omitempty"`
	Size   int64  `json:"size,omitempty"`
}

// ItemParams is one item of a command.
type ItemParams struct {
	// Source is the remote key of the item.
	Source string `json:"source,omitempty"`
	// Target is the local key of the item, meaningful for the client role.
	Target string `json:"target,omitempty"`

	SourceParent string `json:"source_parent,omitempty"`
	TargetParent string `json:"target_parent,omitempty"`

	// Meta overrides the owning command's defaults when non-empty.
	Meta Meta   `json:"meta"`
	Data []byte `json:"data,omitempty"`

	// MoreData marks a non-final chunk of a large object.
	MoreData bool `json:"more_data,omitempty"`
}

// SyncActionData is one command inside a Sync package.
type SyncActionData struct {
	Action CommandKind  `json:"action"`
	CmdID  int          `json:"cmd_id"`
	Meta   Meta         `json:"meta"`
	NoResp bool         `json:"no_resp,omitempty"`
	Items  []ItemParams `json:"items"`
}

// SyncParams is a Sync package: the batch of commands for one data category.
type SyncParams struct {
	CmdID          int              `json:"cmd_id"`
	NoResp         bool             `json:"no_resp,omitempty"`
	SourceDatabase string           `json:"source_database,omitempty"`
	TargetDatabase string           `json:"target_database,omitempty"`
	Actions        []SyncActionData `json:"actions"`
}

// MapItem associates a key on the sending side with a key on the receiving side.
type MapItem struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// MapParams is an inbound Map command.
type MapParams struct {
	CmdID    int       `json:"cmd_id"`
	MapItems []MapItem `json:"map_items"`
}

// UIDMapping associates a remote key with a local key inside one data category.
type UIDMapping struct {
	RemoteUID string `json:"remote_uid"`
	LocalUID  string `json:"local_uid"`
}

// LocalChanges lists local keys changed since the last synchronization. It is
// the input of conflict detection.
type LocalChanges struct {
	Modified []string `json:"modified,omitempty"`
	Deleted  []string `json:"deleted,omitempty"`
}
