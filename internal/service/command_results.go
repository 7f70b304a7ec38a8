// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-syncml/models"

// mappingEffect is the change a commit result makes to the UID table.
type mappingEffect int

const (
	mappingNone mappingEffect = iota
	// mappingAdd registers item.Source → CommitResult.ItemKey.
	mappingAdd
	// mappingRemove drops the mapping(s) pointing at CommitResult.ItemKey.
	mappingRemove
)

// commitResultCode translates a commit result into the status code reported
// to the peer. Conflict outcomes are expressed from the client's point of
// view, so the local and remote winners swap codes between roles.
func commitResultCode(result models.CommitResult, role models.Role) (models.StatusCode, mappingEffect) {
	switch result.Status {
	case models.CommitAdded:
		return models.ItemAdded, mappingAdd

	case models.CommitReplaced:
		switch result.Conflict {
		case models.ConflictLocalWin:
			return localWinCode(role), mappingNone
		case models.ConflictRemoteWin:
			return remoteWinCode(role), mappingNone
		default:
			return models.Success, mappingNone
		}

	case models.CommitDeleted:
		switch result.Conflict {
		case models.ConflictLocalWin:
			return localWinCode(role), mappingNone
		case models.ConflictRemoteWin:
			return remoteWinCode(role), mappingRemove
		default:
			return models.Success, mappingRemove
		}

	case models.CommitDuplicate:
		return models.AlreadyExists, mappingNone
	case models.CommitNotDeleted:
		return models.ItemNotDeleted, mappingRemove
	case models.CommitUnsupportedFormat:
		return models.UnsupportedFormat, mappingNone
	case models.CommitItemTooBig:
		return models.RequestSizeTooBig, mappingNone
	case models.CommitNotEnoughSpace:
		return models.DeviceFull, mappingNone
	default:
		return models.CommandFailed, mappingNone
	}
}

func localWinCode(role models.Role) models.StatusCode {
	if role == models.RoleServer {
		return models.ResolvedWithServerData
	}
	return models.ResolvedClientWinning
}

func remoteWinCode(role models.Role) models.StatusCode {
	if role == models.RoleServer {
		return models.ResolvedClientWinning
	}
	return models.ResolvedWithServerData
}
