// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-syncml/internal/config"
	"github.com/MKhiriev/go-syncml/internal/store"
	"github.com/MKhiriev/go-syncml/models"
)

// policyResolver detects conflicts against the set of items changed locally
// since the last sync and settles them with a fixed policy.
type policyResolver struct {
	modified  map[string]struct{}
	deleted   map[string]struct{}
	localWins bool
}

// NewConflictResolver builds a [store.ConflictResolver] over changes. policy
// is config.PolicyPreferLocal or config.PolicyPreferRemote; anything else
// lets the remote side win.
func NewConflictResolver(changes models.LocalChanges, policy string) store.ConflictResolver {
	r := &policyResolver{
		modified:  toSet(changes.Modified),
		deleted:   toSet(changes.Deleted),
		localWins: policy == config.PolicyPreferLocal,
	}
	return r
}

// IsConflict reports whether localKey changed locally. A remote delete of an
// item that was also deleted locally agrees with the local change.
func (r *policyResolver) IsConflict(localKey string, remoteDeleted bool) bool {
	if _, ok := r.deleted[localKey]; ok {
		return !remoteDeleted
	}
	_, ok := r.modified[localKey]
	return ok
}

func (r *policyResolver) LocalSideWins() bool {
	return r.localWins
}

func toSet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}
