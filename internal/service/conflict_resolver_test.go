package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-syncml/internal/config"
	"github.com/MKhiriev/go-syncml/models"
)

func TestPolicyResolver_IsConflict(t *testing.T) {
	r := NewConflictResolver(models.LocalChanges{
		Modified: []string{"m1"},
		Deleted:  []string{"d1"},
	}, config.PolicyPreferRemote)

	tests := []struct {
		name          string
		key           string
		remoteDeleted bool
		want          bool
	}{
		{name: "untouched key, remote replace", key: "x", want: false},
		{name: "untouched key, remote delete", key: "x", remoteDeleted: true, want: false},
		{name: "modified key, remote replace", key: "m1", want: true},
		{name: "modified key, remote delete", key: "m1", remoteDeleted: true, want: true},
		{name: "deleted key, remote replace", key: "d1", want: true},
		{name: "deleted key, remote delete", key: "d1", remoteDeleted: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.IsConflict(tt.key, tt.remoteDeleted))
		})
	}
}

func TestPolicyResolver_LocalSideWins(t *testing.T) {
	assert.True(t, NewConflictResolver(models.LocalChanges{}, config.PolicyPreferLocal).LocalSideWins())
	assert.False(t, NewConflictResolver(models.LocalChanges{}, config.PolicyPreferRemote).LocalSideWins())
	assert.False(t, NewConflictResolver(models.LocalChanges{}, "").LocalSideWins())
}
