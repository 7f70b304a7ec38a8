// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-syncml/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validSync() models.SyncParams {
	return models.SyncParams{
		CmdID: 1,
		Actions: []models.SyncActionData{
			{Action: models.CommandAdd, CmdID: 2, Items: []models.ItemParams{{Source: "r1", Data: []byte("x")}}},
			{Action: models.CommandDelete, CmdID: 3, Items: []models.ItemParams{{Target: "l1"}}},
		},
	}
}

// ---------------------------------------------------------------------------
// SyncParams
// ---------------------------------------------------------------------------

func TestSyncValidator_Sync(t *testing.T) {
	v := NewSyncValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(p *models.SyncParams)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(p *models.SyncParams) {}},
		{name: "zero cmd id", mutate: func(p *models.SyncParams) { p.CmdID = 0 }, wantErr: ErrInvalidCmdID},
		{name: "action without id", mutate: func(p *models.SyncParams) { p.Actions[0].CmdID = 0 }, wantErr: ErrInvalidCmdID},
		{name: "duplicate action id", mutate: func(p *models.SyncParams) { p.Actions[1].CmdID = 2 }, wantErr: ErrDuplicateCmdID},

		// Action and item level problems are answered per item by the
		// command handler, so they never invalidate the package.
		{name: "empty kind", mutate: func(p *models.SyncParams) { p.Actions[1].Action = "" }},
		{name: "unknown kind", mutate: func(p *models.SyncParams) { p.Actions[1].Action = "Exec" }},
		{name: "negative size", mutate: func(p *models.SyncParams) { p.Actions[0].Items[0].Meta.Size = -1 }},
		{name: "chunked delete", mutate: func(p *models.SyncParams) { p.Actions[1].Items[0].MoreData = true }},
		{
			name:   "scoped to actions ignores cmd id",
			mutate: func(p *models.SyncParams) { p.CmdID = 0 },
			fields: []string{FieldActions},
		},
		{name: "unknown field", mutate: func(p *models.SyncParams) {}, fields: []string{"nope"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validSync()
			tt.mutate(&p)

			err := v.Validate(ctx, p, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSyncValidator_PointerForms(t *testing.T) {
	v := NewSyncValidator()
	p := validSync()

	assert.NoError(t, v.Validate(context.Background(), &p))
	assert.NoError(t, v.Validate(context.Background(), &models.MapParams{CmdID: 1, MapItems: []models.MapItem{{Source: "a", Target: "b"}}}))
	assert.NoError(t, v.Validate(context.Background(), &models.StatusParams{Cmd: models.CommandAdd}))
}

// ---------------------------------------------------------------------------
// MapParams / StatusParams
// ---------------------------------------------------------------------------

func TestSyncValidator_Map(t *testing.T) {
	v := NewSyncValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.MapParams{CmdID: 4, MapItems: []models.MapItem{{Source: "c1", Target: "s1"}}}))
	assert.ErrorIs(t, v.Validate(ctx, models.MapParams{CmdID: 0, MapItems: []models.MapItem{{Source: "c1", Target: "s1"}}}), ErrInvalidCmdID)
	assert.ErrorIs(t, v.Validate(ctx, models.MapParams{CmdID: 4}), ErrEmptyMapItems)
	assert.ErrorIs(t, v.Validate(ctx, models.MapParams{CmdID: 4, MapItems: []models.MapItem{{Source: "c1"}}}), ErrEmptyMapItemRef)
}

func TestSyncValidator_Status(t *testing.T) {
	v := NewSyncValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.StatusParams{MsgRef: 1, CmdRef: 2, Cmd: models.CommandReplace, Data: models.Success}))
	assert.ErrorIs(t, v.Validate(ctx, models.StatusParams{Cmd: ""}), ErrEmptyCommand)
	assert.ErrorIs(t, v.Validate(ctx, models.StatusParams{CmdRef: -1, Cmd: models.CommandAdd}), ErrInvalidCmdRef)
	assert.ErrorIs(t, v.Validate(ctx, models.StatusParams{MsgRef: -1, Cmd: models.CommandAdd}), ErrInvalidStatusRef)
}

func TestSyncValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewSyncValidator().Validate(context.Background(), "nope"), ErrUnsupportedType)
}
