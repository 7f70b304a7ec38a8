// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-syncml/internal/config"
	"github.com/MKhiriev/go-syncml/internal/logger"
	"github.com/MKhiriev/go-syncml/internal/mock"
	"github.com/MKhiriev/go-syncml/internal/response"
	"github.com/MKhiriev/go-syncml/internal/store"
	"github.com/MKhiriev/go-syncml/models"
)

// ─────────────────────────────────────────────────────────────────────────────
// NewServices: validation wrapper in front of the command handler
// ─────────────────────────────────────────────────────────────────────────────

func TestServices_HandleSync_ItemProblemsDoNotRejectBatch(t *testing.T) {
	tests := []struct {
		name     string
		second   models.SyncActionData
		setup    func(plugin *mock.MockStoragePlugin)
		wantCode models.StatusCode
		wantMaps []models.UIDMapping
	}{
		{
			name:     "action without kind",
			second:   models.SyncActionData{CmdID: 3, Items: []models.ItemParams{{Source: "r2"}}},
			wantCode: models.NotSupported,
			wantMaps: []models.UIDMapping{{RemoteUID: "r1", LocalUID: "local-r1"}},
		},
		{
			name:     "unknown kind",
			second:   models.SyncActionData{Action: "Exec", CmdID: 3, Items: []models.ItemParams{{Source: "r2"}}},
			wantCode: models.NotSupported,
			wantMaps: []models.UIDMapping{{RemoteUID: "r1", LocalUID: "local-r1"}},
		},
		{
			name:   "delete flagged as chunk",
			second: models.SyncActionData{Action: models.CommandDelete, CmdID: 3, Items: []models.ItemParams{{Target: "l9", MoreData: true}}},
			setup: func(plugin *mock.MockStoragePlugin) {
				plugin.EXPECT().DeleteItems(gomock.Any(), []string{"l9"}).
					Return([]models.PluginResult{{Key: "l9", Status: models.PluginOK}})
			},
			wantCode: models.Success,
			wantMaps: []models.UIDMapping{{RemoteUID: "r1", LocalUID: "local-r1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			plugin := newTestPlugin(ctrl)
			addAll(plugin).Times(1)
			if tt.setup != nil {
				tt.setup(plugin)
			}

			log := logger.Nop()
			services := NewServices(config.StructuredConfig{App: config.App{Role: config.RoleClient}}, log)
			target := newTestTarget(t, plugin)
			gen := response.NewGenerator()

			add := models.SyncActionData{Action: models.CommandAdd, CmdID: 2, Items: []models.ItemParams{{Source: "r1", Data: []byte("x")}}}
			params := models.SyncParams{CmdID: 1, Actions: []models.SyncActionData{add, tt.second}}

			services.CommandHandler.HandleSync(context.Background(), params, target, store.NewStorageHandler(log), gen, nil)

			assert.Equal(t, []models.StatusElement{
				syncStatus(1, models.Success),
				itemStatus(2, models.CommandAdd, "r1", "", models.ItemAdded),
				itemStatus(3, tt.second.Action, tt.second.Items[0].Source, tt.second.Items[0].Target, tt.wantCode),
			}, gen.Statuses())
			assert.Equal(t, tt.wantMaps, target.UIDMappings())
		})
	}
}

func TestServices_HandleSync_DuplicateCmdIDRejectsBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	plugin := newTestPlugin(ctrl)

	log := logger.Nop()
	services := NewServices(config.StructuredConfig{App: config.App{Role: config.RoleServer}}, log)
	target := newTestTarget(t, plugin)
	gen := response.NewGenerator()

	params := models.SyncParams{CmdID: 1, Actions: []models.SyncActionData{
		{Action: models.CommandAdd, CmdID: 2, Items: []models.ItemParams{{Source: "r1"}}},
		{Action: models.CommandReplace, CmdID: 2, Items: []models.ItemParams{{Source: "r2"}}},
	}}

	services.CommandHandler.HandleSync(context.Background(), params, target, store.NewStorageHandler(log), gen, nil)

	assert.Equal(t, []models.StatusElement{
		syncStatus(1, models.BadRequest),
		{CmdRef: 2, Cmd: models.CommandAdd, Code: models.BadRequest},
		{CmdRef: 2, Cmd: models.CommandReplace, Code: models.BadRequest},
	}, gen.Statuses())
	assert.Empty(t, target.UIDMappings())
}
