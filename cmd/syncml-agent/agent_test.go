package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-syncml/internal/config"
	"github.com/MKhiriev/go-syncml/internal/logger"
	"github.com/MKhiriev/go-syncml/internal/mock"
	"github.com/MKhiriev/go-syncml/internal/service"
	"github.com/MKhiriev/go-syncml/internal/store"
	"github.com/MKhiriev/go-syncml/models"
)

func newTestAgent(t *testing.T, plugin store.StoragePlugin) *agent {
	t.Helper()
	log := logger.Nop()

	target, err := service.NewSyncTarget(context.Background(), plugin, "card", nil, log)
	require.NoError(t, err)

	cfg := config.StructuredConfig{App: config.App{Role: config.RoleServer}}
	return newAgent(service.NewServices(cfg, log), target, store.NewStorageHandler(log), log)
}

func TestReadBatch(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "batch.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"local_changes": {"modified": ["l1"]},
		"syncs": [{"cmd_id": 3, "actions": [{"action": "Add", "cmd_id": 4, "items": [{"source": "r1", "data": "dGV4dA=="}]}]}],
		"maps": [{"cmd_id": 5, "map_items": [{"source": "c1", "target": "s1"}]}]
	}`), 0o600))

	batch, err := readBatch(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"l1"}, batch.LocalChanges.Modified)
	require.Len(t, batch.Syncs, 1)
	assert.Equal(t, []byte("text"), batch.Syncs[0].Actions[0].Items[0].Data)
	assert.Equal(t, models.CommandAdd, batch.Syncs[0].Actions[0].Action)
	require.Len(t, batch.Maps, 1)

	_, err = readBatch("")
	assert.ErrorIs(t, err, ErrNoBatchFile)

	_, err = readBatch(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, ErrReadingBatch)

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("{"), 0o600))
	_, err = readBatch(broken)
	assert.ErrorIs(t, err, ErrReadingBatch)
}

func TestAgent_Replay(t *testing.T) {
	ctrl := gomock.NewController(t)
	plugin := mock.NewMockStoragePlugin(ctrl)
	plugin.EXPECT().SourceURI().Return("./contacts").AnyTimes()
	plugin.EXPECT().AddItems(gomock.Any(), gomock.Any()).
		Return([]models.PluginResult{{Key: "l1", Status: models.PluginOK}})

	a := newTestAgent(t, plugin)

	report := a.replay(context.Background(), models.Batch{
		Statuses: []models.StatusParams{{MsgRef: 1, CmdRef: 2, Cmd: models.CommandMap, Data: models.Success}},
		Maps:     []models.MapParams{{CmdID: 3, MapItems: []models.MapItem{{Source: "c9", Target: "s9"}}}},
		Syncs: []models.SyncParams{{CmdID: 4, Actions: []models.SyncActionData{
			{Action: models.CommandAdd, CmdID: 5, Items: []models.ItemParams{{Source: "r1", Data: []byte("x")}}},
		}}},
	}, nil)

	assert.Equal(t, []models.SessionEvent{{Kind: models.EventMappingAcknowledged, MsgRef: 1, CmdRef: 2}}, report.Events)
	assert.Equal(t, []models.StatusCode{models.Success}, report.MapCodes)
	assert.Equal(t, []models.StatusElement{
		{CmdRef: 4, Cmd: models.CommandSync, Code: models.Success},
		{CmdRef: 5, Cmd: models.CommandAdd, SourceRef: "r1", Code: models.ItemAdded},
	}, report.Statuses)
	assert.Equal(t, []models.UIDMapping{
		{RemoteUID: "c9", LocalUID: "s9"},
		{RemoteUID: "r1", LocalUID: "l1"},
	}, report.UIDMappings)
}

func TestAgent_Replay_AbortSkipsSyncs(t *testing.T) {
	ctrl := gomock.NewController(t)
	plugin := mock.NewMockStoragePlugin(ctrl)
	plugin.EXPECT().SourceURI().Return("./contacts").AnyTimes()

	a := newTestAgent(t, plugin)

	report := a.replay(context.Background(), models.Batch{
		Statuses: []models.StatusParams{{MsgRef: 1, CmdRef: 2, Cmd: models.CommandAdd, SourceRef: "l1", Data: models.CommandFailed}},
		Syncs: []models.SyncParams{{CmdID: 4, Actions: []models.SyncActionData{
			{Action: models.CommandAdd, CmdID: 5, Items: []models.ItemParams{{Source: "r1"}}},
		}}},
	}, nil)

	assert.Empty(t, report.Statuses)
	assert.Equal(t, []models.SessionEvent{
		{Kind: models.EventAbortSync, Code: models.CommandFailed},
		{Kind: models.EventItemAcknowledged, MsgRef: 1, CmdRef: 2, SourceRef: "l1"},
	}, report.Events)
}
