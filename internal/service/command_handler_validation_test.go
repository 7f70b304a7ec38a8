package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-syncml/internal/logger"
	"github.com/MKhiriev/go-syncml/internal/response"
	"github.com/MKhiriev/go-syncml/internal/store"
	"github.com/MKhiriev/go-syncml/models"
)

// stubHandler records which CommandHandler methods were reached.
type stubHandler struct {
	synced bool
	mapped bool
	code   models.StatusCode
}

func (s *stubHandler) HandleSync(_ context.Context, _ models.SyncParams, _ SyncTarget, _ store.StorageHandler, _ ResponseGenerator, _ store.ConflictResolver) {
	s.synced = true
}

func (s *stubHandler) RejectSync(params models.SyncParams, response ResponseGenerator, code models.StatusCode) {
	NewCommandHandler(models.RoleClient, logger.Nop()).RejectSync(params, response, code)
}

func (s *stubHandler) HandleMap(_ context.Context, _ models.MapParams, _ SyncTarget) models.StatusCode {
	s.mapped = true
	return s.code
}

func TestCommandValidationHandler_HandleSync(t *testing.T) {
	valid := models.SyncParams{CmdID: 1, Actions: []models.SyncActionData{
		{Action: models.CommandAdd, CmdID: 2, Items: []models.ItemParams{{Source: "r1"}}},
	}}
	invalid := models.SyncParams{CmdID: 1, Actions: []models.SyncActionData{
		{Action: models.CommandAdd, CmdID: 2},
		{Action: models.CommandDelete, CmdID: 2},
	}}

	t.Run("valid batch reaches inner handler", func(t *testing.T) {
		inner := &stubHandler{}
		h := NewCommandValidationHandler(logger.Nop()).Wrap(inner)
		gen := response.NewGenerator()

		h.HandleSync(context.Background(), valid, nil, nil, gen, nil)

		assert.True(t, inner.synced)
		assert.Empty(t, gen.Statuses())
	})

	t.Run("duplicate action ids are rejected", func(t *testing.T) {
		inner := &stubHandler{}
		h := NewCommandValidationHandler(logger.Nop()).Wrap(inner)
		gen := response.NewGenerator()

		h.HandleSync(context.Background(), invalid, nil, nil, gen, nil)

		assert.False(t, inner.synced)
		assert.Equal(t, []models.StatusElement{
			{CmdRef: 1, Cmd: models.CommandSync, Code: models.BadRequest},
			{CmdRef: 2, Cmd: models.CommandAdd, Code: models.BadRequest},
			{CmdRef: 2, Cmd: models.CommandDelete, Code: models.BadRequest},
		}, gen.Statuses())
	})
}

func TestCommandValidationHandler_HandleMap(t *testing.T) {
	inner := &stubHandler{code: models.Success}
	h := NewCommandValidationHandler(logger.Nop()).Wrap(inner)

	assert.Equal(t, models.BadRequest, h.HandleMap(context.Background(), models.MapParams{CmdID: 1}, nil))
	assert.False(t, inner.mapped)

	code := h.HandleMap(context.Background(), models.MapParams{CmdID: 1, MapItems: []models.MapItem{{Source: "c1", Target: "s1"}}}, nil)
	assert.Equal(t, models.Success, code)
	assert.True(t, inner.mapped)
}
