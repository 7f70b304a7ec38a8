package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-syncml/internal/logger"
	"github.com/MKhiriev/go-syncml/internal/store"
	"github.com/MKhiriev/go-syncml/internal/validators"
	"github.com/MKhiriev/go-syncml/models"
)

// CommandValidationHandler rejects structurally invalid commands before they
// reach the wrapped [CommandHandler].
type CommandValidationHandler struct {
	inner     CommandHandler
	validator validators.Validator
	logger    *logger.Logger
}

func NewCommandValidationHandler(logger *logger.Logger) CommandHandlerWrapper {
	return &CommandValidationHandler{
		validator: validators.NewSyncValidator(),
		logger:    logger,
	}
}

// HandleSync answers an invalid batch with BadRequest for every action
// instead of processing it.
func (v *CommandValidationHandler) HandleSync(ctx context.Context, params models.SyncParams, target SyncTarget, storage store.StorageHandler, response ResponseGenerator, resolver store.ConflictResolver) {
	if err := v.validator.Validate(ctx, params); err != nil {
		v.logger.Err(fmt.Errorf("%w: %w", ErrInvalidSyncParams, err)).
			Str("func", "*CommandValidationHandler.HandleSync").
			Int("cmd_id", params.CmdID).
			Msg("rejecting invalid sync")
		v.inner.RejectSync(params, response, models.BadRequest)
		return
	}

	v.inner.HandleSync(ctx, params, target, storage, response, resolver)
}

func (v *CommandValidationHandler) RejectSync(params models.SyncParams, response ResponseGenerator, code models.StatusCode) {
	v.inner.RejectSync(params, response, code)
}

func (v *CommandValidationHandler) HandleMap(ctx context.Context, params models.MapParams, target SyncTarget) models.StatusCode {
	if err := v.validator.Validate(ctx, params); err != nil {
		v.logger.Err(fmt.Errorf("%w: %w", ErrInvalidMapParams, err)).
			Str("func", "*CommandValidationHandler.HandleMap").
			Int("cmd_id", params.CmdID).
			Msg("rejecting invalid map")
		return models.BadRequest
	}

	return v.inner.HandleMap(ctx, params, target)
}

func (v *CommandValidationHandler) Wrap(wrapped CommandHandler) CommandHandler {
	v.inner = wrapped
	return v
}
