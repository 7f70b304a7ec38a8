package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-syncml/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldCmdID targets the command identifier of a Sync or Map command.
	FieldCmdID = "cmd_id"

	// FieldActions targets the command ids of the actions of a Sync command.
	FieldActions = "actions"

	// FieldMapItems targets the items of a Map command.
	FieldMapItems = "map_items"

	// FieldCmdRef targets the references carried by an inbound Status.
	FieldCmdRef = "cmd_ref"

	// FieldCmd targets the command kind an inbound Status refers to.
	FieldCmd = "cmd"
)

// SyncValidator implements [Validator] for SyncParams, MapParams and
// StatusParams.
type SyncValidator struct {
}

// NewSyncValidator constructs a new SyncValidator and returns it as the
// Validator interface.
func NewSyncValidator() Validator {
	return &SyncValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. Returns ErrUnsupportedType for anything else.
func (v *SyncValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SyncParams:
		return v.validateSync(value, fields...)
	case *models.SyncParams:
		return v.validateSync(*value, fields...)

	case models.MapParams:
		return v.validateMap(value, fields...)
	case *models.MapParams:
		return v.validateMap(*value, fields...)

	case models.StatusParams:
		return v.validateStatus(value, fields...)
	case *models.StatusParams:
		return v.validateStatus(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateSync checks the package-wide invariants of a Sync command: the
// command ids that make every ItemID of the batch unique. Per-action and
// per-item problems are left to the command handler, which answers them
// item by item.
//
// Default validated fields: CmdID, Actions.
func (v *SyncValidator) validateSync(params models.SyncParams, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCmdID, FieldActions}
	}

	for _, f := range fields {
		switch f {
		case FieldCmdID:
			if params.CmdID <= 0 {
				return ErrInvalidCmdID
			}
		case FieldActions:
			seen := make(map[int]struct{}, len(params.Actions))
			for _, action := range params.Actions {
				if action.CmdID <= 0 {
					return fmt.Errorf("%w: %d", ErrInvalidCmdID, action.CmdID)
				}
				if _, ok := seen[action.CmdID]; ok {
					return fmt.Errorf("%w: %d", ErrDuplicateCmdID, action.CmdID)
				}
				seen[action.CmdID] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateMap checks a Map command.
//
// Default validated fields: CmdID, MapItems.
func (v *SyncValidator) validateMap(params models.MapParams, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCmdID, FieldMapItems}
	}

	for _, f := range fields {
		switch f {
		case FieldCmdID:
			if params.CmdID <= 0 {
				return ErrInvalidCmdID
			}
		case FieldMapItems:
			if len(params.MapItems) == 0 {
				return ErrEmptyMapItems
			}
			for i, item := range params.MapItems {
				if item.Source == "" || item.Target == "" {
					return fmt.Errorf("%w: map item %d", ErrEmptyMapItemRef, i)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateStatus checks an inbound Status.
//
// Default validated fields: CmdRef, Cmd.
func (v *SyncValidator) validateStatus(status models.StatusParams, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCmdRef, FieldCmd}
	}

	for _, f := range fields {
		switch f {
		case FieldCmdRef:
			if status.MsgRef < 0 {
				return ErrInvalidStatusRef
			}
			if status.CmdRef < 0 {
				return ErrInvalidCmdRef
			}
		case FieldCmd:
			if status.Cmd == "" {
				return ErrEmptyCommand
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
