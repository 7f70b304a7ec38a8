package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidCmdID     = errors.New("invalid command id")
	ErrDuplicateCmdID   = errors.New("duplicate command id")
	ErrEmptyCommand     = errors.New("command kind is required")
	ErrEmptyMapItems    = errors.New("map items list cannot be empty")
	ErrEmptyMapItemRef  = errors.New("map item source and target are required")
	ErrInvalidCmdRef    = errors.New("invalid command reference")
	ErrInvalidStatusRef = errors.New("invalid message reference")
)
