package service

import "errors"

var (
	ErrEmptyUIDMapping = errors.New("uid mapping requires both remote and local uid")

	ErrLoadingUIDMappings = errors.New("error loading uid mappings")
	ErrSavingUIDMapping   = errors.New("error saving uid mapping")
	ErrRemovingUIDMapping = errors.New("error removing uid mapping")
	ErrInvalidSyncParams  = errors.New("invalid sync command")
	ErrInvalidMapParams   = errors.New("invalid map command")
)
