package types

import "errors"

// Store lifecycle errors.
var (
	ErrStoreClosed = errors.New("store is closed")
)

// Operation errors.
var (
	ErrConstraint        = errors.New("constraint violation")
	ErrInvalidKey        = errors.New("invalid record key")
	ErrInvalidRecord     = errors.New("invalid record data")
	ErrUnknownIndex      = errors.New("unknown index")
	ErrUnknownCollection = errors.New("unknown collection")
	ErrInvalidOp         = errors.New("invalid batch operation")
	ErrEmptyRange        = errors.New("range must have at least one bound")
)

// Entity validation errors.
var (
	ErrInvalidStatus      = errors.New("invalid status value")
	ErrInvalidPriority    = errors.New("invalid priority value")
	ErrInvalidRole        = errors.New("invalid role value")
	ErrInvalidLevel       = errors.New("invalid log level")
	ErrInvalidSettingType = errors.New("invalid setting type")
	ErrInvalidName        = errors.New("invalid name")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidTransition  = errors.New("invalid status transition")
)
