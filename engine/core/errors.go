package core

import (
	"errors"
)

var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrDestroyed           = errors.New("object was destroyed")
	ErrUnknownMaterial     = errors.New("unknown material type")
	ErrUnsupportedDocument = errors.New("unsupported scene document")
)
