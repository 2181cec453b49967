package core

import "github.com/google/uuid"

// Handle identifies an entry of a registry. The zero Handle is never issued.
type Handle uuid.UUID

// NilHandle is the zero value, used to signal "no entry".
var NilHandle Handle

func NewHandle() Handle {
	return Handle(uuid.New())
}

func (h Handle) IsNil() bool {
	return h == NilHandle
}

func (h Handle) String() string {
	return uuid.UUID(h).String()
}
