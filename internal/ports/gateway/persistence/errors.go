package port_persistence

import "errors"

var (
	ErrNotFound         = errors.New("persistence: not found")
	ErrAlreadyExists    = errors.New("persistence: already exists")
	ErrInvalidReference = errors.New("persistence: referenced row does not exist")
	// ErrConflict means a row read inside a unit of work changed before it committed.
	ErrConflict = errors.New("persistence: concurrent modification")
)
