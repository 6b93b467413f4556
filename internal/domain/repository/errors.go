package repository

import "errors"

// Storage-level sentinel errors. Implementations translate driver errors
// into these; services map them onto their own error vocabulary.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
)
