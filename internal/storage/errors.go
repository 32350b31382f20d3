package storage

import "errors"

var (
	ErrCouldNotOpenSource = errors.New("could not open record source")
	ErrCorruptRecord      = errors.New("corrupt record")
	ErrInvalidIdentifier  = errors.New("invalid identifier")
)
