package game

import "errors"

var (
	ErrUnknownEntityKind  = errors.New("unknown entity kind")
	ErrDuplicateEntity    = errors.New("entity already registered")
	ErrEntityNotFound     = errors.New("entity not found")
	ErrCopyNotRegistrable = errors.New("copies cannot be registered")
	ErrPortalClosed       = errors.New("portal is closed")
	ErrMovementAborted    = errors.New("movement aborted by trigger")
)
