package script

import "errors"

var (
	ErrInvalidDeclaration = errors.New("invalid trigger declaration")
)
