package storage

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var objectTypePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

const (
	tokenSeparator  = ":"
	recordSeparator = "."
)

// Key identifies a persistent entity. Id is unique within Type.
type Key struct {
	Type string
	Id   uint64
}

// NewKey creates a key and validates its parts.
func NewKey(objectType string, id uint64) (Key, error) {
	k := Key{Type: objectType, Id: id}
	if err := k.Validate(); err != nil {
		return Key{}, err
	}
	return k, nil
}

// IsZero returns true for the null key used by empty references.
func (k Key) IsZero() bool {
	return k.Type == "" && k.Id == 0
}

func (k Key) Validate() error {
	if !objectTypePattern.MatchString(k.Type) {
		return fmt.Errorf("%w: object type %q must be lower-case alphanumeric", ErrInvalidIdentifier, k.Type)
	}
	if k.Id == 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidIdentifier)
	}
	return nil
}

// String returns the reference token for k, e.g. "room:12". The null key has an empty token.
func (k Key) String() string {
	if k.IsZero() {
		return ""
	}
	return k.Type + tokenSeparator + strconv.FormatUint(k.Id, 10)
}

// RecordName returns the storage name for k, e.g. "room.12".
func (k Key) RecordName() string {
	return k.Type + recordSeparator + strconv.FormatUint(k.Id, 10)
}

// ParseKey parses a reference token produced by Key.String. The empty token
// parses to the null key.
func ParseKey(token string) (Key, error) {
	if token == "" {
		return Key{}, nil
	}
	return parseParts(token, tokenSeparator)
}

// ParseRecordName parses a storage name produced by Key.RecordName.
func ParseRecordName(name string) (Key, error) {
	return parseParts(name, recordSeparator)
}

func parseParts(s string, sep string) (Key, error) {
	parts := strings.Split(s, sep)
	if len(parts) != 2 {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidIdentifier, s)
	}

	id, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return Key{}, fmt.Errorf("%w: %q: %v", ErrInvalidIdentifier, s, err)
	}

	return NewKey(parts[0], id)
}
