package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"

	"github.com/pixil98/go-realm/internal/storage"
)

type StorageConfig struct {
	// Backend is "file" for one file per record or "bolt" for a single database file.
	Backend string `json:"backend"`
	Path    string `json:"path"`
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()

	if c.Path == "" {
		el.Add(fmt.Errorf("storage: path is required"))
	}

	switch c.Backend {
	case "", storage.BackendFile:
		if c.Path != "" {
			if _, err := os.Stat(c.Path); err != nil {
				el.Add(fmt.Errorf("storage: invalid path %q: %w", c.Path, err))
			}
		}
	case storage.BackendBolt:
	default:
		el.Add(fmt.Errorf("storage: unknown backend %q", c.Backend))
	}

	return el.Err()
}

func (c *StorageConfig) buildStore() (storage.Storer, error) {
	return storage.Open(c.Backend, c.Path)
}
