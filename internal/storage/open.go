package storage

import "fmt"

const (
	BackendFile = "file"
	BackendBolt = "bolt"
)

// Open opens a Storer for the named backend. An empty backend means BackendFile.
func Open(backend, path string) (Storer, error) {
	switch backend {
	case "", BackendFile:
		return NewFileStore(path)
	case BackendBolt:
		return OpenBoltStore(path)
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", ErrCouldNotOpenSource, backend)
	}
}
