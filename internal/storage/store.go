package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const tempSuffix = ".tmp"

// Storer persists serialized records keyed by entity.
type Storer interface {
	// Names lists the stored record names (see Key.RecordName).
	Names() ([]string, error)
	Read(name string) ([]byte, error)
	Write(key Key, data []byte) error
	Delete(key Key) error
	Close() error
}

// FileStore keeps one file per record in a directory, named after the record.
type FileStore struct {
	path string

	mu sync.RWMutex
}

func NewFileStore(path string) (*FileStore, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCouldNotOpenSource, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrCouldNotOpenSource, path)
	}

	return &FileStore{path: path}, nil
}

func (s *FileStore) Names() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCouldNotOpenSource, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasSuffix(e.Name(), tempSuffix) || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

func (s *FileStore) Read(name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(filepath.Join(s.path, filepath.Base(name)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCouldNotOpenSource, err)
	}
	return data, nil
}

func (s *FileStore) Write(key Key, data []byte) error {
	if err := key.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return atomicWrite(s.filePath(key), data, 0644)
}

func (s *FileStore) Delete(key Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.filePath(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing %s: %w", key.RecordName(), err)
	}
	return nil
}

func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) filePath(key Key) string {
	return filepath.Join(s.path, key.RecordName())
}

// atomicWrite writes data to a temp file then renames it to the target path.
// This prevents partial or empty files if the process is interrupted.
func atomicWrite(path string, data []byte, perm os.FileMode) error {
	tmp := path + tempSuffix
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		if removeErr := os.Remove(tmp); removeErr != nil {
			slog.Warn("failed to remove temp file after rename failure", "path", tmp, "error", removeErr)
		}
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
