package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileBackend keeps each collection as a UTF-8 JSON document <dir>/<name>.json.
// Writes go to a temporary file in the same directory which is then renamed
// over the target, so readers never see a half-written document.
type FileBackend struct {
	dir string
}

// NewFileBackend returns a FileBackend rooted at dir, creating dir if needed.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store.NewFileBackend: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

// Path returns the file that holds collection name.
func (b *FileBackend) Path(name string) string {
	return filepath.Join(b.dir, name+".json")
}

// Read returns the document for name, or ErrNotExist if the file is absent.
func (b *FileBackend) Read(_ context.Context, name string) ([]byte, error) {
	doc, err := os.ReadFile(b.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotExist
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Write atomically replaces the document for name.
func (b *FileBackend) Write(_ context.Context, name string, doc []byte) error {
	tmp, err := os.CreateTemp(b.dir, "."+name+"-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(doc); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, b.Path(name)); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// Close is a no-op; files are opened per operation.
func (b *FileBackend) Close() error { return nil }
