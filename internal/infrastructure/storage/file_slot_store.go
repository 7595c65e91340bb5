package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/afero"
)

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// FileSlotStore keeps each key as one file under dir. Writes go through a
// temp file and rename so a crash never leaves a half-written slot.
type FileSlotStore struct {
	fs  afero.Fs
	dir string
}

func NewFileSlotStore(fs afero.Fs, dir string) (*FileSlotStore, error) {
	if dir == "" {
		dir = "."
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir %q: %w", dir, err)
	}
	return &FileSlotStore{fs: fs, dir: dir}, nil
}

// NewMemorySlotStore is a FileSlotStore over an in-memory filesystem.
func NewMemorySlotStore() *FileSlotStore {
	return &FileSlotStore{fs: afero.NewMemMapFs(), dir: "/"}
}

func (s *FileSlotStore) path(key string) string {
	return filepath.Join(s.dir, unsafeKeyChars.ReplaceAllString(key, "_")+".json")
}

func (s *FileSlotStore) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := afero.ReadFile(s.fs, s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return b, err
}

func (s *FileSlotStore) Save(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target := s.path(key)
	tmp := target + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, value, 0o644); err != nil {
		return err
	}
	return s.fs.Rename(tmp, target)
}
