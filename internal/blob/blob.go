// Package blob abstracts the object store that holds documents while the
// analysis service reads them.
package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Store uploads and removes remote objects.
type Store interface {
	Put(ctx context.Context, localPath, key string) error
	Delete(ctx context.Context, key string) error
}

// DirStore is a Store backed by a local directory. It stands in for the real
// object store in offline runs and tests.
type DirStore struct {
	root string
}

// NewDirStore creates a DirStore rooted at dir.
func NewDirStore(dir string) *DirStore {
	return &DirStore{root: dir}
}

// Put copies the local file under the store root.
func (s *DirStore) Put(ctx context.Context, localPath, key string) error {
	src, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", localPath, err)
	}
	defer src.Close()

	dst := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("creating store dir: %w", err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return fmt.Errorf("copying to %s: %w", dst, err)
	}
	return out.Close()
}

// Delete removes the stored object. Deleting a missing key is not an error.
func (s *DirStore) Delete(ctx context.Context, key string) error {
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(key)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}
