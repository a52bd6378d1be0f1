package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DiskStore writes blobs under a local uploads directory. The router serves
// that directory at /uploads, so returned URLs stay retrievable. Used when no
// object storage bucket is configured.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the uploads directory if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Upload writes the file and returns its /uploads URL path.
func (s *DiskStore) Upload(ctx context.Context, filename string, data []byte, contentType string) (string, error) {
	object := ObjectName(filename)
	if err := os.WriteFile(filepath.Join(s.dir, object), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return "/uploads/" + object, nil
}

// Remove deletes the file behind a previously returned URL.
func (s *DiskStore) Remove(ctx context.Context, publicURL string) error {
	object := objectFromURL(publicURL)
	if object == "" || object == "." {
		return fmt.Errorf("cannot derive object name from %q", publicURL)
	}
	if err := os.Remove(filepath.Join(s.dir, object)); err != nil {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}
