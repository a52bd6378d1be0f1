package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"
)

// BlobStore persists uploaded photo bytes and hands back a publicly
// retrievable URL. Implementations must be safe for concurrent use.
type BlobStore interface {
	Upload(ctx context.Context, filename string, data []byte, contentType string) (string, error)
	// Remove deletes the blob a previously returned URL points at. Callers
	// treat failures as best-effort: a leaked blob is logged, not fatal.
	Remove(ctx context.Context, publicURL string) error
}

// ObjectName builds a collision-resistant object name from an uploaded
// filename: a nanosecond timestamp prefix plus the sanitized original name.
func ObjectName(filename string) string {
	return fmt.Sprintf("%d_%s", time.Now().UnixNano(), sanitizeFilename(filename))
}

// objectFromURL derives the stored object name from a public URL's trailing
// path segment.
func objectFromURL(publicURL string) string {
	return path.Base(strings.TrimSuffix(publicURL, "/"))
}

func sanitizeFilename(name string) string {
	name = path.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "upload"
	}
	return b.String()
}
