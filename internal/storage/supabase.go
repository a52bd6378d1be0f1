package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// SupabaseStore stores blobs in a Supabase storage bucket through its HTTP
// API, authenticated with the project service key.
type SupabaseStore struct {
	projectURL string
	serviceKey string
	bucket     string
	client     *http.Client
}

// NewSupabaseStore creates a store for the given project URL and bucket.
func NewSupabaseStore(projectURL, serviceKey, bucket string) *SupabaseStore {
	return &SupabaseStore{
		projectURL: strings.TrimSuffix(projectURL, "/"),
		serviceKey: serviceKey,
		bucket:     bucket,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload pushes the bytes into the bucket and returns the public URL.
func (s *SupabaseStore) Upload(ctx context.Context, filename string, data []byte, contentType string) (string, error) {
	object := ObjectName(filename)
	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.projectURL, s.bucket, object)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload object: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("upload object: storage returned %d: %s", resp.StatusCode, string(body))
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.projectURL, s.bucket, object), nil
}

// Remove deletes the object a public URL points at.
func (s *SupabaseStore) Remove(ctx context.Context, publicURL string) error {
	object := objectFromURL(publicURL)
	if object == "" || object == "." {
		return fmt.Errorf("cannot derive object name from %q", publicURL)
	}
	deleteURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.projectURL, s.bucket, object)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, deleteURL, nil)
	if err != nil {
		return fmt.Errorf("build delete request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("delete object: storage returned %d", resp.StatusCode)
	}
	return nil
}
