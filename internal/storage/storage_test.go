package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectNameIsTimestampPrefixed(t *testing.T) {
	name := ObjectName("photo.jpg")

	parts := strings.SplitN(name, "_", 2)
	assert.Len(t, parts, 2)
	assert.Regexp(t, `^\d+$`, parts[0])
	assert.Equal(t, "photo.jpg", parts[1])
}

func TestObjectNameSanitizes(t *testing.T) {
	name := ObjectName("my photo (1).jpg")
	assert.NotContains(t, name, " ")
	assert.NotContains(t, name, "(")
	assert.True(t, strings.HasSuffix(name, "my_photo__1_.jpg"))

	// Path components never survive into the object name.
	name = ObjectName("../../etc/passwd")
	assert.NotContains(t, name, "/")
	assert.NotContains(t, name, "..")
}

func TestObjectNamesAreDistinct(t *testing.T) {
	a := ObjectName("photo.jpg")
	b := ObjectName("photo.jpg")
	assert.NotEqual(t, a, b)
}

func TestObjectFromURL(t *testing.T) {
	assert.Equal(t, "123_photo.jpg",
		objectFromURL("https://proj.supabase.co/storage/v1/object/public/team-photos/123_photo.jpg"))
	assert.Equal(t, "123_photo.jpg", objectFromURL("/uploads/123_photo.jpg"))
}

func TestDiskStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	assert.NoError(t, err)

	url, err := store.Upload(context.Background(), "aarav.jpg", []byte("photo-bytes"), "image/jpeg")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/"))

	object := strings.TrimPrefix(url, "/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, object))
	assert.NoError(t, err)
	assert.Equal(t, []byte("photo-bytes"), data)

	assert.NoError(t, store.Remove(context.Background(), url))
	_, err = os.Stat(filepath.Join(dir, object))
	assert.True(t, os.IsNotExist(err))
}

func TestDiskStoreRemoveMissing(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	assert.NoError(t, err)

	assert.Error(t, store.Remove(context.Background(), "/uploads/never-existed.jpg"))
}

func TestSupabaseUpload(t *testing.T) {
	var gotPath, gotAuth, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store := NewSupabaseStore(srv.URL, "service-key", "team-photos")

	url, err := store.Upload(context.Background(), "aarav.jpg", []byte("photo"), "image/jpeg")

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(gotPath, "/storage/v1/object/team-photos/"))
	assert.Equal(t, "Bearer service-key", gotAuth)
	assert.Equal(t, "image/jpeg", gotContentType)
	assert.Contains(t, url, "/storage/v1/object/public/team-photos/")
	assert.True(t, strings.HasSuffix(url, "aarav.jpg"))
}

func TestSupabaseUploadFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"bucket not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	store := NewSupabaseStore(srv.URL, "service-key", "missing-bucket")

	_, err := store.Upload(context.Background(), "aarav.jpg", []byte("photo"), "image/jpeg")
	assert.Error(t, err)
}

func TestSupabaseRemove(t *testing.T) {
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store := NewSupabaseStore(srv.URL, "service-key", "team-photos")

	publicURL := srv.URL + "/storage/v1/object/public/team-photos/123_aarav.jpg"
	assert.NoError(t, store.Remove(context.Background(), publicURL))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/storage/v1/object/team-photos/123_aarav.jpg", gotPath)
}
