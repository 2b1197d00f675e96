package storage

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalStorage(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(Config{
		BasePath: t.TempDir(),
		BaseURL:  "/api/v1/files",
	})
	require.NoError(t, err)
	return s
}

func TestLocalStorageSaveAndGet(t *testing.T) {
	s := newTestLocalStorage(t)
	ctx := context.Background()

	err := s.Save(ctx, "u1/j1/resume.pdf", strings.NewReader("pdf bytes"), "application/pdf")
	require.NoError(t, err)

	reader, err := s.Get(ctx, "u1/j1/resume.pdf")
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(data))
}

func TestLocalStorageSaveOverwrites(t *testing.T) {
	s := newTestLocalStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "u1/j1/resume.pdf", strings.NewReader("first"), "application/pdf"))
	require.NoError(t, s.Save(ctx, "u1/j1/resume.pdf", strings.NewReader("second"), "application/pdf"))

	reader, err := s.Get(ctx, "u1/j1/resume.pdf")
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestLocalStorageExists(t *testing.T) {
	s := newTestLocalStorage(t)
	ctx := context.Background()

	exists, err := s.Exists(ctx, "missing.pdf")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, s.Save(ctx, "present.pdf", strings.NewReader("x"), "application/pdf"))

	exists, err = s.Exists(ctx, "present.pdf")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLocalStorageGetSize(t *testing.T) {
	s := newTestLocalStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "sized.pdf", strings.NewReader("12345"), "application/pdf"))

	size, err := s.GetSize(ctx, "sized.pdf")
	require.NoError(t, err)
	assert.Equal(t, int64(5), size)
}

func TestLocalStorageURLs(t *testing.T) {
	s := newTestLocalStorage(t)
	ctx := context.Background()

	url, err := s.GetURL(ctx, "u1/j1/resume.pdf")
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/files/u1/j1/resume.pdf", url)

	// Local storage has no signing; the preview URL is the plain URL.
	signed, err := s.GetSignedURL(ctx, "u1/j1/resume.pdf", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, url, signed)
}

func TestNewStorageRejectsUnknownType(t *testing.T) {
	_, err := NewStorage(Config{Type: "ftp"})
	assert.Error(t, err)
}
