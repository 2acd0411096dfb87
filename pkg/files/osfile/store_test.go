package osfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	origHostname := osHostname
	defer func() { osHostname = origHostname }()

	t.Run("valid_root", func(t *testing.T) {
		osHostname = func() (string, error) {
			return "test-host.local", nil
		}
		s := NewStore("/tmp")
		assert.Equal(t, "/tmp", s.root)
		assert.Equal(t, "test-host", s.RootTitle())
	})

	t.Run("hostname_error", func(t *testing.T) {
		osHostname = func() (string, error) {
			return "", errors.New("hostname error")
		}
		s := NewStore("/tmp")
		assert.Equal(t, "", s.RootTitle())
	})

	t.Run("empty_root", func(t *testing.T) {
		s := NewStore("")
		assert.Equal(t, string(filepath.Separator), s.root)
	})
}

func TestStore_RootURL(t *testing.T) {
	u := NewStore("/tmp").RootURL()
	assert.Equal(t, "file", u.Scheme)
	assert.Equal(t, "/tmp", u.Path)
}

func TestStore_ReadDir(t *testing.T) {
	origReadDir := osReadDir
	defer func() { osReadDir = origReadDir }()

	s := NewStore("/")

	t.Run("success", func(t *testing.T) {
		osReadDir = func(name string) ([]os.DirEntry, error) {
			return []os.DirEntry{}, nil
		}
		entries, err := s.ReadDir(context.Background(), "/tmp")
		assert.NoError(t, err)
		assert.NotNil(t, entries)
	})

	t.Run("context_cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		entries, err := s.ReadDir(ctx, "/tmp")
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, entries)
	})

	t.Run("read_error", func(t *testing.T) {
		osReadDir = func(name string) ([]os.DirEntry, error) {
			return nil, errors.New("read error")
		}
		entries, err := s.ReadDir(context.Background(), "/tmp")
		assert.Error(t, err)
		assert.Nil(t, entries)
	})
}

func TestStore_RealFilesystem(t *testing.T) {
	tempDir := t.TempDir()
	s := NewStore("/")
	ctx := context.Background()

	require.NoError(t, s.CreateDir(ctx, filepath.Join(tempDir, "sub")))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "a.txt"), []byte("a"), 0o644))

	entries, err := s.ReadDir(ctx, tempDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	info, err := s.Stat(ctx, filepath.Join(tempDir, "sub"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	err = s.CreateDir(ctx, filepath.Join(tempDir, "sub"))
	assert.ErrorIs(t, err, os.ErrExist)

	_, err = s.Stat(ctx, filepath.Join(tempDir, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStore_ContextCancelled(t *testing.T) {
	s := NewStore("/")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Stat(ctx, "/")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.CreateDir(ctx, "/x"), context.Canceled)
}

func TestStore_Abs(t *testing.T) {
	origAbs := filepathAbs
	defer func() { filepathAbs = origAbs }()

	s := NewStore("/")
	abs, err := s.Abs(".")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(abs))

	filepathAbs = func(path string) (string, error) {
		return "", errors.New("abs error")
	}
	_, err = s.Abs(".")
	assert.Error(t, err)
}
