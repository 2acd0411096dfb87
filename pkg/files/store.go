package files

import (
	"context"
	"net/url"
	"os"
)

//go:generate mockgen -destination=mock_store.go -package=files . Store

// Store is the filesystem the browser lists directories from.
type Store interface {
	RootTitle() string
	RootURL() url.URL
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
	// Stat follows symlinks.
	Stat(ctx context.Context, name string) (os.FileInfo, error)
	CreateDir(ctx context.Context, path string) error
	// Abs returns the cleaned absolute form of name.
	Abs(name string) (string, error)
}
