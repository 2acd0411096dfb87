package osfile

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/filetug/filebrowser/pkg/files"
)

var osReadDir = os.ReadDir
var osStat = os.Stat
var osHostname = os.Hostname
var osMkdir = os.Mkdir
var filepathAbs = filepath.Abs

var _ files.Store = (*Store)(nil)

// Store reads the local filesystem.
type Store struct {
	title string
	root  string
}

// NewStore creates a local store; an empty root means the filesystem root.
func NewStore(root string) *Store {
	if root == "" {
		root = string(filepath.Separator)
	}
	store := Store{root: root}
	if hostname, err := osHostname(); err == nil {
		store.title = hostname
	}
	return &store
}

// RootURL locates the store root; its path is in slash form.
func (s Store) RootURL() url.URL {
	return url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(s.root),
	}
}

// RootTitle names the store root after the host, or is empty when the
// hostname is unknown.
func (s Store) RootTitle() string {
	return strings.TrimSuffix(s.title, ".local")
}

func (s Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osReadDir(name)
}

func (s Store) Stat(ctx context.Context, name string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osStat(name)
}

func (s Store) CreateDir(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return osMkdir(path, 0o755)
}

func (s Store) Abs(name string) (string, error) {
	return filepathAbs(name)
}
