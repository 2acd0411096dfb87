package files

import (
	"os"
	"path/filepath"
)

// NewDirEntry creates an entry for a regular file or a directory.
func NewDirEntry(name string, isDir bool) DirEntry {
	var mode os.FileMode
	if isDir {
		mode = os.ModeDir
	}
	return NewDirEntryWithMode(name, mode)
}

// NewDirEntryWithMode creates an entry of any type, e.g. os.ModeSymlink or os.ModeSocket.
func NewDirEntryWithMode(name string, mode os.FileMode) DirEntry {
	if parent, _ := filepath.Split(name); parent != "" {
		// It's OK to have panic here.
		panic("dir entry name can not have path: " + name)
	}
	return DirEntry{name: name, mode: mode}
}

var _ os.DirEntry = (*DirEntry)(nil)

type DirEntry struct {
	name string
	mode os.FileMode
}

func (d DirEntry) Name() string      { return d.name }
func (d DirEntry) IsDir() bool       { return d.mode.IsDir() }
func (d DirEntry) Type() os.FileMode { return d.mode.Type() }
func (d DirEntry) Info() (os.FileInfo, error) {
	return NewFileInfo(d.name, d.mode), nil
}
