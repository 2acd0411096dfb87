package files

import (
	"os"
	"time"
)

var _ os.FileInfo = (*FileInfo)(nil)

// FileInfo is a minimal os.FileInfo for stores that do not stat real files.
type FileInfo struct {
	name string
	mode os.FileMode
}

func NewFileInfo(name string, mode os.FileMode) *FileInfo {
	return &FileInfo{name: name, mode: mode}
}

func (f *FileInfo) Name() string {
	if f == nil {
		return ""
	}
	return f.name
}

func (f *FileInfo) Size() int64 { return 0 }

func (f *FileInfo) Mode() os.FileMode {
	if f == nil {
		return 0
	}
	return f.mode
}

func (f *FileInfo) ModTime() time.Time { return time.Time{} }

func (f *FileInfo) IsDir() bool {
	if f == nil {
		return false
	}
	return f.mode.IsDir()
}

func (f *FileInfo) Sys() any { return nil }
