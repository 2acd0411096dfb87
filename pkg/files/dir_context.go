package files

import (
	"path/filepath"
)

// DirContext is a listed directory of a store.
type DirContext struct {
	path string
}

func NewDirContext(path string) *DirContext {
	return &DirContext{path: path}
}

func (c *DirContext) Path() string {
	return c.path
}

// Parent returns the parent directory path; a root is its own parent.
func (c *DirContext) Parent() string {
	if c.path == "" {
		return ""
	}
	return filepath.Dir(c.path)
}

func (c *DirContext) String() string {
	return c.path
}
