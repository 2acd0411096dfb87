package fsutils

import (
	"os"
	"path/filepath"
	"strings"
)

var osUserHomeDir = os.UserHomeDir

// ExpandHome expands leading ~ to the user's home directory.
func ExpandHome(p string) string {
	if p == "" {
		return p
	}
	if strings.HasPrefix(p, "~/") || strings.HasPrefix(p, `~\`) || p == "~" {
		home, err := osUserHomeDir()
		if err == nil {
			if p == "~" {
				return home
			}
			return filepath.Join(home, p[2:])
		}
	}
	return p
}

// PathSegment is one element of an absolute path and the path up to and including it.
type PathSegment struct {
	Name string
	Path string
}

// SplitPath breaks an absolute path into segments, root first.
// "/a/b" gives "/", "a", "b"; `C:\a` gives `C:\`, "a".
func SplitPath(p string) []PathSegment {
	if p == "" {
		return nil
	}
	p = filepath.Clean(p)
	volume := filepath.VolumeName(p)
	rest := p[len(volume):]

	var segments []PathSegment
	root := volume
	if strings.HasPrefix(rest, string(filepath.Separator)) {
		root += string(filepath.Separator)
		rest = rest[1:]
	}
	current := root
	if root != "" {
		segments = append(segments, PathSegment{Name: root, Path: root})
	}
	if rest == "" {
		return segments
	}
	for _, name := range strings.Split(rest, string(filepath.Separator)) {
		if name == "" {
			continue
		}
		if current == "" {
			current = name
		} else {
			current = filepath.Join(current, name)
		}
		segments = append(segments, PathSegment{Name: name, Path: current})
	}
	return segments
}
