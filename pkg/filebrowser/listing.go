package filebrowser

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/filetug/filebrowser/pkg/files"
)

// readListing reads dir and derives the entries shown for it:
// ".." first, then directories, then files.
func readListing(ctx context.Context, store files.Store, dir string, flags Flags) (*files.DirContext, []Entry, error) {
	children, err := store.ReadDir(ctx, dir)
	if err != nil {
		return nil, nil, err
	}
	entries := make([]Entry, 1, len(children)+1)
	entries[0] = parentEntry()
	for _, child := range children {
		name := child.Name()
		if name == "" || isHiddenName(name, flags) {
			continue
		}
		isDir, visible, err := classifyEntry(ctx, store, dir, child)
		if err != nil {
			if flags.Has(SkipItemsCausingError) {
				continue
			}
			return nil, nil, fmt.Errorf("%s: %w", name, err)
		}
		if !visible {
			continue
		}
		entries = append(entries, newEntry(name, isDir))
	}
	sortEntries(entries[1:])
	return files.NewDirContext(dir), entries, nil
}

// isHiddenName reports names that are never listed: "$" prefixed system
// entries always, dot files when HideHidden is set.
func isHiddenName(name string, flags Flags) bool {
	if strings.HasPrefix(name, "$") {
		return true
	}
	return flags.Has(HideHidden) && strings.HasPrefix(name, ".")
}

// classifyEntry resolves symlinks to their target type. Anything that is not
// a directory or a regular file is invisible, as are dangling links.
func classifyEntry(ctx context.Context, store files.Store, dir string, entry os.DirEntry) (isDir, visible bool, err error) {
	mode := entry.Type()
	switch {
	case mode.IsDir():
		return true, true, nil
	case mode.IsRegular():
		return false, true, nil
	case mode&os.ModeSymlink == 0:
		return false, false, nil
	}
	info, err := store.Stat(ctx, filepath.Join(dir, entry.Name()))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, false, nil
		}
		return false, false, err
	}
	switch {
	case info.IsDir():
		return true, true, nil
	case info.Mode().IsRegular():
		return false, true, nil
	default:
		return false, false, nil
	}
}
