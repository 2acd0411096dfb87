package filebrowser

import (
	"sort"

	"github.com/gdamore/tcell/v2"
)

const parentDirName = ".."

// Entry is one listed child of the current directory.
type Entry struct {
	Name  string
	IsDir bool
	// Label is the name decorated with a type marker.
	Label string
	Color tcell.Color
}

func newEntry(name string, isDir bool) Entry {
	label := "[F] " + name
	if isDir {
		label = "[D] " + name
	}
	return Entry{
		Name:  name,
		IsDir: isDir,
		Label: label,
		Color: GetEntryColor(name, isDir),
	}
}

func parentEntry() Entry {
	return newEntry(parentDirName, true)
}

// sortEntries puts directories before files and orders names so that letters
// compare case-insensitively with lowercase first: [b0, a0, A1] => [a0, A1, b0].
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return compareNames(entries[i].Name, entries[j].Name) < 0
	})
}

func compareNames(a, b string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		ka, kb := nameSortKey(a[i]), nameSortKey(b[i])
		if ka != kb {
			if ka < kb {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

func nameSortKey(c byte) uint32 {
	if 'A' <= c && c <= 'Z' {
		return 2*uint32(c+'a'-'A') + 1
	}
	return 2 * uint32(c)
}
