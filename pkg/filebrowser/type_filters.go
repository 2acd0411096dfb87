package filebrowser

import (
	"runtime"
	"strings"

	"github.com/gobwas/glob"
	"golang.org/x/text/cases"
)

const universalFilter = ".*"

type typeFilter struct {
	name      string
	universal bool
	globs     []glob.Glob
}

// typeFilters restricts which files are shown. The first filter is an
// aggregate of all others when more than one is set and none is ".*".
type typeFilters struct {
	filters  []typeFilter
	index    int
	foldCase bool
	folder   cases.Caser
}

func newTypeFilters() typeFilters {
	return typeFilters{
		foldCase: runtime.GOOS == "windows",
		folder:   cases.Fold(),
	}
}

// set replaces the filters. An extension such as ".go" matches names ending
// with it, ".*" matches everything, anything else is a glob such as "*_test.go".
// Invalid globs are returned and left out.
func (tf *typeFilters) set(raw []string) (invalid []string) {
	tf.filters = nil
	tf.index = 0

	seen := make(map[string]bool, len(raw))
	var parsed []typeFilter
	for _, name := range raw {
		if tf.foldCase {
			name = tf.fold(name)
		}
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		filter, err := tf.compile(name)
		if err != nil {
			invalid = append(invalid, name)
			continue
		}
		parsed = append(parsed, filter)
	}

	if len(parsed) > 1 {
		all := typeFilter{}
		names := make([]string, 0, len(parsed))
		for _, filter := range parsed {
			if filter.universal {
				all.universal = true
				break
			}
			names = append(names, filter.name)
			all.globs = append(all.globs, filter.globs...)
		}
		if !all.universal {
			all.name = strings.Join(names, ",")
			tf.filters = append(tf.filters, all)
		}
	}
	tf.filters = append(tf.filters, parsed...)
	return invalid
}

func (tf *typeFilters) compile(name string) (typeFilter, error) {
	filter := typeFilter{name: name}
	if name == universalFilter {
		filter.universal = true
		return filter, nil
	}
	pattern := name
	if strings.HasPrefix(name, ".") && !strings.ContainsAny(name, "*?[{") {
		pattern = "*" + name
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return filter, err
	}
	filter.globs = []glob.Glob{g}
	return filter, nil
}

func (tf *typeFilters) fold(s string) string {
	return tf.folder.String(s)
}

func (tf *typeFilters) names() []string {
	names := make([]string, len(tf.filters))
	for i, filter := range tf.filters {
		names[i] = filter.name
	}
	return names
}

// matches reports whether a file name passes the current filter.
func (tf *typeFilters) matches(name string) bool {
	if len(tf.filters) == 0 || tf.index < 0 || tf.index >= len(tf.filters) {
		return true
	}
	filter := tf.filters[tf.index]
	if filter.universal {
		return true
	}
	if tf.foldCase {
		name = tf.fold(name)
	}
	for _, g := range filter.globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}
