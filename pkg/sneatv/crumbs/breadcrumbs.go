package crumbs

import (
	"github.com/filetug/filebrowser/pkg/fsutils"
	"github.com/gdamore/tcell/v2"
)

type Breadcrumb interface {
	GetTitle() string
	SetTitle(string) Breadcrumb
	SetColor(color tcell.Color) Breadcrumb
	GetColor() tcell.Color
	SetAction(action func() error) Breadcrumb
	Action() error
}

type breadcrumb struct {
	title  string
	color  tcell.Color
	action func() error
}

func (b *breadcrumb) GetTitle() string      { return b.title }
func (b *breadcrumb) GetColor() tcell.Color { return b.color }

func (b *breadcrumb) SetTitle(title string) Breadcrumb {
	b.title = title
	return b
}

func (b *breadcrumb) SetColor(color tcell.Color) Breadcrumb {
	b.color = color
	return b
}

func (b *breadcrumb) SetAction(action func() error) Breadcrumb {
	b.action = action
	return b
}

// Action runs the crumb's action; a crumb without one does nothing.
func (b *breadcrumb) Action() error {
	if b.action == nil {
		return nil
	}
	return b.action()
}

func NewBreadcrumb(title string, action func() error) Breadcrumb {
	return &breadcrumb{title: title, action: action}
}

// Breadcrumbs is an ordered trail, home first.
// Drawing is left to the caller so the same trail works with any UI.
type Breadcrumbs struct {
	items             []Breadcrumb
	separator         string
	separatorStartIdx int
	rootPath          string
	rootTitle         string
}

func NewBreadcrumbs(home Breadcrumb, options ...Option) *Breadcrumbs {
	bc := &Breadcrumbs{}
	if home != nil {
		bc.items = append(bc.items, home)
	}
	for _, o := range options {
		o(bc)
	}
	return bc
}

// FromPath builds a trail with one crumb per path segment. Each crumb calls
// goDir with the path up to and including its segment.
func FromPath(p string, goDir func(dir string) error, options ...Option) *Breadcrumbs {
	bc := NewBreadcrumbs(nil, options...)
	for _, segment := range fsutils.SplitPath(p) {
		dir := segment.Path
		title := segment.Name
		if bc.rootTitle != "" && dir == bc.rootPath {
			title = bc.rootTitle
		}
		bc.Push(NewBreadcrumb(title, func() error {
			if goDir == nil {
				return nil
			}
			return goDir(dir)
		}))
	}
	return bc
}

func (b *Breadcrumbs) Push(bc Breadcrumb) {
	b.items = append(b.items, bc)
}

func (b *Breadcrumbs) Clear() {
	b.items = b.items[:0]
}

func (b *Breadcrumbs) Items() []Breadcrumb {
	return b.items
}

func (b *Breadcrumbs) Len() int {
	return len(b.items)
}

// Separator returns what goes before item i, or "" when nothing does.
func (b *Breadcrumbs) Separator(i int) string {
	if i <= 0 || i <= b.separatorStartIdx {
		return ""
	}
	return b.separator
}

func (b *Breadcrumbs) GoHome() error {
	if len(b.items) == 0 {
		return nil
	}
	return b.items[0].Action()
}
