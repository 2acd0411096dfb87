package filebrowser

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync/atomic"

	"github.com/filetug/filebrowser/pkg/files"
	"github.com/filetug/filebrowser/pkg/files/osfile"
	"github.com/sirupsen/logrus"
)

const (
	defaultTitle  = "file browser"
	defaultWidth  = 72
	defaultHeight = 22
)

var browserSeq atomic.Uint64

var osGetwd = os.Getwd

// Browser is a file browsing dialog. It is not safe for concurrent use;
// all calls, including Render, must come from the UI goroutine.
type Browser struct {
	id         string
	flags      Flags
	store      files.Store
	log        logrus.FieldLogger
	baseCtx    context.Context
	defaultDir string

	title       string
	openLabel   string
	newDirLabel string

	width, height int
	posX, posY    int
	isPosSet      bool

	shouldOpen  bool
	shouldClose bool
	isOpened    bool
	confirmed   bool

	status string

	dir     *files.DirContext
	entries []Entry
	filters typeFilters

	selected   map[string]struct{}
	rangeStart int

	inputName       string
	customInputName string

	newDirName string

	editDir      bool
	focusEditDir bool
	editDirPath  string
}

type browserOptions struct {
	store      files.Store
	log        logrus.FieldLogger
	ctx        context.Context
	defaultDir string
	title      string
}

type Option func(o *browserOptions)

func WithStore(store files.Store) Option {
	return func(o *browserOptions) {
		o.store = store
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(o *browserOptions) {
		o.log = log
	}
}

// WithContext sets the context store calls run with. Once it is done,
// directory changes fail and fall back like any other listing error.
func WithContext(ctx context.Context) Option {
	return func(o *browserOptions) {
		o.ctx = ctx
	}
}

// WithDefaultDirectory sets the initial directory and the last-resort fallback.
// The default is the process working directory.
func WithDefaultDirectory(dir string) Option {
	return func(o *browserOptions) {
		o.defaultDir = dir
	}
}

func WithTitle(title string) Option {
	return func(o *browserOptions) {
		o.title = title
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// New creates a browser positioned at the default directory.
// It fails only when the default directory can not be listed.
func New(flags Flags, options ...Option) (*Browser, error) {
	o := browserOptions{title: defaultTitle}
	for _, option := range options {
		option(&o)
	}
	if o.store == nil {
		o.store = osfile.NewStore("")
	}
	if o.log == nil {
		o.log = discardLogger()
	}
	if o.ctx == nil {
		o.ctx = context.Background()
	}
	if o.defaultDir == "" {
		wd, err := osGetwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		o.defaultDir = wd
	}

	normalized := flags.normalize()
	b := &Browser{
		id:       strconv.FormatUint(browserSeq.Add(1), 10),
		flags:    normalized,
		store:    o.store,
		log:      o.log,
		baseCtx:  o.ctx,
		width:    defaultWidth,
		height:   defaultHeight,
		filters:  newTypeFilters(),
		selected: make(map[string]struct{}),
	}
	if normalized != flags {
		b.log.WithField("flags", flags).Warn("EnterNewFilename is ignored with SelectDirectory or MultipleSelection")
	}
	b.SetTitle(o.title)

	defaultDir, err := b.absDir(o.defaultDir)
	if err != nil {
		return nil, err
	}
	b.defaultDir = defaultDir
	if err = b.enterDirectory(defaultDir); err != nil {
		b.log.WithError(err).WithField("dir", defaultDir).Error("failed to list default directory")
		return nil, fmt.Errorf("%w: %s: %w", ErrNoDirectory, defaultDir, err)
	}
	return b, nil
}

// Clone returns an independent browser with the same settings and state.
func (b *Browser) Clone() *Browser {
	c := *b
	c.id = strconv.FormatUint(browserSeq.Add(1), 10)
	c.SetTitle(b.title)
	c.status = ""
	c.filters = newTypeFilters()
	c.filters.foldCase = b.filters.foldCase
	c.filters.filters = append([]typeFilter(nil), b.filters.filters...)
	c.filters.index = b.filters.index
	c.entries = append([]Entry(nil), b.entries...)
	c.selected = make(map[string]struct{}, len(b.selected))
	for name := range b.selected {
		c.selected[name] = struct{}{}
	}
	return &c
}

func (b *Browser) Flags() Flags {
	return b.flags
}

// SetWindowPos places the window at x, y instead of centring it.
func (b *Browser) SetWindowPos(x, y int) {
	b.posX, b.posY = x, y
	b.isPosSet = true
}

// SetWindowSize sets the window size in cells. Non-positive sizes are ignored.
func (b *Browser) SetWindowSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	b.width, b.height = width, height
}

// SetTitle sets the window title. The popup ID combines the title with the
// browser's identity so browsers with equal titles do not collide.
func (b *Browser) SetTitle(title string) {
	b.title = title
	b.openLabel = title + "##filebrowser_" + b.id
	b.newDirLabel = "new dir##new_dir_" + b.id
}

func (b *Browser) Title() string {
	return b.title
}

// Open shows the browser on the next Render. The listing is refreshed and
// any previous selection is dropped.
func (b *Browser) Open() {
	b.ClearSelected()
	b.status = ""
	b.refresh(false)
	b.shouldOpen = true
	b.shouldClose = false
	if b.flags.Has(EnterNewFilename) && b.customInputName != "" {
		b.inputName = b.customInputName
		b.selected = map[string]struct{}{b.inputName: {}}
	}
}

// Close hides the browser on the next Render.
func (b *Browser) Close() {
	b.ClearSelected()
	b.status = ""
	b.shouldClose = true
	b.shouldOpen = false
}

// IsOpened reports whether the last Render drew the browser.
func (b *Browser) IsOpened() bool {
	return b.isOpened
}

// HasSelected reports whether the user confirmed a selection.
func (b *Browser) HasSelected() bool {
	return b.confirmed
}

func (b *Browser) Directory() string {
	if b.dir == nil {
		return ""
	}
	return b.dir.Path()
}

// Selected returns the selected path, or the current directory when nothing
// is selected. It is meaningful only when HasSelected is true. With multiple
// selection the first name in sort order is used.
func (b *Browser) Selected() string {
	names := b.selectedNames()
	if len(names) == 0 {
		return b.Directory()
	}
	return filepath.Join(b.Directory(), names[0])
}

// MultiSelected returns all selected paths, or the current directory when
// nothing is selected.
func (b *Browser) MultiSelected() []string {
	names := b.selectedNames()
	if len(names) == 0 {
		return []string{b.Directory()}
	}
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(b.Directory(), name)
	}
	return paths
}

// ClearSelected drops the selection and the typed name without closing.
func (b *Browser) ClearSelected() {
	clear(b.selected)
	b.inputName = ""
	b.confirmed = false
}

// SetTypeFilters restricts the listed files, e.g. ".go", ".*" or "*_test.go".
func (b *Browser) SetTypeFilters(filters []string) {
	if invalid := b.filters.set(filters); len(invalid) > 0 {
		b.log.WithField("filters", invalid).Warn("ignoring invalid type filters")
	}
}

// TypeFilters returns the filter names as shown, including the aggregate.
func (b *Browser) TypeFilters() []string {
	return b.filters.names()
}

func (b *Browser) SetCurrentTypeFilterIndex(index int) {
	b.filters.index = index
}

// SetInputName pre-fills the filename input on Open. Requires EnterNewFilename.
func (b *Browser) SetInputName(name string) {
	if !b.flags.Has(EnterNewFilename) {
		b.log.Warn("SetInputName requires EnterNewFilename")
		return
	}
	b.customInputName = name
}

// Entries returns a copy of the current listing.
func (b *Browser) Entries() []Entry {
	return append([]Entry(nil), b.entries...)
}

// Status returns the text of the status bar.
func (b *Browser) Status() string {
	return b.status
}

func (b *Browser) selectedNames() []string {
	names := make([]string, 0, len(b.selected))
	for name := range b.selected {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (b *Browser) ctx() context.Context {
	return b.baseCtx
}
