package crumbs

type Option func(bc *Breadcrumbs)

func WithSeparator(separator string) Option {
	return func(bc *Breadcrumbs) {
		bc.separator = separator
	}
}

// WithSeparatorStartIndex suppresses separators up to and including item i,
// e.g. after a "/" root crumb.
func WithSeparatorStartIndex(i int) Option {
	return func(bc *Breadcrumbs) {
		bc.separatorStartIdx = i
	}
}

// WithRoot shows title instead of the name of the rootPath crumb.
// An empty title keeps the name.
func WithRoot(rootPath, title string) Option {
	return func(bc *Breadcrumbs) {
		bc.rootPath = rootPath
		bc.rootTitle = title
	}
}
