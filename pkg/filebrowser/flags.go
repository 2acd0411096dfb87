package filebrowser

// Flags select the behaviour of a Browser. They can be combined with |.
type Flags uint32

const (
	// SelectDirectory selects a directory instead of a regular file.
	SelectDirectory Flags = 1 << iota
	// EnterNewFilename lets the user type a filename that may not exist yet.
	// It has no effect together with SelectDirectory or MultipleSelection.
	EnterNewFilename
	// NoModal shows a popup that closes when clicked outside instead of a modal.
	NoModal
	// NoTitleBar hides the title bar of the modal window.
	NoTitleBar
	// NoStatusBar hides the status text at the bottom.
	NoStatusBar
	// CloseOnEsc closes the browser when Escape is pressed.
	CloseOnEsc
	// CreateNewDir allows creating a directory in the current one.
	CreateNewDir
	// MultipleSelection enables Ctrl-click, Shift-click and Ctrl+A.
	MultipleSelection
	// HideRegularFiles hides files when SelectDirectory is set.
	HideRegularFiles
	// ConfirmOnEnter confirms the selection when Enter is pressed.
	ConfirmOnEnter
	// SkipItemsCausingError skips entries that can not be classified
	// instead of failing the whole listing.
	SkipItemsCausingError
	// EditPathString allows typing the whole path.
	EditPathString
	// HideHidden hides entries whose name starts with a dot.
	HideHidden
)

func (f Flags) Has(flag Flags) bool {
	return f&flag != 0
}

// normalize drops flag combinations that can not work together.
func (f Flags) normalize() Flags {
	if f.Has(SelectDirectory) || f.Has(MultipleSelection) {
		f &^= EnterNewFilename
	}
	return f
}
