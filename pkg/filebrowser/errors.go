package filebrowser

import "errors"

var (
	// ErrFellBack is returned by SetDirectory when the requested directory could
	// not be listed and the browser moved to a fallback directory instead.
	ErrFellBack = errors.New("directory not accessible, fell back")
	// ErrNoDirectory is returned when neither the requested directory nor any
	// fallback could be listed. The browser keeps its previous directory.
	ErrNoDirectory = errors.New("no accessible directory")
)
