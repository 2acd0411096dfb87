package filebrowser

import "github.com/gdamore/tcell/v2"

// UI is the immediate-mode surface a Browser draws itself with every frame.
//
// Widgets report interaction that happened since the previous frame: Button
// returns true on the frame after it was clicked. Item queries such as
// IsItemActive refer to the widget submitted last. IDs are scoped by the ID
// stack; text after "##" in a label is part of the ID but is not shown.
type UI interface {
	PushID(id string)
	PopID()

	OpenPopup(id string)
	// ClosePopup closes a popup before it is begun in this frame.
	ClosePopup(id string)
	// BeginPopup returns true when the popup is open; EndPopup must then be called.
	BeginPopup(id string, options PopupOptions) bool
	EndPopup()
	// CloseCurrentPopup closes the innermost begun popup at EndPopup.
	CloseCurrentPopup()
	// IsWindowFocused reports whether the current popup is the top-most one.
	IsWindowFocused() bool

	// BeginChild starts a scrollable region filling the remaining height of
	// the window minus reserveRows.
	BeginChild(id string, reserveRows int)
	EndChild()

	SameLine()
	Text(text string)
	Button(label string) bool
	SmallButton(label string) bool
	// Selectable returns true when the item was clicked (or Space was pressed on it).
	Selectable(label string, selected bool) bool
	// InputText edits text in place. It returns true when the text changed, or
	// with InputEnterReturnsTrue, when Enter was pressed.
	InputText(id string, text *string, flags InputTextFlags) bool
	BeginCombo(id, preview string) bool
	EndCombo()

	IsItemActive() bool
	// IsItemDoubleClicked is also true when the item is activated from the keyboard.
	IsItemDoubleClicked() bool
	// SetKeyboardFocusHere gives keyboard focus to the next submitted widget.
	SetKeyboardFocusHere()
	IsKeyPressed(key tcell.Key) bool
	// KeyModifiers returns the modifiers held during the last click.
	KeyModifiers() tcell.ModMask

	PushTextColor(color tcell.Color)
	PopTextColor()
}

// PopupOptions describe the window of a popup. Zero sizes let the UI decide.
type PopupOptions struct {
	Modal      bool
	NoTitleBar bool
	Width      int
	Height     int
	// X and Y are used when Positioned is set, otherwise the popup is centred.
	X, Y       int
	Positioned bool
}

type InputTextFlags uint8

const (
	InputEnterReturnsTrue InputTextFlags = 1 << iota
)
