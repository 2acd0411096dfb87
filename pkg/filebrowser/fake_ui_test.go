package filebrowser

import (
	"github.com/gdamore/tcell/v2"
)

// fakeUI is a scripted UI. Events set before a frame are delivered during
// the next call to frame and then dropped.
type fakeUI struct {
	open       map[string]bool
	popupStack []string
	closing    map[string]bool
	options    map[string]PopupOptions
	comboOpen  bool
	unfocused  bool
	active     map[string]bool

	clicks       map[string]bool
	doubleClicks map[string]bool
	inputs       map[string]string
	keys         map[tcell.Key]bool
	mods         tcell.ModMask

	idDepth    int
	colorStack []tcell.Color
	lastItem   string

	// recorded during the last frame
	texts          []string
	buttons        []string
	selectables    []string
	selectedLabels []string
	colors         map[string]tcell.Color
	inputValues    map[string]string
	combos         map[string]string
	focusRequested bool
}

var _ UI = (*fakeUI)(nil)

func newFakeUI() *fakeUI {
	return &fakeUI{
		open:         make(map[string]bool),
		closing:      make(map[string]bool),
		options:      make(map[string]PopupOptions),
		active:       make(map[string]bool),
		clicks:       make(map[string]bool),
		doubleClicks: make(map[string]bool),
		inputs:       make(map[string]string),
		keys:         make(map[tcell.Key]bool),
	}
}

func (u *fakeUI) frame(b *Browser) {
	u.texts = nil
	u.buttons = nil
	u.selectables = nil
	u.selectedLabels = nil
	u.colors = make(map[string]tcell.Color)
	u.inputValues = make(map[string]string)
	u.combos = make(map[string]string)
	u.focusRequested = false

	b.Render(u)

	if u.idDepth != 0 || len(u.popupStack) != 0 || len(u.colorStack) != 0 {
		panic("unbalanced UI stacks")
	}
	clear(u.clicks)
	clear(u.doubleClicks)
	clear(u.inputs)
	clear(u.keys)
	u.mods = 0
}

func (u *fakeUI) click(label string)       { u.clicks[label] = true }
func (u *fakeUI) doubleClick(label string) { u.doubleClicks[label] = true }
func (u *fakeUI) input(id, text string)    { u.inputs[id] = text }
func (u *fakeUI) press(key tcell.Key)      { u.keys[key] = true }

func (u *fakeUI) PushID(string) { u.idDepth++ }
func (u *fakeUI) PopID()        { u.idDepth-- }

func (u *fakeUI) OpenPopup(id string)  { u.open[id] = true }
func (u *fakeUI) ClosePopup(id string) { delete(u.open, id) }

func (u *fakeUI) BeginPopup(id string, options PopupOptions) bool {
	u.options[id] = options
	if !u.open[id] {
		return false
	}
	u.popupStack = append(u.popupStack, id)
	return true
}

func (u *fakeUI) EndPopup() {
	id := u.popupStack[len(u.popupStack)-1]
	u.popupStack = u.popupStack[:len(u.popupStack)-1]
	if u.closing[id] {
		delete(u.closing, id)
		delete(u.open, id)
	}
}

func (u *fakeUI) CloseCurrentPopup() {
	u.closing[u.popupStack[len(u.popupStack)-1]] = true
}

func (u *fakeUI) IsWindowFocused() bool { return !u.unfocused }

func (u *fakeUI) BeginChild(string, int) {}
func (u *fakeUI) EndChild()              {}
func (u *fakeUI) SameLine()              {}

func (u *fakeUI) Text(text string) {
	u.texts = append(u.texts, text)
}

func (u *fakeUI) Button(label string) bool {
	u.lastItem = label
	u.buttons = append(u.buttons, label)
	if len(u.colorStack) > 0 {
		u.colors[label] = u.colorStack[len(u.colorStack)-1]
	}
	return u.take(label)
}

func (u *fakeUI) SmallButton(label string) bool {
	return u.Button(label)
}

func (u *fakeUI) Selectable(label string, selected bool) bool {
	u.lastItem = label
	u.selectables = append(u.selectables, label)
	if selected {
		u.selectedLabels = append(u.selectedLabels, label)
	}
	if len(u.colorStack) > 0 {
		u.colors[label] = u.colorStack[len(u.colorStack)-1]
	}
	return u.take(label)
}

func (u *fakeUI) InputText(id string, text *string, _ InputTextFlags) bool {
	u.lastItem = id
	defer func() { u.inputValues[id] = *text }()
	if typed, ok := u.inputs[id]; ok {
		*text = typed
		return true
	}
	return false
}

func (u *fakeUI) BeginCombo(id, preview string) bool {
	u.lastItem = id
	u.combos[id] = preview
	return u.comboOpen
}

func (u *fakeUI) EndCombo() {}

func (u *fakeUI) IsItemActive() bool { return u.active[u.lastItem] }

func (u *fakeUI) IsItemDoubleClicked() bool {
	if u.doubleClicks[u.lastItem] {
		delete(u.doubleClicks, u.lastItem)
		return true
	}
	return false
}

func (u *fakeUI) SetKeyboardFocusHere()           { u.focusRequested = true }
func (u *fakeUI) IsKeyPressed(key tcell.Key) bool { return u.keys[key] }
func (u *fakeUI) KeyModifiers() tcell.ModMask     { return u.mods }

func (u *fakeUI) PushTextColor(color tcell.Color) {
	u.colorStack = append(u.colorStack, color)
}

func (u *fakeUI) PopTextColor() {
	u.colorStack = u.colorStack[:len(u.colorStack)-1]
}

func (u *fakeUI) take(label string) bool {
	if u.clicks[label] {
		delete(u.clicks, label)
		return true
	}
	return false
}
