package filebrowser

import "github.com/gdamore/tcell/v2"

// isVisible reports whether a listed entry is shown with the current flags
// and type filter.
func (b *Browser) isVisible(entry Entry) bool {
	if entry.IsDir {
		return true
	}
	if b.flags.Has(HideRegularFiles) && b.flags.Has(SelectDirectory) {
		return false
	}
	return b.filters.matches(entry.Name)
}

// isSelectable reports whether the user can select an entry: directories in
// directory mode, visible files otherwise, never "..".
func (b *Browser) isSelectable(entry Entry) bool {
	if entry.Name == parentDirName {
		return false
	}
	wantDir := b.flags.Has(SelectDirectory)
	if entry.IsDir != wantDir {
		return false
	}
	return wantDir || b.filters.matches(entry.Name)
}

func (b *Browser) resetRangeStart() {
	b.rangeStart = -1
	for i := 1; i < len(b.entries); i++ {
		if b.isSelectable(b.entries[i]) {
			b.rangeStart = i
			return
		}
	}
}

// click applies a single click on entries[i]. Ctrl toggles and Shift selects
// a range when MultipleSelection is set and the browser has focus.
func (b *Browser) click(i int, mods tcell.ModMask, focused bool) {
	entry := b.entries[i]
	canSelect := b.isSelectable(entry)
	multi := b.flags.Has(MultipleSelection) && focused
	rangeSelect := canSelect && multi && mods&tcell.ModShift != 0 &&
		b.rangeStart >= 0 && b.rangeStart < len(b.entries)
	toggle := !rangeSelect && multi && mods&tcell.ModCtrl != 0
	_, selected := b.selected[entry.Name]

	switch {
	case rangeSelect:
		first, last := min(b.rangeStart, i), max(b.rangeStart, i)
		clear(b.selected)
		for j := first; j <= last; j++ {
			if b.isSelectable(b.entries[j]) {
				b.selected[b.entries[j].Name] = struct{}{}
			}
		}
	case selected:
		if toggle || len(b.selected) == 1 {
			delete(b.selected, entry.Name)
		} else {
			b.selected = map[string]struct{}{entry.Name: {}}
			b.rangeStart = i
		}
		if b.flags.Has(EnterNewFilename) {
			b.inputName = ""
		}
	case canSelect:
		if !toggle {
			clear(b.selected)
		}
		b.selected[entry.Name] = struct{}{}
		if b.flags.Has(EnterNewFilename) {
			b.inputName = entry.Name
		}
		b.rangeStart = i
	}
}

// activate handles a double click or Enter on entries[i]. It returns the
// directory to enter, or confirmed when a file was picked.
func (b *Browser) activate(i int) (dir string, confirmed bool) {
	entry := b.entries[i]
	if entry.IsDir {
		return b.childDir(entry.Name), false
	}
	if b.flags.Has(SelectDirectory) {
		return "", false
	}
	b.selected = map[string]struct{}{entry.Name: {}}
	if b.flags.Has(EnterNewFilename) {
		b.inputName = entry.Name
	}
	b.confirmed = true
	return "", true
}

func (b *Browser) selectAll() {
	clear(b.selected)
	for _, entry := range b.entries {
		if b.isSelectable(entry) {
			b.selected[entry.Name] = struct{}{}
		}
	}
}

// accept handles the accept button. It returns true when the selection got
// confirmed and the dialog should close.
func (b *Browser) accept() bool {
	if !b.flags.Has(SelectDirectory) {
		if len(b.selected) == 0 {
			return false
		}
		b.confirmed = true
		return true
	}
	if len(b.selected) == 1 {
		for name := range b.selected {
			b.navigate(b.childDir(name))
		}
		return false
	}
	b.confirmed = true
	return true
}

func (b *Browser) acceptLabel() string {
	if b.flags.Has(SelectDirectory) && len(b.selected) == 1 {
		return " open "
	}
	return " ok "
}
