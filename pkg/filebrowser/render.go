package filebrowser

import (
	"path/filepath"
	"strconv"

	"github.com/filetug/filebrowser/pkg/sneatv/crumbs"
	"github.com/gdamore/tcell/v2"
)

// Render draws the browser for one frame and applies the interaction the
// UI reports. It must be called every frame, also while the browser is closed.
func (b *Browser) Render(ui UI) {
	ui.PushID("filebrowser_" + b.id)
	defer ui.PopID()

	if b.shouldClose {
		ui.ClosePopup(b.openLabel)
		b.shouldClose = false
	}
	if b.shouldOpen {
		ui.OpenPopup(b.openLabel)
		b.shouldOpen = false
	}
	b.isOpened = false

	modal := !b.flags.Has(NoModal)
	options := PopupOptions{
		Modal:      modal,
		NoTitleBar: modal && b.flags.Has(NoTitleBar),
		Width:      b.width,
		Height:     b.height,
		X:          b.posX,
		Y:          b.posY,
		Positioned: b.isPosSet,
	}
	if !ui.BeginPopup(b.openLabel, options) {
		return
	}
	defer ui.EndPopup()
	b.isOpened = true

	if b.editDir {
		b.renderEditPath(ui)
	} else {
		b.renderCrumbs(ui)
		if b.flags.Has(EditPathString) {
			ui.SameLine()
			if ui.SmallButton("#") {
				b.editDirPath = b.Directory()
				b.editDir = true
				b.focusEditDir = true
			}
		}
	}
	ui.SameLine()
	if ui.SmallButton("*") {
		b.refresh(true)
	}
	inputActive := b.renderNewDir(ui)

	activated := b.renderEntries(ui)

	if b.flags.Has(EnterNewFilename) {
		ui.PushID("input_name")
		if ui.InputText("##input_name", &b.inputName, 0) && b.inputName != "" {
			b.selected = map[string]struct{}{b.inputName: {}}
		}
		inputActive = inputActive || ui.IsItemActive()
		ui.PopID()
	}

	if !inputActive && !b.editDir && b.flags.Has(MultipleSelection) && ui.IsKeyPressed(tcell.KeyCtrlA) {
		b.selectAll()
	}

	b.renderFooter(ui, !activated && !inputActive && !b.editDir)
}

// crumbTrail splits the current directory into crumbs. The store root is
// titled after the store and the current directory stands out.
func (b *Browser) crumbTrail() *crumbs.Breadcrumbs {
	rootPath := filepath.FromSlash(b.store.RootURL().Path)
	trail := crumbs.FromPath(b.Directory(), func(dir string) error {
		return b.setDirectory(dir, b.Directory())
	}, crumbs.WithRoot(rootPath, b.store.RootTitle()))
	items := trail.Items()
	for i, item := range items {
		if i == len(items)-1 {
			item.SetColor(dirColor)
		} else {
			item.SetColor(crumbColor)
		}
	}
	return trail
}

func (b *Browser) renderCrumbs(ui UI) {
	trail := b.crumbTrail()
	clicked := -1
	for i, item := range trail.Items() {
		ui.PushID(strconv.Itoa(i))
		if i > 0 {
			ui.SameLine()
		}
		if separator := trail.Separator(i); separator != "" {
			ui.Text(separator)
			ui.SameLine()
		}
		ui.PushTextColor(item.GetColor())
		if ui.SmallButton(item.GetTitle()) {
			clicked = i
		}
		ui.PopTextColor()
		ui.PopID()
	}
	if clicked >= 0 {
		_ = trail.Items()[clicked].Action()
	}
}

func (b *Browser) renderEditPath(ui UI) {
	if b.focusEditDir {
		ui.SetKeyboardFocusHere()
	}
	enter := ui.InputText("##directory", &b.editDirPath, InputEnterReturnsTrue)
	if !ui.IsItemActive() && !b.focusEditDir {
		b.editDir = false
	}
	b.focusEditDir = false
	if enter {
		b.editDir = false
		b.enterTypedPath(b.editDirPath)
	}
}

// renderNewDir draws the "+" button and its popup. It reports whether the
// name input has keyboard focus.
func (b *Browser) renderNewDir(ui UI) (inputActive bool) {
	if !b.flags.Has(CreateNewDir) {
		return false
	}
	ui.SameLine()
	if ui.SmallButton("+") {
		ui.OpenPopup(b.newDirLabel)
		b.newDirName = ""
	}
	if !ui.BeginPopup(b.newDirLabel, PopupOptions{Width: 40, Height: 4}) {
		return false
	}
	defer ui.EndPopup()
	ui.InputText("name", &b.newDirName, 0)
	inputActive = ui.IsItemActive()
	ui.SameLine()
	if ui.Button("ok") && b.newDirName != "" {
		b.createDir(b.newDirName)
		ui.CloseCurrentPopup()
	}
	return inputActive
}

// renderEntries draws the listing. It reports whether an entry was
// activated, so the same Enter does not also confirm.
func (b *Browser) renderEntries(ui UI) (activated bool) {
	reserve := 1
	if b.flags.Has(EnterNewFilename) {
		reserve++
	}
	ui.BeginChild("ch", reserve)

	var newDir string
	entries := b.entries
	for i, entry := range entries {
		if !b.isVisible(entry) {
			continue
		}
		_, selected := b.selected[entry.Name]
		ui.PushTextColor(entry.Color)
		clicked := ui.Selectable(entry.Label, selected)
		ui.PopTextColor()
		if clicked {
			b.click(i, ui.KeyModifiers(), ui.IsWindowFocused())
		}
		if ui.IsItemDoubleClicked() {
			activated = true
			dir, confirmed := b.activate(i)
			if confirmed {
				ui.CloseCurrentPopup()
			}
			if dir != "" {
				newDir = dir
			}
		}
	}
	ui.EndChild()

	if newDir != "" {
		b.navigate(newDir)
	}
	return activated
}

func (b *Browser) renderFooter(ui UI, enterConfirms bool) {
	focused := ui.IsWindowFocused()
	enter := enterConfirms && b.flags.Has(ConfirmOnEnter) && focused && ui.IsKeyPressed(tcell.KeyEnter)
	if ui.Button(b.acceptLabel()) || enter {
		if b.accept() {
			ui.CloseCurrentPopup()
		}
	}

	ui.SameLine()
	escape := b.flags.Has(CloseOnEsc) && focused && ui.IsKeyPressed(tcell.KeyEscape)
	if ui.Button("cancel") || escape {
		ui.CloseCurrentPopup()
	}

	if b.status != "" && !b.flags.Has(NoStatusBar) {
		ui.SameLine()
		ui.Text(b.status)
	}

	names := b.filters.names()
	if len(names) == 0 {
		return
	}
	ui.SameLine()
	preview := ""
	if b.filters.index >= 0 && b.filters.index < len(names) {
		preview = names[b.filters.index]
	}
	if ui.BeginCombo("##type_filters", preview) {
		for i, name := range names {
			selected := i == b.filters.index
			if ui.Selectable(name, selected) && !selected {
				b.filters.index = i
				b.resetRangeStart()
			}
		}
		ui.EndCombo()
	}
}
