package imui

import (
	"slices"

	"github.com/filetug/filebrowser/pkg/filebrowser"
	"github.com/gdamore/tcell/v2"
)

// inputState belongs to the text input that has keyboard focus.
type inputState struct {
	id     string
	rect   rect
	cursor int
	offset int
	seen   bool
}

// InputText edits text in a one row field. A field without a visible label
// takes the rest of the row; a labelled one two thirds of the window with
// the label after it. While active the field takes all keys but Tab.
func (c *Context) InputText(id string, text *string, flags filebrowser.InputTextFlags) bool {
	w := c.window()
	if w == nil {
		return false
	}
	full := c.scopedID(id)
	label := displayLabel(id)

	width := w.remaining()
	if label != "" {
		width = min(w.inner.w*2/3, width-textWidth(label)-1)
	}
	r := w.place(width)
	if label != "" {
		w.sameLine = true
		lr := w.place(textWidth(label))
		drawText(c.screen, lr.x, lr.y, lr.w, label, c.style.Text, w.clip())
	}

	runes := []rune(*text)
	if c.frame.focusNext {
		c.frame.focusNext = false
		c.activateInput(full, len(runes))
	}
	if c.hitClick(r) {
		pos := c.input.offset + c.frame.click.x - r.x
		if c.input.id != full {
			pos = c.frame.click.x - r.x
		}
		c.activateInput(full, pos)
	}

	changed, entered := false, false
	if c.input.id == full {
		c.input.seen = true
		c.input.rect = r
		changed, entered = c.editText(&runes)
		if changed {
			*text = string(runes)
		}
	}
	c.drawInput(r, runes, full)
	c.frame.last = item{id: full, rect: r}

	if flags&filebrowser.InputEnterReturnsTrue != 0 {
		return entered
	}
	return changed
}

func (c *Context) activateInput(id string, cursor int) {
	if c.input.id != id {
		c.input = inputState{id: id}
	}
	c.input.cursor = cursor
	c.frame.handled = true
}

// editText applies the frame's keys to runes. Enter, Escape and Tab end
// editing.
func (c *Context) editText(runes *[]rune) (changed, entered bool) {
	in := &c.input
	in.cursor = max(0, min(in.cursor, len(*runes)))
	for _, k := range c.frame.keys {
		if k.used || c.input.id == "" {
			continue
		}
		k.used = true
		switch k.ev.Key() {
		case tcell.KeyRune:
			*runes = slices.Insert(*runes, in.cursor, k.ev.Rune())
			in.cursor++
			changed = true
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if in.cursor > 0 {
				*runes = slices.Delete(*runes, in.cursor-1, in.cursor)
				in.cursor--
				changed = true
			}
		case tcell.KeyDelete:
			if in.cursor < len(*runes) {
				*runes = slices.Delete(*runes, in.cursor, in.cursor+1)
				changed = true
			}
		case tcell.KeyLeft:
			in.cursor = max(0, in.cursor-1)
		case tcell.KeyRight:
			in.cursor = min(len(*runes), in.cursor+1)
		case tcell.KeyHome:
			in.cursor = 0
		case tcell.KeyEnd:
			in.cursor = len(*runes)
		case tcell.KeyEnter:
			entered = true
			in.id = ""
		case tcell.KeyEscape:
			in.id = ""
		case tcell.KeyTab:
			k.used = false
			in.id = ""
		}
	}
	return changed, entered
}

func (c *Context) drawInput(r rect, runes []rune, id string) {
	if r.w <= 0 {
		return
	}
	w := c.window()
	active := c.input.id == id
	style := c.style.Input
	offset := 0
	if active {
		style = c.style.InputActive
		in := &c.input
		if in.cursor < in.offset {
			in.offset = in.cursor
		} else if in.cursor >= in.offset+r.w {
			in.offset = in.cursor - r.w + 1
		}
		offset = in.offset
	} else if len(runes) > r.w {
		offset = len(runes) - r.w
	}
	offset = max(0, min(offset, len(runes)))
	fill(c.screen, r, ' ', style, w.clip())
	drawText(c.screen, r.x, r.y, r.w, string(runes[offset:]), style, w.clip())
	if active {
		x := r.x + c.input.cursor - offset
		if r.contains(x, r.y) {
			ch := ' '
			if c.input.cursor < len(runes) {
				ch = runes[c.input.cursor]
			}
			c.screen.SetContent(x, r.y, ch, nil, style.Reverse(true))
		}
	}
}
