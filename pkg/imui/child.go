package imui

import "github.com/gdamore/tcell/v2"

// childState is what a scrollable region remembers between frames.
type childState struct {
	scroll int
	cursor int
	count  int
}

type child struct {
	state    *childState
	rect     rect
	rowWidth int
	index    int
	focused  bool
	click    int
	activate int
}

// BeginChild starts a scrollable list below the current row that leaves
// reserveRows rows of the window free. Its rows are Selectables.
//
// When the window is focused and no input is active the list takes the
// arrow keys, PgUp/PgDn and Home/End to move a cursor, Space to click the
// row under it and Enter to activate it.
func (c *Context) BeginChild(id string, reserveRows int) {
	w := c.window()
	if w == nil || w.child != nil {
		return
	}
	full := c.scopedID(id)
	st := c.children[full]
	if st == nil {
		st = &childState{cursor: -1}
		c.children[full] = st
	}
	y := w.y
	if w.sameLine {
		y = w.lineY + 1
		w.sameLine = false
	}
	height := max(1, w.inner.y+w.inner.h-y-reserveRows)
	ch := &child{
		state:    st,
		rect:     rect{w.inner.x, y, w.inner.w, height},
		rowWidth: w.inner.w,
		focused:  c.IsWindowFocused() && c.input.id == "",
		click:    -1,
		activate: -1,
	}
	if st.count > height {
		ch.rowWidth--
	}
	if ch.focused {
		c.navigate(ch)
	}
	if ev := c.frame.wheel; ev != nil && w.popup == c.wheelTarget() && ch.rect.contains(ev.x, ev.y) {
		if ev.action == MouseScrollUp {
			st.scroll -= wheelStep
		} else {
			st.scroll += wheelStep
		}
	}
	st.scroll = max(0, min(st.scroll, st.count-height))
	w.child = ch
}

func (c *Context) wheelTarget() *popupState {
	ev := c.frame.wheel
	for i := len(c.popups) - 1; i >= 0; i-- {
		if c.popups[i].rect.contains(ev.x, ev.y) || c.popups[i].modal {
			return c.popups[i]
		}
	}
	return nil
}

// navigate applies cursor keys to the list using the row count of the
// previous frame.
func (c *Context) navigate(ch *child) {
	st := ch.state
	if st.count == 0 {
		st.cursor = -1
		return
	}
	page := max(1, ch.rect.h-1)
	moved := false
	for _, k := range c.frame.keys {
		if k.used {
			continue
		}
		switch k.ev.Key() {
		case tcell.KeyUp:
			st.cursor = max(0, st.cursor-1)
		case tcell.KeyDown:
			st.cursor++
		case tcell.KeyPgUp:
			st.cursor = max(0, st.cursor-page)
		case tcell.KeyPgDn:
			st.cursor = max(0, st.cursor) + page
		case tcell.KeyHome:
			st.cursor = 0
		case tcell.KeyEnd:
			st.cursor = st.count - 1
		case tcell.KeyRune:
			if k.ev.Rune() != ' ' || st.cursor < 0 {
				continue
			}
			ch.click = st.cursor
			c.mods = k.ev.Modifiers()
		case tcell.KeyEnter:
			// Enter stays visible to IsKeyPressed.
			if st.cursor >= 0 {
				ch.activate = st.cursor
			}
			continue
		default:
			continue
		}
		k.used = true
		moved = true
	}
	if st.cursor >= st.count {
		st.cursor = st.count - 1
	}
	if moved && st.cursor >= 0 {
		if st.cursor < st.scroll {
			st.scroll = st.cursor
		} else if st.cursor >= st.scroll+ch.rect.h {
			st.scroll = st.cursor - ch.rect.h + 1
		}
	}
}

func (c *Context) childItem(ch *child, label string, selected bool) bool {
	row := ch.index
	ch.index++
	st := ch.state
	r := rect{ch.rect.x, ch.rect.y + row - st.scroll, ch.rowWidth, 1}
	visible := row >= st.scroll && row < st.scroll+ch.rect.h
	clicked := row == ch.click
	doubleClicked := row == ch.activate
	if visible {
		if c.hit(r, false, MouseLeftClick) {
			clicked = true
			st.cursor = row
		} else if c.hit(r, false, MouseLeftDoubleClick) {
			doubleClicked = true
			st.cursor = row
		}
		cursor := ch.focused && row == st.cursor
		c.drawRow(r, displayLabel(label), selected, cursor, ch.rect)
	}
	c.frame.last = item{id: c.scopedID(label), rect: r, doubleClicked: doubleClicked}
	return clicked
}

func (c *Context) EndChild() {
	w := c.window()
	if w == nil || w.child == nil {
		return
	}
	ch := w.child
	w.child = nil
	st := ch.state
	st.count = ch.index
	st.scroll = max(0, min(st.scroll, st.count-ch.rect.h))
	if st.cursor >= st.count {
		st.cursor = st.count - 1
	}
	if st.count > ch.rect.h {
		c.drawScrollbar(ch.rect, st.scroll, st.count)
	}
	w.x, w.y = w.inner.x, ch.rect.y+ch.rect.h
}

func (c *Context) drawScrollbar(r rect, scroll, count int) {
	x := r.x + r.w - 1
	thumb := max(1, r.h*r.h/count)
	top := 0
	if count > r.h {
		top = (r.h - thumb) * scroll / (count - r.h)
	}
	for i := 0; i < r.h; i++ {
		ch := '│'
		if i >= top && i < top+thumb {
			ch = '█'
		}
		c.screen.SetContent(x, r.y+i, ch, nil, c.style.Scrollbar)
	}
}
