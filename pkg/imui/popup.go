package imui

import (
	"slices"

	"github.com/filetug/filebrowser/pkg/filebrowser"
)

type popupState struct {
	id      string
	modal   bool
	rect    rect
	seen    bool
	closing bool
}

// window is a begun popup; it lays out widgets top to bottom.
type window struct {
	popup *popupState
	inner rect

	x, y         int
	nextX, lineY int
	sameLine     bool

	child *child
	combo *comboFrame
}

func (w *window) clip() rect {
	if w.child != nil {
		return w.child.rect
	}
	return w.inner
}

// place reserves a one row slot for the next widget.
func (w *window) place(width int) rect {
	x, y := w.x, w.y
	if w.sameLine {
		x, y = w.nextX, w.lineY
		w.sameLine = false
	}
	width = max(0, min(width, w.inner.x+w.inner.w-x))
	w.nextX, w.lineY = x+width+1, y
	w.x, w.y = w.inner.x, y+1
	return rect{x, y, width, 1}
}

// remaining is the width left on the row the next widget goes to.
func (w *window) remaining() int {
	x := w.x
	if w.sameLine {
		x = w.nextX
	}
	return max(0, w.inner.x+w.inner.w-x)
}

func (c *Context) window() *window {
	if n := len(c.frame.windows); n > 0 {
		return c.frame.windows[n-1]
	}
	return nil
}

func (c *Context) topPopup() *popupState {
	if n := len(c.popups); n > 0 {
		return c.popups[n-1]
	}
	return nil
}

func (c *Context) findPopup(id string) int {
	return slices.IndexFunc(c.popups, func(p *popupState) bool {
		return p.id == id
	})
}

// closePopupAt closes the popup at i and every popup opened after it.
func (c *Context) closePopupAt(i int) {
	c.popups = c.popups[:i]
	c.frame.handled = true
}

func (c *Context) OpenPopup(id string) {
	id = c.scopedID(id)
	if c.findPopup(id) < 0 {
		c.popups = append(c.popups, &popupState{id: id})
	}
}

func (c *Context) ClosePopup(id string) {
	if i := c.findPopup(c.scopedID(id)); i >= 0 {
		c.closePopupAt(i)
	}
}

func (c *Context) IsPopupOpen(id string) bool {
	return c.findPopup(c.scopedID(id)) >= 0
}

// BeginPopup draws the frame of an open popup and makes it the current
// window. A popup without a size takes two thirds of the screen.
func (c *Context) BeginPopup(id string, options filebrowser.PopupOptions) bool {
	i := c.findPopup(c.scopedID(id))
	if i < 0 {
		return false
	}
	p := c.popups[i]
	p.seen = true
	p.modal = options.Modal

	sw, sh := c.screen.Size()
	width, height := options.Width, options.Height
	if width <= 0 {
		width = sw * 2 / 3
	}
	if height <= 0 {
		height = sh * 2 / 3
	}
	width, height = min(width, sw), min(height, sh)
	x, y := (sw-width)/2, (sh-height)/2
	if options.Positioned {
		x = max(0, min(options.X, sw-width))
		y = max(0, min(options.Y, sh-height))
	}
	p.rect = rect{x, y, width, height}

	w := &window{
		popup: p,
		inner: rect{x + 1, y + 1, max(0, width-2), max(0, height-2)},
	}
	w.x, w.y = w.inner.x, w.inner.y
	c.frame.windows = append(c.frame.windows, w)

	title := ""
	if options.Modal && !options.NoTitleBar {
		title = displayLabel(id)
	}
	c.drawFrame(p.rect, title)
	return true
}

func (c *Context) EndPopup() {
	w := c.window()
	if w == nil {
		return
	}
	c.frame.windows = c.frame.windows[:len(c.frame.windows)-1]
	if w.popup.closing {
		w.popup.closing = false
		if i := slices.Index(c.popups, w.popup); i >= 0 {
			c.closePopupAt(i)
		}
	}
}

// CloseCurrentPopup closes the current popup when it ends.
func (c *Context) CloseCurrentPopup() {
	if w := c.window(); w != nil {
		w.popup.closing = true
	}
}

// IsWindowFocused reports whether the current popup is the top-most one.
func (c *Context) IsWindowFocused() bool {
	w := c.window()
	return w != nil && w.popup == c.topPopup()
}

func (c *Context) drawFrame(r rect, title string) {
	screen := rect{0, 0, r.x + r.w, r.y + r.h}
	fill(c.screen, r, ' ', c.style.Window, screen)
	if r.w < 2 || r.h < 2 {
		return
	}
	right, bottom := r.x+r.w-1, r.y+r.h-1
	for x := r.x + 1; x < right; x++ {
		c.screen.SetContent(x, r.y, '─', nil, c.style.Border)
		c.screen.SetContent(x, bottom, '─', nil, c.style.Border)
	}
	for y := r.y + 1; y < bottom; y++ {
		c.screen.SetContent(r.x, y, '│', nil, c.style.Border)
		c.screen.SetContent(right, y, '│', nil, c.style.Border)
	}
	c.screen.SetContent(r.x, r.y, '┌', nil, c.style.Border)
	c.screen.SetContent(right, r.y, '┐', nil, c.style.Border)
	c.screen.SetContent(r.x, bottom, '└', nil, c.style.Border)
	c.screen.SetContent(right, bottom, '┘', nil, c.style.Border)

	if title == "" {
		return
	}
	title = " " + title + " "
	maxWidth := r.w - 4
	x := r.x + max(2, (r.w-textWidth(title))/2)
	drawText(c.screen, x, r.y, maxWidth, title, c.style.Title, screen)
}
