// Package imui is an immediate-mode UI on top of a tcell.Screen.
//
// A host feeds input with HandleKey and HandleMouse, then draws a frame
// between NewFrame and EndFrame. Widgets are laid out and hit-tested while
// they are submitted, so a widget reports a click in the frame that follows
// the event.
package imui

import (
	"strings"

	"github.com/filetug/filebrowser/pkg/filebrowser"
	"github.com/gdamore/tcell/v2"
)

type MouseAction int

const (
	MouseMove MouseAction = iota
	MouseLeftClick
	MouseLeftDoubleClick
	MouseScrollUp
	MouseScrollDown
)

const wheelStep = 3

var _ filebrowser.UI = (*Context)(nil)

type mouseEvent struct {
	action MouseAction
	x, y   int
	mods   tcell.ModMask
}

type keyPress struct {
	ev   *tcell.EventKey
	used bool
}

// Context keeps the state that survives frames: open popups, scroll
// positions, the focused input and pending input events.
type Context struct {
	style  Style
	screen tcell.Screen

	pendingKeys  []*tcell.EventKey
	pendingMouse []mouseEvent
	mods         tcell.ModMask

	popups   []*popupState
	children map[string]*childState
	combo    comboState
	input    inputState

	frame frameState
}

// frameState is reset by NewFrame.
type frameState struct {
	keys       []*keyPress
	click      *mouseEvent
	clickUsed  bool
	comboClick bool
	wheel      *mouseEvent
	target     *popupState
	handled    bool

	ids       []string
	windows   []*window
	colors    []tcell.Color
	last      item
	focusNext bool
	overlay   []func()
}

type item struct {
	id            string
	rect          rect
	doubleClicked bool
}

func NewContext(options ...Option) *Context {
	c := &Context{
		style:    DefaultStyle(),
		children: make(map[string]*childState),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// HandleKey queues a key for the next frame.
func (c *Context) HandleKey(ev *tcell.EventKey) {
	c.pendingKeys = append(c.pendingKeys, ev)
}

// HandleMouse queues a mouse event for the next frame. Moves are dropped.
func (c *Context) HandleMouse(action MouseAction, x, y int, mods tcell.ModMask) {
	if action == MouseMove {
		return
	}
	c.pendingMouse = append(c.pendingMouse, mouseEvent{action: action, x: x, y: y, mods: mods})
}

// Pending reports whether queued events wait for a frame.
func (c *Context) Pending() bool {
	return len(c.pendingKeys) > 0 || len(c.pendingMouse) > 0
}

// NewFrame starts a frame on screen and delivers queued events: all keys,
// and mouse events up to and including the first click.
func (c *Context) NewFrame(screen tcell.Screen) {
	c.screen = screen
	c.frame = frameState{}
	c.mods = tcell.ModNone

	for _, ev := range c.pendingKeys {
		c.frame.keys = append(c.frame.keys, &keyPress{ev: ev})
	}
	c.pendingKeys = c.pendingKeys[:0]

	for len(c.pendingMouse) > 0 {
		ev := c.pendingMouse[0]
		c.pendingMouse = c.pendingMouse[1:]
		if ev.action == MouseScrollUp || ev.action == MouseScrollDown {
			if c.frame.wheel == nil {
				c.frame.wheel = &ev
			}
			continue
		}
		c.frame.click = &ev
		c.mods = ev.mods
		break
	}

	if c.frame.click != nil {
		c.routeClick(*c.frame.click)
	}
	if c.frame.wheel != nil {
		c.frame.handled = true
	}
	for _, p := range c.popups {
		p.seen = false
	}
	c.input.seen = false
}

// routeClick picks the popup a click belongs to. A click outside the
// top-most non-modal popup closes it and goes on to the popup below.
func (c *Context) routeClick(ev mouseEvent) {
	c.frame.handled = true
	if c.input.id != "" && !c.input.rect.contains(ev.x, ev.y) {
		c.input.id = ""
	}
	if c.combo.id != "" {
		switch {
		case c.combo.list.contains(ev.x, ev.y):
			c.frame.comboClick = true
			c.frame.target = c.combo.owner
			return
		case !c.combo.header.contains(ev.x, ev.y):
			c.combo.id = ""
		}
	}
	for i := len(c.popups) - 1; i >= 0; i-- {
		p := c.popups[i]
		if p.rect.contains(ev.x, ev.y) {
			c.frame.target = p
			return
		}
		if p.modal {
			return
		}
		c.closePopupAt(i)
	}
}

// EndFrame finishes the frame. Popups that were not begun in this frame are
// closed. It returns true when the frame handled input, in which case the
// host should draw another frame to show the result.
func (c *Context) EndFrame() bool {
	for _, draw := range c.frame.overlay {
		draw()
	}
	for i, p := range c.popups {
		if !p.seen {
			c.closePopupAt(i)
			break
		}
	}
	if c.input.id != "" && !c.input.seen {
		c.input.id = ""
	}
	handled := c.frame.handled || len(c.frame.keys) > 0
	c.frame.overlay = nil
	return handled || c.Pending()
}

func (c *Context) PushID(id string) {
	c.frame.ids = append(c.frame.ids, id)
}

func (c *Context) PopID() {
	if n := len(c.frame.ids); n > 0 {
		c.frame.ids = c.frame.ids[:n-1]
	}
}

func (c *Context) scopedID(label string) string {
	if len(c.frame.ids) == 0 {
		return label
	}
	return strings.Join(c.frame.ids, "/") + "/" + label
}

// consumeKey marks the first unused press of key as used.
func (c *Context) consumeKey(key tcell.Key, consume bool) bool {
	for _, k := range c.frame.keys {
		if !k.used && k.ev.Key() == key {
			k.used = consume
			return true
		}
	}
	return false
}

// IsKeyPressed reports a key pressed since the last frame that no widget used.
func (c *Context) IsKeyPressed(key tcell.Key) bool {
	return c.consumeKey(key, false)
}

// KeyModifiers returns the modifiers held for the click of this frame,
// whether it came from the mouse or from Space on a list.
func (c *Context) KeyModifiers() tcell.ModMask {
	return c.mods
}

func (c *Context) SetKeyboardFocusHere() {
	c.frame.focusNext = true
}

func (c *Context) IsItemActive() bool {
	return c.input.id != "" && c.frame.last.id == c.input.id
}

func (c *Context) IsItemDoubleClicked() bool {
	return c.frame.last.doubleClicked
}

func (c *Context) PushTextColor(color tcell.Color) {
	c.frame.colors = append(c.frame.colors, color)
}

func (c *Context) PopTextColor() {
	if n := len(c.frame.colors); n > 0 {
		c.frame.colors = c.frame.colors[:n-1]
	}
}

func (c *Context) textStyle() tcell.Style {
	if n := len(c.frame.colors); n > 0 {
		return c.style.Text.Foreground(c.frame.colors[n-1])
	}
	return c.style.Text
}

// hit reports whether the frame's click landed on r in the current window.
// A click is delivered to one widget at most.
func (c *Context) hit(r rect, overlay bool, actions ...MouseAction) bool {
	ev := c.frame.click
	if ev == nil || c.frame.clickUsed || overlay != c.frame.comboClick {
		return false
	}
	w := c.window()
	if w == nil || w.popup != c.frame.target {
		return false
	}
	if !r.contains(ev.x, ev.y) || (!overlay && !w.clip().contains(ev.x, ev.y)) {
		return false
	}
	for _, action := range actions {
		if ev.action == action {
			c.frame.clickUsed = true
			return true
		}
	}
	return false
}

func (c *Context) hitClick(r rect) bool {
	return c.hit(r, false, MouseLeftClick, MouseLeftDoubleClick)
}
