package imui

func (c *Context) SameLine() {
	if w := c.window(); w != nil && w.child == nil {
		w.sameLine = true
	}
}

func (c *Context) Text(text string) {
	w := c.window()
	if w == nil {
		return
	}
	r := w.place(textWidth(text))
	drawText(c.screen, r.x, r.y, r.w, text, c.textStyle(), w.clip())
	c.frame.last = item{rect: r}
}

func (c *Context) Button(label string) bool {
	return c.button(label, " ")
}

func (c *Context) SmallButton(label string) bool {
	return c.button(label, "")
}

func (c *Context) button(label, padding string) bool {
	w := c.window()
	if w == nil {
		return false
	}
	text := padding + displayLabel(label) + padding
	r := w.place(textWidth(text))
	style := c.style.Button
	if n := len(c.frame.colors); n > 0 {
		style = style.Foreground(c.frame.colors[n-1])
	}
	drawText(c.screen, r.x, r.y, r.w, text, style, w.clip())
	c.frame.last = item{id: c.scopedID(label), rect: r}
	return c.hitClick(r)
}

// Selectable draws a full width row. It returns true on a single click; a
// double click is reported by IsItemDoubleClicked instead.
func (c *Context) Selectable(label string, selected bool) bool {
	w := c.window()
	if w == nil {
		return false
	}
	switch {
	case w.combo != nil:
		return c.comboItem(w.combo, label, selected)
	case w.child != nil:
		return c.childItem(w.child, label, selected)
	}
	r := w.place(w.remaining())
	c.drawRow(r, displayLabel(label), selected, false, w.clip())
	clicked := c.hit(r, false, MouseLeftClick)
	c.frame.last = item{
		id:            c.scopedID(label),
		rect:          r,
		doubleClicked: c.hit(r, false, MouseLeftDoubleClick),
	}
	return clicked
}

func (c *Context) drawRow(r rect, text string, selected, cursor bool, clip rect) {
	style := c.textStyle()
	if selected {
		style = c.style.Selected
	}
	if cursor {
		style = style.Underline(true)
	}
	fill(c.screen, r, ' ', style, clip)
	drawText(c.screen, r.x, r.y, r.w, text, style, clip)
}
