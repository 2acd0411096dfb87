package imui

// comboState remembers the open combo and its geometry.
type comboState struct {
	id     string
	owner  *popupState
	header rect
	list   rect
	count  int
	width  int
}

type comboFrame struct {
	x, y  int
	width int
	index int
	maxW  int
}

// BeginCombo draws a field showing preview. When the combo is open it
// returns true and the Selectables up to EndCombo form its drop-down list,
// drawn over everything else at the end of the frame.
func (c *Context) BeginCombo(id, preview string) bool {
	w := c.window()
	if w == nil {
		return false
	}
	full := c.scopedID(id)
	text := preview + " ▾"
	r := w.place(max(textWidth(text), 8))
	fill(c.screen, r, ' ', c.style.Input, w.clip())
	drawText(c.screen, r.x, r.y, r.w, text, c.style.Input, w.clip())
	c.frame.last = item{id: full, rect: r}

	if c.hitClick(r) {
		if c.combo.id == full {
			c.combo.id = ""
		} else {
			c.combo = comboState{id: full, owner: w.popup}
		}
	}
	if c.combo.id != full {
		return false
	}
	c.combo.header = r

	sw, sh := c.screen.Size()
	width := max(r.w, c.combo.width)
	y := r.y + 1
	if y+c.combo.count > sh {
		y = r.y - c.combo.count
	}
	w.combo = &comboFrame{
		x:     max(0, min(r.x, sw-width)),
		y:     y,
		width: width,
	}
	return true
}

func (c *Context) EndCombo() {
	w := c.window()
	if w == nil || w.combo == nil {
		return
	}
	cf := w.combo
	w.combo = nil
	c.combo.count = cf.index
	c.combo.width = cf.maxW
	c.combo.list = rect{cf.x, cf.y, cf.width, cf.index}
}

func (c *Context) comboItem(cf *comboFrame, label string, selected bool) bool {
	text := displayLabel(label)
	cf.maxW = max(cf.maxW, textWidth(text)+1)
	r := rect{cf.x, cf.y + cf.index, cf.width, 1}
	cf.index++

	clicked := c.hit(r, true, MouseLeftClick, MouseLeftDoubleClick)
	if clicked {
		c.combo.id = ""
	}
	screen := rect{r.x, r.y, r.w, 1}
	style := c.style.Input
	if selected {
		style = c.style.Selected
	}
	c.frame.overlay = append(c.frame.overlay, func() {
		fill(c.screen, r, ' ', style, screen)
		drawText(c.screen, r.x, r.y, r.w, text, style, screen)
	})
	c.frame.last = item{id: c.scopedID(label), rect: r}
	return clicked
}
