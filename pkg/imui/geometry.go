package imui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

func (r rect) intersect(o rect) rect {
	x0, y0 := max(r.x, o.x), max(r.y, o.y)
	x1, y1 := min(r.x+r.w, o.x+o.w), min(r.y+r.h, o.y+o.h)
	if x1 <= x0 || y1 <= y0 {
		return rect{x: x0, y: y0}
	}
	return rect{x0, y0, x1 - x0, y1 - y0}
}

// displayLabel strips the ID suffix: "title##id" shows as "title".
func displayLabel(label string) string {
	text, _, _ := strings.Cut(label, "##")
	return text
}

func textWidth(s string) int {
	return uniseg.StringWidth(s)
}

// drawText draws text at x, y within maxWidth cells and clip, returning the
// width drawn.
func drawText(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style, clip rect) int {
	width := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		w := g.Width()
		if width+w > maxWidth {
			break
		}
		if clip.contains(x+width, y) {
			runes := g.Runes()
			screen.SetContent(x+width, y, runes[0], runes[1:], style)
		}
		width += w
	}
	return width
}

func fill(screen tcell.Screen, r rect, ch rune, style tcell.Style, clip rect) {
	r = r.intersect(clip)
	for y := r.y; y < r.y+r.h; y++ {
		for x := r.x; x < r.x+r.w; x++ {
			screen.SetContent(x, y, ch, nil, style)
		}
	}
}
