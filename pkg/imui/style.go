package imui

import "github.com/gdamore/tcell/v2"

// Style holds the cell styles widgets are drawn with.
type Style struct {
	Window      tcell.Style
	Border      tcell.Style
	Title       tcell.Style
	Text        tcell.Style
	Button      tcell.Style
	Input       tcell.Style
	InputActive tcell.Style
	Selected    tcell.Style
	Scrollbar   tcell.Style
}

func DefaultStyle() Style {
	base := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhiteSmoke)
	return Style{
		Window:      base,
		Border:      base.Foreground(tcell.ColorLightSlateGray),
		Title:       base.Foreground(tcell.ColorGhostWhite).Bold(true),
		Text:        base,
		Button:      base.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite),
		Input:       base.Background(tcell.ColorDarkSlateGray),
		InputActive: base.Background(tcell.ColorTeal).Foreground(tcell.ColorWhite),
		Selected:    base.Background(tcell.ColorDodgerBlue).Foreground(tcell.ColorBlack),
		Scrollbar:   base.Foreground(tcell.ColorGray),
	}
}

type Option func(c *Context)

func WithStyle(style Style) Option {
	return func(c *Context) {
		c.style = style
	}
}
