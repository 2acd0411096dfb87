// Package chroma2tcell maps chroma syntax styles to tcell colours.
package chroma2tcell

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
)

var getStyle = styles.Get

var getFallbackStyle = func() *chroma.Style {
	return styles.Fallback
}

// Style returns the named chroma style or the fallback style.
func Style(name string) *chroma.Style {
	style := getStyle(name)
	if style == nil {
		style = getFallbackStyle()
	}
	return style
}

// Color converts a chroma colour. An unset colour is tcell.ColorDefault.
func Color(c chroma.Colour) tcell.Color {
	if !c.IsSet() {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.Red()), int32(c.Green()), int32(c.Blue()))
}

// TokenColor returns the foreground colour styleName gives to tokenType,
// or fallback when the style leaves it unset.
func TokenColor(styleName string, tokenType chroma.TokenType, fallback tcell.Color) tcell.Color {
	entry := Style(styleName).Get(tokenType)
	if !entry.Colour.IsSet() {
		return fallback
	}
	return Color(entry.Colour)
}
