package filebrowser

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/filetug/filebrowser/pkg/chroma2tcell"
	"github.com/gdamore/tcell/v2"
)

var fileColors = map[string]tcell.Color{
	"exe":  tcell.ColorRed,
	"go":   tcell.ColorAqua,
	"cpp":  tcell.ColorDodgerBlue,
	"c":    tcell.ColorDodgerBlue,
	"h":    tcell.ColorDodgerBlue,
	"hpp":  tcell.ColorDodgerBlue,
	"cs":   tcell.ColorLime,
	"js":   tcell.ColorYellow,
	"ts":   tcell.ColorDeepSkyBlue,
	"html": tcell.ColorOrangeRed,
	"css":  tcell.ColorViolet,
	"json": tcell.ColorGold,
	"xml":  tcell.ColorLightYellow,
	"yaml": tcell.ColorLightYellow,
	"yml":  tcell.ColorLightYellow,
	"md":   tcell.ColorBisque,
	"py":   tcell.ColorLightGreen,
	"sh":   tcell.ColorGreen,
	"txt":  tcell.ColorWhite,
	"csv":  tcell.ColorLightGreen,
	"jpg":  tcell.ColorMediumPurple,
	"jpeg": tcell.ColorMediumPurple,
	"png":  tcell.ColorMediumPurple,
	"gif":  tcell.ColorMediumPurple,
	"mp4":  tcell.ColorLightSalmon,
	"log":  tcell.ColorRosyBrown,
}

const (
	dirColor     = tcell.ColorCornflowerBlue
	defaultColor = tcell.ColorWhiteSmoke
	crumbColor   = tcell.ColorLightGray
)

// sourceFileColor follows the keyword colour of the syntax style.
var sourceFileColor = chroma2tcell.TokenColor("dracula", chroma.Keyword, tcell.ColorLightSteelBlue)

// matchLexer is a seam over chroma's filename registry.
var matchLexer = func(name string) bool {
	return lexers.Match(name) != nil
}

// GetEntryColor picks a colour by extension; other files chroma recognises
// as source code get a common colour.
func GetEntryColor(name string, isDir bool) tcell.Color {
	if isDir {
		return dirColor
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if color, ok := fileColors[ext]; ok {
		return color
	}
	if matchLexer(name) {
		return sourceFileColor
	}
	return defaultColor
}
