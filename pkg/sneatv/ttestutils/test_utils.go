package ttestutils

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// NewSimulationScreen is a seam for tests of this package.
var NewSimulationScreen = tcell.NewSimulationScreen

// TB is the part of testing.TB the helpers need.
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
}

// ReadLine reads a full line from the screen
func ReadLine(screen tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		str, _, _ := screen.Get(x, y)
		if str == "" {
			// nothing drawn at this cell
			b.WriteRune(' ')
			continue
		}
		b.WriteString(str)
	}
	return b.String()
}

// ReadScreen returns all lines of the screen with trailing spaces trimmed.
func ReadScreen(screen tcell.Screen) []string {
	width, height := screen.Size()
	lines := make([]string, height)
	for y := 0; y < height; y++ {
		lines[y] = strings.TrimRight(ReadLine(screen, y, width), " ")
	}
	return lines
}

// FindText returns the cell where text first appears, scanning top to bottom.
// Only single-width characters are located reliably.
func FindText(screen tcell.Screen, text string) (x, y int, found bool) {
	width, height := screen.Size()
	for y = 0; y < height; y++ {
		line := ReadLine(screen, y, width)
		if i := strings.Index(line, text); i >= 0 {
			return len([]rune(line[:i])), y, true
		}
	}
	return -1, -1, false
}

// NewSimScreen creates a new simulation screen for testing
func NewSimScreen(t TB, charset string, width, height int) tcell.Screen {
	t.Helper()
	s := NewSimulationScreen(charset)
	if err := s.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	s.SetSize(width, height)
	return s
}
