package filebrowser

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestGetEntryColor(t *testing.T) {
	tests := []struct {
		name     string
		isDir    bool
		lexer    bool
		expected tcell.Color
	}{
		{name: "docs", isDir: true, expected: dirColor},
		{name: "main.go", expected: tcell.ColorAqua},
		{name: "README.MD", expected: tcell.ColorBisque},
		{name: "build.rs", lexer: true, expected: sourceFileColor},
		{name: "data.bin", expected: defaultColor},
	}

	original := matchLexer
	defer func() { matchLexer = original }()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matchLexer = func(string) bool { return tt.lexer }
			assert.Equal(t, tt.expected, GetEntryColor(tt.name, tt.isDir))
		})
	}
}

func TestGetEntryColor_Chroma(t *testing.T) {
	t.Parallel()
	assert.Equal(t, sourceFileColor, GetEntryColor("lib.rs", false))
	assert.Equal(t, defaultColor, GetEntryColor("no-such-kind.zzzz", false))
}
