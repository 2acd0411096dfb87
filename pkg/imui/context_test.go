package imui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/filetug/filebrowser/pkg/filebrowser"
	"github.com/filetug/filebrowser/pkg/sneatv/ttestutils"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	screenWidth  = 80
	screenHeight = 24
	// a 40x10 popup is centred at 20,7; widgets start inside its border
	innerX = 21
	innerY = 8
)

var modal = filebrowser.PopupOptions{Modal: true, Width: 40, Height: 10}

type harness struct {
	t      *testing.T
	screen tcell.Screen
	ui     *Context
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return &harness{
		t:      t,
		screen: ttestutils.NewSimScreen(t, "UTF-8", screenWidth, screenHeight),
		ui:     NewContext(),
	}
}

// frame draws one frame with body inside the popup "w", opening it first.
func (h *harness) frame(body func()) bool {
	h.ui.NewFrame(h.screen)
	if !h.ui.IsPopupOpen("w") {
		h.ui.OpenPopup("w")
	}
	if h.ui.BeginPopup("w", modal) {
		body()
		h.ui.EndPopup()
	}
	return h.ui.EndFrame()
}

func (h *harness) find(text string) (int, int) {
	h.t.Helper()
	x, y, found := ttestutils.FindText(h.screen, text)
	require.True(h.t, found, "%q not on screen:\n%s", text, strings.Join(ttestutils.ReadScreen(h.screen), "\n"))
	return x, y
}

func (h *harness) click(text string) {
	h.t.Helper()
	x, y := h.find(text)
	h.ui.HandleMouse(MouseLeftClick, x, y, 0)
}

func (h *harness) key(key tcell.Key) {
	h.ui.HandleKey(tcell.NewEventKey(key, 0, tcell.ModNone))
}

func (h *harness) typeText(text string) {
	for _, r := range text {
		h.ui.HandleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
}

func (h *harness) line(y int) string {
	return ttestutils.ReadLine(h.screen, y, screenWidth)
}

func TestPopupFrame(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.ui.NewFrame(h.screen)
	h.ui.OpenPopup("files##1")
	require.True(t, h.ui.BeginPopup("files##1", modal))
	h.ui.EndPopup()
	h.ui.EndFrame()

	top := h.line(7)
	assert.Contains(t, top, " files ")
	assert.NotContains(t, top, "##")
	assert.Equal(t, "┌", string([]rune(top)[20]))
	assert.Equal(t, "┘", string([]rune(h.line(16))[59]))

	h.ui.NewFrame(h.screen)
	options := modal
	options.NoTitleBar = true
	h.screen.Clear()
	require.True(t, h.ui.BeginPopup("files##1", options))
	h.ui.EndPopup()
	h.ui.EndFrame()
	assert.NotContains(t, h.line(7), "files")
}

func TestPopupPositioned(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.ui.NewFrame(h.screen)
	h.ui.OpenPopup("p")
	options := filebrowser.PopupOptions{Width: 10, Height: 3, X: 75, Y: 2, Positioned: true}
	require.True(t, h.ui.BeginPopup("p", options))
	h.ui.Text("hi")
	h.ui.EndPopup()
	h.ui.EndFrame()

	x, y, found := ttestutils.FindText(h.screen, "hi")
	require.True(t, found)
	assert.Equal(t, 71, x, "clamped to the screen")
	assert.Equal(t, 3, y)
}

func TestLayout_SameLine(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.frame(func() {
		h.ui.Button("a")
		h.ui.SameLine()
		h.ui.SmallButton("b##id")
		h.ui.Text("below")
	})
	row := []rune(h.line(innerY))[innerX : innerX+38]
	assert.Equal(t, " a  b", strings.TrimRight(string(row), " "))
	x, y := h.find("below")
	assert.Equal(t, innerX, x)
	assert.Equal(t, innerY+1, y)
}

func TestButtonClick(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	var clicked []bool
	body := func() {
		clicked = append(clicked, h.ui.Button("ok"))
		h.ui.SameLine()
		clicked = append(clicked, h.ui.Button("cancel"))
	}
	assert.False(t, h.frame(body))

	h.click("cancel")
	clicked = nil
	assert.True(t, h.frame(body), "handled input asks for another frame")
	assert.Equal(t, []bool{false, true}, clicked)

	clicked = nil
	assert.False(t, h.frame(body))
	assert.Equal(t, []bool{false, false}, clicked)
}

func TestModalIgnoresOutsideClick(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	body := func() { h.ui.Text("x") }
	h.frame(body)
	h.ui.HandleMouse(MouseLeftClick, 0, 0, 0)
	h.frame(body)
	assert.True(t, h.ui.IsPopupOpen("w"))
}

func TestNonModalPopup(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	var focused []bool
	var sub bool
	body := func() {
		if h.ui.SmallButton("+") {
			h.ui.OpenPopup("sub")
		}
		focused = append(focused, h.ui.IsWindowFocused())
		if h.ui.BeginPopup("sub", filebrowser.PopupOptions{Width: 10, Height: 3}) {
			sub = true
			focused = append(focused, h.ui.IsWindowFocused())
			h.ui.EndPopup()
		}
	}
	h.frame(body)
	h.click("+")
	h.frame(body)
	require.True(t, sub)
	focused, sub = nil, false
	h.frame(body)
	assert.True(t, sub)
	assert.Equal(t, []bool{false, true}, focused)

	// a click outside the nested popup closes it and reaches the window below
	h.ui.HandleMouse(MouseLeftClick, innerX+30, innerY+5, 0)
	sub = false
	h.frame(body)
	assert.False(t, sub)
	assert.True(t, h.ui.IsPopupOpen("w"))
}

func TestCloseCurrentPopup(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.frame(func() { h.ui.CloseCurrentPopup() })
	assert.False(t, h.ui.IsPopupOpen("w"))

	h.ui.NewFrame(h.screen)
	h.ui.OpenPopup("w")
	h.ui.ClosePopup("w")
	assert.False(t, h.ui.BeginPopup("w", modal))
	h.ui.EndFrame()
}

func TestUnsubmittedPopupCloses(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.ui.NewFrame(h.screen)
	h.ui.OpenPopup("lonely")
	h.ui.EndFrame()
	assert.False(t, h.ui.IsPopupOpen("lonely"))
}

func TestIDScope(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.ui.NewFrame(h.screen)
	h.ui.PushID("a")
	h.ui.OpenPopup("p")
	h.ui.PopID()
	assert.False(t, h.ui.BeginPopup("p", modal))
	h.ui.PushID("a")
	assert.True(t, h.ui.BeginPopup("p", modal))
	h.ui.EndPopup()
	h.ui.PopID()
	h.ui.EndFrame()
}

func TestTextColor(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.frame(func() {
		h.ui.PushTextColor(tcell.ColorRed)
		h.ui.Text("red")
		h.ui.PopTextColor()
		h.ui.Text("plain")
	})
	x, y := h.find("red")
	_, style, _ := h.screen.Get(x, y)
	fg, _, _ := style.Decompose()
	assert.Equal(t, tcell.ColorRed, fg)

	x, y = h.find("plain")
	_, style, _ = h.screen.Get(x, y)
	fg, _, _ = style.Decompose()
	assert.Equal(t, tcell.ColorWhiteSmoke, fg)
}

func TestButtonTextColor(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.frame(func() {
		h.ui.PushTextColor(tcell.ColorRed)
		h.ui.SmallButton("tinted")
		h.ui.PopTextColor()
		h.ui.SmallButton("plain")
	})
	_, buttonBg, _ := DefaultStyle().Button.Decompose()

	x, y := h.find("tinted")
	_, style, _ := h.screen.Get(x, y)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, tcell.ColorRed, fg)
	assert.Equal(t, buttonBg, bg)

	x, y = h.find("plain")
	_, style, _ = h.screen.Get(x, y)
	fg, _, _ = style.Decompose()
	assert.Equal(t, tcell.ColorWhite, fg)
}

func listBody(h *harness, n int, clicked, activated *[]int) func() {
	return func() {
		h.ui.Text("header")
		h.ui.BeginChild("list", 1)
		for i := 0; i < n; i++ {
			if h.ui.Selectable(fmt.Sprintf("item %02d", i), false) {
				*clicked = append(*clicked, i)
			}
			if h.ui.IsItemDoubleClicked() {
				*activated = append(*activated, i)
			}
		}
		h.ui.EndChild()
		h.ui.Text("footer")
	}
}

func TestChild_Mouse(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	var clicked, activated []int
	body := listBody(h, 3, &clicked, &activated)
	h.frame(body)

	_, y := h.find("footer")
	assert.Equal(t, innerY+7, y, "child fills the window minus the reserved row")

	h.click("item 01")
	h.frame(body)
	assert.Equal(t, []int{1}, clicked)

	x, y := h.find("item 02")
	h.ui.HandleMouse(MouseLeftDoubleClick, x+3, y, tcell.ModCtrl)
	h.frame(body)
	assert.Equal(t, []int{1}, clicked)
	assert.Equal(t, []int{2}, activated)
	assert.Equal(t, tcell.ModCtrl, h.ui.KeyModifiers())
}

func TestChild_Keyboard(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	var clicked, activated []int
	body := listBody(h, 20, &clicked, &activated)
	h.frame(body)
	h.frame(body)

	h.key(tcell.KeyDown)
	h.key(tcell.KeyDown)
	h.ui.HandleKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	h.frame(body)
	assert.Equal(t, []int{1}, clicked)

	h.key(tcell.KeyEnd)
	h.key(tcell.KeyEnter)
	h.frame(body)
	assert.Equal(t, []int{19}, activated)
	h.find("item 19")
	_, _, found := ttestutils.FindText(h.screen, "item 00")
	assert.False(t, found, "scrolled to the cursor")

	h.key(tcell.KeyHome)
	h.frame(body)
	h.find("item 00")
}

func TestChild_SpaceClickModifiers(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	var clicked, activated []int
	var mods []tcell.ModMask
	list := listBody(h, 3, &clicked, &activated)
	body := func() {
		n := len(clicked)
		list()
		if len(clicked) > n {
			mods = append(mods, h.ui.KeyModifiers())
		}
	}
	h.frame(body)

	x, y := h.find("item 00")
	h.ui.HandleMouse(MouseLeftClick, x, y, tcell.ModCtrl)
	h.frame(body)
	h.frame(body)
	assert.Equal(t, tcell.ModNone, h.ui.KeyModifiers(), "a frame without a click has no modifiers")

	h.key(tcell.KeyDown)
	h.ui.HandleKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	h.frame(body)
	h.key(tcell.KeyDown)
	h.ui.HandleKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModShift))
	h.frame(body)

	assert.Equal(t, []int{0, 1, 2}, clicked)
	assert.Equal(t, []tcell.ModMask{tcell.ModCtrl, tcell.ModNone, tcell.ModShift}, mods)
}

func TestChild_EnterStaysVisible(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	var clicked, activated []int
	list := listBody(h, 2, &clicked, &activated)
	var pressed bool
	body := func() {
		list()
		pressed = h.ui.IsKeyPressed(tcell.KeyEnter)
	}
	h.frame(body)
	h.key(tcell.KeyEnter)
	h.frame(body)
	assert.True(t, pressed)
	assert.Empty(t, activated, "no cursor yet")
}

func TestChild_Wheel(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	var clicked, activated []int
	body := listBody(h, 20, &clicked, &activated)
	h.frame(body)
	h.frame(body)

	x, y := h.find("item 02")
	h.ui.HandleMouse(MouseScrollDown, x, y, 0)
	h.frame(body)
	h.find("item 03")
	_, _, found := ttestutils.FindText(h.screen, "item 02")
	assert.False(t, found)
	h.find("█")
}

func TestInputText_Keyboard(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	text := ""
	var changed, entered, active bool
	focus := true
	body := func() {
		if focus {
			h.ui.SetKeyboardFocusHere()
			focus = false
		}
		changed = h.ui.InputText("##name", &text, 0)
		active = h.ui.IsItemActive()
	}
	h.frame(body)
	assert.True(t, active)

	h.typeText("ab")
	h.key(tcell.KeyLeft)
	h.key(tcell.KeyBackspace2)
	h.typeText("x")
	h.frame(body)
	assert.True(t, changed)
	assert.Equal(t, "xb", text)

	h.key(tcell.KeyEnd)
	h.key(tcell.KeyCtrlA)
	h.frame(body)
	assert.False(t, changed)
	assert.False(t, h.ui.IsKeyPressed(tcell.KeyCtrlA), "keys go to the active input")

	enterBody := func() {
		entered = h.ui.InputText("##name", &text, filebrowser.InputEnterReturnsTrue)
		active = h.ui.IsItemActive()
	}
	h.typeText("!")
	h.key(tcell.KeyEnter)
	h.frame(enterBody)
	assert.True(t, entered)
	assert.False(t, active)
	assert.Equal(t, "xb!", text)
	h.find("xb!")
}

func TestInputText_Mouse(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	text := "abc"
	var active bool
	body := func() {
		h.ui.InputText("name", &text, 0)
		active = h.ui.IsItemActive()
		h.ui.Text("elsewhere")
	}
	h.frame(body)
	x, y := h.find("abc")
	_, labelY := h.find("name")
	assert.Equal(t, y, labelY, "label follows the field")

	h.ui.HandleMouse(MouseLeftClick, x+1, y, 0)
	h.frame(body)
	assert.True(t, active)
	h.typeText("Z")
	h.frame(body)
	assert.Equal(t, "aZbc", text)

	h.click("elsewhere")
	h.frame(body)
	assert.False(t, active)
}

func TestCombo(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	items := []string{".go,.md", ".go", ".md"}
	index := 0
	var open bool
	body := func() {
		h.ui.Text("filters")
		h.ui.SameLine()
		open = h.ui.BeginCombo("##filters", items[index])
		if open {
			for i, name := range items {
				if h.ui.Selectable(name, i == index) {
					index = i
				}
			}
			h.ui.EndCombo()
		}
		h.ui.Text("after")
	}
	h.frame(body)
	assert.False(t, open)

	h.click(".go,.md ▾")
	h.frame(body)
	require.True(t, open)
	h.frame(body)
	lines := ttestutils.ReadScreen(h.screen)
	_, comboY := h.find(".go,.md ▾")
	assert.Contains(t, lines[comboY+2], ".go", "list overlays the rows below")

	x, _ := h.find(".go,.md ▾")
	h.ui.HandleMouse(MouseLeftClick, x, comboY+3, 0)
	h.frame(body)
	assert.Equal(t, 2, index)
	h.frame(body)
	assert.False(t, open)
	h.find(".md ▾")
}

func TestComboClosesOnOutsideClick(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	var open bool
	body := func() {
		open = h.ui.BeginCombo("##c", "one")
		if open {
			h.ui.Selectable("one", true)
			h.ui.EndCombo()
		}
		h.ui.Button("other")
	}
	h.frame(body)
	h.click("one ▾")
	h.frame(body)
	require.True(t, open)
	h.ui.HandleMouse(MouseLeftClick, innerX+30, innerY+6, 0)
	h.frame(body)
	assert.False(t, open)
}
