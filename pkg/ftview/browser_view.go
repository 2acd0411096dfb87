// Package ftview hosts a file browser dialog in a tview application.
package ftview

import (
	"github.com/filetug/filebrowser/pkg/filebrowser"
	"github.com/filetug/filebrowser/pkg/imui"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// maxFrames bounds the frames drawn per Draw while input keeps changing state.
const maxFrames = 4

// BrowserView is a tview primitive that renders a Browser every draw and
// forwards keys and mouse events to it. The dialog is laid out on the whole
// screen, so the view is meant to be the root or to cover it.
type BrowserView struct {
	*tview.Box
	app     App
	browser *filebrowser.Browser
	ui      *imui.Context
	done    func(paths []string, ok bool)
	wasOpen bool
}

func NewBrowserView(app App, browser *filebrowser.Browser, options ...imui.Option) *BrowserView {
	return &BrowserView{
		Box:     tview.NewBox(),
		app:     app,
		browser: browser,
		ui:      imui.NewContext(options...),
	}
}

// SetDoneFunc sets the handler called on the UI loop when the dialog closes.
// ok is true when the user confirmed; paths are then the selected paths.
func (v *BrowserView) SetDoneFunc(done func(paths []string, ok bool)) *BrowserView {
	v.done = done
	return v
}

func (v *BrowserView) Browser() *filebrowser.Browser {
	return v.browser
}

func (v *BrowserView) Draw(screen tcell.Screen) {
	for i := 0; i < maxFrames; i++ {
		v.DrawForSubclass(screen, v)
		v.ui.NewFrame(screen)
		v.browser.Render(v.ui)
		more := v.ui.EndFrame()
		v.checkDone()
		if !more {
			break
		}
	}
}

func (v *BrowserView) checkDone() {
	opened := v.browser.IsOpened()
	closed := v.wasOpen && !opened
	v.wasOpen = opened
	if !closed || v.done == nil {
		return
	}
	ok := v.browser.HasSelected()
	var paths []string
	if ok {
		paths = v.browser.MultiSelected()
	}
	done := v.done
	v.app.QueueUpdateDraw(func() {
		done(paths, ok)
	})
}

func (v *BrowserView) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return v.WrapInputHandler(func(event *tcell.EventKey, _ func(p tview.Primitive)) {
		v.ui.HandleKey(event)
	})
}

func (v *BrowserView) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return v.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (bool, tview.Primitive) {
		var uiAction imui.MouseAction
		switch action {
		case tview.MouseLeftClick:
			uiAction = imui.MouseLeftClick
		case tview.MouseLeftDoubleClick:
			uiAction = imui.MouseLeftDoubleClick
		case tview.MouseScrollUp:
			uiAction = imui.MouseScrollUp
		case tview.MouseScrollDown:
			uiAction = imui.MouseScrollDown
		default:
			return false, nil
		}
		x, y := event.Position()
		v.ui.HandleMouse(uiAction, x, y, event.Modifiers())
		setFocus(v)
		return true, nil
	})
}
