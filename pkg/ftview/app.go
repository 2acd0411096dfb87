package ftview

import (
	"github.com/rivo/tview"
)

//go:generate mockgen -destination=mock_app.go -package=ftview . App

// App is the part of *tview.Application a browser host needs.
type App interface {
	Run() error
	QueueUpdateDraw(f func())
	SetFocus(p tview.Primitive)
	SetRoot(root tview.Primitive, fullscreen bool)
	Stop()
	EnableMouse(bool)
}

type UpdateDrawQueuer func(f func())
type Focuser func(p tview.Primitive)
type RootSetter func(root tview.Primitive, fullscreen bool)

type AppMethod func(a *appProxy)

// NewApp wraps app; options replace single methods, e.g. in tests.
func NewApp(app *tview.Application, options ...AppMethod) App {
	a := &appProxy{}
	if app != nil {
		a.queueUpdateDraw = func(f func()) {
			app.QueueUpdateDraw(f)
		}
		a.setFocus = func(p tview.Primitive) {
			app.SetFocus(p)
		}
		a.setRoot = func(root tview.Primitive, fullscreen bool) {
			app.SetRoot(root, fullscreen)
		}
		a.enableMouse = func(enable bool) {
			app.EnableMouse(enable)
		}
		a.run = app.Run
		a.stop = app.Stop
	}
	for _, option := range options {
		option(a)
	}
	return a
}

func WithQueueUpdateDraw(queueUpdateDraw UpdateDrawQueuer) AppMethod {
	return func(a *appProxy) {
		a.queueUpdateDraw = queueUpdateDraw
	}
}

func WithSetFocus(setFocus Focuser) AppMethod {
	return func(a *appProxy) {
		a.setFocus = setFocus
	}
}

func WithSetRoot(setRoot RootSetter) AppMethod {
	return func(a *appProxy) {
		a.setRoot = setRoot
	}
}

func WithEnableMouse(enableMouse func(bool)) AppMethod {
	return func(a *appProxy) {
		a.enableMouse = enableMouse
	}
}

func WithRun(run func() error) AppMethod {
	return func(a *appProxy) {
		a.run = run
	}
}

func WithStop(stop func()) AppMethod {
	return func(a *appProxy) {
		a.stop = stop
	}
}

var _ App = (*appProxy)(nil)

type appProxy struct {
	queueUpdateDraw UpdateDrawQueuer
	setFocus        Focuser
	setRoot         RootSetter
	enableMouse     func(bool)
	run             func() error
	stop            func()
}

func (a appProxy) EnableMouse(enable bool) {
	a.enableMouse(enable)
}

func (a appProxy) QueueUpdateDraw(f func()) {
	a.queueUpdateDraw(f)
}

func (a appProxy) SetFocus(p tview.Primitive) {
	a.setFocus(p)
}

func (a appProxy) SetRoot(root tview.Primitive, fullscreen bool) {
	a.setRoot(root, fullscreen)
}

func (a appProxy) Run() error {
	return a.run()
}

func (a appProxy) Stop() {
	a.stop()
}
