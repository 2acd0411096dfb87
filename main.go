package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/filetug/filebrowser/pkg/filebrowser"
	"github.com/filetug/filebrowser/pkg/ftview"
	"github.com/filetug/filebrowser/pkg/profiling"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errCanceled = errors.New("canceled")

var osExit = os.Exit
var osOpenFile = os.OpenFile

var newApp = func() ftview.App {
	return ftview.NewApp(tview.NewApplication())
}

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errCanceled) {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "ftpick: %v\n", err)
		}
		osExit(1)
	}
}

type options struct {
	title       string
	selectDir   bool
	newFilename bool
	inputName   string
	noModal     bool
	noTitleBar  bool
	noStatusBar bool
	esc         bool
	createDir   bool
	multi       bool
	hideFiles   bool
	enter       bool
	skipErrors  bool
	editPath    bool
	hidden      bool
	filters     []string
	logFile     string
	debug       bool
	cpuProfile  string
	memProfile  string
}

func (o options) flags() (flags filebrowser.Flags) {
	set := func(on bool, flag filebrowser.Flags) {
		if on {
			flags |= flag
		}
	}
	set(o.selectDir, filebrowser.SelectDirectory)
	set(o.newFilename, filebrowser.EnterNewFilename)
	set(o.noModal, filebrowser.NoModal)
	set(o.noTitleBar, filebrowser.NoTitleBar)
	set(o.noStatusBar, filebrowser.NoStatusBar)
	set(o.esc, filebrowser.CloseOnEsc)
	set(o.createDir, filebrowser.CreateNewDir)
	set(o.multi, filebrowser.MultipleSelection)
	set(o.hideFiles, filebrowser.HideRegularFiles)
	set(o.enter, filebrowser.ConfirmOnEnter)
	set(o.skipErrors, filebrowser.SkipItemsCausingError)
	set(o.editPath, filebrowser.EditPathString)
	set(!o.hidden, filebrowser.HideHidden)
	return flags
}

func newRootCommand() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:           "ftpick [dir]",
		Short:         "Pick files or directories in a terminal dialog",
		Long:          "Opens a file browser dialog and prints the confirmed paths, one per line.\nExits with status 1 when the dialog is canceled.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return pick(cmd, o, args)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.title, "title", "", "dialog title")
	f.BoolVar(&o.selectDir, "select-dir", false, "select directories instead of files")
	f.BoolVar(&o.newFilename, "new-filename", false, "allow typing a name that does not exist yet")
	f.StringVar(&o.inputName, "input-name", "", "prefilled name for --new-filename")
	f.BoolVar(&o.noModal, "no-modal", false, "open a non-modal dialog")
	f.BoolVar(&o.noTitleBar, "no-title-bar", false, "hide the title bar")
	f.BoolVar(&o.noStatusBar, "no-status-bar", false, "hide the status text")
	f.BoolVar(&o.esc, "esc", false, "close the dialog with Escape")
	f.BoolVar(&o.createDir, "create-dir", false, "show the new directory button")
	f.BoolVar(&o.multi, "multi", false, "allow selecting several entries")
	f.BoolVar(&o.hideFiles, "hide-files", false, "hide regular files with --select-dir")
	f.BoolVar(&o.enter, "enter", false, "confirm with Enter")
	f.BoolVar(&o.skipErrors, "skip-errors", false, "skip entries that cannot be inspected")
	f.BoolVar(&o.editPath, "edit-path", false, "allow typing the directory path")
	f.BoolVar(&o.hidden, "hidden", false, "show hidden entries")
	f.StringArrayVar(&o.filters, "filter", nil, "type filter such as .go, .txt|.md or *_test.go (repeatable)")
	f.StringVar(&o.logFile, "log-file", "", "write logs to `file`")
	f.BoolVar(&o.debug, "debug", false, "log at debug level")
	f.StringVar(&o.cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	f.StringVar(&o.memProfile, "memprofile", "", "write memory profile to `file`")
	return cmd
}

func newLogger(path string, debug bool) (log *logrus.Logger, closeLog func(), err error) {
	log = logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return log, func() {}, nil
	}
	f, err := osOpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return log, func() { _ = f.Close() }, nil
}

func pick(cmd *cobra.Command, o options, args []string) error {
	log, closeLog, err := newLogger(o.logFile, o.debug)
	if err != nil {
		return err
	}
	defer closeLog()

	if o.cpuProfile != "" {
		defer profiling.DoCPUProfiling(o.cpuProfile, log)()
	}
	if o.memProfile != "" {
		defer profiling.DoMemProfiling(o.memProfile, log)()
	}

	browserOptions := []filebrowser.Option{filebrowser.WithLogger(log), filebrowser.WithContext(cmd.Context())}
	if o.title != "" {
		browserOptions = append(browserOptions, filebrowser.WithTitle(o.title))
	}
	b, err := filebrowser.New(o.flags(), browserOptions...)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		if err = b.SetDirectory(args[0]); err != nil {
			log.WithError(err).Warn("start directory not used")
		}
	}
	if len(o.filters) > 0 {
		b.SetTypeFilters(o.filters)
	}
	if o.inputName != "" {
		b.SetInputName(o.inputName)
	}

	var (
		paths     []string
		confirmed bool
	)
	app := newApp()
	view := ftview.NewBrowserView(app, b).SetDoneFunc(func(selected []string, ok bool) {
		paths, confirmed = selected, ok
		app.Stop()
	})
	app.EnableMouse(true)
	app.SetRoot(view, true)
	app.SetFocus(view)
	b.Open()
	if err = app.Run(); err != nil {
		return err
	}
	if !confirmed {
		log.Debug("dialog canceled")
		return errCanceled
	}
	out := cmd.OutOrStdout()
	for _, p := range paths {
		_, _ = fmt.Fprintln(out, p)
	}
	return nil
}
