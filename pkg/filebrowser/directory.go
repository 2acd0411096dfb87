package filebrowser

import (
	"fmt"
	"path/filepath"

	"github.com/filetug/filebrowser/pkg/fsutils"
	"github.com/sirupsen/logrus"
)

// SetDirectory lists dir and makes it current. When dir can not be listed the
// browser falls back to the previous directory and then to the default one,
// records the cause as status and returns an error wrapping ErrFellBack. When
// no directory can be listed the browser is left unchanged except for the
// status and the error wraps ErrNoDirectory.
func (b *Browser) SetDirectory(dir string) error {
	return b.setDirectory(dir, b.Directory())
}

func (b *Browser) setDirectory(dir, fallback string) error {
	log := b.log.WithField("dir", dir)
	abs, err := b.absDir(dir)
	if err == nil {
		if err = b.enterDirectory(abs); err == nil {
			log.Debug("directory changed")
			return nil
		}
	}
	b.status = "error: " + err.Error()
	log.WithError(err).Warn("failed to change directory")

	if fallback != "" && fallback != b.defaultDir {
		fallbackErr := b.enterDirectory(fallback)
		if fallbackErr == nil {
			return fmt.Errorf("%w to %s: %w", ErrFellBack, fallback, err)
		}
		log.WithError(fallbackErr).WithField("fallback", fallback).Warn("failed to return to previous directory")
	}
	if defaultErr := b.enterDirectory(b.defaultDir); defaultErr != nil {
		log.WithError(defaultErr).WithField("fallback", b.defaultDir).Error("failed to return to default directory")
		return fmt.Errorf("%w: %s: %w", ErrNoDirectory, dir, err)
	}
	return fmt.Errorf("%w to %s: %w", ErrFellBack, b.defaultDir, err)
}

// absDir expands ~ and makes dir absolute. A relative dir is taken against
// the current directory when there is one.
func (b *Browser) absDir(dir string) (string, error) {
	dir = fsutils.ExpandHome(dir)
	if dir == "" {
		dir = "."
	}
	if !filepath.IsAbs(dir) && b.dir != nil {
		dir = filepath.Join(b.Directory(), dir)
	}
	abs, err := b.store.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	return filepath.Clean(abs), nil
}

// enterDirectory replaces the listing with the one of dir. Nothing changes
// when dir can not be listed.
func (b *Browser) enterDirectory(dir string) error {
	dc, entries, err := readListing(b.ctx(), b.store, dir, b.flags)
	if err != nil {
		return err
	}
	b.dir = dc
	b.entries = entries
	b.confirmed = false
	b.resetRangeStart()

	keepInput := b.flags.Has(EnterNewFilename) &&
		len(b.selected) == 1 &&
		b.customInputName != "" &&
		b.inputName == b.customInputName
	if !keepInput {
		clear(b.selected)
		b.inputName = ""
	}
	return nil
}

// refresh re-reads the current directory. With keepSelected, names that
// still exist stay selected, as does a typed filename. A directory that can
// no longer be listed goes through the same fallback as SetDirectory.
func (b *Browser) refresh(keepSelected bool) {
	if b.dir == nil {
		return
	}
	dc, entries, err := readListing(b.ctx(), b.store, b.Directory(), b.flags)
	if err != nil {
		b.log.WithError(err).WithField("dir", b.Directory()).Warn("failed to refresh directory")
		_ = b.setDirectory(b.Directory(), "")
		return
	}
	b.dir = dc
	b.entries = entries
	b.resetRangeStart()
	if !keepSelected {
		return
	}
	kept := make(map[string]struct{}, len(b.selected))
	for _, entry := range b.entries {
		if _, ok := b.selected[entry.Name]; ok {
			kept[entry.Name] = struct{}{}
		}
	}
	if b.flags.Has(EnterNewFilename) && b.inputName != "" {
		kept[b.inputName] = struct{}{}
	}
	b.selected = kept
}

// parentDir returns the directory above the current one, or the current
// one at a root.
func (b *Browser) parentDir() string {
	if b.dir == nil {
		return ""
	}
	return b.dir.Parent()
}

func (b *Browser) childDir(name string) string {
	if name == parentDirName {
		return b.parentDir()
	}
	return filepath.Join(b.Directory(), name)
}

// createDir creates name in the current directory and lists it.
func (b *Browser) createDir(name string) {
	path := filepath.Join(b.Directory(), name)
	log := b.log.WithFields(logrus.Fields{"dir": b.Directory(), "name": name})
	if err := b.store.CreateDir(b.ctx(), path); err != nil {
		b.status = "failed to create " + name
		log.WithError(err).Warn("failed to create directory")
		return
	}
	log.Info("directory created")
	b.refresh(true)
}

// enterTypedPath navigates to a typed path, or to its parent when the path
// names a file or a directory that does not exist yet.
func (b *Browser) enterTypedPath(typed string) {
	path, err := b.absDir(typed)
	if err == nil {
		if b.isDir(path) {
			b.navigate(path)
			return
		}
		if parent := filepath.Dir(path); b.isDir(parent) {
			b.navigate(parent)
			return
		}
	}
	b.status = "[" + typed + "] is not a valid directory"
	b.log.WithField("path", typed).Debug("typed path is not a directory")
}

func (b *Browser) isDir(path string) bool {
	info, err := b.store.Stat(b.ctx(), path)
	return err == nil && info.IsDir()
}

// navigate changes directory in response to user input; a failure is
// reported through the status text only.
func (b *Browser) navigate(dir string) {
	_ = b.setDirectory(dir, b.Directory())
}
