package movable

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// StyleWatcher reloads a style file whenever it changes on disk and
// delivers the result on Styles. Files which fail to load are reported
// on Errors and the previous style stays in effect.
//
// Styles is meant to be drained from the UI loop, which then applies the
// style with Widget.SetStyle. Both channels are closed once the watcher stops.
type StyleWatcher struct {
	Styles <-chan Style
	Errors <-chan error

	watcher   *fsnotify.Watcher
	done      chan struct{}
	closeOnce sync.Once
}

// WatchStyle watches the directory of path, so that editors replacing the
// file on save are noticed too. fix, if not nil, is applied to every
// reloaded style.
func WatchStyle(path string, fix func(Style) Style) (*StyleWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("unable to create the file watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("unable to watch %s: %w", path, err)
	}

	styles := make(chan Style, 1)
	errs := make(chan error, 1)
	sw := &StyleWatcher{
		Styles:  styles,
		Errors:  errs,
		watcher: w,
		done:    make(chan struct{}),
	}
	target := filepath.Clean(path)

	go func() {
		defer close(styles)
		defer close(errs)
		for {
			select {
			case <-sw.done:
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				s, ok, err := reloadStyle(path)
				if err != nil {
					sw.report(errs, err)
					continue
				}
				if !ok {
					continue
				}
				if fix != nil {
					s = fix(s)
				}
				// Keep only the most recent style if the UI is lagging behind.
				select {
				case <-styles:
				default:
				}
				styles <- s
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				sw.report(errs, fmt.Errorf("file watcher: %w", err))
			}
		}
	}()
	return sw, nil
}

// reloadStyle reads the style file after a change. ok is false while the
// file is missing or empty, which editors and truncating writers leave
// behind for a moment before the new content lands.
func reloadStyle(path string) (s Style, ok bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Style{}, false, nil
	}
	if err != nil {
		return Style{}, false, fmt.Errorf("unable to read style file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return Style{}, false, nil
	}
	s, err = DecodeStyle(string(data))
	if err != nil {
		return Style{}, false, fmt.Errorf("%s: %w", path, err)
	}
	return s, true, nil
}

// report delivers err unless an earlier error is still pending.
func (sw *StyleWatcher) report(errs chan<- error, err error) {
	select {
	case errs <- err:
	default:
	}
}

// Close stops watching. Calls after the first do nothing.
func (sw *StyleWatcher) Close() error {
	var err error
	sw.closeOnce.Do(func() {
		close(sw.done)
		err = sw.watcher.Close()
	})
	return err
}
