package checker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-checks .py files as they change. Directories are watched
// recursively; directories created while watching are picked up too.
type Watcher struct {
	checker *Checker
	watcher *fsnotify.Watcher
	stopCh  chan struct{}
}

func NewWatcher(c *Checker, paths []string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{
		checker: c,
		watcher: fw,
		stopCh:  make(chan struct{}),
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if info.IsDir() {
			if err := w.addTree(path); err != nil {
				fw.Close()
				return nil, err
			}
		} else {
			if err := fw.Add(filepath.Dir(path)); err != nil {
				fw.Close()
				return nil, fmt.Errorf("watch %s: %w", path, err)
			}
		}
	}

	return w, nil
}

func (w *Watcher) addTree(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		if strings.HasPrefix(info.Name(), ".") && path != root {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

// Run blocks, re-checking files on every write or create event, until Stop
// is called or the watcher is closed.
func (w *Watcher) Run() error {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Errorf("watch: %s", err.Error())
		case <-w.stopCh:
			return nil
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}

	info, err := os.Stat(event.Name)
	if err != nil {
		return
	}
	if info.IsDir() {
		if event.Op&fsnotify.Create != 0 {
			w.addTree(event.Name)
		}
		return
	}
	if filepath.Ext(event.Name) != ".py" {
		return
	}

	log.Infof("changed: %s", event.Name)
	if err := w.checker.CheckFile(event.Name); err != nil {
		log.Warningf("%s", err.Error())
	}
}

func (w *Watcher) Stop() {
	close(w.stopCh)
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}
