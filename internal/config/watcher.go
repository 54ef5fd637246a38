// Package config loads and watches trayshift settings.
package config

import (
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces the burst of events editors emit per save.
const debounceDelay = 200 * time.Millisecond

// Watcher delivers whole settings snapshots when the settings file changes.
type Watcher struct {
	path     string
	fw       *fsnotify.Watcher
	onChange func(Settings)
}

// Watch starts watching the settings file. onChange receives each reloaded
// snapshot; reloads that fail validation are logged and skipped.
func Watch(path string, onChange func(Settings)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory, not the file: atomic saves replace the inode.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{path: path, fw: fw, onChange: onChange}
	go w.loop()
	return w, nil
}

// loop reacts to filesystem events until the watcher is closed.
func (w *Watcher) loop() {
	var pending <-chan time.Time
	base := filepath.Base(w.path)

	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(debounceDelay)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			log.Printf("config: watch error: %v", err)
		case <-pending:
			pending = nil
			cfg, err := Load(w.path)
			if err != nil {
				log.Printf("config: reload skipped: %v", err)
				continue
			}
			w.onChange(cfg)
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fw.Close()
}
