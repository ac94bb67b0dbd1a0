package config

import (
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// TuningWatcher reloads a tuning file from disk whenever it changes.
// Reloads are reported on Reloaded; the game applies them between frames.
type TuningWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	Reloaded chan []byte
	Errors   chan error
	closeCh  chan struct{}
	once     sync.Once
}

// WatchTuning starts watching path. The directory is watched rather than the
// file so editors that replace the file on save are still picked up.
func WatchTuning(path string) (*TuningWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	tw := &TuningWatcher{
		path:     filepath.Clean(path),
		watcher:  w,
		Reloaded: make(chan []byte, 1),
		Errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
	}
	go tw.run()
	return tw, nil
}

func (tw *TuningWatcher) Close() error {
	var err error
	tw.once.Do(func() {
		close(tw.closeCh)
		err = tw.watcher.Close()
	})
	return err
}

// Poll applies at most one pending reload. It never blocks.
func (tw *TuningWatcher) Poll() {
	select {
	case data := <-tw.Reloaded:
		if err := ApplyTuning(data); err != nil {
			log.Printf("Warning: tuning reload rejected: %v", err)
			return
		}
		log.Printf("Tuning reloaded from %s", tw.path)
	case err := <-tw.Errors:
		log.Printf("Warning: tuning watcher: %v", err)
	default:
	}
}

func (tw *TuningWatcher) run() {
	var last time.Time
	for {
		select {
		case event, ok := <-tw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != tw.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			now := time.Now()
			if now.Sub(last) < 100*time.Millisecond {
				continue
			}
			last = now

			data, err := os.ReadFile(tw.path)
			if err != nil {
				tw.report(err)
				continue
			}
			// Keep only the newest document.
			select {
			case <-tw.Reloaded:
			default:
			}
			tw.Reloaded <- data
		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return
			}
			tw.report(err)
		case <-tw.closeCh:
			return
		}
	}
}

func (tw *TuningWatcher) report(err error) {
	select {
	case tw.Errors <- err:
	default:
	}
}
