package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/qconsole/internal/config"
	"github.com/kobzarvs/qconsole/internal/logger"
)

// configChanged is posted as the data of an interrupt event once the config
// directory settles after a write.
type configChanged struct{}

type configWatcher struct {
	fsw      *fsnotify.Watcher
	post     func(tcell.Event) error
	debounce time.Duration

	mu    sync.Mutex
	timer *time.Timer
	done  chan struct{}
}

// watchConfig watches dir and its theme and grammar subdirectories for
// .toml writes.
func watchConfig(dir string, post func(tcell.Event) error, debounce time.Duration) (*configWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	added := 0
	for _, d := range []string{dir, filepath.Join(dir, "theme"), filepath.Join(dir, "grammar")} {
		if st, err := os.Stat(d); err != nil || !st.IsDir() {
			continue
		}
		if err := fsw.Add(d); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watching directory %s: %w", d, err)
		}
		added++
	}
	if added == 0 {
		fsw.Close()
		return nil, fmt.Errorf("config directory %s does not exist", dir)
	}
	w := &configWatcher{fsw: fsw, post: post, debounce: debounce, done: make(chan struct{})}
	go w.loop()
	return w, nil
}

func (w *configWatcher) loop() {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 || !strings.HasSuffix(ev.Name, ".toml") {
				continue
			}
			w.schedule()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("config watcher error", "error", err)
		case <-w.done:
			return
		}
	}
}

func (w *configWatcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		if err := w.post(tcell.NewEventInterrupt(configChanged{})); err != nil {
			logger.Debug("config reload dropped", "error", err)
		}
	})
}

func (w *configWatcher) Close() error {
	close(w.done)
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.fsw.Close()
}

// reload re-reads the configuration into the running console state.
func (a *App) reload() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return a.cfg, err
	}
	a.cfg = cfg
	return cfg, nil
}
