package app

import (
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/qconsole/internal/config"
	"github.com/kobzarvs/qconsole/internal/console"
	"github.com/kobzarvs/qconsole/internal/logger"
	"github.com/kobzarvs/qconsole/internal/session"
)

// App is the top-level runtime for the full-screen console.
type App struct {
	args []string
	cfg  config.Config
}

func New(cfg config.Config, args []string) *App {
	return &App{args: args, cfg: cfg}
}

const (
	// reloadDebounce coalesces the burst of events an editor emits on save.
	reloadDebounce  = 200 * time.Millisecond
	sessionAutosave = 15 * time.Second
)

func (a *App) Run() error {
	runtime.LockOSThread()
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer s.Fini()
	return a.RunScreen(s)
}

// RunScreen runs the event loop on an initialised screen until the console
// asks to quit.
func (a *App) RunScreen(s tcell.Screen) error {
	c := console.New(a.cfg)
	if len(a.args) > 0 {
		if err := c.OpenFile(a.args[0]); err != nil {
			return err
		}
		if sess, key := a.restoreSession(c); sess != nil {
			defer a.storeSession(sess, key, c)
		}
	}
	logger.Info("console started", "file", c.Text() != "", "grammar", a.cfg.Grammar.Grammar)

	if dir, err := config.ConfigDir(); err == nil {
		if w, err := watchConfig(dir, s.PostEvent, reloadDebounce); err != nil {
			logger.Debug("config watch disabled", "error", err)
		} else {
			defer w.Close()
		}
	}

	c.Render(s)
	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			if c.HandleKey(ev) {
				logger.Info("console closed", "dirty", c.Dirty())
				return nil
			}
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventInterrupt:
			if _, ok := ev.Data().(configChanged); !ok {
				break
			}
			cfg, err := a.reload()
			if err != nil {
				logger.Warn("config reload failed", "error", err)
				c.SetStatusMessage("config: " + err.Error())
				break
			}
			c.ApplyConfig(cfg)
			c.SetStatusMessage("config reloaded")
			logger.Info("config reloaded", "grammar", cfg.Grammar.Grammar, "theme", cfg.Theme.Theme)
		}
		c.Render(s)
	}
}

// restoreSession puts the caret and scroll back where the file was left.
func (a *App) restoreSession(c *console.Console) (*session.Manager, string) {
	path, err := session.DefaultPath()
	if err != nil {
		logger.Debug("session disabled", "error", err)
		return nil, ""
	}
	key, err := filepath.Abs(c.Filename())
	if err != nil {
		key = c.Filename()
	}
	sess := session.NewManager(path, sessionAutosave)
	if st, ok := sess.FileState(key); ok {
		c.SetCaret(st.Caret)
		c.SetScroll(st.Scroll)
		logger.Debug("session restored", "file", key, "caret", c.Caret())
	}
	return sess, key
}

func (a *App) storeSession(sess *session.Manager, key string, c *console.Console) {
	sess.SetFileState(key, session.FileState{Caret: c.Caret(), Scroll: c.Scroll()})
	if err := sess.Stop(); err != nil {
		logger.Warn("session save failed", "error", err)
	}
}
