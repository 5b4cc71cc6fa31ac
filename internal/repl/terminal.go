package repl

import (
	"os"
	"path/filepath"

	"github.com/peterh/liner"

	"github.com/kobzarvs/qconsole/internal/config"
	"github.com/kobzarvs/qconsole/internal/logger"
)

const historyFile = "history"

// RunTerminal drives r from the controlling terminal, keeping line history
// in the config directory.
func RunTerminal(r *REPL) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetTabCompletionStyle(liner.TabPrints)

	histPath := ""
	if dir, err := config.ConfigDir(); err == nil {
		histPath = filepath.Join(dir, historyFile)
	}
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if err := os.MkdirAll(filepath.Dir(histPath), 0o755); err != nil {
				logger.Warn("history dir", "error", err)
				return
			}
			f, err := os.Create(histPath)
			if err != nil {
				logger.Warn("history save", "error", err)
				return
			}
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}()
	}

	logger.Info("repl started", "history", histPath)
	return r.Run(ln)
}
