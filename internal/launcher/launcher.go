// Package launcher opens resolved folders in the platform file browser,
// skipping targets already opened within the current run.
package launcher

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/systmms/officemru/internal/logging"
)

// Launcher opens folders in the platform file browser. Each target is opened
// at most once per Launcher; repeated requests for the same path (compared
// case-insensitively) are skipped.
type Launcher struct {
	logger *logging.Logger
	opened []string
	run    func(name string, args ...string) error
}

// New creates a launcher that shells out to the platform file browser.
func New(logger *logging.Logger) *Launcher {
	return &Launcher{
		logger: logger,
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Start()
		},
	}
}

// NewWithRunner creates a launcher with a custom command runner, for tests.
func NewWithRunner(logger *logging.Logger, run func(name string, args ...string) error) *Launcher {
	return &Launcher{logger: logger, run: run}
}

// Open opens target in the file browser unless it was already opened by this
// launcher. It reports whether the target was actually opened.
func (l *Launcher) Open(target string) (bool, error) {
	for _, seen := range l.opened {
		if strings.EqualFold(seen, target) {
			l.logger.Debug("Skipping already opened folder: %s", target)
			return false, nil
		}
	}
	l.opened = append(l.opened, target)

	name, args := browserCommand(target)
	l.logger.Debug("Opening folder: %s", target)
	if err := l.run(name, args...); err != nil {
		return false, err
	}
	return true, nil
}

// browserCommand picks the platform file browser invocation for a target.
func browserCommand(target string) (string, []string) {
	switch runtime.GOOS {
	case "windows":
		return "explorer", []string{target}
	case "darwin":
		return "open", []string{target}
	default:
		return "xdg-open", []string{target}
	}
}
