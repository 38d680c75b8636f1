// Package log installs the process-wide slog handler and recovers panics.
package log

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"

	charmlog "github.com/charmbracelet/log"

	"ez80dis/internal/logging"
)

var (
	initOnce    sync.Once
	initialized atomic.Bool
	closer      *logging.LoggerCloser
)

// Setup makes the charmbracelet logger the slog default. Only the first
// call has an effect. debug forces debug level and caller reporting.
func Setup(debug bool) {
	initOnce.Do(func() {
		closer = logging.NewLogger()
		if debug || logging.IsDebug() {
			closer.SetLevel(charmlog.DebugLevel)
			closer.SetReportCaller(true)
		}
		slog.SetDefault(slog.New(closer.Logger))
		initialized.Store(true)
	})
}

func Initialized() bool {
	return initialized.Load()
}

// Close releases the log file opened by Setup, if any.
func Close() error {
	if closer == nil {
		return nil
	}
	return closer.Close()
}

func RecoverPanic(name string, cleanup func()) {
	if r := recover(); r != nil {
		if Initialized() {
			slog.Error(fmt.Sprintf("Panic in %s", name),
				"panic", r,
				"stack", string(debug.Stack()))
		}
		if cleanup != nil {
			cleanup()
		}
	}
}
