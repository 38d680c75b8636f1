// Package logging builds the charmbracelet logger used by the command line
// tool. It is configured from environment variables and can write to a
// timestamped file.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

const (
	LevelEnv  = "EZ80DIS_LOG_LEVEL"
	PrefixEnv = "EZ80DIS_LOG_PREFIX"
	FileEnv   = "EZ80DIS_LOG_TO_FILE"
)

// LoggerCloser wraps a logger and the writer it owns.
type LoggerCloser struct {
	*log.Logger
	closer io.Closer
}

// Close closes the underlying writer if it is closeable.
func (lc *LoggerCloser) Close() error {
	if lc.closer != nil {
		return lc.closer.Close()
	}
	return nil
}

// ParseLevel maps debug, info, warn and error to a log level. Anything else
// is info.
func ParseLevel(s string) log.Level {
	switch s {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// NewLoggerWithWriter creates a logger writing to w.
func NewLoggerWithWriter(w io.Writer) *LoggerCloser {
	lg := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
	lg.SetLevel(ParseLevel(os.Getenv(LevelEnv)))

	prefix := os.Getenv(PrefixEnv)
	if prefix == "" {
		prefix = "ez80dis"
	}

	var closer io.Closer
	if c, ok := w.(io.Closer); ok && w != os.Stderr {
		closer = c
	}
	return &LoggerCloser{
		Logger: lg.WithPrefix(prefix),
		closer: closer,
	}
}

// NewLogger creates a logger from the environment:
//
//	EZ80DIS_LOG_LEVEL   debug, info, warn, error (default info)
//	EZ80DIS_LOG_PREFIX  message prefix (default "ez80dis")
//	EZ80DIS_LOG_TO_FILE "1" logs to ez80dis-<timestamp>.log instead of stderr
func NewLogger() *LoggerCloser {
	output := io.Writer(os.Stderr)
	if os.Getenv(FileEnv) == "1" {
		name := fmt.Sprintf("ez80dis-%s.log", time.Now().Format("20060102-150405"))
		// stderr is kept when the file cannot be created
		if f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644); err == nil {
			output = f
		}
	}
	return NewLoggerWithWriter(output)
}

// IsDebug reports whether EZ80DIS_LOG_LEVEL asks for debug output.
func IsDebug() bool {
	return os.Getenv(LevelEnv) == "debug"
}
