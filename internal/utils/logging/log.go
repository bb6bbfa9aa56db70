// Package logging provides md's levelled console logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

var (
	mu     sync.Mutex
	logger = newLogger(colorable.NewColorableStderr(), !isatty.IsTerminal(os.Stderr.Fd()))
)

func newLogger(w io.Writer, noColor bool) zerolog.Logger {
	cw := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      noColor,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	return zerolog.New(cw).Level(zerolog.WarnLevel)
}

// LevelFor maps the -v count and --quiet to a log level.
func LevelFor(verbosity int, quiet bool) zerolog.Level {
	switch {
	case quiet:
		return zerolog.ErrorLevel
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// Setup sets the logging level for the run.
func Setup(verbosity int, quiet bool) {
	mu.Lock()
	defer mu.Unlock()
	logger = logger.Level(LevelFor(verbosity, quiet))
}

// SetOutput redirects log output, without colors.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	lvl := logger.GetLevel()
	logger = newLogger(w, true).Level(lvl)
}

// L returns the current logger for structured events.
func L() *zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	l := logger
	return &l
}

// E logs an error.
func E(format string, args ...any) {
	L().Error().Msg(sprintf(format, args...))
}

// W logs a warning.
func W(format string, args ...any) {
	L().Warn().Msg(sprintf(format, args...))
}

// I logs an informational message.
func I(format string, args ...any) {
	L().Info().Msg(sprintf(format, args...))
}

// S logs a success message.
func S(format string, args ...any) {
	L().Info().Bool("ok", true).Msg(sprintf(format, args...))
}

// D logs a debug message. Level 1 is shown with -v, higher levels with -vv.
func D(l int, format string, args ...any) {
	if l <= 1 {
		L().Debug().Msg(sprintf(format, args...))
		return
	}
	L().Trace().Msg(sprintf(format, args...))
}

func sprintf(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
