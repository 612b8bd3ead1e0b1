// Package debug hands out the component loggers used across the module.
// The debug switch is held here and applied to each logger it creates, so
// the process-wide zerolog level is left alone.
package debug

import (
	"io"
	"os"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

var (
	enabled atomic.Bool

	mu     sync.RWMutex
	output io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"}
)

func init() {
	debugEnv, exists := os.LookupEnv("CENTRAL_DEBUG")
	if exists {
		if val, err := strconv.ParseBool(debugEnv); err == nil {
			enabled.Store(val)
		}
	}
}

// Level is the level given to loggers created now.
func Level() zerolog.Level {
	if enabled.Load() {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// Logger returns a logger tagged with the given component name.
func Logger(component string) zerolog.Logger {
	mu.RLock()
	w := output
	mu.RUnlock()

	return zerolog.New(w).Level(Level()).With().Timestamp().Str("component", component).Logger()
}

// SetOutput redirects loggers created after the call.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	output = w
}

// Enable turns on debug output for loggers created after the call.
func Enable() {
	enabled.Store(true)
}

func Disable() {
	enabled.Store(false)
}

func Enabled() bool {
	return enabled.Load()
}
