package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Service is attached to every log line.
const Service = "dashpulse"

var (
	mu     sync.RWMutex
	base   zerolog.Logger
	ready  bool
	output io.Writer = os.Stdout

	// zerolog reads TimeFieldFormat without locking, so it is written once.
	timeFormatOnce sync.Once
)

// Init configures the global JSON logger.
//
// Environment variables (optional):
//   - LOG_LEVEL: debug|info|warn|error (default: info)
//   - LOG_PRETTY: true|false (default: false)
func Init() {
	level := parseLevel(getenv("LOG_LEVEL", "info"))
	pretty := strings.EqualFold(getenv("LOG_PRETTY", "false"), "true")

	timeFormatOnce.Do(func() { zerolog.TimeFieldFormat = time.RFC3339Nano })

	mu.Lock()
	defer mu.Unlock()

	w := output
	if pretty {
		w = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
	}
	base = zerolog.New(w).With().Timestamp().Str("service", Service).Logger().Level(level)
	ready = true
}

// SetOutput redirects the logger to w and re-initializes it. Tests use it to capture lines.
func SetOutput(w io.Writer) {
	mu.Lock()
	output = w
	mu.Unlock()
	Init()
}

// L returns the global logger, initializing it on first use.
func L() *zerolog.Logger {
	mu.RLock()
	if ready {
		l := base
		mu.RUnlock()
		return &l
	}
	mu.RUnlock()
	Init()
	return L()
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
