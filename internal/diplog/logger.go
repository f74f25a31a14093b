// Package diplog provides structured logging for the adjudicator CLI using
// zerolog, matching the format the rest of the fleet uses.
package diplog

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const milliTimeFormat = "2006-01-02T15:04:05.000Z07:00"

var runID string

// Init configures the global logger based on the environment and stamps it
// with a fresh per-run correlation id. There is no per-request enrichment
// here (SPEC_FULL.md §6 scopes this package to a single CLI process, not a
// server) — one id per process is enough to tell two runs' log lines apart.
func Init() {
	zerolog.TimeFieldFormat = milliTimeFormat
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }

	const callerWidth = 30
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		path := fmt.Sprintf("%s:%d", filepath.Base(file), line)
		if len(path) >= callerWidth {
			return path[len(path)-callerWidth:]
		}
		return path + strings.Repeat(" ", callerWidth-len(path))
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var output io.Writer = zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: milliTimeFormat,
		NoColor:    !isDevelopmentMode(),
	}

	runID = newRunID()
	log.Logger = log.Output(output).With().Caller().Str("run_id", runID).Logger()
}

func isDevelopmentMode() bool {
	return os.Getenv("DEV") == "true" || os.Getenv("DEV_MODE") == "true"
}

// newRunID generates a cryptographically random 8-character alphanumeric
// correlation id, one per process, so two concurrent or successive CLI runs
// can be told apart in aggregated logs.
func newRunID() string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	const length = 8

	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("run%06d", os.Getpid())
	}
	for i := range b {
		b[i] = charset[b[i]%byte(len(charset))]
	}
	return string(b)
}

// RunID returns the correlation id stamped on every log line this process
// emits. It is empty until Init has run.
func RunID() string {
	return runID
}

// Get returns the global logger instance.
func Get() zerolog.Logger {
	return log.Logger
}
