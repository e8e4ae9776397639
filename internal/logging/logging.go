// Package logging configures the zerolog logger used across helm.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// EnvLevel selects the log level (trace, debug, info, warn, error, off).
	EnvLevel = "HELM_LOG_LEVEL"
	// EnvFormat switches output format; "json" disables the console writer.
	EnvFormat = "HELM_LOG_FORMAT"
)

// New returns a logger writing to stderr, configured from the environment.
// The default is info-level console output, which keeps registration traces
// out of the way of command output on stdout.
func New() zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	if strings.EqualFold(os.Getenv(EnvFormat), "json") {
		out = os.Stderr
	}

	return zerolog.New(out).
		Level(parseLevel(os.Getenv(EnvLevel))).
		With().
		Timestamp().
		Logger()
}

func parseLevel(raw string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel
	case "off", "disabled", "none":
		return zerolog.Disabled
	default:
		level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(raw)))
		if err != nil {
			return zerolog.InfoLevel
		}
		return level
	}
}
