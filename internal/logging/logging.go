// Package logging sets up the zerolog console logger.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// New builds a console logger writing to w. Diagnostics always go to stderr
// in practice: the verdict channel is the process exit code and must never
// carry log output. Unknown levels fall back to warn.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}
	consoleWriter := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	return zerolog.New(consoleWriter).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
