// Package gbutil holds the few things every gbscripts tool sets up the same way.
package gbutil

import (
	"io"
	"log"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
	. "github.com/strickyak/gomar/gu"
)

// Setup finishes flag handling shared by the tools. Call it after flag.Parse.
// Verbosity comes from gu's -v flag: "d" turns on debug logging.
func Setup(w io.Writer) *slog.Logger {
	log.SetFlags(0)
	InitVerbosity()
	return NewLogger(w, Cond(V['d'], slog.LevelDebug, slog.LevelInfo))
}

func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	}))
}
