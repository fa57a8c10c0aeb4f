package recon

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// NewProgressLogger builds a colorized terminal logger for the per-frame
// progress side channel. Redirect it anywhere, or leave Options.Logger
// nil to disable progress output entirely; either way numeric results
// are unaffected.
func NewProgressLogger(w io.Writer) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
	}))
}
