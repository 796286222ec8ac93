package app

import (
	"io"
	"log/slog"
)

// NewLogger builds the text logger used by the binaries. An unparsable level
// falls back to info; Validate reports it separately.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	lvl, err := c.Level()
	if err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
