package log

import (
	"io"
	"log/slog"
	"os"
)

type Config struct {
	Level     int  `mapstructure:"level"`
	AddSource bool `mapstructure:"add_source"`
}

// New returns a JSON logger writing to stdout.
func New(c Config) *slog.Logger {
	return NewWithWriter(os.Stdout, c)
}

// NewWithWriter returns a JSON logger writing to w. Level follows slog:
// -4 debug, 0 info, 4 warn, 8 error.
func NewWithWriter(w io.Writer, c Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     slog.Level(c.Level),
		AddSource: c.AddSource,
	}))
}
