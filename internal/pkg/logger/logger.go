package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"course-enrollment/internal/pkg/config"
)

type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// New builds the process logger and installs it as the slog default. Times
// are rendered in the configured zone and layout.
func New(cfg config.LogConfig, format Format) *slog.Logger {
	return NewWithWriter(os.Stdout, cfg, format)
}

func NewWithWriter(w io.Writer, cfg config.LogConfig, format Format) *slog.Logger {
	timezone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.In(timezone).Format(cfg.TimeFormat))
				}
			}
			return a
		},
	}

	var handler slog.Handler
	if format == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	l := slog.New(handler)
	slog.SetDefault(l)
	return l
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
