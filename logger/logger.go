package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"

	// FieldComponent tags every line with the component that produced it.
	FieldComponent = "component"
)

// New creates a zerolog.Logger writing to the output named in cfg.
// An unparsable level falls back to info.
func New(cfg Config, component string) zerolog.Logger {
	return NewWithWriter(cfg, component, outputWriter(cfg.Output))
}

// NewWithWriter is like [New] but writes to w instead of cfg.Output.
func NewWithWriter(cfg Config, component string, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	if strings.ToLower(cfg.Format) == FormatConsole {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: "15:04:05",
			NoColor:    cfg.NoColor,
		}
	}

	zc := zerolog.New(w).Level(level).With()
	if component != "" {
		zc = zc.Str(FieldComponent, component)
	}
	if cfg.Timestamp {
		zc = zc.Timestamp()
	}
	return zc.Logger()
}

func outputWriter(output string) *os.File {
	switch strings.ToLower(output) {
	case "stdout":
		return os.Stdout
	default:
		return os.Stderr
	}
}
