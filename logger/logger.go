package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

const (
	colorRed     = 31
	colorGreen   = 32
	colorYellow  = 33
	colorMagenta = 35

	colorBold = 1
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	SetConsoleWriter(os.Stderr)
}

// Log returns the process logger
func Log() *zerolog.Logger {
	return &log
}

// SetConsoleWriter switches to human readable output
func SetConsoleWriter(w io.Writer) {
	log = zerolog.New(zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
		cw.FormatLevel = consoleFormatLevel(false)
		cw.TimeFormat = "15:04:05.000"
	})).With().Timestamp().Logger()
}

// SetJSONWriter switches to one JSON document per line
func SetJSONWriter(w io.Writer) {
	log = zerolog.New(w).With().Timestamp().Logger()
}

// SetFormat selects the writer by name: "console" or "json".
func SetFormat(format string, w io.Writer) error {
	switch strings.ToLower(format) {
	case "", "console":
		SetConsoleWriter(w)
	case "json":
		SetJSONWriter(w)
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	return nil
}

// SetLevel sets the minimum level logged, "" means info.
func SetLevel(level string) error {
	if level == "" {
		level = zerolog.LevelInfoValue
	}
	l, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(l)
	return nil
}

// colorize returns the string s wrapped in ANSI code c, unless disabled is true.
func colorize(s interface{}, c int, disabled bool) string {
	if disabled {
		return fmt.Sprintf("%s", s)
	}
	return fmt.Sprintf("\x1b[%dm%v\x1b[0m", c, s)
}

func consoleFormatLevel(noColor bool) zerolog.Formatter {
	return func(i interface{}) string {
		ll, ok := i.(string)
		if !ok {
			return colorize("???", colorBold, noColor)
		}
		switch ll {
		case "trace":
			return colorize("TRC", colorMagenta, noColor)
		case "debug":
			return colorize("DBG", colorYellow, noColor)
		case "info":
			return colorize("INF", colorGreen, noColor)
		case "warn":
			return colorize("WRN", colorRed, noColor)
		case "error":
			return colorize(colorize("ERR", colorRed, noColor), colorBold, noColor)
		case "fatal":
			return colorize(colorize("FTL", colorRed, noColor), colorBold, noColor)
		case "panic":
			return colorize(colorize("PNC", colorRed, noColor), colorBold, noColor)
		default:
			return colorize("???", colorBold, noColor)
		}
	}
}
