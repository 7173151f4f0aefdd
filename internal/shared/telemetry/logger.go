package telemetry

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	charmlog "github.com/charmbracelet/log"
)

var logger = charmlog.NewWithOptions(os.Stdout, charmlog.Options{
	ReportTimestamp: true,
	TimeFormat:      time.RFC3339,
	TimeFunction:    charmlog.NowUTC,
	Formatter:       charmlog.JSONFormatter,
	Level:           charmlog.InfoLevel,
})

// Configure sets the minimum level ("debug", "info", "warn", "error") and the
// output format ("json", "logfmt" or "text").
func Configure(level, format string) error {
	if level != "" {
		parsed, err := charmlog.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("telemetry: %w", err)
		}
		logger.SetLevel(parsed)
	}
	switch format {
	case "", "json":
		logger.SetFormatter(charmlog.JSONFormatter)
	case "logfmt":
		logger.SetFormatter(charmlog.LogfmtFormatter)
	case "text":
		logger.SetFormatter(charmlog.TextFormatter)
	default:
		return fmt.Errorf("telemetry: unknown log format %q", format)
	}
	return nil
}

// SetOutput redirects log lines, mainly for tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Debug writes a debug-level log line with the given fields.
func Debug(msg string, fields map[string]any) {
	write(charmlog.DebugLevel, msg, fields)
}

// Info writes an info-level log line with the given fields.
func Info(msg string, fields map[string]any) {
	write(charmlog.InfoLevel, msg, fields)
}

// Warn writes a warn-level log line with the given fields.
func Warn(msg string, fields map[string]any) {
	write(charmlog.WarnLevel, msg, fields)
}

// Error writes an error-level log line with the given fields.
func Error(msg string, fields map[string]any) {
	write(charmlog.ErrorLevel, msg, fields)
}

func write(level charmlog.Level, msg string, fields map[string]any) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	keyvals := make([]any, 0, len(keys)*2)
	for _, k := range keys {
		keyvals = append(keyvals, k, fields[k])
	}
	logger.Log(level, msg, keyvals...)
}
