package logger

import (
	"io"
	"os"
	"slices"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu   sync.RWMutex
	base = zerolog.New(os.Stdout).With().Timestamp().Logger()
)

// Init configures the process logger: JSON on stdout at the given level
// (debug, info, warn, error). Unknown levels fall back to info.
func Init(level string) {
	SetOutput(os.Stdout, level)
	Info("logger initialized", map[string]any{"level": level})
}

// SetOutput redirects the process logger.
func SetOutput(w io.Writer, level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	mu.Lock()
	base = zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	mu.Unlock()
}

func current() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := base
	return &l
}

func Debug(msg string, fields map[string]any) {
	current().Debug().Fields(scrub(fields)).Msg(msg)
}

func Info(msg string, fields map[string]any) {
	current().Info().Fields(scrub(fields)).Msg(msg)
}

func Warn(msg string, fields map[string]any) {
	current().Warn().Fields(scrub(fields)).Msg(msg)
}

func Error(msg string, fields map[string]any) {
	current().Error().Fields(scrub(fields)).Msg(msg)
}

// Fatal logs and exits the process with status 1.
func Fatal(msg string, fields map[string]any) {
	current().Fatal().Fields(scrub(fields)).Msg(msg)
}

// scrub masks PII-named fields so structured logs follow the same policy
// as the user_data formatter.
func scrub(fields map[string]any) map[string]any {
	if len(fields) == 0 {
		return fields
	}

	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if slices.Contains(PIIFields, k) {
			out[k] = Redaction
			continue
		}
		out[k] = v
	}
	return out
}
