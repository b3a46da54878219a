package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// PIIFields are the user table columns that must never reach a log line
// in cleartext.
var PIIFields = []string{"name", "email", "phone", "ssn", "password"}

const (
	Redaction = "***"
	Separator = ";"

	formatPrefix = "[HOLBERTON]"
	timeLayout   = "2006-01-02 15:04:05,000"
)

// FilterDatum replaces the value of every field=value pair in message with
// redaction. A value runs up to the next separator.
func FilterDatum(fields []string, redaction, message, separator string) string {
	re := filterPattern(fields, separator)
	if re == nil {
		return message
	}
	return re.ReplaceAllString(message, replacement(redaction))
}

func filterPattern(fields []string, separator string) *regexp.Regexp {
	if len(fields) == 0 {
		return nil
	}

	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = regexp.QuoteMeta(f)
	}

	value := `[^\n]*`
	if separator != "" {
		value = "[^" + regexp.QuoteMeta(separator) + "]*"
	}

	return regexp.MustCompile("(" + strings.Join(quoted, "|") + ")=" + value)
}

func replacement(redaction string) string {
	return "${1}=" + strings.ReplaceAll(redaction, "$", "$$")
}

// RedactingFormatter renders zerolog events as
// "[HOLBERTON] <logger> <LEVEL> <time>: <message>" and redacts the
// configured fields from the rendered line.
type RedactingFormatter struct {
	mu      sync.Mutex
	out     io.Writer
	pattern *regexp.Regexp
	repl    string
	now     func() time.Time
}

func NewRedactingFormatter(out io.Writer, fields []string) *RedactingFormatter {
	return &RedactingFormatter{
		out:     out,
		pattern: filterPattern(fields, Separator),
		repl:    replacement(Redaction),
		now:     time.Now,
	}
}

// Format renders a single record.
func (f *RedactingFormatter) Format(name, level string, ts time.Time, message string) string {
	line := fmt.Sprintf("%s %s %s %s: %s",
		formatPrefix,
		name,
		strings.ToUpper(level),
		ts.Format(timeLayout),
		message,
	)
	if f.pattern == nil {
		return line
	}
	return f.pattern.ReplaceAllString(line, f.repl)
}

type event struct {
	Level   string `json:"level"`
	Logger  string `json:"logger"`
	Message string `json:"message"`
}

func (f *RedactingFormatter) Write(p []byte) (int, error) {
	var line string

	var ev event
	if err := json.Unmarshal(p, &ev); err != nil {
		line = strings.TrimRight(string(p), "\n")
		if f.pattern != nil {
			line = f.pattern.ReplaceAllString(line, f.repl)
		}
	} else {
		if ev.Level == zerolog.LevelWarnValue {
			ev.Level = "warning"
		}
		line = f.Format(ev.Logger, ev.Level, f.now(), ev.Message)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := io.WriteString(f.out, line+"\n"); err != nil {
		return 0, err
	}
	return len(p), nil
}

// NewUserDataLogger returns the "user_data" logger: INFO and above, every
// line passed through a RedactingFormatter over PIIFields.
func NewUserDataLogger(out io.Writer) zerolog.Logger {
	return zerolog.New(NewRedactingFormatter(out, PIIFields)).
		Level(zerolog.InfoLevel).
		With().
		Str("logger", "user_data").
		Logger()
}
