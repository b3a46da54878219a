package logger

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterDatum(t *testing.T) {
	tests := []struct {
		name      string
		fields    []string
		redaction string
		message   string
		separator string
		expected  string
	}{
		{
			name:      "password and birth date",
			fields:    []string{"password", "date_of_birth"},
			redaction: "xxx",
			message:   "name=egg;email=eggmin@eggsample.com;password=eggcellent;date_of_birth=12/12/1986;",
			separator: ";",
			expected:  "name=egg;email=eggmin@eggsample.com;password=xxx;date_of_birth=xxx;",
		},
		{
			name:      "custom separator",
			fields:    []string{"password", "date_of_birth"},
			redaction: "xxx",
			message:   "name=bob&email=bob@dylan.com&password=bobbycool&date_of_birth=03/04/1993&",
			separator: "&",
			expected:  "name=bob&email=bob@dylan.com&password=xxx&date_of_birth=xxx&",
		},
		{
			name:      "no matching fields",
			fields:    []string{"ssn"},
			redaction: "***",
			message:   "name=bob;email=bob@dylan.com;",
			separator: ";",
			expected:  "name=bob;email=bob@dylan.com;",
		},
		{
			name:      "no fields",
			fields:    nil,
			redaction: "***",
			message:   "password=secret;",
			separator: ";",
			expected:  "password=secret;",
		},
		{
			name:      "redaction with dollar",
			fields:    []string{"ssn"},
			redaction: "$1",
			message:   "ssn=123-45-6789;",
			separator: ";",
			expected:  "ssn=$1;",
		},
		{
			name:      "field names are literal",
			fields:    []string{"a.b"},
			redaction: "***",
			message:   "a.b=1;axb=2;",
			separator: ";",
			expected:  "a.b=***;axb=2;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterDatum(tt.fields, tt.redaction, tt.message, tt.separator)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRedactingFormatter_Format(t *testing.T) {
	f := NewRedactingFormatter(&bytes.Buffer{}, []string{"email", "ssn", "password"})
	ts := time.Date(2019, 11, 19, 18, 24, 25, 105_000_000, time.UTC)

	got := f.Format("my_logger", "info", ts,
		"name=Bob;email=bob@dylan.com;ssn=000-123-0000;password=bobby2019;")

	assert.Equal(t,
		"[HOLBERTON] my_logger INFO 2019-11-19 18:24:25,105: name=Bob;email=***;ssn=***;password=***;",
		got,
	)
}

func TestNewUserDataLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewUserDataLogger(&buf)

	log.Info().Msg("name=Bob; email=bob@dylan.com; phone=555; ssn=1; password=x; ip=10.0.0.1;")
	log.Debug().Msg("should be filtered by level")

	out := buf.String()
	require.Equal(t, 1, strings.Count(out, "\n"))
	assert.True(t, strings.HasPrefix(out, "[HOLBERTON] user_data INFO "))
	assert.Contains(t, out, "name=***;")
	assert.Contains(t, out, "email=***;")
	assert.Contains(t, out, "phone=***;")
	assert.Contains(t, out, "ssn=***;")
	assert.Contains(t, out, "password=***;")
	assert.Contains(t, out, "ip=10.0.0.1;")
	assert.NotContains(t, out, "bob@dylan.com")
}

func TestRedactingFormatter_NonJSONInput(t *testing.T) {
	var buf bytes.Buffer
	f := NewRedactingFormatter(&buf, PIIFields)

	n, err := f.Write([]byte("plain email=a@b.com; line\n"))
	require.NoError(t, err)
	assert.Equal(t, len("plain email=a@b.com; line\n"), n)
	assert.Equal(t, "plain email=***; line\n", buf.String())
}
