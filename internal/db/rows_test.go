package db

import (
	"testing"
	"time"

	"github.com/Amadavid/alx-backend-user-data/internal/logger"

	"github.com/stretchr/testify/assert"
)

func TestFormatRow(t *testing.T) {
	cols := []string{"name", "email", "ssn", "last_login", "user_agent", "phone"}
	values := []any{
		[]byte("Marlene Wood"),
		"hwestiii@att.net",
		int64(486),
		time.Date(2019, 11, 14, 6, 16, 24, 0, time.UTC),
		nil,
		[]byte("(473) 401-4253"),
	}

	got := FormatRow(cols, values)
	assert.Equal(t,
		"name=Marlene Wood; email=hwestiii@att.net; ssn=486; last_login=2019-11-14 06:16:24; user_agent=NULL; phone=(473) 401-4253;",
		got,
	)
}

func TestFormatRow_RedactsThroughFilterDatum(t *testing.T) {
	line := FormatRow(
		[]string{"name", "email", "ip"},
		[]any{"Bob", "bob@dylan.com", "60ed:c396:2ff:244:bbd0:9208:26f2:93ea"},
	)

	got := logger.FilterDatum(logger.PIIFields, logger.Redaction, line, logger.Separator)
	assert.Equal(t, "name=***; email=***; ip=60ed:c396:2ff:244:bbd0:9208:26f2:93ea;", got)
}

func TestFormatRow_Empty(t *testing.T) {
	assert.Equal(t, "", FormatRow(nil, nil))
}
