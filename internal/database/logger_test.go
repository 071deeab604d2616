package database

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pocket-ledger/backend/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	gorm_logger "gorm.io/gorm/logger"
)

func TestLoggerTrace(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	fc := func() (string, int64) { return `SELECT * FROM "accounts" WHERE id = 1`, 3 }

	l.Trace(context.Background(), time.Now(), fc, nil)
	assert.Contains(t, buf.String(), `"level":"debug"`)
	assert.Contains(t, buf.String(), `"table":"accounts"`)
	assert.Contains(t, buf.String(), `"rows":3`)

	buf.Reset()
	l.Trace(context.Background(), time.Now(), fc, models.NotFound("account"))
	assert.Contains(t, buf.String(), `"level":"debug"`, "missing records must not be logged as errors")

	buf.Reset()
	l.Trace(context.Background(), time.Now(), fc, errors.New("disk I/O error"))
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "disk I/O error")
}

func TestLoggerSlowStatement(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(zerolog.New(&buf))
	fc := func() (string, int64) { return "UPDATE `transactions` SET amount = 1", 1 }

	l.Trace(context.Background(), time.Now().Add(-time.Second), fc, nil)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"table":"transactions"`)
	assert.Contains(t, buf.String(), `"threshold":200`)
}

func TestLoggerMode(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	fc := func() (string, int64) { return "INSERT INTO glossary_terms VALUES (1)", 1 }

	silent := l.LogMode(gorm_logger.Silent)
	silent.Trace(context.Background(), time.Now(), fc, errors.New("constraint failed"))
	silent.Error(context.Background(), "failed")
	assert.Empty(t, buf.String())

	errorsOnly := l.LogMode(gorm_logger.Error)
	errorsOnly.Trace(context.Background(), time.Now(), fc, nil)
	errorsOnly.Trace(context.Background(), time.Now().Add(-time.Second), fc, nil)
	assert.Empty(t, buf.String())

	errorsOnly.Trace(context.Background(), time.Now(), fc, errors.New("constraint failed"))
	assert.Contains(t, buf.String(), `"table":"glossary_terms"`)
	assert.Contains(t, buf.String(), `"level":"error"`)

	// The original logger keeps its level
	buf.Reset()
	l.Trace(context.Background(), time.Now(), fc, nil)
	assert.Contains(t, buf.String(), `"level":"debug"`)
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(zerolog.New(&buf))

	l.Info(context.Background(), "%d tables", 4)
	assert.Contains(t, buf.String(), `"message":"4 tables"`)

	l.Warn(context.Background(), "slow")
	assert.Contains(t, buf.String(), `"level":"warn"`)

	l.Error(context.Background(), "failed")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestTable(t *testing.T) {
	tests := []struct {
		sql   string
		table string
	}{
		{`SELECT * FROM "accounts" WHERE id = 1`, "accounts"},
		{"INSERT INTO `categories` (`id`) VALUES (1)", "categories"},
		{`UPDATE "transactions" SET "amount"=1`, "transactions"},
		{"select count(*) from glossary_terms", "glossary_terms"},
		{"PRAGMA foreign_keys", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.table, table(tt.sql), tt.sql)
	}
}
