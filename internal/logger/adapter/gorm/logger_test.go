package gorm_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	adapter "github.com/navportal/navportal/internal/logger/adapter/gorm"
)

func captureGlobal(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer

	previous := log.Logger
	previousLevel := zerolog.GlobalLevel()

	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	t.Cleanup(func() {
		log.Logger = previous
		zerolog.SetGlobalLevel(previousLevel)
	})

	return &buf
}

func TestTrace(t *testing.T) {
	query := func() (string, int64) { return "SELECT 1", 1 }

	tests := []struct {
		name     string
		level    gormlogger.LogLevel
		begin    time.Time
		err      error
		contains []string
		empty    bool
	}{
		{
			name:     "error is logged",
			level:    gormlogger.Warn,
			begin:    time.Now(),
			err:      errors.New("no such table: links"), //nolint:goerr113
			contains: []string{`"level":"error"`, "no such table", "SELECT 1"},
		},
		{
			name:  "record not found is not logged",
			level: gormlogger.Warn,
			begin: time.Now(),
			err:   gorm.ErrRecordNotFound,
			empty: true,
		},
		{
			name:     "slow query is a warning",
			level:    gormlogger.Warn,
			begin:    time.Now().Add(-time.Second),
			contains: []string{`"level":"warn"`, "SELECT 1"},
		},
		{
			name:  "fast query at warn level is silent",
			level: gormlogger.Warn,
			begin: time.Now(),
			empty: true,
		},
		{
			name:     "info level traces every query",
			level:    gormlogger.Info,
			begin:    time.Now(),
			contains: []string{`"level":"trace"`, `"rows":1`},
		},
		{
			name:  "silent",
			level: gormlogger.Silent,
			begin: time.Now(),
			err:   errors.New("ignored"), //nolint:goerr113
			empty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureGlobal(t)

			l := adapter.New(100 * time.Millisecond).LogMode(tt.level)
			l.Trace(context.Background(), tt.begin, query, tt.err)

			if tt.empty {
				assert.Empty(t, buf.String())
				return
			}

			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestMessages(t *testing.T) {
	buf := captureGlobal(t)

	l := adapter.New(0)
	l.Info(context.Background(), "hidden %d", 1)
	l.Warn(context.Background(), "shown %s", "warn")
	l.Error(context.Background(), "shown %s", "error")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown warn")
	assert.Contains(t, buf.String(), "shown error")
}
