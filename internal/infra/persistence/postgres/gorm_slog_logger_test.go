package postgres

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	"webshop/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestGormLogger(t *testing.T) *gormSlogLogger {
	t.Helper()

	l, ok := newGormSlogLogger(slog.New(slog.DiscardHandler), &config.Config{}).(*gormSlogLogger)
	require.True(t, ok)

	return l
}

func TestGormSlogLogger_TruncatesLongStatements(t *testing.T) {
	l := newTestGormLogger(t)

	longSQL := strings.Repeat("x", gormSQLAttrMaxLen*2)
	attrs := l.buildQueryAttrs(func() (string, int64) { return longSQL, 1 }, time.Millisecond)

	var logged string
	for _, attr := range attrs {
		if attr.Key == "sql" {
			logged = attr.Value.String()
		}
	}
	assert.Len(t, logged, gormSQLAttrMaxLen+len("..."))
	assert.True(t, strings.HasSuffix(logged, "..."))
}

func TestGormSlogLogger_KeepsShortStatements(t *testing.T) {
	l := newTestGormLogger(t)

	attrs := l.buildQueryAttrs(func() (string, int64) { return "SELECT 1", 1 }, time.Millisecond)

	var logged string
	for _, attr := range attrs {
		if attr.Key == "sql" {
			logged = attr.Value.String()
		}
	}
	assert.Equal(t, "SELECT 1", logged)
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	l := newTestGormLogger(t)

	assert.False(t, l.shouldLogError(gorm.ErrRecordNotFound))
	assert.True(t, l.shouldLogError(assert.AnError))
	assert.False(t, l.shouldLogError(nil))
}

func TestGormSlogLogger_SlowQueryThreshold(t *testing.T) {
	l := newTestGormLogger(t)

	assert.False(t, l.shouldLogSlow(defaultGormSlowThreshold/2))
	assert.True(t, l.shouldLogSlow(defaultGormSlowThreshold*2))
}

func TestGormSlogLogger_DebugEnablesInfoLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Debug = true

	l, ok := newGormSlogLogger(slog.New(slog.DiscardHandler), cfg).(*gormSlogLogger)
	require.True(t, ok)
	assert.Equal(t, gormlogger.Info, l.level)
}
