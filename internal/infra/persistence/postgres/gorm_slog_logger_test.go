package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"attendance/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBufferedGormLogger(t *testing.T, debug bool, slow time.Duration) (*gormSlogLogger, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug
	cfg.Storage.SlowQueryThreshold = slow

	l, ok := newGormSlogLogger(base, cfg).(*gormSlogLogger)
	require.True(t, ok)

	return l, &buf
}

func decodeRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &record))
		records = append(records, record)
	}

	return records
}

func TestGormSlogLoggerTrace(t *testing.T) {
	t.Parallel()

	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	t.Run("errors are logged except record not found", func(t *testing.T) {
		t.Parallel()

		l, buf := newBufferedGormLogger(t, false, time.Second)
		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
		l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))

		records := decodeRecords(t, buf)
		require.Len(t, records, 1)
		assert.Equal(t, "GORM query failed", records[0]["msg"])
		assert.Equal(t, "boom", records[0]["error"])
		assert.Equal(t, "gorm", records[0]["component"])
	})

	t.Run("slow queries are logged at warn", func(t *testing.T) {
		t.Parallel()

		l, buf := newBufferedGormLogger(t, false, time.Millisecond)
		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

		records := decodeRecords(t, buf)
		require.Len(t, records, 1)
		assert.Equal(t, "GORM slow query", records[0]["msg"])
		assert.Equal(t, "WARN", records[0]["level"])
	})

	t.Run("fast queries are only logged in debug", func(t *testing.T) {
		t.Parallel()

		quiet, quietBuf := newBufferedGormLogger(t, false, time.Hour)
		quiet.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Empty(t, quietBuf.String())

		verbose, verboseBuf := newBufferedGormLogger(t, true, time.Hour)
		verbose.Trace(context.Background(), time.Now(), sqlFn, nil)
		records := decodeRecords(t, verboseBuf)
		require.Len(t, records, 1)
		assert.Equal(t, "SELECT 1", records[0]["sql"])
	})
}
