package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWatcher_Observe(t *testing.T) {
	var buf bytes.Buffer
	w := poolWatcher{
		logger:    slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
		warnAfter: 50 * time.Millisecond,
	}
	ctx := context.Background()
	prev := sql.DBStats{WaitCount: 4, WaitDuration: 10 * time.Millisecond}

	w.observe(ctx, prev, prev)
	assert.Empty(t, buf.String())

	w.observe(ctx, prev, sql.DBStats{WaitCount: 6, WaitDuration: 20 * time.Millisecond})
	assert.Contains(t, buf.String(), `"level":"DEBUG"`)
	assert.Contains(t, buf.String(), `"waits":2`)
	buf.Reset()

	w.observe(ctx, prev, sql.DBStats{WaitCount: 5, WaitDuration: 110 * time.Millisecond})
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"avgWait":100000000`)
}
