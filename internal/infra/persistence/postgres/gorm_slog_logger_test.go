package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"planner/config"
	deliverycontext "planner/internal/delivery/context"
	"planner/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newTestGormLogger(buf *bytes.Buffer, debug bool) *gormSlogLogger {
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	base := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg).(*gormSlogLogger)
}

func sqlFn() (string, int64) { return `SELECT * FROM "payments"`, 1 }

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newTestGormLogger(&buf, true)

	reqLogger := l.base.With(slog.String("request_id", "req-1"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)
	l.Trace(ctx, time.Now(), sqlFn, nil)

	assert.Contains(t, buf.String(), `"msg":"gorm query"`)
	assert.Contains(t, buf.String(), `"request_id":"req-1"`)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name  string
		debug bool
		begin time.Time
		err   error
		want  string
	}{
		{name: "not found is silent", debug: true, begin: time.Now(), err: errors.Wrap(gorm.ErrRecordNotFound, "first")},
		{name: "unique violation at debug", begin: time.Now(), err: gorm.ErrDuplicatedKey, want: `"level":"DEBUG","msg":"gorm unique constraint hit"`},
		{name: "failure", begin: time.Now(), err: errors.New("conn reset"), want: `"level":"ERROR","msg":"gorm query failed"`},
		{name: "slow", begin: time.Now().Add(-time.Second), want: `"level":"WARN","msg":"gorm slow query"`},
		{name: "fast query hidden without debug", begin: time.Now()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newTestGormLogger(&buf, tt.debug)
			l.Trace(context.Background(), tt.begin, sqlFn, tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}
