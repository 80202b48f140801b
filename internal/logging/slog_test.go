package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return NewTextLogger(&buf, "debug"), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "reconcile", "uid", "u1")
	log.Info(ctx, "signed-in", "uid", "u2")
	log.Warn(ctx, "profile-missing", "uid", "u3")
	log.Error(ctx, "store-down", "uid", "u4")

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG", "msg=reconcile", "uid=u1",
		"level=INFO", "msg=signed-in", "uid=u2",
		"level=WARN", "msg=profile-missing", "uid=u3",
		"level=ERROR", "msg=store-down", "uid=u4",
	} {
		require.Contains(t, out, want)
	}
}

func TestSlogLogger_With(t *testing.T) {
	log, buf := newTestLogger(t)

	log.With("module", "session").Info(context.Background(), "hello", "k", "v")

	out := buf.String()
	for _, s := range []string{"module=session", "msg=hello", "k=v"} {
		assert.True(t, strings.Contains(out, s), "missing %q in %s", s, out)
	}
}

func TestNewJSONLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf, "warn")

	log.Info(context.Background(), "hidden")
	log.Warn(context.Background(), "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	ctx := context.TODO()
	l.Debug(ctx, "x")
	l.Info(ctx, "x")
	l.Warn(ctx, "x")
	l.Error(ctx, "x")
	require.NotNil(t, l.With("a", 1))
}
