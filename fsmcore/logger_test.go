package fsmcore_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GeneralEmbeddedCLibraries/fsm/fsmcore"
)

func TestFromSlog(t *testing.T) {
	var buf bytes.Buffer
	l := fsmcore.FromSlog(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	l.Debug("state transition", "from", "idle", "to", "run")
	assert.Contains(t, buf.String(), "state transition")
	assert.Contains(t, buf.String(), "from=idle")

	buf.Reset()
	l.With("fsm", "motor").WithGroup("tick").Info("sampled", "ms", 12)
	assert.Contains(t, buf.String(), "fsm=motor")
	assert.Contains(t, buf.String(), "tick.ms=12")
}

func TestLoggerContext(t *testing.T) {
	l := fsmcore.NewTestLogger(t)
	ctx := fsmcore.NewContext(context.Background(), l)

	got, ok := fsmcore.TryFromContext[fsmcore.Logger](ctx)
	require.True(t, ok)
	assert.Equal(t, l, got)
	assert.Equal(t, l, fsmcore.FromContext[fsmcore.Logger](ctx))

	_, ok = fsmcore.TryFromContext[fsmcore.Logger](context.Background())
	assert.False(t, ok)
}
