package obs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestID(ctx))

	id := NewRequestID()
	require.Len(t, id, 36)
	assert.Equal(t, id, RequestID(WithRequestID(ctx, id)))
}

func TestTimeLogsFailure(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	undo := zap.ReplaceGlobals(zap.New(core))
	defer undo()

	ctx := WithRequestID(context.Background(), "req-1")

	func() {
		err := errors.New("boom")
		defer Time(ctx, "op.fail")(&err)
	}()
	func() {
		var err error
		defer Time(ctx, "op.ok")(&err)
	}()

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "op.fail", entries[0].ContextMap()["op"])
	assert.Equal(t, "req-1", entries[0].ContextMap()["req_id"])
	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
}
