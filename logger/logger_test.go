package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_JSONFormatWritesStructuredRecords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Config{Level: "INFO", Format: "json"}, &buf, nil))

	Info(context.Background(), "eoq calculated", "pattern", "balanced_strategy")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "eoq calculated", rec["msg"])
	assert.Equal(t, "balanced_strategy", rec["pattern"])
	assert.Equal(t, "INFO", rec["level"])
}

func TestInit_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Config{Level: "WARN", Format: "text"}, &buf, nil))

	Debug(context.Background(), "hidden")
	Info(context.Background(), "hidden too")
	assert.Empty(t, buf.String())

	ErrorWithErr(context.Background(), "store failed", errors.New("boom"))
	assert.Contains(t, buf.String(), "store failed")
	assert.Contains(t, buf.String(), "boom")
}

func TestInit_TracingAddsTraceIDs(t *testing.T) {
	var logs, spans bytes.Buffer
	require.NoError(t, Init(Config{Format: "json", Tracing: true, Version: "test"}, &logs, &spans))
	defer func() {
		require.NoError(t, Shutdown(context.Background()))
		tracingEnabled = false
	}()

	ctx, span := StartSpan(context.Background(), "submit")
	Info(ctx, "inside span")
	span.End()

	var rec map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &rec))
	assert.NotEmpty(t, rec["trace_id"])
	assert.NotEmpty(t, rec["span_id"])
}
