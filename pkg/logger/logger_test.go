package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithComponent(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := FromZap(zap.New(core)).WithComponent("incrementor").With("type", "alpha")

	log.Debugw("rejected value", "value", "abc123")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "incrementor", fields["component"])
	assert.Equal(t, "alpha", fields["type"])
	assert.Equal(t, "abc123", fields["value"])
}

func TestNop(t *testing.T) {
	log := Nop()
	assert.NotPanics(t, func() { log.Infow("ignored", "k", "v") })
	assert.False(t, log.Desugar().Core().Enabled(zapcore.ErrorLevel))
}

func TestFromZap_NilIsNop(t *testing.T) {
	log := FromZap(nil)
	require.NotNil(t, log)
	assert.NotPanics(t, func() { log.WithComponent("numerator").Debugw("ignored") })
}
