package tracking

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tote-api/pkg/config"
)

func TestNewSentryReporter_SinDSNEsNoop(t *testing.T) {
	r, err := NewSentryReporter(config.SentryConfig{}, "test")
	require.NoError(t, err)
	assert.False(t, r.Enabled())

	assert.NotPanics(t, func() {
		r.CaptureError(errors.New("x"))
		r.CapturePanic("boom")
		r.Flush()
	})
}

func TestNewSentryReporter_DSNInvalido(t *testing.T) {
	_, err := NewSentryReporter(config.SentryConfig{DSN: "no-es-un-dsn"}, "test")
	assert.Error(t, err)
}
