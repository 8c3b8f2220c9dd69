// Package tracking reporta errores y panics a Sentry. Sin DSN el reporte es un no-op.
package tracking

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/jhoicas/tote-api/pkg/config"
)

const flushTimeout = 2 * time.Second

// Reporter destino de los errores internos.
type Reporter interface {
	CaptureError(err error)
	CapturePanic(recovered any)
	Flush()
}

// SentryReporter implementa Reporter sobre el hub global de sentry-go.
type SentryReporter struct {
	enabled bool
}

// NewSentryReporter inicializa el SDK si hay DSN configurado.
func NewSentryReporter(cfg config.SentryConfig, release string) (*SentryReporter, error) {
	if cfg.DSN == "" {
		return &SentryReporter{}, nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		Release:          release,
		SendDefaultPII:   true,
		AttachStacktrace: true,
	})
	if err != nil {
		return nil, fmt.Errorf("inicializar sentry: %w", err)
	}
	return &SentryReporter{enabled: true}, nil
}

// Enabled indica si los eventos se envían a Sentry.
func (r *SentryReporter) Enabled() bool { return r.enabled }

func (r *SentryReporter) CaptureError(err error) {
	if !r.enabled || err == nil {
		return
	}
	sentry.CaptureException(err)
}

func (r *SentryReporter) CapturePanic(recovered any) {
	if !r.enabled {
		return
	}
	sentry.CurrentHub().Recover(recovered)
}

// Flush espera a que se envíen los eventos pendientes (llamar antes de terminar el proceso).
func (r *SentryReporter) Flush() {
	if r.enabled {
		sentry.Flush(flushTimeout)
	}
}
