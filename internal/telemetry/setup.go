package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"github.com/irfndi/opportunity-scoring/internal/config"
	"github.com/irfndi/opportunity-scoring/internal/logging"
)

// Provider bundles the tracer provider handed to the pipeline with the shutdown
// that flushes every exporter Setup created.
type Provider struct {
	TracerProvider trace.TracerProvider
	shutdowns      []func(context.Context) error
}

// Shutdown flushes and stops the exporters. Safe on a disabled Provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	var errs []error
	for i := len(p.shutdowns) - 1; i >= 0; i-- {
		if err := p.shutdowns[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Setup builds span export (and OTLP log export when enabled) from cfg. A disabled
// config yields a Provider with a nil TracerProvider, which makes the pipeline use the
// global provider. stdout is where the stdout exporter writes; os.Stdout when nil.
func Setup(ctx context.Context, cfg config.TelemetryConfig, environment string, logger *logrus.Logger, stdout io.Writer) (*Provider, error) {
	p := &Provider{}
	if !cfg.Enabled {
		return p, nil
	}

	tp, err := NewTracerProvider(ctx, ProviderConfig{
		ServiceName: cfg.ServiceName,
		Environment: environment,
		Exporter:    cfg.Exporter,
		Endpoint:    cfg.Endpoint,
		Writer:      stdout,
	})
	if err != nil {
		return nil, err
	}
	p.TracerProvider = tp
	p.shutdowns = append(p.shutdowns, tp.Shutdown)

	if cfg.ExportLogs && logger != nil {
		res, err := NewResource(ctx, cfg.ServiceName, environment)
		if err != nil {
			_ = p.Shutdown(ctx)
			return nil, err
		}
		lp, err := logging.NewOTLPLoggerProvider(ctx, logging.OTLPConfig{
			Endpoint: cfg.Endpoint,
			Resource: res,
		})
		if err != nil {
			_ = p.Shutdown(ctx)
			return nil, fmt.Errorf("log export: %w", err)
		}
		logger.AddHook(logging.NewOTLPHook(lp, ServiceName))
		p.shutdowns = append(p.shutdowns, lp.Shutdown)
	}

	return p, nil
}
