package logging

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
)

// OTLPConfig holds configuration for OpenTelemetry log export
type OTLPConfig struct {
	Endpoint string
	Resource *resource.Resource
}

// NewOTLPLoggerProvider creates a batching logger provider exporting over OTLP/HTTP.
func NewOTLPLoggerProvider(ctx context.Context, config OTLPConfig) (*log.LoggerProvider, error) {
	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = "http://localhost:4318"
	}

	exporter, err := otlploghttp.New(ctx,
		otlploghttp.WithEndpointURL(strings.TrimRight(endpoint, "/")+"/v1/logs"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP log exporter: %w", err)
	}

	opts := []log.LoggerProviderOption{log.WithProcessor(log.NewBatchProcessor(exporter))}
	if config.Resource != nil {
		opts = append(opts, log.WithResource(config.Resource))
	}
	return log.NewLoggerProvider(opts...), nil
}

// OTLPHook forwards logrus entries to an OpenTelemetry logger so pipeline logs
// travel with the spans they were written under.
type OTLPHook struct {
	logger otellog.Logger
}

// NewOTLPHook creates a hook emitting through provider under the given scope name.
func NewOTLPHook(provider otellog.LoggerProvider, name string) *OTLPHook {
	return &OTLPHook{logger: provider.Logger(name)}
}

// Levels implements logrus.Hook.
func (h *OTLPHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook.
func (h *OTLPHook) Fire(entry *logrus.Entry) error {
	attrs := make([]otellog.KeyValue, 0, len(entry.Data))
	for k, v := range entry.Data {
		attrs = append(attrs, toKeyValue(k, v))
	}

	var record otellog.Record
	record.SetTimestamp(entry.Time)
	record.SetObservedTimestamp(time.Now())
	record.SetSeverity(convertLogrusLevelToSeverity(entry.Level))
	record.SetSeverityText(entry.Level.String())
	record.SetBody(otellog.StringValue(entry.Message))
	record.AddAttributes(attrs...)

	ctx := entry.Context
	if ctx == nil {
		ctx = context.Background()
	}
	h.logger.Emit(ctx, record)
	return nil
}

func toKeyValue(key string, value any) otellog.KeyValue {
	switch v := value.(type) {
	case string:
		return otellog.String(key, v)
	case int:
		return otellog.Int(key, v)
	case int64:
		return otellog.Int64(key, v)
	case float64:
		return otellog.Float64(key, v)
	case bool:
		return otellog.Bool(key, v)
	case error:
		return otellog.String(key, v.Error())
	default:
		return otellog.String(key, fmt.Sprint(v))
	}
}

// convertLogrusLevelToSeverity converts logrus.Level to otellog.Severity
func convertLogrusLevelToSeverity(level logrus.Level) otellog.Severity {
	switch level {
	case logrus.TraceLevel:
		return otellog.SeverityTrace
	case logrus.DebugLevel:
		return otellog.SeverityDebug
	case logrus.InfoLevel:
		return otellog.SeverityInfo
	case logrus.WarnLevel:
		return otellog.SeverityWarn
	case logrus.ErrorLevel:
		return otellog.SeverityError
	case logrus.FatalLevel:
		return otellog.SeverityFatal
	case logrus.PanicLevel:
		return otellog.SeverityFatal4
	default:
		return otellog.SeverityInfo
	}
}
