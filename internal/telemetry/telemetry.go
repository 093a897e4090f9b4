package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// Service information
	ServiceName    = "github.com/irfndi/opportunity-scoring"
	ServiceVersion = "1.0.0"
)

// Span names for the scoring pipeline.
const (
	SpanMarketAnalysis         = "market_analysis"
	SpanProfile                = "profile"
	SpanCompetitorIntelligence = "competitor_intelligence"
	SpanBuyerIntent            = "buyer_intent"
	SpanDecisionMetrics        = "decision_metrics"
	SpanGrowthScenarios        = "growth_scenarios"
	SpanExecutiveSummary       = "executive_summary"
)

// Tracer returns the pipeline tracer from tp, or from the global provider when tp is nil.
// Exporter setup is left to the process embedding the pipeline.
func Tracer(tp trace.TracerProvider) trace.Tracer {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return tp.Tracer(ServiceName, trace.WithInstrumentationVersion(ServiceVersion))
}

// StartStage opens an internal span for one pipeline stage.
func StartStage(ctx context.Context, tracer trace.Tracer, stage string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, stage,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
}

// EndStage closes a span, recording err when it is non-nil.
func EndStage(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
