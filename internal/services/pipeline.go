package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"github.com/irfndi/opportunity-scoring/internal/config"
	"github.com/irfndi/opportunity-scoring/internal/i18n"
	"github.com/irfndi/opportunity-scoring/internal/intake"
	"github.com/irfndi/opportunity-scoring/internal/logging"
	"github.com/irfndi/opportunity-scoring/internal/metrics"
	"github.com/irfndi/opportunity-scoring/internal/models"
	"github.com/irfndi/opportunity-scoring/internal/telemetry"
	"github.com/irfndi/opportunity-scoring/internal/utils"
)

// Pipeline runs the scoring stages in order and merges their records into one
// MarketAnalysis. Stages are stateless, so one Pipeline serves concurrent calls.
type Pipeline struct {
	Profiles    ProfileStage
	Competitors CompetitorStage
	Intent      IntentStage
	Decision    DecisionStage
	Growth      GrowthStage
	Summary     SummaryStage

	config  *config.Config
	logger  *logrus.Logger
	tracer  trace.Tracer
	now     func() time.Time
	newID   func() uuid.UUID
	decoder *intake.Decoder
	metrics *metrics.PipelineMetrics

	randomSource Float64Source
}

// PipelineOption configures a Pipeline
type PipelineOption func(*Pipeline)

// WithTracerProvider sets the provider stage spans are recorded on.
func WithTracerProvider(tp trace.TracerProvider) PipelineOption {
	return func(p *Pipeline) {
		p.tracer = telemetry.Tracer(tp)
	}
}

// WithMetrics records stage timings and outcomes on m.
func WithMetrics(m *metrics.PipelineMetrics) PipelineOption {
	return func(p *Pipeline) {
		p.metrics = m
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) PipelineOption {
	return func(p *Pipeline) {
		p.now = now
	}
}

// WithIDGenerator overrides how analysis IDs are minted.
func WithIDGenerator(newID func() uuid.UUID) PipelineOption {
	return func(p *Pipeline) {
		p.newID = newID
	}
}

// WithPipelineRandomSource seeds the conversion-probability jitter of the default intent stage.
func WithPipelineRandomSource(src Float64Source) PipelineOption {
	return func(p *Pipeline) {
		p.randomSource = src
	}
}

// NewPipeline wires the default stages. A nil cfg uses config.Default().
func NewPipeline(cfg *config.Config, logger *logrus.Logger, opts ...PipelineOption) *Pipeline {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	p := &Pipeline{
		config: cfg,
		logger: logger,
		tracer: telemetry.Tracer(nil),
		now:    time.Now,
		newID:  uuid.New,
	}
	for _, opt := range opts {
		opt(p)
	}

	scoring := &cfg.Scoring
	p.Profiles = NewProfileBuilder(scoring, logger)
	p.Competitors = NewCompetitorIntelligenceAnalyzer(scoring, logger)
	intentOpts := []BuyerIntentOption{}
	if p.randomSource != nil {
		intentOpts = append(intentOpts, WithRandomSource(p.randomSource))
	}
	p.Intent = NewBuyerIntentAnalyzer(scoring, logger, intentOpts...)
	p.Decision = NewDecisionMetricsCalculator(scoring, logger)
	p.Growth = NewGrowthScenarioProjector(scoring, logger)
	p.Summary = NewExecutiveSummaryGenerator(scoring, logger)
	p.decoder = intake.NewDecoder(logger)
	return p
}

// AnalyzeJSON decodes a raw upstream payload, repairing model-produced JSON when
// needed, and scores it.
func (p *Pipeline) AnalyzeJSON(ctx context.Context, raw []byte) (*models.MarketAnalysis, error) {
	req, err := p.decoder.Decode(raw)
	if err != nil {
		p.metrics.RecordFailure(err)
		return nil, err
	}
	return p.Analyze(ctx, req)
}

// Analyze scores one request. The only error is a validation error for a request
// with neither a query nor an item name, or the context's error if it is already done.
func (p *Pipeline) Analyze(ctx context.Context, req *models.AnalysisRequest) (analysis *models.MarketAnalysis, err error) {
	if req == nil {
		return nil, utils.NewValidationError("request", "must not be nil")
	}
	lang := p.language(req)

	ctx, span := telemetry.StartStage(ctx, p.tracer, telemetry.SpanMarketAnalysis,
		telemetry.AttrQuery.String(req.Query),
		telemetry.AttrLanguage.String(string(lang)),
		telemetry.AttrCompetitorCount.Int(len(req.Competitors)),
	)
	defer func() {
		p.metrics.RecordFailure(err)
		telemetry.EndStage(span, err)
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Query) == "" && strings.TrimSpace(req.ItemName) == "" {
		return nil, utils.NewValidationError("query", "query or item name is required")
	}

	logger := p.logger.WithContext(ctx).WithFields(logrus.Fields{
		"query":    req.Query,
		"language": lang,
	})
	logger.Debug("Starting market analysis")

	var profile models.MarketProfile
	p.stage(ctx, telemetry.SpanProfile, func(span trace.Span) {
		profile = p.Profiles.Build(req)
		span.SetAttributes(telemetry.AttrDemandScore.Float64(profile.DemandScore))
	})

	var competitors models.CompetitorIntelligence
	p.stage(ctx, telemetry.SpanCompetitorIntelligence, func(span trace.Span) {
		competitors = p.Competitors.Analyze(req.Competitors, req.TotalMarketCompetitors)
		telemetry.RecordCompetitorIntelligence(span, competitors)
	})
	strength := float64(competitors.CompetitorStrengthIndex)

	var intent models.BuyerIntentResult
	p.stage(ctx, telemetry.SpanBuyerIntent, func(span trace.Span) {
		query := req.Query
		if strings.TrimSpace(query) == "" {
			query = req.ItemName
		}
		intent = p.Intent.Analyze(query, req.ItemName, profile.DemandScore, req.Competitors)
		telemetry.RecordBuyerIntent(span, intent)
	})

	var decision models.DecisionMetrics
	p.stage(ctx, telemetry.SpanDecisionMetrics, func(span trace.Span) {
		decision = p.Decision.Calculate(DecisionInput{
			DemandScore:        profile.DemandScore,
			CompetitorStrength: strength,
			ProfitMargin:       profile.ProfitMargin,
			Profile:            &profile,
			Competitors:        &competitors,
		})
		telemetry.RecordDecision(span, decision)
	})

	var growth models.GrowthScenarios
	p.stage(ctx, telemetry.SpanGrowthScenarios, func(span trace.Span) {
		growth = p.Growth.Project(profile, strength, &intent)
		telemetry.RecordGrowth(span, growth)
	})

	verdict, replaced := p.resolveVerdict(req.FinalVerdict, decision, lang, logger)

	var summary models.ExecutiveSummary
	p.stage(ctx, telemetry.SpanExecutiveSummary, func(span trace.Span) {
		summary = p.Summary.Generate(SummaryInput{
			ItemName:    req.DisplayName(),
			Verdict:     verdict,
			Profile:     profile,
			Competitors: competitors,
			Intent:      &intent,
			Decision:    decision,
			Growth:      growth,
			Language:    lang,
		})
		telemetry.RecordSummary(span, verdict, replaced, summary)
	})

	analysis = &models.MarketAnalysis{
		ID:                     p.newID(),
		GeneratedAt:            p.now().UTC(),
		Language:               lang,
		Query:                  req.Query,
		ItemName:               req.DisplayName(),
		MarketStats:            req.MarketStats,
		Competitors:            req.Competitors,
		Demand:                 req.Demand,
		Profitability:          req.Profitability,
		Profile:                profile,
		FinalVerdict:           verdict,
		CompetitorIntelligence: competitors,
		BuyerIntent:            intent,
		DecisionMetrics:        decision,
		GrowthScenarios:        growth,
		ExecutiveSummary:       summary,
	}

	logger.WithFields(logrus.Fields{
		"analysis_id":      analysis.ID.String(),
		"success_score":    decision.SuccessScore,
		"risk_score":       decision.RiskScore,
		"recommendation":   decision.Recommendation,
		"final_verdict":    verdict.Recommendation,
		"verdict_replaced": replaced,
	}).Info("Market analysis completed")
	p.metrics.RecordCompleted(string(verdict.Recommendation), decision.SuccessScore, replaced)

	return analysis, nil
}

// stage runs fn inside a child span.
func (p *Pipeline) stage(ctx context.Context, name string, fn func(span trace.Span)) {
	_, span := telemetry.StartStage(ctx, p.tracer, name)
	start := time.Now()
	fn(span)
	p.metrics.ObserveStage(name, time.Since(start))
	telemetry.EndStage(span, nil)
}

// language picks the request locale, then the script of the query, then the configured default.
func (p *Pipeline) language(req *models.AnalysisRequest) i18n.Language {
	if req.Language.Valid() {
		return req.Language
	}
	if i18n.DetectLanguage(req.Query+req.ItemName) == i18n.Arabic {
		return i18n.Arabic
	}
	return p.config.DefaultLanguage()
}

// resolveVerdict keeps a valid caller verdict and otherwise substitutes the computed one.
func (p *Pipeline) resolveVerdict(supplied *models.FinalVerdict, decision models.DecisionMetrics, lang i18n.Language, logger *logrus.Entry) (models.FinalVerdict, bool) {
	if supplied != nil && supplied.Recommendation.Valid() {
		return *supplied, false
	}
	if supplied != nil {
		logger.WithField("recommendation", supplied.Recommendation).
			Warn("Ignoring unknown recommendation in supplied verdict")
	}
	return models.FinalVerdict{
		Recommendation: decision.Recommendation,
		Reasoning:      i18n.T(i18n.VerdictComputed, decision.SuccessScore, decision.FailCount()).Render(lang),
	}, true
}
