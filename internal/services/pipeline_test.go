package services

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/irfndi/opportunity-scoring/internal/i18n"
	"github.com/irfndi/opportunity-scoring/internal/metrics"
	"github.com/irfndi/opportunity-scoring/internal/models"
	"github.com/irfndi/opportunity-scoring/internal/telemetry"
	"github.com/irfndi/opportunity-scoring/internal/utils"
)

// MockDecisionStage implements DecisionStage for testing
type MockDecisionStage struct {
	mock.Mock
}

func (m *MockDecisionStage) Calculate(in DecisionInput) models.DecisionMetrics {
	args := m.Called(in)
	return args.Get(0).(models.DecisionMetrics)
}

func sampleRequest() *models.AnalysisRequest {
	return &models.AnalysisRequest{
		Query: "buy iPhone 15 price",
		MarketStats: models.MarketStats{
			AveragePrice: decimal.NewFromInt(4200),
			HighestPrice: decimal.NewFromInt(4800),
			LowestPrice:  decimal.NewFromInt(3900),
			DemandLevel:  models.DemandHigh,
		},
		Competitors: []models.CompetitorListing{
			listing("Noon", 4100, 4.6, 30000),
			listing("Amazon", 4300, 4.4, 45000),
			listing("Jarir", 4500, 4.7, 12000),
			listing("Extra", 4000, 4.1, 8000),
			listing("Souq", 3950, 2.0, 500),
		},
		Demand: models.DemandAnalysis{DemandScore: 60, MonthlyDemandEstimate: 30},
	}
}

func newTestPipeline(t *testing.T, opts ...PipelineOption) (*Pipeline, *tracetest.SpanRecorder, *test.Hook) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	opts = append([]PipelineOption{WithTracerProvider(tp)}, opts...)
	return NewPipeline(nil, logger, opts...), recorder, hook
}

func TestPipeline_Analyze(t *testing.T) {
	fixedID := uuid.MustParse("7d444840-9dc0-11d1-b245-5ffdce74fad2")
	fixedTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	pipeline, recorder, hook := newTestPipeline(t,
		WithIDGenerator(func() uuid.UUID { return fixedID }),
		WithClock(func() time.Time { return fixedTime }),
	)

	analysis, err := pipeline.Analyze(context.Background(), sampleRequest())
	require.NoError(t, err)
	require.NotNil(t, analysis)

	assert.Equal(t, fixedID, analysis.ID)
	assert.Equal(t, fixedTime, analysis.GeneratedAt)
	assert.Equal(t, i18n.English, analysis.Language)
	assert.Equal(t, "buy iPhone 15 price", analysis.ItemName)
	assert.Len(t, analysis.Competitors, 5)

	assert.Equal(t, 4, analysis.CompetitorIntelligence.ActiveCompetitors)
	assert.Equal(t, models.IntentTransactional, analysis.BuyerIntent.SearchIntentType)
	assert.GreaterOrEqual(t, analysis.BuyerIntent.IntentScore, 50)
	assert.LessOrEqual(t, analysis.BuyerIntent.IntentScore, 100)
	assert.True(t, analysis.DecisionMetrics.Recommendation.Valid())
	assert.Len(t, analysis.DecisionMetrics.ViabilityChecklist, 6)

	// no caller verdict: the computed one is used
	assert.Equal(t, analysis.DecisionMetrics.Recommendation, analysis.FinalVerdict.Recommendation)
	assert.NotEmpty(t, analysis.FinalVerdict.Reasoning)
	assert.Equal(t, analysis.FinalVerdict.Recommendation, analysis.ExecutiveSummary.StrategicRecommendation.Recommendation)
	assert.Len(t, analysis.ExecutiveSummary.NextSteps, 5)

	var names []string
	for _, s := range recorder.Ended() {
		names = append(names, s.Name())
	}
	assert.ElementsMatch(t, []string{
		telemetry.SpanProfile,
		telemetry.SpanCompetitorIntelligence,
		telemetry.SpanBuyerIntent,
		telemetry.SpanDecisionMetrics,
		telemetry.SpanGrowthScenarios,
		telemetry.SpanExecutiveSummary,
		telemetry.SpanMarketAnalysis,
	}, names)

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, logrus.InfoLevel, last.Level)
	assert.Equal(t, "Market analysis completed", last.Message)
	assert.Equal(t, fixedID.String(), last.Data["analysis_id"])
}

func TestPipeline_DerivedListsNeverEmpty(t *testing.T) {
	pipeline, _, _ := newTestPipeline(t)

	analysis, err := pipeline.Analyze(context.Background(), &models.AnalysisRequest{ItemName: "Handmade soap"})
	require.NoError(t, err)

	assert.NotEmpty(t, analysis.CompetitorIntelligence.MarketGaps)
	assert.Equal(t, models.LevelLow, analysis.CompetitorIntelligence.EntryDifficulty)
	assert.NotEmpty(t, analysis.BuyerIntent.Insights)
	assert.NotEmpty(t, analysis.BuyerIntent.KeywordAnalysis.TransactionalKeywords)
	assert.NotEmpty(t, analysis.BuyerIntent.KeywordAnalysis.BrandKeywords)
	assert.NotEmpty(t, analysis.DecisionMetrics.DetailedAnalysis.RiskFactors)
	assert.NotEmpty(t, analysis.GrowthScenarios.ScalabilityFactors)
	assert.NotEmpty(t, analysis.ExecutiveSummary.KeyFindings)
	assert.Len(t, analysis.ExecutiveSummary.NextSteps, 5)
	assert.False(t, analysis.DecisionMetrics.CapitalRequired.Estimated.IsNegative())
	assert.GreaterOrEqual(t, analysis.DecisionMetrics.SuccessScore, 0)
	assert.LessOrEqual(t, analysis.DecisionMetrics.RiskScore, 100)
}

func TestPipeline_ValidationError(t *testing.T) {
	pipeline, recorder, _ := newTestPipeline(t)

	analysis, err := pipeline.Analyze(context.Background(), &models.AnalysisRequest{Query: "  ", ItemName: ""})

	assert.Nil(t, analysis)
	require.Error(t, err)
	assert.True(t, utils.IsValidationError(err))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, telemetry.SpanMarketAnalysis, spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)

	_, err = pipeline.Analyze(context.Background(), nil)
	assert.True(t, utils.IsValidationError(err))
}

func TestPipeline_CanceledContext(t *testing.T) {
	pipeline, _, _ := newTestPipeline(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	analysis, err := pipeline.Analyze(ctx, sampleRequest())

	assert.Nil(t, analysis)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPipeline_VerdictResolution(t *testing.T) {
	t.Run("valid caller verdict is kept", func(t *testing.T) {
		pipeline, _, _ := newTestPipeline(t)
		req := sampleRequest()
		req.FinalVerdict = &models.FinalVerdict{Recommendation: models.RecommendationNoGo, Reasoning: "Supplier risk"}

		analysis, err := pipeline.Analyze(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, *req.FinalVerdict, analysis.FinalVerdict)
		assert.Equal(t, models.RecommendationNoGo, analysis.ExecutiveSummary.StrategicRecommendation.Recommendation)
		assert.Equal(t, "Supplier risk", analysis.ExecutiveSummary.StrategicRecommendation.Reasoning.Render(i18n.English))
		assert.Equal(t, i18n.NextNoGo1, analysis.ExecutiveSummary.NextSteps[0].Key)
	})

	t.Run("unknown caller verdict is replaced", func(t *testing.T) {
		pipeline, _, hook := newTestPipeline(t)
		req := sampleRequest()
		req.FinalVerdict = &models.FinalVerdict{Recommendation: "MAYBE"}

		analysis, err := pipeline.Analyze(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, analysis.DecisionMetrics.Recommendation, analysis.FinalVerdict.Recommendation)
		var warned bool
		for _, e := range hook.AllEntries() {
			if e.Level == logrus.WarnLevel {
				warned = true
				assert.Equal(t, models.Recommendation("MAYBE"), e.Data["recommendation"])
			}
		}
		assert.True(t, warned)
	})
}

func TestPipeline_MockedDecisionStage(t *testing.T) {
	pipeline, _, _ := newTestPipeline(t)
	decision := new(MockDecisionStage)
	pipeline.Decision = decision

	forced := models.DecisionMetrics{
		SuccessScore:   20,
		RiskScore:      80,
		Recommendation: models.RecommendationNoGo,
	}
	decision.On("Calculate", mock.MatchedBy(func(in DecisionInput) bool {
		return in.DemandScore == 60 && in.Profile != nil && in.Competitors != nil
	})).Return(forced).Once()

	analysis, err := pipeline.Analyze(context.Background(), sampleRequest())
	require.NoError(t, err)

	decision.AssertExpectations(t)
	assert.Equal(t, models.RecommendationNoGo, analysis.FinalVerdict.Recommendation)
	assert.Equal(t, "High", analysis.ExecutiveSummary.CriticalMetrics.RiskLevel)
	assert.Equal(t, i18n.NextNoGo1, analysis.ExecutiveSummary.NextSteps[0].Key)
}

func TestPipeline_LanguageSelection(t *testing.T) {
	pipeline, _, _ := newTestPipeline(t)

	analysis, err := pipeline.Analyze(context.Background(), &models.AnalysisRequest{Query: "سماعات لاسلكية"})
	require.NoError(t, err)
	assert.Equal(t, i18n.Arabic, analysis.Language)
	assert.Equal(t, i18n.Arabic, analysis.ExecutiveSummary.Language)

	analysis, err = pipeline.Analyze(context.Background(), &models.AnalysisRequest{Query: "earbuds", Language: i18n.Arabic})
	require.NoError(t, err)
	assert.Equal(t, i18n.Arabic, analysis.Language)
}

func fixedIdentity() []PipelineOption {
	fixedID := uuid.MustParse("0b7e5c8a-1f2d-4c3b-9a8e-6d5f4e3c2b1a")
	fixedTime := time.Date(2026, 5, 10, 8, 30, 0, 0, time.UTC)
	return []PipelineOption{
		WithIDGenerator(func() uuid.UUID { return fixedID }),
		WithClock(func() time.Time { return fixedTime }),
	}
}

func TestPipeline_SeededJitterIsReproducible(t *testing.T) {
	a, _, _ := newTestPipeline(t, append(fixedIdentity(), WithPipelineRandomSource(rand.New(rand.NewPCG(42, 7))))...)
	b, _, _ := newTestPipeline(t, append(fixedIdentity(), WithPipelineRandomSource(rand.New(rand.NewPCG(42, 7))))...)

	for i := 0; i < 3; i++ {
		ra, err := a.Analyze(context.Background(), sampleRequest())
		require.NoError(t, err)
		rb, err := b.Analyze(context.Background(), sampleRequest())
		require.NoError(t, err)

		assert.Equal(t, ra, rb)
	}
}

func TestPipeline_ConcurrentAnalyze(t *testing.T) {
	pipeline, _, _ := newTestPipeline(t, fixedIdentity()...)
	expected, err := pipeline.Analyze(context.Background(), sampleRequest())
	require.NoError(t, err)

	const workers = 16
	results := make([]*models.MarketAnalysis, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := pipeline.Analyze(context.Background(), sampleRequest())
			assert.NoError(t, err)
			results[i] = r
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		require.NotNil(t, r)
		assert.Equal(t, expected, r)
	}
}

func TestPipeline_IntentPhrasesUseItemName(t *testing.T) {
	pipeline, _, _ := newTestPipeline(t)
	req := sampleRequest()
	req.ItemName = "Apple iPhone 15"

	analysis, err := pipeline.Analyze(context.Background(), req)
	require.NoError(t, err)

	kw := analysis.BuyerIntent.KeywordAnalysis
	assert.Equal(t, 2, kw.TransactionalCount)
	assert.Contains(t, kw.TransactionalKeywords, "buy Apple iPhone 15")
	assert.Contains(t, kw.BrandKeywords, "Apple iPhone 15 Noon")
	for _, phrase := range kw.TransactionalKeywords {
		assert.NotContains(t, phrase, "price price")
		assert.NotContains(t, phrase, "buy buy")
	}
}

func TestPipeline_JSONOutput(t *testing.T) {
	pipeline, _, _ := newTestPipeline(t)
	analysis, err := pipeline.Analyze(context.Background(), sampleRequest())
	require.NoError(t, err)

	raw, err := json.Marshal(analysis)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	summary := decoded["executive_summary"].(map[string]any)
	narrative := summary["one_page_summary"].(map[string]any)
	assert.Equal(t, string(i18n.SummaryNarrative), narrative["key"])
	assert.NotEmpty(t, narrative["en"])
	assert.NotEmpty(t, narrative["ar"])
}

func TestPipeline_AnalyzeJSON(t *testing.T) {
	fixedID := uuid.MustParse("7d444840-9dc0-11d1-b245-5ffdce74fad2")
	fixedTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	pipeline, _, _ := newTestPipeline(t,
		WithIDGenerator(func() uuid.UUID { return fixedID }),
		WithClock(func() time.Time { return fixedTime }),
	)

	raw, err := json.Marshal(sampleRequest())
	require.NoError(t, err)

	fromJSON, err := pipeline.AnalyzeJSON(context.Background(), raw)
	require.NoError(t, err)
	direct, err := pipeline.Analyze(context.Background(), sampleRequest())
	require.NoError(t, err)

	assert.Equal(t, direct.DecisionMetrics.SuccessScore, fromJSON.DecisionMetrics.SuccessScore)
	assert.Equal(t, direct.DecisionMetrics.RiskScore, fromJSON.DecisionMetrics.RiskScore)
	assert.True(t, direct.DecisionMetrics.CapitalRequired.Estimated.Equal(fromJSON.DecisionMetrics.CapitalRequired.Estimated))
	assert.Equal(t, direct.CompetitorIntelligence.CompetitorStrengthIndex, fromJSON.CompetitorIntelligence.CompetitorStrengthIndex)
	assert.Equal(t, textKeys(direct.CompetitorIntelligence.MarketGaps), textKeys(fromJSON.CompetitorIntelligence.MarketGaps))
	assert.Equal(t, direct.FinalVerdict, fromJSON.FinalVerdict)
}

func TestPipeline_AnalyzeJSON_RejectsMalformedPayload(t *testing.T) {
	pipeline, recorder, _ := newTestPipeline(t)

	analysis, err := pipeline.AnalyzeJSON(context.Background(), []byte(`{"query": "x", "competitors": "none"}`))
	assert.Nil(t, analysis)
	require.Error(t, err)
	assert.True(t, utils.IsValidationError(err))
	assert.Empty(t, recorder.Ended())
}

func TestPipeline_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	pipeline, _, _ := newTestPipeline(t, WithMetrics(m))

	analysis, err := pipeline.Analyze(context.Background(), sampleRequest())
	require.NoError(t, err)
	_, err = pipeline.Analyze(context.Background(), &models.AnalysisRequest{})
	require.Error(t, err)

	rec := string(analysis.FinalVerdict.Recommendation)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AnalysesCompleted.WithLabelValues(rec)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.VerdictsReplaced))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AnalysisFailures.WithLabelValues(metrics.ReasonValidation)))
	assert.Equal(t, 6, testutil.CollectAndCount(m.StageDuration))
}
