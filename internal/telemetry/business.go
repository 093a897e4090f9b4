package telemetry

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/irfndi/opportunity-scoring/internal/models"
)

// Attribute keys recorded on pipeline spans.
const (
	AttrQuery             = attribute.Key("analysis.query")
	AttrLanguage          = attribute.Key("analysis.language")
	AttrCompetitorCount   = attribute.Key("analysis.competitor_count")
	AttrDemandScore       = attribute.Key("analysis.demand_score")
	AttrActiveCompetitors = attribute.Key("competitors.active")
	AttrStrengthIndex     = attribute.Key("competitors.strength_index")
	AttrEntryDifficulty   = attribute.Key("competitors.entry_difficulty")
	AttrMarketGaps        = attribute.Key("competitors.market_gaps")
	AttrIntentScore       = attribute.Key("intent.score")
	AttrIntentType        = attribute.Key("intent.type")
	AttrSuccessScore      = attribute.Key("decision.success_score")
	AttrRiskScore         = attribute.Key("decision.risk_score")
	AttrRecommendation    = attribute.Key("decision.recommendation")
	AttrFailedChecks      = attribute.Key("decision.failed_checks")
	AttrEstimatedCapital  = attribute.Key("decision.estimated_capital")
	AttrRecommendedGrowth = attribute.Key("growth.recommended_scenario")
	AttrProjectedProfit   = attribute.Key("growth.projected_monthly_profit")
	AttrVerdict           = attribute.Key("summary.verdict")
	AttrVerdictOverridden = attribute.Key("summary.verdict_replaced")
	AttrKeyFindingsCount  = attribute.Key("summary.key_findings")
)

// RecordCompetitorIntelligence adds the competitor stage results to a span.
func RecordCompetitorIntelligence(span trace.Span, ci models.CompetitorIntelligence) {
	span.SetAttributes(
		AttrActiveCompetitors.Int(ci.ActiveCompetitors),
		AttrStrengthIndex.Int(ci.CompetitorStrengthIndex),
		AttrEntryDifficulty.String(string(ci.EntryDifficulty)),
		AttrMarketGaps.Int(len(ci.MarketGaps)),
	)
}

// RecordBuyerIntent adds the buyer intent stage results to a span.
func RecordBuyerIntent(span trace.Span, bi models.BuyerIntentResult) {
	span.SetAttributes(
		AttrIntentScore.Int(bi.IntentScore),
		AttrIntentType.String(string(bi.SearchIntentType)),
	)
}

// RecordDecision adds the decision stage results to a span.
func RecordDecision(span trace.Span, dm models.DecisionMetrics) {
	span.SetAttributes(
		AttrSuccessScore.Int(dm.SuccessScore),
		AttrRiskScore.Int(dm.RiskScore),
		AttrRecommendation.String(string(dm.Recommendation)),
		AttrFailedChecks.Int(dm.FailCount()),
		AttrEstimatedCapital.Float64(dm.CapitalRequired.Estimated.InexactFloat64()),
	)
}

// RecordGrowth adds the growth stage results to a span.
func RecordGrowth(span trace.Span, gs models.GrowthScenarios) {
	span.SetAttributes(
		AttrRecommendedGrowth.String(string(gs.RecommendedScenario)),
		AttrProjectedProfit.Float64(gs.Recommended().MonthlyProfit.InexactFloat64()),
	)
}

// RecordSummary adds the summary stage results to a span.
func RecordSummary(span trace.Span, verdict models.FinalVerdict, replaced bool, summary models.ExecutiveSummary) {
	span.SetAttributes(
		AttrVerdict.String(string(verdict.Recommendation)),
		AttrVerdictOverridden.Bool(replaced),
		AttrKeyFindingsCount.Int(len(summary.KeyFindings)),
	)
}
