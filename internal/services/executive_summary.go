package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/irfndi/opportunity-scoring/internal/config"
	"github.com/irfndi/opportunity-scoring/internal/i18n"
	"github.com/irfndi/opportunity-scoring/internal/logging"
	"github.com/irfndi/opportunity-scoring/internal/models"
)

const (
	initialInvestmentUnitShare = 0.5
	monthlyInvestmentShare     = 0.3
	fallbackMetric             = string(models.LevelMedium)
)

var nextStepsByVerdict = map[models.Recommendation][]i18n.Key{
	models.RecommendationGo:      {i18n.NextGo1, i18n.NextGo2, i18n.NextGo3, i18n.NextGo4, i18n.NextGo5},
	models.RecommendationCaution: {i18n.NextCaution1, i18n.NextCaution2, i18n.NextCaution3, i18n.NextCaution4, i18n.NextCaution5},
	models.RecommendationNoGo:    {i18n.NextNoGo1, i18n.NextNoGo2, i18n.NextNoGo3, i18n.NextNoGo4, i18n.NextNoGo5},
}

var strategyByVerdict = map[models.Recommendation]i18n.Key{
	models.RecommendationGo:      i18n.StrategyGo,
	models.RecommendationCaution: i18n.StrategyCaution,
	models.RecommendationNoGo:    i18n.StrategyNoGo,
}

// SummaryInput is everything the executive summary is rolled up from.
// Intent may be nil when intent analysis was skipped.
type SummaryInput struct {
	ItemName    string
	Verdict     models.FinalVerdict
	Profile     models.MarketProfile
	Competitors models.CompetitorIntelligence
	Intent      *models.BuyerIntentResult
	Decision    models.DecisionMetrics
	Growth      models.GrowthScenarios
	Language    i18n.Language
}

// ExecutiveSummaryGenerator assembles the narrative roll-up
type ExecutiveSummaryGenerator struct {
	cfg    config.ScoringConfig
	logger *logrus.Entry
}

// NewExecutiveSummaryGenerator creates a new executive summary generator
func NewExecutiveSummaryGenerator(cfg *config.ScoringConfig, logger *logrus.Logger) *ExecutiveSummaryGenerator {
	return &ExecutiveSummaryGenerator{
		cfg:    scoringConfigOrDefault(cfg),
		logger: logging.WithComponent(logger, "executive_summary"),
	}
}

// Generate builds the executive summary.
func (g *ExecutiveSummaryGenerator) Generate(in SummaryInput) models.ExecutiveSummary {
	lang := in.Language
	if !lang.Valid() {
		lang = i18n.English
	}
	verdict := in.Verdict.Recommendation
	if !verdict.Valid() {
		verdict = in.Decision.Recommendation
	}
	currency := in.Profile.Currency
	if currency == "" {
		currency = g.cfg.Currency
	}

	intentLevel := fallbackMetric
	if in.Intent != nil && in.Intent.IntentLevel != "" {
		intentLevel = string(in.Intent.IntentLevel)
	}
	entryDifficulty := orFallback(string(in.Competitors.EntryDifficulty))
	recommended := in.Growth.Recommended()
	monthlyProfit := recommended.MonthlyProfit.Round(0).IntPart()

	summary := models.ExecutiveSummary{
		Language: lang,
		OnePageSummary: i18n.T(i18n.SummaryNarrative,
			g.itemName(in),
			string(verdict),
			int(math.Round(in.Profile.DemandScore)),
			in.Competitors.CompetitorStrengthIndex,
			entryDifficulty,
			in.Profile.ProfitMargin,
			intentLevel,
			string(recommended.Key),
			monthlyProfit,
			currency,
			in.Decision.RiskScore,
		),
		KeyFindings: applyTextRules(keyFindingRules, in),
		CriticalMetrics: models.CriticalMetrics{
			DemandLevel:      orFallback(string(in.Profile.DemandLevel)),
			CompetitionLevel: entryDifficulty,
			ProfitMargin:     fmt.Sprintf("%.1f%%", in.Profile.ProfitMargin),
			BuyerIntent:      intentLevel,
			RiskLevel:        string(riskLevel(in.Decision.RiskScore)),
		},
		InvestmentRequired: g.investment(in.Profile, currency),
		StrategicRecommendation: models.StrategicRecommendation{
			Recommendation: verdict,
			Reasoning:      reasoningText(in.Verdict.Reasoning, verdict, in.Decision.SuccessScore),
		},
		NextSteps: nextSteps(verdict),
	}

	g.logger.WithFields(logrus.Fields{
		"item":         summary.OnePageSummary.Args[0],
		"verdict":      verdict,
		"key_findings": len(summary.KeyFindings),
		"language":     lang,
	}).Debug("Generated executive summary")

	return summary
}

func (g *ExecutiveSummaryGenerator) itemName(in SummaryInput) string {
	for _, name := range []string{in.ItemName, in.Profile.ItemName, in.Profile.Query} {
		if n := strings.TrimSpace(name); n != "" {
			return n
		}
	}
	return "-"
}

// investment sizes the initial stock for the break-even volume at half the sale price.
func (g *ExecutiveSummaryGenerator) investment(p models.MarketProfile, currency string) models.InvestmentRequired {
	initial := decimal.NewFromInt(int64(maxInt(p.BreakEvenUnits, 0))).
		Mul(nonNegative(p.AveragePrice)).
		Mul(dec(initialInvestmentUnitShare)).
		Round(0)
	breakEven := p.BreakEvenLabel
	if breakEven.IsZero() {
		breakEven = i18n.T(i18n.Months3To6)
	}
	return models.InvestmentRequired{
		Initial:   initial,
		Monthly:   initial.Mul(dec(monthlyInvestmentShare)).Round(2),
		BreakEven: breakEven,
		Currency:  currency,
	}
}

func reasoningText(reasoning string, verdict models.Recommendation, successScore int) i18n.Text {
	if r := strings.TrimSpace(reasoning); r != "" {
		return i18n.Lit(r)
	}
	return i18n.T(strategyByVerdict[verdict], successScore)
}

func nextSteps(verdict models.Recommendation) []i18n.Text {
	keys, ok := nextStepsByVerdict[verdict]
	if !ok {
		keys = nextStepsByVerdict[models.RecommendationCaution]
	}
	steps := make([]i18n.Text, 0, len(keys))
	for _, k := range keys {
		steps = append(steps, i18n.T(k))
	}
	return steps
}

func riskLevel(risk int) models.Level {
	switch {
	case risk >= 60:
		return models.LevelHigh
	case risk >= 40:
		return models.LevelMedium
	default:
		return models.LevelLow
	}
}

func orFallback(s string) string {
	if strings.TrimSpace(s) == "" {
		return fallbackMetric
	}
	return s
}

func tieredFinding(v float64, high, mid float64, keys [3]i18n.Key, arg any) i18n.Text {
	switch {
	case v >= high:
		return i18n.T(keys[0], arg)
	case v >= mid:
		return i18n.T(keys[1], arg)
	default:
		return i18n.T(keys[2], arg)
	}
}

var keyFindingRules = []textRule[SummaryInput]{
	{
		name:    "demand",
		applies: func(SummaryInput) bool { return true },
		message: func(in SummaryInput) i18n.Text {
			return tieredFinding(in.Profile.DemandScore, 70, 40,
				[3]i18n.Key{i18n.FindingStrongDemand, i18n.FindingModerateDemand, i18n.FindingWeakDemand},
				int(math.Round(in.Profile.DemandScore)))
		},
	},
	{
		name:    "competition",
		applies: func(SummaryInput) bool { return true },
		message: func(in SummaryInput) i18n.Text {
			s := in.Competitors.CompetitorStrengthIndex
			switch {
			case s < 50:
				return i18n.T(i18n.FindingLowCompetition, s)
			case s < 70:
				return i18n.T(i18n.FindingModerateCompetitor, s)
			default:
				return i18n.T(i18n.FindingHighCompetition, s)
			}
		},
	},
	{
		name:    "margin",
		applies: func(SummaryInput) bool { return true },
		message: func(in SummaryInput) i18n.Text {
			m := in.Profile.ProfitMargin
			switch {
			case m > 25:
				return i18n.T(i18n.FindingHighMargin, m)
			case m > 15:
				return i18n.T(i18n.FindingModerateMargin, m)
			default:
				return i18n.T(i18n.FindingLowMargin, m)
			}
		},
	},
	{
		name:    "intent",
		applies: func(in SummaryInput) bool { return in.Intent != nil && in.Intent.IntentLevel == models.LevelHigh },
		message: func(SummaryInput) i18n.Text { return i18n.T(i18n.FindingHighIntent) },
	},
	{
		name:    "beginner",
		applies: func(in SummaryInput) bool { return in.Decision.BeginnerFriendly },
		message: func(SummaryInput) i18n.Text { return i18n.T(i18n.FindingBeginnerFriendly) },
	},
}
