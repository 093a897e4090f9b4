package services

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/irfndi/opportunity-scoring/internal/config"
	"github.com/irfndi/opportunity-scoring/internal/i18n"
	"github.com/irfndi/opportunity-scoring/internal/logging"
	"github.com/irfndi/opportunity-scoring/internal/models"
)

// Success score weights.
const (
	demandWeight      = 0.3
	competitionWeight = 0.3
	profitWeight      = 0.4
)

// Payback assumed when the business does not turn a monthly profit.
const defaultMonthsToProfit = 12

// DecisionInput carries the three headline scores plus optional detail.
// Profile and Competitors may be nil.
type DecisionInput struct {
	DemandScore        float64
	CompetitorStrength float64
	ProfitMargin       float64

	Profile     *models.MarketProfile
	Competitors *models.CompetitorIntelligence
}

// DecisionMetricsCalculator turns scores into a GO/CAUTION/NO-GO decision
type DecisionMetricsCalculator struct {
	cfg    config.ScoringConfig
	checks []gradedCheck[decisionState]
	logger *logrus.Entry
}

// NewDecisionMetricsCalculator creates a new decision metrics calculator
func NewDecisionMetricsCalculator(cfg *config.ScoringConfig, logger *logrus.Logger) *DecisionMetricsCalculator {
	resolved := scoringConfigOrDefault(cfg)
	return &DecisionMetricsCalculator{
		cfg:    resolved,
		checks: viabilityChecks(resolved),
		logger: logging.WithComponent(logger, "decision_metrics"),
	}
}

// decisionState is the set of measured values the risk and checklist rules read.
type decisionState struct {
	demand          float64
	strength        float64
	margin          float64
	capital         float64
	months          int
	competitorCount int
	passCapital     float64
	currency        string
}

// Calculate scores the opportunity and applies the viability checklist override.
func (c *DecisionMetricsCalculator) Calculate(in DecisionInput) models.DecisionMetrics {
	analysis := models.DecisionAnalysis{
		DemandFactor:      clampScore(in.DemandScore),
		CompetitionFactor: clampScore(100 - in.CompetitorStrength),
		ProfitFactor:      clampScore(in.ProfitMargin * 2),
	}
	success := roundScore(demandWeight*analysis.DemandFactor +
		competitionWeight*analysis.CompetitionFactor +
		profitWeight*analysis.ProfitFactor)

	var profile models.MarketProfile
	if in.Profile != nil {
		profile = *in.Profile
	}
	competitorCount := profile.CompetitorCount
	if in.Competitors != nil {
		competitorCount = maxInt(competitorCount, in.Competitors.ActiveCompetitors)
	}

	capital := c.capitalRequirement(profile)
	capitalValue, _ := capital.Estimated.Float64()
	months := monthsToProfit(capital.Estimated, profile.MonthlyNetProfit)

	risk := 100 - success
	switch {
	case competitorCount > 15:
		risk += 15
	case competitorCount > 10:
		risk += 10
	}
	if risk > 100 {
		risk = 100
	}

	state := decisionState{
		demand:          analysis.DemandFactor,
		strength:        clampScore(in.CompetitorStrength),
		margin:          in.ProfitMargin,
		capital:         capitalValue,
		months:          months,
		competitorCount: competitorCount,
		passCapital:     c.cfg.CapitalPassLimit,
		currency:        c.cfg.Currency,
	}
	analysis.RiskFactors = applyTextRules(riskFactorRules, state, i18n.T(i18n.RiskNone))
	analysis.ConfidenceLevel = scoreTier(success)

	checklist := evaluateChecks(c.checks, state)
	metrics := models.DecisionMetrics{
		SuccessScore: success,
		RiskScore:    risk,
		BeginnerFriendly: capitalValue < c.cfg.BeginnerCapitalLimit &&
			analysis.CompetitionFactor > 45 &&
			analysis.ProfitFactor > 30 &&
			months <= 4,
		CapitalRequired:    capital,
		TimeToProfit:       models.TimeToProfit{Months: months, Label: timeToProfitLabel(months)},
		DetailedAnalysis:   analysis,
		ViabilityChecklist: checklist,
	}
	metrics.Recommendation = applyChecklistOverride(recommendationForScore(success), metrics.FailCount())

	c.logger.WithFields(logrus.Fields{
		"success_score":     metrics.SuccessScore,
		"risk_score":        metrics.RiskScore,
		"estimated_capital": capital.Estimated.String(),
		"months_to_profit":  months,
		"failed_checks":     metrics.FailCount(),
		"recommendation":    metrics.Recommendation,
	}).Debug("Calculated decision metrics")

	return metrics
}

// capitalRequirement runs the startup capital waterfall over the runway period.
func (c *DecisionMetricsCalculator) capitalRequirement(p models.MarketProfile) models.CapitalRequirement {
	units := decimal.NewFromInt(int64(maxInt(p.MonthlyUnits, 0)))
	runway := decimal.NewFromInt(int64(c.cfg.RunwayMonths))
	price := nonNegative(p.AveragePrice)
	productCost := nonNegative(p.ProductCost)
	if productCost.IsZero() {
		productCost = price.Mul(dec(c.cfg.ProductCostRatio))
	}

	b := models.CapitalBreakdown{
		InventoryCost:    productCost.Mul(units).Mul(runway).Round(2),
		MarketingBudget:  price.Mul(units).Mul(dec(c.cfg.MarketingBudgetRatio)).Mul(runway).Round(2),
		OperatingReserve: dec(c.cfg.OperatingCostMonthly).Mul(runway).Round(2),
	}
	b.Subtotal = b.InventoryCost.Add(b.MarketingBudget).Add(b.OperatingReserve)
	b.EmergencyReserve = b.Subtotal.Mul(dec(c.cfg.EmergencyReserveRatio)).Round(2)
	estimated := b.Subtotal.Add(b.EmergencyReserve)

	tier, label := c.capitalTier(estimated)
	return models.CapitalRequirement{
		Tier:      tier,
		Label:     label,
		Estimated: estimated,
		Currency:  c.cfg.Currency,
		Breakdown: b,
	}
}

// capitalTier maps an amount onto the six configured capital bands.
func (c *DecisionMetricsCalculator) capitalTier(amount decimal.Decimal) (int, i18n.Text) {
	bounds := c.cfg.CapitalTiers
	if len(bounds) == 0 {
		bounds = config.DefaultScoringConfig().CapitalTiers
	}
	v, _ := amount.Float64()
	tier := 0
	for tier < len(bounds) && v >= bounds[tier] {
		tier++
	}
	switch {
	case tier == 0:
		return tier, i18n.T(i18n.CapitalBelow, int64(bounds[0]), c.cfg.Currency)
	case tier == len(bounds):
		return tier, i18n.T(i18n.CapitalAbove, int64(bounds[len(bounds)-1]), c.cfg.Currency)
	default:
		return tier, i18n.T(i18n.CapitalRange, int64(bounds[tier-1]), int64(bounds[tier]), c.cfg.Currency)
	}
}

func monthsToProfit(capital, monthlyProfit decimal.Decimal) int {
	if !monthlyProfit.IsPositive() {
		return defaultMonthsToProfit
	}
	months := capital.Div(monthlyProfit).Ceil().IntPart()
	if months < 1 {
		return 1
	}
	if months > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(months)
}

var timeBands = []struct {
	maxMonths int
	key       i18n.Key
}{
	{2, i18n.Months1To2},
	{3, i18n.Months2To3},
	{6, i18n.Months3To6},
	{9, i18n.Months6To9},
	{12, i18n.Months9To12},
	{18, i18n.Months12To18},
}

func timeToProfitLabel(months int) i18n.Text {
	for _, band := range timeBands {
		if months <= band.maxMonths {
			return i18n.T(band.key)
		}
	}
	return i18n.T(i18n.Months18Plus)
}

var riskFactorRules = []textRule[decisionState]{
	{
		name:    "low_demand",
		applies: func(s decisionState) bool { return s.demand < 40 },
		message: func(s decisionState) i18n.Text { return i18n.T(i18n.RiskLowDemand, int(math.Round(s.demand))) },
	},
	{
		name:    "moderate_demand",
		applies: func(s decisionState) bool { return s.demand >= 40 && s.demand < 60 },
		message: func(s decisionState) i18n.Text { return i18n.T(i18n.RiskModerateDemand, int(math.Round(s.demand))) },
	},
	{
		name:    "strong_competition",
		applies: func(s decisionState) bool { return s.strength > 70 },
		message: func(s decisionState) i18n.Text {
			return i18n.T(i18n.RiskStrongCompetition, int(math.Round(s.strength)))
		},
	},
	{
		name:    "moderate_competition",
		applies: func(s decisionState) bool { return s.strength > 50 && s.strength <= 70 },
		message: func(s decisionState) i18n.Text {
			return i18n.T(i18n.RiskModerateCompetition, int(math.Round(s.strength)))
		},
	},
	{
		name:    "low_margin",
		applies: func(s decisionState) bool { return s.margin < 15 },
		message: func(s decisionState) i18n.Text { return i18n.T(i18n.RiskLowMargin, s.margin) },
	},
	{
		name:    "saturated_market",
		applies: func(s decisionState) bool { return s.competitorCount > 20 },
		message: func(s decisionState) i18n.Text { return i18n.T(i18n.RiskSaturatedMarket, s.competitorCount) },
	},
	{
		name:    "slow_profit",
		applies: func(s decisionState) bool { return s.months > 12 },
		message: func(s decisionState) i18n.Text { return i18n.T(i18n.RiskSlowProfit, s.months) },
	},
}

// viabilityChecks returns the six checklist gates; the capital gate reads its bounds from cfg.
func viabilityChecks(cfg config.ScoringConfig) []gradedCheck[decisionState] {
	return []gradedCheck[decisionState]{
		{
			id:    "demand",
			label: func(decisionState) i18n.Text { return i18n.T(i18n.CheckDemand) },
			value: func(s decisionState) float64 { return s.demand },
			pass:  above(50),
			warn:  above(30),
		},
		{
			id:    "competition",
			label: func(decisionState) i18n.Text { return i18n.T(i18n.CheckCompetition) },
			value: func(s decisionState) float64 { return s.strength },
			pass:  below(60),
			warn:  below(80),
		},
		{
			id:    "margin",
			label: func(decisionState) i18n.Text { return i18n.T(i18n.CheckMargin) },
			value: func(s decisionState) float64 { return s.margin },
			pass:  above(20),
			warn:  above(10),
		},
		{
			id: "capital",
			label: func(s decisionState) i18n.Text {
				return i18n.T(i18n.CheckCapital, int64(s.passCapital), s.currency)
			},
			value: func(s decisionState) float64 { return s.capital },
			pass:  below(cfg.CapitalPassLimit),
			warn:  below(cfg.CapitalWarnLimit),
		},
		{
			id:    "payback",
			label: func(decisionState) i18n.Text { return i18n.T(i18n.CheckPayback) },
			value: func(s decisionState) float64 { return float64(s.months) },
			pass:  below(6),
			warn:  atMost(12),
		},
		{
			id:    "competitor_count",
			label: func(decisionState) i18n.Text { return i18n.T(i18n.CheckCompetitorCount) },
			value: func(s decisionState) float64 { return float64(s.competitorCount) },
			pass:  below(15),
			warn:  below(30),
		},
	}
}

func recommendationForScore(score int) models.Recommendation {
	switch {
	case score >= 70:
		return models.RecommendationGo
	case score >= 50:
		return models.RecommendationCaution
	default:
		return models.RecommendationNoGo
	}
}

// applyChecklistOverride downgrades a score-derived verdict by failed checks. It never upgrades.
func applyChecklistOverride(rec models.Recommendation, fails int) models.Recommendation {
	switch {
	case fails >= 3:
		return models.RecommendationNoGo
	case fails >= 2 && rec == models.RecommendationGo:
		return models.RecommendationCaution
	default:
		return rec
	}
}

func scoreTier(score int) models.Level {
	switch {
	case score >= 70:
		return models.LevelHigh
	case score >= 50:
		return models.LevelMedium
	default:
		return models.LevelLow
	}
}
