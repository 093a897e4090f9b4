package services

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/irfndi/opportunity-scoring/internal/config"
	"github.com/irfndi/opportunity-scoring/internal/i18n"
	"github.com/irfndi/opportunity-scoring/internal/logging"
	"github.com/irfndi/opportunity-scoring/internal/models"
)

// Units assumed for the monthly volume when demand is at 100.
const fullDemandMonthlyUnits = 50.0

// Share of the average price kept as unit margin, and the share of that margin
// that survives as net profit, when no profitability estimate was supplied.
const (
	fallbackUnitMarginRatio = 0.5
	fallbackNetProfitRatio  = 0.3
)

// ProfileBuilder resolves every fallback default of a request exactly once so the
// analyzers never disagree about a derived value.
type ProfileBuilder struct {
	cfg    config.ScoringConfig
	logger *logrus.Entry
}

// NewProfileBuilder creates a profile builder. A nil cfg uses the default scoring configuration.
func NewProfileBuilder(cfg *config.ScoringConfig, logger *logrus.Logger) *ProfileBuilder {
	return &ProfileBuilder{
		cfg:    scoringConfigOrDefault(cfg),
		logger: logging.WithComponent(logger, "profile_builder"),
	}
}

// Build normalizes a request into a MarketProfile.
func (b *ProfileBuilder) Build(req *models.AnalysisRequest) models.MarketProfile {
	profile := models.MarketProfile{
		Query:       strings.TrimSpace(req.Query),
		ItemName:    req.DisplayName(),
		Currency:    b.cfg.Currency,
		DemandScore: clampScore(req.Demand.DemandScore),
		DemandLevel: req.MarketStats.DemandLevel,
	}

	var profitability models.ProfitabilityAnalysis
	if req.Profitability != nil {
		profitability = *req.Profitability
	}

	price := nonNegative(req.MarketStats.AveragePrice)
	if profitability.AverageSalePrice.IsPositive() {
		price = profitability.AverageSalePrice
	}
	profile.AveragePrice = price

	costs := profitability.CostBreakdown
	profile.ProductCost = positiveOr(costs.ProductCost, price.Mul(dec(b.cfg.ProductCostRatio)))
	profile.ShippingCost = positiveOr(costs.ShippingCost, price.Mul(dec(b.cfg.ShippingCostRatio)))
	profile.PlatformFee = positiveOr(costs.PlatformFees, price.Mul(dec(b.cfg.PlatformFeeRate)))

	switch {
	case profitability.EstimatedProfitMargin > 0:
		profile.ProfitMargin = clamp(profitability.EstimatedProfitMargin, 0, 100)
	case price.IsPositive():
		unitProfit := price.Sub(profile.ProductCost).Sub(profile.ShippingCost).Sub(profile.PlatformFee)
		margin, _ := unitProfit.Div(price).Mul(decHundred).Float64()
		profile.ProfitMargin = clamp(roundTo(margin, 2), 0, 100)
	}

	profile.MonthlyUnits = req.Demand.MonthlyDemandEstimate
	if profile.MonthlyUnits <= 0 {
		profile.MonthlyUnits = int(math.Round(profile.DemandScore / 100 * fullDemandMonthlyUnits))
	}

	profile.MonthlyNetProfit = profitability.MonthlyNetProfit
	if profile.MonthlyNetProfit.IsZero() {
		profile.MonthlyNetProfit = decimal.NewFromInt(int64(profile.MonthlyUnits)).
			Mul(price).
			Mul(dec(fallbackUnitMarginRatio)).
			Mul(dec(fallbackNetProfitRatio)).
			Round(2)
	}

	profile.BreakEvenUnits = profitability.BreakEvenPoint
	if profile.BreakEvenUnits <= 0 {
		profile.BreakEvenUnits = b.cfg.DefaultBreakEvenUnits
	}
	if label := strings.TrimSpace(profitability.BreakEvenTime); label != "" {
		profile.BreakEvenLabel = i18n.Lit(label)
	} else {
		profile.BreakEvenLabel = i18n.T(i18n.Months3To6)
	}

	profile.CompetitorCount = maxInt(len(req.Competitors), req.TotalMarketCompetitors)

	b.logger.WithFields(logrus.Fields{
		"item":          profile.ItemName,
		"demand_score":  profile.DemandScore,
		"average_price": profile.AveragePrice.String(),
		"profit_margin": profile.ProfitMargin,
		"monthly_units": profile.MonthlyUnits,
		"competitors":   profile.CompetitorCount,
	}).Debug("Built market profile")

	return profile
}

func positiveOr(v, fallback decimal.Decimal) decimal.Decimal {
	if v.IsPositive() {
		return v
	}
	return fallback.Round(2)
}

func scoringConfigOrDefault(cfg *config.ScoringConfig) config.ScoringConfig {
	if cfg == nil {
		return config.DefaultScoringConfig()
	}
	return *cfg
}
