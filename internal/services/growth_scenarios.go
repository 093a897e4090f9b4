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

// scenarioDefinition holds the fixed parameters of one growth scenario.
type scenarioDefinition struct {
	key              models.ScenarioKey
	unitFactor       float64
	minUnits         float64
	marketingRatio   float64
	operationalRate  float64
	productDiscount  float64
	shippingDiscount float64
	growthRate       float64
	timeframe        i18n.Key
	assumption       i18n.Key
	operationalBase  func(config.OperationalCostConfig) float64
}

var scenarioDefinitions = []scenarioDefinition{
	{
		key:             models.ScenarioConservative,
		unitFactor:      0.3,
		minUnits:        5,
		marketingRatio:  0.08,
		operationalRate: 0.05,
		growthRate:      5,
		timeframe:       i18n.TimeframeConservative,
		assumption:      i18n.AssumeConservative,
		operationalBase: func(c config.OperationalCostConfig) float64 { return c.Conservative },
	},
	{
		key:             models.ScenarioModerate,
		unitFactor:      0.6,
		minUnits:        15,
		marketingRatio:  0.12,
		operationalRate: 0.04,
		growthRate:      15,
		timeframe:       i18n.TimeframeModerate,
		assumption:      i18n.AssumeModerate,
		operationalBase: func(c config.OperationalCostConfig) float64 { return c.Moderate },
	},
	{
		key:              models.ScenarioOptimistic,
		unitFactor:       1.0,
		minUnits:         30,
		marketingRatio:   0.18,
		operationalRate:  0.03,
		productDiscount:  0.05,
		shippingDiscount: 0.10,
		growthRate:       30,
		timeframe:        i18n.TimeframeOptimistic,
		assumption:       i18n.AssumeOptimistic,
		operationalBase:  func(c config.OperationalCostConfig) float64 { return c.Optimistic },
	},
}

// GrowthScenarioProjector projects monthly P&L under three growth scenarios
type GrowthScenarioProjector struct {
	cfg    config.ScoringConfig
	logger *logrus.Entry
}

// NewGrowthScenarioProjector creates a new growth scenario projector
func NewGrowthScenarioProjector(cfg *config.ScoringConfig, logger *logrus.Logger) *GrowthScenarioProjector {
	return &GrowthScenarioProjector{
		cfg:    scoringConfigOrDefault(cfg),
		logger: logging.WithComponent(logger, "growth_scenarios"),
	}
}

// growthState is what the scalability rules read.
type growthState struct {
	demand   float64
	margin   float64
	strength float64
	price    float64
	lowPrice float64
}

// Project builds the three scenarios from the profile. intent may be nil.
func (p *GrowthScenarioProjector) Project(profile models.MarketProfile, competitorStrength float64, intent *models.BuyerIntentResult) models.GrowthScenarios {
	strength := clampScore(competitorStrength)
	multiplier := competitionMultiplier(strength)

	scenarios := make(map[models.ScenarioKey]models.GrowthScenario, len(scenarioDefinitions))
	for _, def := range scenarioDefinitions {
		scenarios[def.key] = p.projectScenario(def, profile, multiplier)
	}

	recommended := recommendScenario(profile.DemandScore, strength, profile.ProfitMargin)
	if intent != nil {
		recommended = adjustForIntent(recommended, intent.IntentScore)
	}

	price, _ := profile.AveragePrice.Float64()
	state := growthState{
		demand:   profile.DemandScore,
		margin:   profile.ProfitMargin,
		strength: strength,
		price:    price,
		lowPrice: p.cfg.LowPriceThreshold,
	}
	factors := applyTextRules(scalabilityRules, state)
	factors = append(factors, i18n.T(i18n.ScaleChannels), i18n.T(i18n.ScaleComplementaryGood))

	result := models.GrowthScenarios{
		Conservative:        scenarios[models.ScenarioConservative],
		Moderate:            scenarios[models.ScenarioModerate],
		Optimistic:          scenarios[models.ScenarioOptimistic],
		RecommendedScenario: recommended,
		ScalabilityFactors:  factors,
	}

	p.logger.WithFields(logrus.Fields{
		"competition_multiplier": multiplier,
		"conservative_units":     result.Conservative.CostBreakdown.UnitsSold,
		"moderate_units":         result.Moderate.CostBreakdown.UnitsSold,
		"optimistic_units":       result.Optimistic.CostBreakdown.UnitsSold,
		"recommended":            recommended,
	}).Debug("Projected growth scenarios")

	return result
}

func (p *GrowthScenarioProjector) projectScenario(def scenarioDefinition, profile models.MarketProfile, multiplier float64) models.GrowthScenario {
	base := float64(maxInt(profile.MonthlyUnits, 0))
	units := int(math.Round(math.Max(base*def.unitFactor, def.minUnits) * multiplier))
	if units < 1 {
		units = 1
	}
	u := decimal.NewFromInt(int64(units))
	price := nonNegative(profile.AveragePrice)

	revenue := price.Mul(u)
	costs := models.ScenarioCosts{
		ProductCosts:     nonNegative(profile.ProductCost).Mul(u).Mul(decOne.Sub(dec(def.productDiscount))).Round(2),
		ShippingCosts:    nonNegative(profile.ShippingCost).Mul(u).Mul(decOne.Sub(dec(def.shippingDiscount))).Round(2),
		PlatformFees:     nonNegative(profile.PlatformFee).Mul(u).Round(2),
		MarketingCosts:   revenue.Mul(dec(def.marketingRatio)).Round(2),
		OperationalCosts: dec(def.operationalBase(p.cfg.OperationalBaseCosts)).Add(revenue.Mul(dec(def.operationalRate))).Round(2),
		UnitsSold:        units,
		PricePerUnit:     price.Round(2),
	}
	costs.TotalCosts = costs.ProductCosts.
		Add(costs.ShippingCosts).
		Add(costs.PlatformFees).
		Add(costs.MarketingCosts).
		Add(costs.OperationalCosts)
	profit := nonNegative(revenue.Sub(costs.TotalCosts)).Round(2)
	costs.CostPerUnit = costs.TotalCosts.Div(u).Round(2)
	costs.ProfitPerUnit = profit.Div(u).Round(2)

	return models.GrowthScenario{
		Key:            def.key,
		MonthlyRevenue: revenue.Round(2),
		MonthlyProfit:  profit,
		GrowthRate:     def.growthRate,
		Timeframe:      i18n.T(def.timeframe),
		Assumptions: []i18n.Text{
			i18n.T(i18n.AssumeUnits, units),
			i18n.T(i18n.AssumeMarketing, int(math.Round(def.marketingRatio*100))),
			i18n.T(i18n.AssumeCompetition, multiplier),
			i18n.T(def.assumption),
		},
		CostBreakdown: costs,
	}
}

func competitionMultiplier(strength float64) float64 {
	switch {
	case strength > 70:
		return 0.6
	case strength > 50:
		return 0.8
	default:
		return 1.0
	}
}

func recommendScenario(demand, strength, margin float64) models.ScenarioKey {
	switch {
	case demand >= 70 && strength < 50 && margin > 25:
		return models.ScenarioOptimistic
	case demand < 40 || strength > 70 || margin < 15:
		return models.ScenarioConservative
	default:
		return models.ScenarioModerate
	}
}

// adjustForIntent moves the recommendation one step toward moderate on strong or weak intent.
func adjustForIntent(key models.ScenarioKey, intentScore int) models.ScenarioKey {
	switch {
	case intentScore >= 70 && key == models.ScenarioConservative:
		return models.ScenarioModerate
	case intentScore < 40 && key == models.ScenarioOptimistic:
		return models.ScenarioModerate
	default:
		return key
	}
}

var scalabilityRules = []textRule[growthState]{
	{
		name:    "demand",
		applies: func(s growthState) bool { return s.demand > 60 },
		message: func(growthState) i18n.Text { return i18n.T(i18n.ScaleDemand) },
	},
	{
		name:    "margin",
		applies: func(s growthState) bool { return s.margin > 25 },
		message: func(growthState) i18n.Text { return i18n.T(i18n.ScaleMargin) },
	},
	{
		name:    "competition",
		applies: func(s growthState) bool { return s.strength < 60 },
		message: func(growthState) i18n.Text { return i18n.T(i18n.ScaleCompetition) },
	},
	{
		name:    "low_price",
		applies: func(s growthState) bool { return s.price > 0 && s.price < s.lowPrice },
		message: func(growthState) i18n.Text { return i18n.T(i18n.ScaleLowPrice) },
	},
}
