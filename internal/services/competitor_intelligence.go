package services

import (
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/irfndi/opportunity-scoring/internal/config"
	"github.com/irfndi/opportunity-scoring/internal/i18n"
	"github.com/irfndi/opportunity-scoring/internal/logging"
	"github.com/irfndi/opportunity-scoring/internal/models"
)

// Competitors rated below this are treated as inactive listings.
const minActiveRating = 2.5

const topCompetitorLimit = 3

// DefaultStrengthWeights is the weighting of the competitor strength score.
var DefaultStrengthWeights = models.StrengthWeights{
	SalesVolume:   0.4,
	Rating:        0.3,
	PricePresence: 0.3,
}

// CompetitorIntelligenceAnalyzer scores competitive pressure and surfaces market gaps
type CompetitorIntelligenceAnalyzer struct {
	cfg     config.ScoringConfig
	weights models.StrengthWeights
	logger  *logrus.Entry
}

// NewCompetitorIntelligenceAnalyzer creates a new competitor analyzer
func NewCompetitorIntelligenceAnalyzer(cfg *config.ScoringConfig, logger *logrus.Logger) *CompetitorIntelligenceAnalyzer {
	return &CompetitorIntelligenceAnalyzer{
		cfg:     scoringConfigOrDefault(cfg),
		weights: DefaultStrengthWeights,
		logger:  logging.WithComponent(logger, "competitor_intelligence"),
	}
}

// competitorSnapshot is the aggregate view of the active competitors the gap rules read.
type competitorSnapshot struct {
	count        int
	avgRating    float64
	prices       []float64
	avgPrice     float64
	minPrice     float64
	maxPrice     float64
	shippingDays []float64
	avgShipping  float64
	outOfStock   int
	currency     string
}

type scoredCompetitor struct {
	listing  models.CompetitorListing
	strength float64
}

// Analyze scores the competitor listings. totalMarketCompetitors, when larger than
// the number of active listings, overrides the reported competitor count.
func (a *CompetitorIntelligenceAnalyzer) Analyze(competitors []models.CompetitorListing, totalMarketCompetitors int) models.CompetitorIntelligence {
	active := make([]models.CompetitorListing, 0, len(competitors))
	for _, c := range competitors {
		if c.Rating >= minActiveRating {
			active = append(active, c)
		}
	}

	if len(active) == 0 {
		a.logger.WithFields(logrus.Fields{
			"listings": len(competitors),
			"override": totalMarketCompetitors,
		}).Debug("No active competitors found")
		return a.emptyMarket(totalMarketCompetitors)
	}

	scored := make([]scoredCompetitor, 0, len(active))
	strengths := make([]float64, 0, len(active))
	for _, c := range active {
		s := a.strengthScore(c)
		scored = append(scored, scoredCompetitor{listing: c, strength: s})
		strengths = append(strengths, s)
	}
	avgStrength := calculateMeanFloat64(strengths)

	snap := a.snapshot(active)
	intensity := clampScore(float64(snap.count) / 10 * 100)
	difficulty := entryDifficulty(intensity, avgStrength)

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].strength > scored[j].strength
	})
	top := scored
	if len(top) > topCompetitorLimit {
		top = top[:topCompetitorLimit]
	}
	concentration := marketConcentration(top, strengths)

	result := models.CompetitorIntelligence{
		ActiveCompetitors:       maxInt(len(active), totalMarketCompetitors),
		CompetitorStrengthIndex: roundScore(avgStrength),
		TopCompetitors:          make([]models.TopCompetitor, 0, len(top)),
		MarketGaps:              applyTextRules(marketGapRules, snap, i18n.T(i18n.GapStableMarket)),
		EntryDifficulty:         difficulty,
		AnalysisDetails: models.CompetitorAnalysisDetails{
			Weights:              a.weights,
			CompetitiveIntensity: roundTo(intensity, 1),
			MarketConcentration:  roundTo(concentration, 1),
			Consolidation:        consolidation(concentration),
			AverageRating:        roundTo(snap.avgRating, 2),
		},
	}
	for _, sc := range top {
		result.TopCompetitors = append(result.TopCompetitors, models.TopCompetitor{
			StoreName:     sc.listing.StoreName,
			Price:         sc.listing.Price,
			Rating:        sc.listing.Rating,
			StrengthScore: roundTo(sc.strength, 1),
			URL:           sc.listing.URL,
			Strengths:     applyTextRules(competitorStrengthRules, sc.listing, i18n.T(i18n.StrengthPresence)),
			Weaknesses:    competitorWeaknesses(sc.listing, snap.avgPrice),
		})
	}

	a.logger.WithFields(logrus.Fields{
		"active_competitors": result.ActiveCompetitors,
		"strength_index":     result.CompetitorStrengthIndex,
		"entry_difficulty":   result.EntryDifficulty,
		"market_gaps":        len(result.MarketGaps),
	}).Debug("Analyzed competitors")

	return result
}

func (a *CompetitorIntelligenceAnalyzer) emptyMarket(totalMarketCompetitors int) models.CompetitorIntelligence {
	return models.CompetitorIntelligence{
		ActiveCompetitors:       maxInt(totalMarketCompetitors, 0),
		CompetitorStrengthIndex: 0,
		TopCompetitors:          []models.TopCompetitor{},
		MarketGaps: []i18n.Text{
			i18n.T(i18n.GapNoCompetitors),
			i18n.T(i18n.GapValidateDemand),
		},
		EntryDifficulty: models.LevelLow,
		AnalysisDetails: models.CompetitorAnalysisDetails{
			Weights:       a.weights,
			Consolidation: models.ConsolidationFragmented,
		},
	}
}

// strengthScore blends sales volume, rating and price presence into 0-100.
func (a *CompetitorIntelligenceAnalyzer) strengthScore(c models.CompetitorListing) float64 {
	volume := math.Min(float64(c.SalesVolume)/1000, 100)
	if volume < 0 {
		volume = 0
	}
	rating := clamp(c.Rating, 0, 5) * 20
	presence := 0.0
	if c.Price.IsPositive() {
		presence = 50
	}
	return clampScore(volume*a.weights.SalesVolume + rating*a.weights.Rating + presence*a.weights.PricePresence)
}

func (a *CompetitorIntelligenceAnalyzer) snapshot(active []models.CompetitorListing) competitorSnapshot {
	snap := competitorSnapshot{count: len(active), currency: a.cfg.Currency}
	ratings := make([]float64, 0, len(active))
	for _, c := range active {
		ratings = append(ratings, c.Rating)
		if p, _ := c.Price.Float64(); p > 0 {
			snap.prices = append(snap.prices, p)
		}
		if c.ShippingDays > 0 {
			snap.shippingDays = append(snap.shippingDays, float64(c.ShippingDays))
		}
		if c.StockStatus.IsOutOfStock() {
			snap.outOfStock++
		}
	}
	snap.avgRating = calculateMeanFloat64(ratings)
	snap.avgShipping = calculateMeanFloat64(snap.shippingDays)
	if len(snap.prices) > 0 {
		snap.avgPrice = calculateMeanFloat64(snap.prices)
		snap.minPrice, snap.maxPrice = snap.prices[0], snap.prices[0]
		for _, p := range snap.prices[1:] {
			snap.minPrice = math.Min(snap.minPrice, p)
			snap.maxPrice = math.Max(snap.maxPrice, p)
		}
	}
	return snap
}

// clusteredShare is the fraction of prices within 10% of the average.
func (s competitorSnapshot) clusteredShare() float64 {
	if len(s.prices) == 0 || s.avgPrice <= 0 {
		return 0
	}
	n := 0
	for _, p := range s.prices {
		if math.Abs(p-s.avgPrice) <= s.avgPrice*0.1 {
			n++
		}
	}
	return float64(n) / float64(len(s.prices))
}

func (s competitorSnapshot) priceSpread() float64 {
	if s.avgPrice <= 0 {
		return 0
	}
	return (s.maxPrice - s.minPrice) / s.avgPrice
}

func percent(ratio float64) int {
	return int(math.Round(ratio * 100))
}

var marketGapRules = []textRule[competitorSnapshot]{
	{
		name:    "unsaturated",
		applies: func(s competitorSnapshot) bool { return s.count < 3 },
		message: func(s competitorSnapshot) i18n.Text { return i18n.T(i18n.GapUnsaturated, s.count) },
	},
	{
		name:    "moderate_competition",
		applies: func(s competitorSnapshot) bool { return s.count >= 3 && s.count < 6 },
		message: func(s competitorSnapshot) i18n.Text { return i18n.T(i18n.GapModerate, s.count) },
	},
	{
		name:    "weak_ratings",
		applies: func(s competitorSnapshot) bool { return s.avgRating < 3.5 },
		message: func(s competitorSnapshot) i18n.Text { return i18n.T(i18n.GapWeakRatings, s.avgRating) },
	},
	{
		name:    "medium_ratings",
		applies: func(s competitorSnapshot) bool { return s.avgRating >= 3.5 && s.avgRating < 4.0 },
		message: func(s competitorSnapshot) i18n.Text { return i18n.T(i18n.GapMediumRatings, s.avgRating) },
	},
	{
		name:    "wide_price_spread",
		applies: func(s competitorSnapshot) bool { return len(s.prices) >= 2 && s.priceSpread() > 0.5 },
		message: func(s competitorSnapshot) i18n.Text { return i18n.T(i18n.GapWidePriceSpread, percent(s.priceSpread())) },
	},
	{
		name:    "no_economy_tier",
		applies: func(s competitorSnapshot) bool { return len(s.prices) >= 2 && s.minPrice > s.avgPrice*0.8 },
		message: func(s competitorSnapshot) i18n.Text {
			return i18n.T(i18n.GapNoEconomyTier, int(math.Round(s.avgPrice*0.8)), s.currency)
		},
	},
	{
		name:    "no_premium_tier",
		applies: func(s competitorSnapshot) bool { return len(s.prices) >= 2 && s.maxPrice < s.avgPrice*1.2 },
		message: func(s competitorSnapshot) i18n.Text {
			return i18n.T(i18n.GapNoPremiumTier, int(math.Round(s.avgPrice*1.2)), s.currency)
		},
	},
	{
		name:    "slow_shipping",
		applies: func(s competitorSnapshot) bool { return len(s.shippingDays) > 0 && s.avgShipping > 3 },
		message: func(s competitorSnapshot) i18n.Text { return i18n.T(i18n.GapSlowShipping, s.avgShipping) },
	},
	{
		name:    "shipping_unclear",
		applies: func(s competitorSnapshot) bool { return len(s.shippingDays) == 0 },
		message: func(competitorSnapshot) i18n.Text { return i18n.T(i18n.GapShippingUnclear) },
	},
	{
		name:    "stock_outs",
		applies: func(s competitorSnapshot) bool { return float64(s.outOfStock)/float64(s.count) > 0.3 },
		message: func(s competitorSnapshot) i18n.Text {
			return i18n.T(i18n.GapStockOuts, percent(float64(s.outOfStock)/float64(s.count)))
		},
	},
	{
		name:    "price_clustering",
		applies: func(s competitorSnapshot) bool { return len(s.prices) >= 3 && s.clusteredShare() > 0.6 },
		message: func(s competitorSnapshot) i18n.Text {
			return i18n.T(i18n.GapPriceClustering, percent(s.clusteredShare()))
		},
	},
	{
		name:    "weak_service",
		applies: func(s competitorSnapshot) bool { return s.count >= 3 && s.avgRating < 4.2 },
		message: func(competitorSnapshot) i18n.Text { return i18n.T(i18n.GapWeakService) },
	},
	{
		name:    "content",
		applies: func(s competitorSnapshot) bool { return s.count > 0 && s.count < 10 },
		message: func(competitorSnapshot) i18n.Text { return i18n.T(i18n.GapContent) },
	},
	{
		name:    "digital_presence",
		applies: func(s competitorSnapshot) bool { return s.count < 5 },
		message: func(competitorSnapshot) i18n.Text { return i18n.T(i18n.GapDigitalPresence) },
	},
}

var competitorStrengthRules = []textRule[models.CompetitorListing]{
	{
		name:    "rating",
		applies: func(c models.CompetitorListing) bool { return c.Rating >= 4.5 },
		message: func(c models.CompetitorListing) i18n.Text { return i18n.T(i18n.StrengthRating, c.Rating) },
	},
	{
		name:    "volume",
		applies: func(c models.CompetitorListing) bool { return c.SalesVolume >= 10000 },
		message: func(models.CompetitorListing) i18n.Text { return i18n.T(i18n.StrengthVolume) },
	},
	{
		name:    "fast_shipping",
		applies: func(c models.CompetitorListing) bool { return c.ShippingDays > 0 && c.ShippingDays <= 2 },
		message: func(c models.CompetitorListing) i18n.Text { return i18n.T(i18n.StrengthFastShipping, c.ShippingDays) },
	},
	{
		name:    "in_stock",
		applies: func(c models.CompetitorListing) bool { return c.StockStatus.IsInStock() },
		message: func(models.CompetitorListing) i18n.Text { return i18n.T(i18n.StrengthInStock) },
	},
}

func competitorWeaknesses(c models.CompetitorListing, avgPrice float64) []i18n.Text {
	type pricedListing struct {
		listing  models.CompetitorListing
		avgPrice float64
	}
	rules := []textRule[pricedListing]{
		{
			name:    "rating",
			applies: func(p pricedListing) bool { return p.listing.Rating < 4.0 },
			message: func(p pricedListing) i18n.Text { return i18n.T(i18n.WeaknessRating, p.listing.Rating) },
		},
		{
			name:    "slow_shipping",
			applies: func(p pricedListing) bool { return p.listing.ShippingDays > 5 },
			message: func(p pricedListing) i18n.Text { return i18n.T(i18n.WeaknessSlowShipping, p.listing.ShippingDays) },
		},
		{
			name:    "out_of_stock",
			applies: func(p pricedListing) bool { return p.listing.StockStatus.IsOutOfStock() },
			message: func(pricedListing) i18n.Text { return i18n.T(i18n.WeaknessOutOfStock) },
		},
		{
			name: "high_price",
			applies: func(p pricedListing) bool {
				price, _ := p.listing.Price.Float64()
				return p.avgPrice > 0 && price > p.avgPrice*1.2
			},
			message: func(pricedListing) i18n.Text { return i18n.T(i18n.WeaknessHighPrice) },
		},
	}
	return applyTextRules(rules, pricedListing{listing: c, avgPrice: avgPrice}, i18n.T(i18n.WeaknessNone))
}

func entryDifficulty(intensity, avgStrength float64) models.Level {
	level := models.LevelLow
	switch {
	case intensity > 60:
		level = models.LevelHigh
	case intensity > 30:
		level = models.LevelMedium
	}
	if avgStrength > 70 && level == models.LevelLow {
		level = models.LevelMedium
	}
	return level
}

// marketConcentration is the top competitors' share of total strength, in percent.
func marketConcentration(top []scoredCompetitor, all []float64) float64 {
	total := 0.0
	for _, s := range all {
		total += s
	}
	if total <= 0 {
		return 0
	}
	topSum := 0.0
	for _, sc := range top {
		topSum += sc.strength
	}
	return topSum / total * 100
}

func consolidation(concentration float64) models.Consolidation {
	switch {
	case concentration >= 75:
		return models.ConsolidationHigh
	case concentration >= 50:
		return models.ConsolidationModerate
	default:
		return models.ConsolidationFragmented
	}
}
