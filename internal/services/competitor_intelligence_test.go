package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfndi/opportunity-scoring/internal/i18n"
	"github.com/irfndi/opportunity-scoring/internal/models"
)

func TestCompetitorIntelligence_EmptyMarket(t *testing.T) {
	analyzer := NewCompetitorIntelligenceAnalyzer(nil, nil)

	tests := []struct {
		name        string
		competitors []models.CompetitorListing
		override    int
		wantActive  int
	}{
		{"no listings", nil, 0, 0},
		{"no listings with override", []models.CompetitorListing{}, 12, 12},
		{"only inactive listings", []models.CompetitorListing{listing("A", 100, 1.5, 10), listing("B", 80, 2.4, 10)}, 0, 0},
		{"negative override", nil, -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ci := analyzer.Analyze(tt.competitors, tt.override)

			assert.Equal(t, tt.wantActive, ci.ActiveCompetitors)
			assert.Equal(t, 0, ci.CompetitorStrengthIndex)
			assert.Equal(t, models.LevelLow, ci.EntryDifficulty)
			assert.Equal(t, []i18n.Key{i18n.GapNoCompetitors, i18n.GapValidateDemand}, textKeys(ci.MarketGaps))
			assert.NotNil(t, ci.TopCompetitors)
			assert.Empty(t, ci.TopCompetitors)
			assert.Equal(t, DefaultStrengthWeights, ci.AnalysisDetails.Weights)
		})
	}
}

func TestCompetitorIntelligence_StrengthScore(t *testing.T) {
	analyzer := NewCompetitorIntelligenceAnalyzer(nil, nil)

	tests := []struct {
		name     string
		listing  models.CompetitorListing
		expected float64
	}{
		// 50*0.4 + 80*0.3 + 50*0.3
		{"typical", listing("A", 100, 4.0, 50000), 59},
		// sales capped at 100 points
		{"volume capped", listing("B", 100, 5.0, 5000000), 85},
		{"no price", listing("C", 0, 3.0, 0), 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, analyzer.strengthScore(tt.listing), 0.001)
		})
	}
}

func TestCompetitorIntelligence_IndexAndTopCompetitors(t *testing.T) {
	analyzer := NewCompetitorIntelligenceAnalyzer(nil, nil)
	competitors := []models.CompetitorListing{
		listing("Small", 100, 3.0, 0),
		listing("Leader", 110, 4.8, 90000),
		listing("Inactive", 90, 2.0, 99000),
		listing("Mid", 95, 4.0, 20000),
		listing("Runner", 105, 4.5, 60000),
	}

	ci := analyzer.Analyze(competitors, 0)

	assert.Equal(t, 4, ci.ActiveCompetitors)
	require.Len(t, ci.TopCompetitors, 3)
	assert.Equal(t, "Leader", ci.TopCompetitors[0].StoreName)
	assert.Equal(t, "Runner", ci.TopCompetitors[1].StoreName)
	assert.Equal(t, "Mid", ci.TopCompetitors[2].StoreName)
	assert.GreaterOrEqual(t, ci.TopCompetitors[0].StrengthScore, ci.TopCompetitors[1].StrengthScore)

	// (33 + 79.8 + 47 + 66) / 4 active
	assert.Equal(t, 56, ci.CompetitorStrengthIndex)
	assert.Contains(t, textKeys(ci.TopCompetitors[0].Strengths), i18n.StrengthRating)
	assert.Contains(t, textKeys(ci.TopCompetitors[0].Strengths), i18n.StrengthVolume)
	assert.Equal(t, []i18n.Key{i18n.WeaknessNone}, textKeys(ci.TopCompetitors[0].Weaknesses))
	assert.InDelta(t, 40.0, ci.AnalysisDetails.CompetitiveIntensity, 0.001)
	assert.Greater(t, ci.AnalysisDetails.MarketConcentration, 75.0)
	assert.Equal(t, models.ConsolidationHigh, ci.AnalysisDetails.Consolidation)
}

func TestCompetitorIntelligence_OverrideOnlyWhenLarger(t *testing.T) {
	analyzer := NewCompetitorIntelligenceAnalyzer(nil, nil)
	competitors := []models.CompetitorListing{
		listing("A", 100, 4.0, 100),
		listing("B", 100, 4.0, 100),
		listing("C", 100, 4.0, 100),
	}

	assert.Equal(t, 3, analyzer.Analyze(competitors, 2).ActiveCompetitors)
	assert.Equal(t, 30, analyzer.Analyze(competitors, 30).ActiveCompetitors)
}

func TestCompetitorIntelligence_EntryDifficulty(t *testing.T) {
	analyzer := NewCompetitorIntelligenceAnalyzer(nil, nil)
	makeN := func(n int, rating float64, sales int) []models.CompetitorListing {
		out := make([]models.CompetitorListing, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, listing("store", 100, rating, sales))
		}
		return out
	}

	tests := []struct {
		name        string
		competitors []models.CompetitorListing
		expected    models.Level
	}{
		{"few weak sellers", makeN(2, 4.0, 0), models.LevelLow},
		{"few dominant sellers escalate", makeN(2, 5.0, 100000), models.LevelMedium},
		{"four sellers", makeN(4, 4.0, 0), models.LevelMedium},
		{"seven sellers", makeN(7, 4.0, 0), models.LevelHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, analyzer.Analyze(tt.competitors, 0).EntryDifficulty)
		})
	}
}

func TestCompetitorIntelligence_MarketGaps(t *testing.T) {
	analyzer := NewCompetitorIntelligenceAnalyzer(nil, nil)

	t.Run("thin low-rated market", func(t *testing.T) {
		a := listing("A", 100, 3.0, 0)
		b := listing("B", 100, 3.2, 0)
		a.ShippingDays, b.ShippingDays = 0, 0

		gaps := textKeys(analyzer.Analyze([]models.CompetitorListing{a, b}, 0).MarketGaps)

		assert.Equal(t, []i18n.Key{
			i18n.GapUnsaturated,
			i18n.GapWeakRatings,
			i18n.GapNoEconomyTier,
			i18n.GapNoPremiumTier,
			i18n.GapShippingUnclear,
			i18n.GapContent,
			i18n.GapDigitalPresence,
		}, gaps)
	})

	t.Run("slow shipping and stock-outs", func(t *testing.T) {
		competitors := []models.CompetitorListing{
			listing("A", 50, 3.8, 0),
			listing("B", 100, 3.9, 0),
			listing("C", 150, 3.7, 0),
		}
		for i := range competitors {
			competitors[i].ShippingDays = 6
		}
		competitors[0].StockStatus = models.StockOutOfStock
		competitors[1].StockStatus = "Out of Stock"

		gaps := textKeys(analyzer.Analyze(competitors, 0).MarketGaps)

		assert.Equal(t, []i18n.Key{
			i18n.GapModerate,
			i18n.GapMediumRatings,
			i18n.GapWidePriceSpread,
			i18n.GapSlowShipping,
			i18n.GapStockOuts,
			i18n.GapWeakService,
			i18n.GapContent,
			i18n.GapDigitalPresence,
		}, gaps)
	})

	t.Run("price clustering", func(t *testing.T) {
		competitors := []models.CompetitorListing{
			listing("A", 98, 4.5, 0),
			listing("B", 100, 4.5, 0),
			listing("C", 102, 4.5, 0),
			listing("D", 101, 4.5, 0),
		}
		gaps := textKeys(analyzer.Analyze(competitors, 0).MarketGaps)
		assert.Contains(t, gaps, i18n.GapPriceClustering)
		assert.NotContains(t, gaps, i18n.GapWeakService)
	})

	t.Run("stable market fallback", func(t *testing.T) {
		var competitors []models.CompetitorListing
		for _, price := range []float64{75, 75, 75, 75, 100, 100, 125, 125, 125, 125} {
			competitors = append(competitors, listing("store", price, 4.5, 1000))
		}

		ci := analyzer.Analyze(competitors, 0)

		assert.Equal(t, []i18n.Key{i18n.GapStableMarket}, textKeys(ci.MarketGaps))
		assert.Equal(t, models.LevelHigh, ci.EntryDifficulty)
	})
}

func TestCompetitorIntelligence_Weaknesses(t *testing.T) {
	c := models.CompetitorListing{
		StoreName:    "Pricey",
		Price:        decimal.NewFromInt(200),
		Rating:       3.5,
		ShippingDays: 7,
		StockStatus:  models.StockOutOfStock,
	}

	keys := textKeys(competitorWeaknesses(c, 100))

	assert.Equal(t, []i18n.Key{
		i18n.WeaknessRating,
		i18n.WeaknessSlowShipping,
		i18n.WeaknessOutOfStock,
		i18n.WeaknessHighPrice,
	}, keys)
}
