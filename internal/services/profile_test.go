package services

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/irfndi/opportunity-scoring/internal/config"
	"github.com/irfndi/opportunity-scoring/internal/i18n"
	"github.com/irfndi/opportunity-scoring/internal/models"
)

func TestProfileBuilder_Fallbacks(t *testing.T) {
	builder := NewProfileBuilder(nil, nil)
	req := &models.AnalysisRequest{
		Query:       "  wireless earbuds ",
		MarketStats: models.MarketStats{AveragePrice: decimal.NewFromInt(200), DemandLevel: models.DemandHigh},
		Demand:      models.DemandAnalysis{DemandScore: 80},
		Competitors: []models.CompetitorListing{listing("A", 190, 4.1, 100), listing("B", 210, 4.4, 200)},
	}

	p := builder.Build(req)

	assert.Equal(t, "wireless earbuds", p.Query)
	assert.Equal(t, "wireless earbuds", p.ItemName)
	assert.Equal(t, "SAR", p.Currency)
	assert.True(t, p.AveragePrice.Equal(decimal.NewFromInt(200)))
	assert.True(t, p.ProductCost.Equal(decimal.NewFromInt(80)), p.ProductCost.String())
	assert.True(t, p.ShippingCost.Equal(decimal.NewFromInt(20)), p.ShippingCost.String())
	assert.True(t, p.PlatformFee.Equal(decimal.NewFromInt(30)), p.PlatformFee.String())
	assert.InDelta(t, 35.0, p.ProfitMargin, 0.001)
	assert.Equal(t, 40, p.MonthlyUnits)
	// 40 units * 200 * 0.5 * 0.3
	assert.True(t, p.MonthlyNetProfit.Equal(decimal.NewFromInt(1200)), p.MonthlyNetProfit.String())
	assert.Equal(t, 100, p.BreakEvenUnits)
	assert.Equal(t, i18n.Months3To6, p.BreakEvenLabel.Key)
	assert.Equal(t, 2, p.CompetitorCount)
	assert.Equal(t, models.DemandHigh, p.DemandLevel)
}

func TestProfileBuilder_UsesProfitability(t *testing.T) {
	builder := NewProfileBuilder(nil, nil)
	req := &models.AnalysisRequest{
		ItemName:    "Desk lamp",
		MarketStats: models.MarketStats{AveragePrice: decimal.NewFromInt(90)},
		Demand:      models.DemandAnalysis{DemandScore: 55, MonthlyDemandEstimate: 120},
		Profitability: &models.ProfitabilityAnalysis{
			AverageSalePrice:      decimal.NewFromInt(100),
			EstimatedProfitMargin: 22.5,
			BreakEvenPoint:        60,
			BreakEvenTime:         "2 months",
			MonthlyNetProfit:      decimal.NewFromInt(2500),
			CostBreakdown: models.CostBreakdown{
				ProductCost:  decimal.NewFromInt(45),
				ShippingCost: decimal.NewFromInt(8),
			},
		},
		TotalMarketCompetitors: 25,
	}

	p := builder.Build(req)

	assert.Equal(t, "Desk lamp", p.ItemName)
	assert.True(t, p.AveragePrice.Equal(decimal.NewFromInt(100)))
	assert.True(t, p.ProductCost.Equal(decimal.NewFromInt(45)))
	assert.True(t, p.ShippingCost.Equal(decimal.NewFromInt(8)))
	// platform fee falls back to the configured rate
	assert.True(t, p.PlatformFee.Equal(decimal.NewFromInt(15)), p.PlatformFee.String())
	assert.Equal(t, 22.5, p.ProfitMargin)
	assert.Equal(t, 120, p.MonthlyUnits)
	assert.True(t, p.MonthlyNetProfit.Equal(decimal.NewFromInt(2500)))
	assert.Equal(t, 60, p.BreakEvenUnits)
	assert.Equal(t, "2 months", p.BreakEvenLabel.Render(i18n.Arabic))
	assert.Equal(t, 25, p.CompetitorCount)
}

func TestProfileBuilder_ClampsMalformedInput(t *testing.T) {
	builder := NewProfileBuilder(nil, nil)

	tests := []struct {
		name       string
		demand     float64
		wantDemand float64
		wantUnits  int
	}{
		{"above range", 180, 100, 50},
		{"negative", -20, 0, 0},
		{"NaN", math.NaN(), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := builder.Build(&models.AnalysisRequest{
				Query:       "chair",
				MarketStats: models.MarketStats{AveragePrice: decimal.NewFromInt(-50)},
				Demand:      models.DemandAnalysis{DemandScore: tt.demand},
			})
			assert.Equal(t, tt.wantDemand, p.DemandScore)
			assert.Equal(t, tt.wantUnits, p.MonthlyUnits)
			assert.True(t, p.AveragePrice.IsZero())
			assert.Zero(t, p.ProfitMargin)
			assert.False(t, p.MonthlyNetProfit.IsNegative())
		})
	}
}

func TestProfileBuilder_ProfitMarginSource(t *testing.T) {
	builder := NewProfileBuilder(nil, nil)

	tests := []struct {
		name     string
		supplied float64
		costs    models.CostBreakdown
		want     float64
	}{
		{name: "positive supplied margin is used", supplied: 18, want: 18},
		{name: "supplied margin above range", supplied: 140, want: 100},
		{name: "negative supplied margin falls back to computed", supplied: -10, want: 35},
		{name: "zero supplied margin falls back to computed", supplied: 0, want: 35},
		{
			name:     "computed loss floors at zero",
			supplied: -10,
			costs:    models.CostBreakdown{ProductCost: decimal.NewFromInt(120)},
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := builder.Build(&models.AnalysisRequest{
				Query:       "lamp",
				MarketStats: models.MarketStats{AveragePrice: decimal.NewFromInt(100)},
				Profitability: &models.ProfitabilityAnalysis{
					EstimatedProfitMargin: tt.supplied,
					CostBreakdown:         tt.costs,
				},
			})
			assert.InDelta(t, tt.want, p.ProfitMargin, 0.001)
		})
	}
}

func TestProfileBuilder_CustomConfig(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	cfg.Currency = "AED"
	cfg.ProductCostRatio = 0.5
	cfg.DefaultBreakEvenUnits = 40

	p := NewProfileBuilder(&cfg, nil).Build(&models.AnalysisRequest{
		Query:       "yoga mat",
		MarketStats: models.MarketStats{AveragePrice: decimal.NewFromInt(100)},
		Demand:      models.DemandAnalysis{DemandScore: 50},
	})

	assert.Equal(t, "AED", p.Currency)
	assert.True(t, p.ProductCost.Equal(decimal.NewFromInt(50)))
	assert.InDelta(t, 25.0, p.ProfitMargin, 0.001)
	assert.Equal(t, 40, p.BreakEvenUnits)
}
