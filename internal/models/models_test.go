package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfndi/opportunity-scoring/internal/i18n"
)

func TestRecommendation_Valid(t *testing.T) {
	tests := []struct {
		input    Recommendation
		expected bool
	}{
		{RecommendationGo, true},
		{RecommendationCaution, true},
		{RecommendationNoGo, true},
		{"go", false},
		{"MAYBE", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.Valid())
		})
	}
}

func TestRecommendation_Severity(t *testing.T) {
	assert.Less(t, RecommendationGo.Severity(), RecommendationCaution.Severity())
	assert.Less(t, RecommendationCaution.Severity(), RecommendationNoGo.Severity())
	assert.Equal(t, RecommendationNoGo.Severity(), Recommendation("unknown").Severity())
}

func TestStockStatus(t *testing.T) {
	tests := []struct {
		status     StockStatus
		outOfStock bool
		inStock    bool
	}{
		{StockInStock, false, true},
		{"In Stock", false, true},
		{"available", false, true},
		{StockOutOfStock, true, false},
		{"Out-Of-Stock", true, false},
		{"sold out", true, false},
		{"unavailable", true, false},
		{StockLowStock, false, false},
		{StockUnknown, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.outOfStock, tt.status.IsOutOfStock())
			assert.Equal(t, tt.inStock, tt.status.IsInStock())
		})
	}
}

func TestDecisionMetrics_FailCount(t *testing.T) {
	dm := DecisionMetrics{ViabilityChecklist: []ChecklistItem{
		{ID: "demand", Status: CheckPass},
		{ID: "competition", Status: CheckFail},
		{ID: "margin", Status: CheckWarn},
		{ID: "capital", Status: CheckFail},
	}}
	assert.Equal(t, 2, dm.FailCount())

	empty := DecisionMetrics{}
	assert.Zero(t, empty.FailCount())
}

func TestGrowthScenarios_Recommended(t *testing.T) {
	gs := GrowthScenarios{
		Conservative: GrowthScenario{Key: ScenarioConservative},
		Moderate:     GrowthScenario{Key: ScenarioModerate},
		Optimistic:   GrowthScenario{Key: ScenarioOptimistic},
	}

	for _, key := range []ScenarioKey{ScenarioConservative, ScenarioModerate, ScenarioOptimistic} {
		gs.RecommendedScenario = key
		assert.Equal(t, key, gs.Recommended().Key)
	}

	gs.RecommendedScenario = "aggressive"
	assert.Equal(t, ScenarioModerate, gs.Recommended().Key)
}

func TestAnalysisRequest_DisplayName(t *testing.T) {
	assert.Equal(t, "iPhone 15", AnalysisRequest{Query: "buy iphone", ItemName: " iPhone 15 "}.DisplayName())
	assert.Equal(t, "buy iphone", AnalysisRequest{Query: " buy iphone ", ItemName: "  "}.DisplayName())
	assert.Empty(t, AnalysisRequest{}.DisplayName())
}

func TestAnalysisRequest_DecodeJSON(t *testing.T) {
	payload := []byte(`{
		"query": "سعر ايفون",
		"market_stats": {"average_price": 3500, "demand_level": "High", "market_saturation": 40},
		"competitors": [
			{"store_name": "Jarir", "price": "3499.50", "rating": 4.6, "shipping_days": 2, "stock_status": "in_stock"}
		],
		"demand_analysis": {"demand_score": 80, "monthly_demand_estimate": 120},
		"final_verdict": {"recommendation": "GO", "reasoning": "Strong demand"},
		"language": "ar"
	}`)

	var req AnalysisRequest
	require.NoError(t, json.Unmarshal(payload, &req))

	assert.True(t, decimal.NewFromInt(3500).Equal(req.MarketStats.AveragePrice))
	assert.Equal(t, DemandHigh, req.MarketStats.DemandLevel)
	require.Len(t, req.Competitors, 1)
	assert.True(t, decimal.RequireFromString("3499.5").Equal(req.Competitors[0].Price))
	assert.True(t, req.Competitors[0].StockStatus.IsInStock())
	assert.Nil(t, req.Profitability)
	require.NotNil(t, req.FinalVerdict)
	assert.Equal(t, RecommendationGo, req.FinalVerdict.Recommendation)
	assert.Equal(t, i18n.Arabic, req.Language)
}
