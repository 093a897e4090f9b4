package models

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/irfndi/opportunity-scoring/internal/i18n"
)

// DemandLevel is the coarse demand label supplied with the market stats
type DemandLevel string

const (
	DemandHigh   DemandLevel = "High"
	DemandMedium DemandLevel = "Medium"
	DemandLow    DemandLevel = "Low"
)

// StockStatus describes a competitor listing's availability
type StockStatus string

const (
	StockInStock    StockStatus = "in_stock"
	StockLowStock   StockStatus = "low_stock"
	StockOutOfStock StockStatus = "out_of_stock"
	StockUnknown    StockStatus = ""
)

// IsOutOfStock tolerates the free-form variants the upstream parser produces.
func (s StockStatus) IsOutOfStock() bool {
	v := strings.ToLower(strings.TrimSpace(string(s)))
	v = strings.NewReplacer("-", "_", " ", "_").Replace(v)
	return v == string(StockOutOfStock) || v == "unavailable" || v == "sold_out"
}

// IsInStock reports an explicit in-stock status.
func (s StockStatus) IsInStock() bool {
	v := strings.ToLower(strings.TrimSpace(string(s)))
	v = strings.NewReplacer("-", "_", " ", "_").Replace(v)
	return v == string(StockInStock) || v == "available"
}

// MarketStats represents the aggregate price picture for a product
type MarketStats struct {
	AveragePrice     decimal.Decimal `json:"average_price"`
	HighestPrice     decimal.Decimal `json:"highest_price"`
	LowestPrice      decimal.Decimal `json:"lowest_price"`
	DemandLevel      DemandLevel     `json:"demand_level"`
	MarketSaturation float64         `json:"market_saturation"` // 0-100
}

// CompetitorListing represents one seller offering the product
type CompetitorListing struct {
	StoreName    string          `json:"store_name"`
	Price        decimal.Decimal `json:"price"`
	Rating       float64         `json:"rating"` // 0-5
	ShippingDays int             `json:"shipping_days"`
	StockStatus  StockStatus     `json:"stock_status"`
	URL          string          `json:"url"`
	SalesVolume  int             `json:"sales_volume,omitempty"`
}

// DemandAnalysis is the upstream demand estimate
type DemandAnalysis struct {
	DemandScore           float64 `json:"demand_score"` // 0-100
	MonthlyDemandEstimate int     `json:"monthly_demand_estimate"`
	Stability             string  `json:"stability"`
	Seasonality           string  `json:"seasonality"`
}

// CostBreakdown holds per-unit costs from the profitability estimate
type CostBreakdown struct {
	ProductCost   decimal.Decimal `json:"product_cost"`
	ShippingCost  decimal.Decimal `json:"shipping_cost"`
	PlatformFees  decimal.Decimal `json:"platform_fees"`
	MarketingCost decimal.Decimal `json:"marketing_cost"`
}

// ProfitabilityAnalysis is the upstream profitability estimate
type ProfitabilityAnalysis struct {
	AverageSalePrice      decimal.Decimal `json:"average_sale_price"`
	EstimatedProfitMargin float64         `json:"estimated_profit_margin"` // percent
	BreakEvenPoint        int             `json:"break_even_point"`        // units
	BreakEvenTime         string          `json:"break_even_time"`
	MonthlyNetProfit      decimal.Decimal `json:"monthly_net_profit"`
	CostBreakdown         CostBreakdown   `json:"cost_breakdown"`
}

// FinalVerdict is the headline decision shown with the executive summary
type FinalVerdict struct {
	Recommendation Recommendation `json:"recommendation"`
	Reasoning      string         `json:"reasoning"`
}

// AnalysisRequest carries everything the upstream market-research step produced
type AnalysisRequest struct {
	Query    string `json:"query"`
	ItemName string `json:"item_name"`

	MarketStats   MarketStats            `json:"market_stats"`
	Competitors   []CompetitorListing    `json:"competitors"`
	Demand        DemandAnalysis         `json:"demand_analysis"`
	Profitability *ProfitabilityAnalysis `json:"profitability_analysis,omitempty"`

	// TotalMarketCompetitors overrides the listing count when the upstream
	// research saw more sellers than it returned listings for.
	TotalMarketCompetitors int `json:"total_market_competitors,omitempty"`

	// FinalVerdict is optional; the computed recommendation is used when absent.
	FinalVerdict *FinalVerdict `json:"final_verdict,omitempty"`

	Language i18n.Language `json:"language,omitempty"`
}

// DisplayName returns the item name, falling back to the trimmed query.
func (r AnalysisRequest) DisplayName() string {
	if name := strings.TrimSpace(r.ItemName); name != "" {
		return name
	}
	return strings.TrimSpace(r.Query)
}
