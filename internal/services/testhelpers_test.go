package services

import (
	"github.com/shopspring/decimal"

	"github.com/irfndi/opportunity-scoring/internal/i18n"
	"github.com/irfndi/opportunity-scoring/internal/models"
)

func textKeys(texts []i18n.Text) []i18n.Key {
	keys := make([]i18n.Key, 0, len(texts))
	for _, t := range texts {
		keys = append(keys, t.Key)
	}
	return keys
}

func listing(name string, price float64, rating float64, sales int) models.CompetitorListing {
	return models.CompetitorListing{
		StoreName:    name,
		Price:        decimal.NewFromFloat(price),
		Rating:       rating,
		ShippingDays: 2,
		StockStatus:  models.StockInStock,
		SalesVolume:  sales,
	}
}

// testProfile builds a profile with the default 40/10/15 percent unit costs.
func testProfile(price float64, units int, demand, margin float64) models.MarketProfile {
	p := decimal.NewFromFloat(price)
	return models.MarketProfile{
		Query:            "wireless earbuds",
		ItemName:         "wireless earbuds",
		Currency:         "SAR",
		DemandScore:      demand,
		DemandLevel:      models.DemandHigh,
		AveragePrice:     p,
		ProductCost:      p.Mul(decimal.NewFromFloat(0.40)),
		ShippingCost:     p.Mul(decimal.NewFromFloat(0.10)),
		PlatformFee:      p.Mul(decimal.NewFromFloat(0.15)),
		ProfitMargin:     margin,
		MonthlyUnits:     units,
		MonthlyNetProfit: decimal.NewFromInt(int64(units)).Mul(p).Mul(decimal.NewFromFloat(0.15)),
		BreakEvenUnits:   100,
		BreakEvenLabel:   i18n.T(i18n.Months3To6),
	}
}

type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }
