package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/irfndi/opportunity-scoring/internal/i18n"
)

// Recommendation is the final GO/CAUTION/NO-GO verdict
type Recommendation string

const (
	RecommendationGo      Recommendation = "GO"
	RecommendationCaution Recommendation = "CAUTION"
	RecommendationNoGo    Recommendation = "NO-GO"
)

// Valid reports whether r is one of the three known verdicts.
func (r Recommendation) Valid() bool {
	switch r {
	case RecommendationGo, RecommendationCaution, RecommendationNoGo:
		return true
	}
	return false
}

// Severity orders verdicts from best (0) to worst (2).
func (r Recommendation) Severity() int {
	switch r {
	case RecommendationGo:
		return 0
	case RecommendationCaution:
		return 1
	default:
		return 2
	}
}

// Level is a High/Medium/Low classification
type Level string

const (
	LevelHigh   Level = "High"
	LevelMedium Level = "Medium"
	LevelLow    Level = "Low"
)

// SearchIntentType classifies the search query
type SearchIntentType string

const (
	IntentTransactional SearchIntentType = "Transactional"
	IntentInformational SearchIntentType = "Informational"
	IntentMixed         SearchIntentType = "Mixed"
)

// JourneyStage is the buyer journey stage implied by the search intent
type JourneyStage string

const (
	StageAwareness     JourneyStage = "Awareness"
	StageConsideration JourneyStage = "Consideration"
	StageDecision      JourneyStage = "Decision"
)

// CheckStatus is the outcome of one viability check
type CheckStatus string

const (
	CheckPass CheckStatus = "PASS"
	CheckWarn CheckStatus = "WARN"
	CheckFail CheckStatus = "FAIL"
)

// ScenarioKey names a growth scenario
type ScenarioKey string

const (
	ScenarioConservative ScenarioKey = "conservative"
	ScenarioModerate     ScenarioKey = "moderate"
	ScenarioOptimistic   ScenarioKey = "optimistic"
)

// Consolidation describes how concentrated competitor strength is
type Consolidation string

const (
	ConsolidationFragmented Consolidation = "Fragmented"
	ConsolidationModerate   Consolidation = "Moderately consolidated"
	ConsolidationHigh       Consolidation = "Highly consolidated"
)

// MarketProfile is the normalized view of a request that every analyzer reads.
// All fallback defaults are resolved once when the profile is built.
type MarketProfile struct {
	Query            string          `json:"query"`
	ItemName         string          `json:"item_name"`
	Currency         string          `json:"currency"`
	DemandScore      float64         `json:"demand_score"`
	DemandLevel      DemandLevel     `json:"demand_level"`
	AveragePrice     decimal.Decimal `json:"average_price"`
	ProductCost      decimal.Decimal `json:"product_cost"`
	ShippingCost     decimal.Decimal `json:"shipping_cost"`
	PlatformFee      decimal.Decimal `json:"platform_fee"`
	ProfitMargin     float64         `json:"profit_margin"`
	MonthlyUnits     int             `json:"monthly_units"`
	MonthlyNetProfit decimal.Decimal `json:"monthly_net_profit"`
	BreakEvenUnits   int             `json:"break_even_units"`
	BreakEvenLabel   i18n.Text       `json:"break_even_label"`
	CompetitorCount  int             `json:"competitor_count"`
}

// StrengthWeights is the weight breakdown used for competitor strength
type StrengthWeights struct {
	SalesVolume   float64 `json:"sales_volume"`
	Rating        float64 `json:"rating"`
	PricePresence float64 `json:"price_presence"`
}

// CompetitorAnalysisDetails explains how the competitor scores were derived
type CompetitorAnalysisDetails struct {
	Weights              StrengthWeights `json:"weights"`
	CompetitiveIntensity float64         `json:"competitive_intensity"` // percent
	MarketConcentration  float64         `json:"market_concentration"`  // percent
	Consolidation        Consolidation   `json:"consolidation"`
	AverageRating        float64         `json:"average_rating"`
}

// TopCompetitor is one of the strongest active competitors
type TopCompetitor struct {
	StoreName     string          `json:"store_name"`
	Price         decimal.Decimal `json:"price"`
	Rating        float64         `json:"rating"`
	StrengthScore float64         `json:"strength_score"`
	URL           string          `json:"url"`
	Strengths     []i18n.Text     `json:"strengths"`
	Weaknesses    []i18n.Text     `json:"weaknesses"`
}

// CompetitorIntelligence scores competitive pressure and lists market gaps
type CompetitorIntelligence struct {
	ActiveCompetitors       int                       `json:"active_competitors"`
	CompetitorStrengthIndex int                       `json:"competitor_strength_index"`
	TopCompetitors          []TopCompetitor           `json:"top_competitors"`
	MarketGaps              []i18n.Text               `json:"market_gaps"`
	EntryDifficulty         Level                     `json:"entry_difficulty"`
	AnalysisDetails         CompetitorAnalysisDetails `json:"analysis_details"`
}

// KeywordAnalysis holds the three keyword buckets found in or synthesized for a query
type KeywordAnalysis struct {
	TransactionalKeywords []string `json:"transactional_keywords"`
	InformationalKeywords []string `json:"informational_keywords"`
	BrandKeywords         []string `json:"brand_keywords"`
	TransactionalCount    int      `json:"transactional_count"`
	InformationalCount    int      `json:"informational_count"`
	BrandCount            int      `json:"brand_count"`
}

// BuyerIntentResult scores how close searchers are to buying
type BuyerIntentResult struct {
	IntentScore           int              `json:"intent_score"`
	IntentLevel           Level            `json:"intent_level"`
	SearchIntentType      SearchIntentType `json:"search_intent_type"`
	BuyerJourneyStage     JourneyStage     `json:"buyer_journey_stage"`
	KeywordAnalysis       KeywordAnalysis  `json:"keyword_analysis"`
	ConversionProbability float64          `json:"conversion_probability"`
	Insights              []i18n.Text      `json:"insights"`
}

// CapitalBreakdown is the waterfall behind the capital estimate
type CapitalBreakdown struct {
	InventoryCost    decimal.Decimal `json:"inventory_cost"`
	MarketingBudget  decimal.Decimal `json:"marketing_budget"`
	OperatingReserve decimal.Decimal `json:"operating_reserve"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	EmergencyReserve decimal.Decimal `json:"emergency_reserve"`
}

// CapitalRequirement is the tiered capital label and its underlying estimate
type CapitalRequirement struct {
	Tier      int              `json:"tier"` // 0 (smallest) to 5
	Label     i18n.Text        `json:"label"`
	Estimated decimal.Decimal  `json:"estimated"`
	Currency  string           `json:"currency"`
	Breakdown CapitalBreakdown `json:"breakdown"`
}

// TimeToProfit is the banded payback estimate
type TimeToProfit struct {
	Months int       `json:"months"`
	Label  i18n.Text `json:"label"`
}

// DecisionAnalysis exposes the normalized factors behind the success score
type DecisionAnalysis struct {
	DemandFactor      float64     `json:"demand_factor"`
	CompetitionFactor float64     `json:"competition_factor"`
	ProfitFactor      float64     `json:"profit_factor"`
	RiskFactors       []i18n.Text `json:"risk_factors"`
	ConfidenceLevel   Level       `json:"confidence_level"`
}

// ChecklistItem is one viability gate
type ChecklistItem struct {
	ID     string      `json:"id"`
	Label  i18n.Text   `json:"label"`
	Status CheckStatus `json:"status"`
	Value  float64     `json:"value"`
}

// DecisionMetrics is the scored go/no-go decision
type DecisionMetrics struct {
	SuccessScore       int                `json:"success_score"`
	RiskScore          int                `json:"risk_score"`
	BeginnerFriendly   bool               `json:"beginner_friendly"`
	CapitalRequired    CapitalRequirement `json:"capital_required"`
	TimeToProfit       TimeToProfit       `json:"time_to_profit"`
	Recommendation     Recommendation     `json:"recommendation"`
	DetailedAnalysis   DecisionAnalysis   `json:"detailed_analysis"`
	ViabilityChecklist []ChecklistItem    `json:"viability_checklist"`
}

// FailCount returns how many checklist items failed.
func (d *DecisionMetrics) FailCount() int {
	n := 0
	for _, item := range d.ViabilityChecklist {
		if item.Status == CheckFail {
			n++
		}
	}
	return n
}

// ScenarioCosts is the monthly cost breakdown of a growth scenario
type ScenarioCosts struct {
	ProductCosts     decimal.Decimal `json:"product_costs"`
	ShippingCosts    decimal.Decimal `json:"shipping_costs"`
	PlatformFees     decimal.Decimal `json:"platform_fees"`
	MarketingCosts   decimal.Decimal `json:"marketing_costs"`
	OperationalCosts decimal.Decimal `json:"operational_costs"`
	TotalCosts       decimal.Decimal `json:"total_costs"`
	UnitsSold        int             `json:"units_sold"`
	PricePerUnit     decimal.Decimal `json:"price_per_unit"`
	CostPerUnit      decimal.Decimal `json:"cost_per_unit"`
	ProfitPerUnit    decimal.Decimal `json:"profit_per_unit"`
}

// GrowthScenario is one monthly P&L projection
type GrowthScenario struct {
	Key            ScenarioKey     `json:"key"`
	MonthlyRevenue decimal.Decimal `json:"monthly_revenue"`
	MonthlyProfit  decimal.Decimal `json:"monthly_profit"`
	GrowthRate     float64         `json:"growth_rate"` // percent
	Timeframe      i18n.Text       `json:"timeframe"`
	Assumptions    []i18n.Text     `json:"assumptions"`
	CostBreakdown  ScenarioCosts   `json:"cost_breakdown"`
}

// GrowthScenarios holds the three projections and the recommended one
type GrowthScenarios struct {
	Conservative        GrowthScenario `json:"conservative"`
	Moderate            GrowthScenario `json:"moderate"`
	Optimistic          GrowthScenario `json:"optimistic"`
	RecommendedScenario ScenarioKey    `json:"recommended_scenario"`
	ScalabilityFactors  []i18n.Text    `json:"scalability_factors"`
}

// Scenario returns the projection for key, defaulting to moderate.
func (g *GrowthScenarios) Scenario(key ScenarioKey) GrowthScenario {
	switch key {
	case ScenarioConservative:
		return g.Conservative
	case ScenarioOptimistic:
		return g.Optimistic
	default:
		return g.Moderate
	}
}

// Recommended returns the recommended projection.
func (g *GrowthScenarios) Recommended() GrowthScenario {
	return g.Scenario(g.RecommendedScenario)
}

// CriticalMetrics are the five headline display values
type CriticalMetrics struct {
	DemandLevel      string `json:"demand_level"`
	CompetitionLevel string `json:"competition_level"`
	ProfitMargin     string `json:"profit_margin"`
	BuyerIntent      string `json:"buyer_intent"`
	RiskLevel        string `json:"risk_level"`
}

// InvestmentRequired summarizes the money needed to start
type InvestmentRequired struct {
	Initial   decimal.Decimal `json:"initial"`
	Monthly   decimal.Decimal `json:"monthly"`
	BreakEven i18n.Text       `json:"break_even"`
	Currency  string          `json:"currency"`
}

// StrategicRecommendation echoes the final verdict and its reasoning
type StrategicRecommendation struct {
	Recommendation Recommendation `json:"recommendation"`
	Reasoning      i18n.Text      `json:"reasoning"`
}

// ExecutiveSummary is the narrative roll-up of the whole analysis
type ExecutiveSummary struct {
	Language                i18n.Language           `json:"language"`
	OnePageSummary          i18n.Text               `json:"one_page_summary"`
	KeyFindings             []i18n.Text             `json:"key_findings"`
	CriticalMetrics         CriticalMetrics         `json:"critical_metrics"`
	InvestmentRequired      InvestmentRequired      `json:"investment_required"`
	StrategicRecommendation StrategicRecommendation `json:"strategic_recommendation"`
	NextSteps               []i18n.Text             `json:"next_steps"`
}

// MarketAnalysis is the aggregate handed to the rendering and persistence layers
type MarketAnalysis struct {
	ID          uuid.UUID     `json:"id"`
	GeneratedAt time.Time     `json:"generated_at"`
	Language    i18n.Language `json:"language"`

	Query         string                 `json:"query"`
	ItemName      string                 `json:"item_name"`
	MarketStats   MarketStats            `json:"market_stats"`
	Competitors   []CompetitorListing    `json:"competitors"`
	Demand        DemandAnalysis         `json:"demand_analysis"`
	Profitability *ProfitabilityAnalysis `json:"profitability_analysis,omitempty"`

	Profile                MarketProfile          `json:"profile"`
	FinalVerdict           FinalVerdict           `json:"final_verdict"`
	CompetitorIntelligence CompetitorIntelligence `json:"competitor_intelligence"`
	BuyerIntent            BuyerIntentResult      `json:"buyer_intent"`
	DecisionMetrics        DecisionMetrics        `json:"decision_metrics"`
	GrowthScenarios        GrowthScenarios        `json:"growth_scenarios"`
	ExecutiveSummary       ExecutiveSummary       `json:"executive_summary"`
}
