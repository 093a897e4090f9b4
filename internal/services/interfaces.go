package services

import (
	"github.com/irfndi/opportunity-scoring/internal/models"
)

// ProfileStage resolves request defaults into a MarketProfile
type ProfileStage interface {
	Build(req *models.AnalysisRequest) models.MarketProfile
}

// CompetitorStage scores competitor listings
type CompetitorStage interface {
	Analyze(competitors []models.CompetitorListing, totalMarketCompetitors int) models.CompetitorIntelligence
}

// IntentStage scores buyer intent for a search query
type IntentStage interface {
	Analyze(query, product string, demandScore float64, competitors []models.CompetitorListing) models.BuyerIntentResult
}

// DecisionStage produces the GO/CAUTION/NO-GO decision
type DecisionStage interface {
	Calculate(in DecisionInput) models.DecisionMetrics
}

// GrowthStage projects growth scenarios
type GrowthStage interface {
	Project(profile models.MarketProfile, competitorStrength float64, intent *models.BuyerIntentResult) models.GrowthScenarios
}

// SummaryStage builds the executive summary
type SummaryStage interface {
	Generate(in SummaryInput) models.ExecutiveSummary
}

var (
	_ ProfileStage    = (*ProfileBuilder)(nil)
	_ CompetitorStage = (*CompetitorIntelligenceAnalyzer)(nil)
	_ IntentStage     = (*BuyerIntentAnalyzer)(nil)
	_ DecisionStage   = (*DecisionMetricsCalculator)(nil)
	_ GrowthStage     = (*GrowthScenarioProjector)(nil)
	_ SummaryStage    = (*ExecutiveSummaryGenerator)(nil)
)
