package services

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/irfndi/opportunity-scoring/internal/config"
	"github.com/irfndi/opportunity-scoring/internal/i18n"
	"github.com/irfndi/opportunity-scoring/internal/logging"
	"github.com/irfndi/opportunity-scoring/internal/models"
)

// Keyword bucket caps.
const (
	maxTransactionalKeywords = 8
	maxInformationalKeywords = 6
	maxBrandKeywords         = 5
)

// Float64Source yields values in [0, 1). *rand.Rand from math/rand/v2 satisfies it.
type Float64Source interface {
	Float64() float64
}

// conversionBand is the [low, low+width) range a conversion probability is drawn from.
type conversionBand struct {
	low   float64
	width float64
}

var conversionBands = map[models.Level]conversionBand{
	models.LevelHigh:   {low: 0.60, width: 0.15},
	models.LevelMedium: {low: 0.30, width: 0.15},
	models.LevelLow:    {low: 0.10, width: 0.15},
}

var journeyStages = map[models.SearchIntentType]models.JourneyStage{
	models.IntentInformational: models.StageAwareness,
	models.IntentMixed:         models.StageConsideration,
	models.IntentTransactional: models.StageDecision,
}

var (
	transactionalTerms = []string{
		"buy", "price", "cheap", "discount", "deal", "offer", "sale", "order", "shop", "coupon", "delivery", "cost",
		"شراء", "اشتري", "سعر", "اسعار", "أسعار", "رخيص", "خصم", "عرض", "عروض", "تخفيض", "طلب", "توصيل",
	}
	informationalTerms = []string{
		"how", "what", "why", "which", "review", "compare", "comparison", "guide", "best", "tips", "specs", "difference",
		"كيف", "ما هو", "ماهو", "لماذا", "مراجعة", "مقارنة", "افضل", "أفضل", "دليل", "مواصفات", "الفرق",
	}
	brandTerms = []string{
		"apple", "iphone", "samsung", "galaxy", "huawei", "xiaomi", "sony", "nike", "adidas", "dell", "lenovo", "asus", "playstation",
		"أبل", "ابل", "ايفون", "آيفون", "سامسونج", "هواوي", "شاومي", "سوني", "نايكي", "اديداس",
	}
)

// Phrase templates used to fill keyword buckets the query itself does not cover.
var (
	transactionalTemplates = map[i18n.Language][]string{
		i18n.English: {"buy %s", "%s price", "%s best price", "%s offers", "%s discount", "cheap %s", "%s online", "order %s"},
		i18n.Arabic:  {"شراء %s", "سعر %s", "أفضل سعر %s", "عروض %s", "خصم %s", "%s رخيص", "%s اونلاين", "طلب %s"},
	}
	informationalTemplates = map[i18n.Language][]string{
		i18n.English: {"%s review", "best %s", "%s specifications", "%s comparison", "how to choose %s", "%s vs alternatives"},
		i18n.Arabic:  {"مراجعة %s", "أفضل %s", "مواصفات %s", "مقارنة %s", "كيف تختار %s", "%s مقابل البدائل"},
	}
	genericProductName = map[i18n.Language]string{
		i18n.English: "product",
		i18n.Arabic:  "منتج",
	}
)

// BuyerIntentAnalyzer estimates purchase intent from the search query
type BuyerIntentAnalyzer struct {
	cfg    config.ScoringConfig
	logger *logrus.Entry

	mu     sync.Mutex
	source Float64Source
}

// BuyerIntentOption configures a BuyerIntentAnalyzer
type BuyerIntentOption func(*BuyerIntentAnalyzer)

// WithRandomSource sets the source used to jitter the conversion probability
// within its band. Without one the band midpoint is used.
func WithRandomSource(src Float64Source) BuyerIntentOption {
	return func(a *BuyerIntentAnalyzer) {
		a.source = src
	}
}

// NewBuyerIntentAnalyzer creates a new buyer intent analyzer
func NewBuyerIntentAnalyzer(cfg *config.ScoringConfig, logger *logrus.Logger, opts ...BuyerIntentOption) *BuyerIntentAnalyzer {
	a := &BuyerIntentAnalyzer{
		cfg:    scoringConfigOrDefault(cfg),
		logger: logging.WithComponent(logger, "buyer_intent"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze scores the query. product names the item in synthesized phrases; when blank
// it is taken from the query with its intent words removed. demandScore is clamped to [0,100].
func (a *BuyerIntentAnalyzer) Analyze(query, product string, demandScore float64, competitors []models.CompetitorListing) models.BuyerIntentResult {
	normalized := strings.ToLower(strings.TrimSpace(query))
	lang := i18n.DetectLanguage(query)
	product = productName(product, query, lang)

	transactional, tCount := matchTerms(normalized, transactionalTerms, maxTransactionalKeywords)
	informational, iCount := matchTerms(normalized, informationalTerms, maxInformationalKeywords)
	brands, bCount := matchTerms(normalized, brandTerms, maxBrandKeywords)

	transactional = fillFromTemplates(transactional, transactionalTemplates[lang], product, maxTransactionalKeywords)
	informational = fillFromTemplates(informational, informationalTemplates[lang], product, maxInformationalKeywords)
	brands = fillBrandPhrases(brands, product, a.brandSources(competitors), maxBrandKeywords)

	intentType := classifyIntent(tCount, iCount)
	competitorBonus := 2 * len(competitors)
	if competitorBonus > 20 {
		competitorBonus = 20
	}
	score := roundScore(50 +
		10*float64(tCount) +
		5*float64(bCount) -
		5*float64(iCount) +
		20*(clampScore(demandScore)/100) +
		float64(competitorBonus))
	level := intentLevel(score)

	insights := []i18n.Text{levelInsight(level), typeInsight(intentType)}
	if bCount > 0 {
		insights = append(insights, i18n.T(i18n.InsightBrandSearches))
	}
	if len(competitors) > 5 {
		insights = append(insights, i18n.T(i18n.InsightManyCompetitor))
	}

	result := models.BuyerIntentResult{
		IntentScore:       score,
		IntentLevel:       level,
		SearchIntentType:  intentType,
		BuyerJourneyStage: journeyStages[intentType],
		KeywordAnalysis: models.KeywordAnalysis{
			TransactionalKeywords: transactional,
			InformationalKeywords: informational,
			BrandKeywords:         brands,
			TransactionalCount:    tCount,
			InformationalCount:    iCount,
			BrandCount:            bCount,
		},
		ConversionProbability: a.conversionProbability(level),
		Insights:              insights,
	}

	a.logger.WithFields(logrus.Fields{
		"query":         query,
		"language":      lang,
		"transactional": tCount,
		"informational": iCount,
		"brand":         bCount,
		"intent_score":  score,
		"intent_type":   intentType,
	}).Debug("Analyzed buyer intent")

	return result
}

func (a *BuyerIntentAnalyzer) conversionProbability(level models.Level) float64 {
	band := conversionBands[level]
	if a.source == nil {
		return band.low + band.width/2
	}
	a.mu.Lock()
	r := a.source.Float64()
	a.mu.Unlock()
	return band.low + clamp(r, 0, 1)*band.width
}

// brandSources returns the first competitor store names, or the configured
// generic marketplaces when no competitor has a name.
func (a *BuyerIntentAnalyzer) brandSources(competitors []models.CompetitorListing) []string {
	names := make([]string, 0, maxBrandKeywords)
	for _, c := range competitors {
		if len(names) == maxBrandKeywords {
			break
		}
		if name := strings.TrimSpace(c.StoreName); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		names = append(names, a.cfg.GenericMarketplaces...)
	}
	return names
}

// productName strips intent words from the supplied name, or from the query when no
// name is given, so templates never repeat them.
func productName(product, query string, lang i18n.Language) string {
	source := strings.TrimSpace(product)
	if source == "" {
		source = query
	}
	kept := make([]string, 0, 4)
	for _, word := range strings.Fields(source) {
		if !intentStopWords[strings.ToLower(word)] {
			kept = append(kept, word)
		}
	}
	if len(kept) == 0 {
		return genericProductName[lang]
	}
	return strings.Join(kept, " ")
}

// intentStopWords holds every word of the transactional and informational
// dictionaries plus the connectives that only make sense around them.
var intentStopWords = func() map[string]bool {
	words := map[string]bool{}
	for _, terms := range [][]string{transactionalTerms, informationalTerms} {
		for _, term := range terms {
			for _, w := range strings.Fields(term) {
				words[w] = true
			}
		}
	}
	for _, w := range []string{"to", "a", "an", "the", "for", "of", "vs", "choose", "في", "عن"} {
		words[w] = true
	}
	return words
}()

// matchTerms counts dictionary terms contained in the query and keeps up to limit of them.
func matchTerms(query string, terms []string, limit int) ([]string, int) {
	matched := make([]string, 0, limit)
	count := 0
	if query == "" {
		return matched, 0
	}
	for _, term := range terms {
		if strings.Contains(query, term) {
			count++
			if len(matched) < limit {
				matched = append(matched, term)
			}
		}
	}
	return matched, count
}

func fillFromTemplates(keywords, templates []string, product string, limit int) []string {
	for _, tpl := range templates {
		if len(keywords) >= limit {
			break
		}
		keywords = appendUnique(keywords, fmt.Sprintf(tpl, product))
	}
	return keywords
}

func fillBrandPhrases(keywords []string, product string, sources []string, limit int) []string {
	for _, src := range sources {
		if len(keywords) >= limit {
			break
		}
		keywords = appendUnique(keywords, product+" "+src)
	}
	return keywords
}

func appendUnique(list []string, s string) []string {
	for _, existing := range list {
		if strings.EqualFold(existing, s) {
			return list
		}
	}
	return append(list, s)
}

func classifyIntent(transactional, informational int) models.SearchIntentType {
	switch {
	case transactional > 2*informational:
		return models.IntentTransactional
	case informational > 2*transactional:
		return models.IntentInformational
	default:
		return models.IntentMixed
	}
}

func intentLevel(score int) models.Level {
	switch {
	case score >= 70:
		return models.LevelHigh
	case score >= 40:
		return models.LevelMedium
	default:
		return models.LevelLow
	}
}

func levelInsight(level models.Level) i18n.Text {
	switch level {
	case models.LevelHigh:
		return i18n.T(i18n.InsightHighIntent)
	case models.LevelMedium:
		return i18n.T(i18n.InsightMediumIntent)
	default:
		return i18n.T(i18n.InsightLowIntent)
	}
}

func typeInsight(t models.SearchIntentType) i18n.Text {
	switch t {
	case models.IntentTransactional:
		return i18n.T(i18n.InsightTransactional)
	case models.IntentInformational:
		return i18n.T(i18n.InsightInformational)
	default:
		return i18n.T(i18n.InsightMixed)
	}
}
