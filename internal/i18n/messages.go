package i18n

// Key identifies a catalog message.
type Key string

type translation struct {
	en string
	ar string
}

// Literal wraps caller-supplied text that has no catalog entry.
const Literal Key = "literal"

// Competitor intelligence.
const (
	GapNoCompetitors     Key = "gap.no_competitors"
	GapValidateDemand    Key = "gap.validate_demand"
	GapUnsaturated       Key = "gap.unsaturated"
	GapModerate          Key = "gap.moderate"
	GapWeakRatings       Key = "gap.weak_ratings"
	GapMediumRatings     Key = "gap.medium_ratings"
	GapWidePriceSpread   Key = "gap.wide_price_spread"
	GapNoEconomyTier     Key = "gap.no_economy_tier"
	GapNoPremiumTier     Key = "gap.no_premium_tier"
	GapSlowShipping      Key = "gap.slow_shipping"
	GapShippingUnclear   Key = "gap.shipping_unclear"
	GapStockOuts         Key = "gap.stock_outs"
	GapPriceClustering   Key = "gap.price_clustering"
	GapWeakService       Key = "gap.weak_service"
	GapContent           Key = "gap.content"
	GapDigitalPresence   Key = "gap.digital_presence"
	GapStableMarket      Key = "gap.stable_market"
	StrengthRating       Key = "competitor.strength.rating"
	StrengthVolume       Key = "competitor.strength.volume"
	StrengthFastShipping Key = "competitor.strength.fast_shipping"
	StrengthInStock      Key = "competitor.strength.in_stock"
	StrengthPresence     Key = "competitor.strength.presence"
	WeaknessRating       Key = "competitor.weakness.rating"
	WeaknessSlowShipping Key = "competitor.weakness.slow_shipping"
	WeaknessOutOfStock   Key = "competitor.weakness.out_of_stock"
	WeaknessHighPrice    Key = "competitor.weakness.high_price"
	WeaknessNone         Key = "competitor.weakness.none"
)

// Buyer intent.
const (
	InsightHighIntent     Key = "intent.insight.high"
	InsightMediumIntent   Key = "intent.insight.medium"
	InsightLowIntent      Key = "intent.insight.low"
	InsightTransactional  Key = "intent.insight.transactional"
	InsightInformational  Key = "intent.insight.informational"
	InsightMixed          Key = "intent.insight.mixed"
	InsightBrandSearches  Key = "intent.insight.brand"
	InsightManyCompetitor Key = "intent.insight.competitive"
)

// Decision metrics.
const (
	RiskLowDemand           Key = "risk.low_demand"
	RiskModerateDemand      Key = "risk.moderate_demand"
	RiskStrongCompetition   Key = "risk.strong_competition"
	RiskModerateCompetition Key = "risk.moderate_competition"
	RiskLowMargin           Key = "risk.low_margin"
	RiskSaturatedMarket     Key = "risk.saturated_market"
	RiskSlowProfit          Key = "risk.slow_profit"
	RiskNone                Key = "risk.none"
	CheckDemand             Key = "check.demand"
	CheckCompetition        Key = "check.competition"
	CheckMargin             Key = "check.margin"
	CheckCapital            Key = "check.capital"
	CheckPayback            Key = "check.payback"
	CheckCompetitorCount    Key = "check.competitor_count"
	CapitalBelow            Key = "capital.below"
	CapitalRange            Key = "capital.range"
	CapitalAbove            Key = "capital.above"
	Months1To2              Key = "time.months_1_2"
	Months2To3              Key = "time.months_2_3"
	Months3To6              Key = "time.months_3_6"
	Months6To9              Key = "time.months_6_9"
	Months9To12             Key = "time.months_9_12"
	Months12To18            Key = "time.months_12_18"
	Months18Plus            Key = "time.months_18_plus"
)

// Growth scenarios.
const (
	TimeframeConservative  Key = "growth.timeframe.conservative"
	TimeframeModerate      Key = "growth.timeframe.moderate"
	TimeframeOptimistic    Key = "growth.timeframe.optimistic"
	AssumeUnits            Key = "growth.assume.units"
	AssumeMarketing        Key = "growth.assume.marketing"
	AssumeCompetition      Key = "growth.assume.competition"
	AssumeConservative     Key = "growth.assume.conservative"
	AssumeModerate         Key = "growth.assume.moderate"
	AssumeOptimistic       Key = "growth.assume.optimistic"
	ScaleDemand            Key = "growth.scale.demand"
	ScaleMargin            Key = "growth.scale.margin"
	ScaleCompetition       Key = "growth.scale.competition"
	ScaleLowPrice          Key = "growth.scale.low_price"
	ScaleChannels          Key = "growth.scale.channels"
	ScaleComplementaryGood Key = "growth.scale.catalog"
)

// Executive summary.
const (
	SummaryNarrative          Key = "summary.narrative"
	FindingStrongDemand       Key = "summary.finding.demand.strong"
	FindingModerateDemand     Key = "summary.finding.demand.moderate"
	FindingWeakDemand         Key = "summary.finding.demand.weak"
	FindingLowCompetition     Key = "summary.finding.competition.low"
	FindingModerateCompetitor Key = "summary.finding.competition.moderate"
	FindingHighCompetition    Key = "summary.finding.competition.high"
	FindingHighMargin         Key = "summary.finding.margin.high"
	FindingModerateMargin     Key = "summary.finding.margin.moderate"
	FindingLowMargin          Key = "summary.finding.margin.low"
	FindingHighIntent         Key = "summary.finding.intent.high"
	FindingBeginnerFriendly   Key = "summary.finding.beginner"
	StrategyGo                Key = "summary.strategy.go"
	StrategyCaution           Key = "summary.strategy.caution"
	StrategyNoGo              Key = "summary.strategy.nogo"
	VerdictComputed           Key = "summary.verdict.computed"
	NextGo1                   Key = "summary.next.go.1"
	NextGo2                   Key = "summary.next.go.2"
	NextGo3                   Key = "summary.next.go.3"
	NextGo4                   Key = "summary.next.go.4"
	NextGo5                   Key = "summary.next.go.5"
	NextCaution1              Key = "summary.next.caution.1"
	NextCaution2              Key = "summary.next.caution.2"
	NextCaution3              Key = "summary.next.caution.3"
	NextCaution4              Key = "summary.next.caution.4"
	NextCaution5              Key = "summary.next.caution.5"
	NextNoGo1                 Key = "summary.next.nogo.1"
	NextNoGo2                 Key = "summary.next.nogo.2"
	NextNoGo3                 Key = "summary.next.nogo.3"
	NextNoGo4                 Key = "summary.next.nogo.4"
	NextNoGo5                 Key = "summary.next.nogo.5"
)

var messages = map[Key]translation{
	Literal: {en: "%s", ar: "%s"},

	GapNoCompetitors: {
		en: "No established competitors found: first-mover opportunity",
		ar: "لا يوجد منافسون راسخون: فرصة للدخول المبكر",
	},
	GapValidateDemand: {
		en: "Validate demand with a small test batch before scaling",
		ar: "تحقق من الطلب بدفعة تجريبية صغيرة قبل التوسع",
	},
	GapUnsaturated: {
		en: "Unsaturated market: only %d active competitors",
		ar: "سوق غير مشبع: %d منافسين نشطين فقط",
	},
	GapModerate: {
		en: "Moderate competition with %d active sellers leaves room for a differentiated entrant",
		ar: "منافسة معتدلة مع %d بائعين نشطين تترك مجالاً لمنافس مميز",
	},
	GapWeakRatings: {
		en: "Low average competitor rating (%.1f/5): a quality-focused offer can win",
		ar: "متوسط تقييم المنافسين منخفض (%.1f/5): عرض يركز على الجودة يمكنه الفوز",
	},
	GapMediumRatings: {
		en: "Average competitor rating of %.1f/5 leaves room for better service",
		ar: "متوسط تقييم المنافسين %.1f/5 يترك مجالاً لخدمة أفضل",
	},
	GapWidePriceSpread: {
		en: "Wide price spread (%d%% of the average price): room for clear positioning",
		ar: "تفاوت كبير في الأسعار (%d%% من متوسط السعر): مجال لتموضع واضح",
	},
	GapNoEconomyTier: {
		en: "No economy offer below %d %s",
		ar: "لا يوجد عرض اقتصادي بأقل من %d %s",
	},
	GapNoPremiumTier: {
		en: "No premium offer above %d %s",
		ar: "لا يوجد عرض فاخر بأكثر من %d %s",
	},
	GapSlowShipping: {
		en: "Slow delivery (%.1f days on average): fast shipping is a differentiator",
		ar: "توصيل بطيء (%.1f أيام في المتوسط): الشحن السريع ميزة تنافسية",
	},
	GapShippingUnclear: {
		en: "Competitors do not state delivery times: publish a clear shipping promise",
		ar: "المنافسون لا يوضحون مدة التوصيل: قدم وعداً واضحاً بالشحن",
	},
	GapStockOuts: {
		en: "%d%% of competitors are out of stock: reliable availability wins sales",
		ar: "%d%% من المنافسين نفدت مخزونهم: التوفر المستمر يكسب المبيعات",
	},
	GapPriceClustering: {
		en: "%d%% of prices cluster around the average: compete on value rather than price",
		ar: "%d%% من الأسعار متقاربة حول المتوسط: نافس بالقيمة بدلاً من السعر",
	},
	GapWeakService: {
		en: "Ratings below 4.2 point to weak after-sales service",
		ar: "التقييمات أقل من 4.2 تشير إلى ضعف خدمة ما بعد البيع",
	},
	GapContent: {
		en: "Few sellers invest in rich product content: better listings stand out",
		ar: "قلة من البائعين يستثمرون في محتوى المنتج: القوائم الأفضل تبرز",
	},
	GapDigitalPresence: {
		en: "Low digital presence among sellers: social and search marketing is open",
		ar: "حضور رقمي ضعيف بين البائعين: التسويق عبر البحث ووسائل التواصل متاح",
	},
	GapStableMarket: {
		en: "Stable market: compete on brand and service quality",
		ar: "سوق مستقر: نافس بالعلامة التجارية وجودة الخدمة",
	},
	StrengthRating: {
		en: "High customer rating (%.1f/5)",
		ar: "تقييم عملاء مرتفع (%.1f/5)",
	},
	StrengthVolume: {
		en: "Strong sales volume",
		ar: "حجم مبيعات قوي",
	},
	StrengthFastShipping: {
		en: "Fast delivery (%d days)",
		ar: "توصيل سريع (%d أيام)",
	},
	StrengthInStock: {
		en: "Consistently in stock",
		ar: "متوفر باستمرار",
	},
	StrengthPresence: {
		en: "Established market presence",
		ar: "حضور راسخ في السوق",
	},
	WeaknessRating: {
		en: "Mixed customer reviews (%.1f/5)",
		ar: "مراجعات عملاء متباينة (%.1f/5)",
	},
	WeaknessSlowShipping: {
		en: "Slow delivery (%d days)",
		ar: "توصيل بطيء (%d أيام)",
	},
	WeaknessOutOfStock: {
		en: "Stock availability issues",
		ar: "مشاكل في توفر المخزون",
	},
	WeaknessHighPrice: {
		en: "Priced above the market average",
		ar: "السعر أعلى من متوسط السوق",
	},
	WeaknessNone: {
		en: "No obvious weakness: compete on differentiation",
		ar: "لا توجد نقطة ضعف واضحة: نافس بالتميز",
	},

	InsightHighIntent: {
		en: "Strong purchase intent: prioritize conversion-ready listings",
		ar: "نية شراء قوية: ركز على قوائم جاهزة للتحويل",
	},
	InsightMediumIntent: {
		en: "Moderate purchase intent: combine informative content with offers",
		ar: "نية شراء متوسطة: اجمع بين المحتوى التعريفي والعروض",
	},
	InsightLowIntent: {
		en: "Low purchase intent: build awareness before heavy ad spend",
		ar: "نية شراء منخفضة: ابنِ الوعي قبل الإنفاق الإعلاني الكبير",
	},
	InsightTransactional: {
		en: "Searches are transactional: buyers compare prices and offers",
		ar: "عمليات البحث شرائية: المشترون يقارنون الأسعار والعروض",
	},
	InsightInformational: {
		en: "Searches are informational: buyers are still researching",
		ar: "عمليات البحث معلوماتية: المشترون ما زالوا في مرحلة البحث",
	},
	InsightMixed: {
		en: "Mixed search intent: serve both research and purchase needs",
		ar: "نية بحث مختلطة: لبِّ احتياجات البحث والشراء معاً",
	},
	InsightBrandSearches: {
		en: "Brand-specific searches detected: authorized branded stock matters",
		ar: "تم رصد عمليات بحث عن علامات تجارية: المخزون الأصلي المعتمد مهم",
	},
	InsightManyCompetitor: {
		en: "Many sellers compete for this query: differentiation is essential",
		ar: "العديد من البائعين يتنافسون على هذا البحث: التميز ضروري",
	},

	RiskLowDemand: {
		en: "Low market demand (%d/100)",
		ar: "طلب منخفض في السوق (%d/100)",
	},
	RiskModerateDemand: {
		en: "Moderate market demand (%d/100)",
		ar: "طلب متوسط في السوق (%d/100)",
	},
	RiskStrongCompetition: {
		en: "Strong competition (strength %d/100)",
		ar: "منافسة قوية (القوة %d/100)",
	},
	RiskModerateCompetition: {
		en: "Moderate competition (strength %d/100)",
		ar: "منافسة متوسطة (القوة %d/100)",
	},
	RiskLowMargin: {
		en: "Low profit margin (%.1f%%)",
		ar: "هامش ربح منخفض (%.1f%%)",
	},
	RiskSaturatedMarket: {
		en: "Highly saturated market (%d competitors)",
		ar: "سوق مشبع جداً (%d منافسين)",
	},
	RiskSlowProfit: {
		en: "Long time to profit (%d months)",
		ar: "وقت طويل لتحقيق الربح (%d أشهر)",
	},
	RiskNone: {
		en: "No major risk factors identified",
		ar: "لم يتم تحديد عوامل مخاطرة رئيسية",
	},
	CheckDemand: {
		en: "Market demand above 50",
		ar: "الطلب في السوق أعلى من 50",
	},
	CheckCompetition: {
		en: "Competitor strength below 60",
		ar: "قوة المنافسين أقل من 60",
	},
	CheckMargin: {
		en: "Profit margin above 20%%",
		ar: "هامش الربح أعلى من 20%%",
	},
	CheckCapital: {
		en: "Capital required below %d %s",
		ar: "رأس المال المطلوب أقل من %d %s",
	},
	CheckPayback: {
		en: "Time to profit under 6 months",
		ar: "الوقت لتحقيق الربح أقل من 6 أشهر",
	},
	CheckCompetitorCount: {
		en: "Fewer than 15 competitors",
		ar: "أقل من 15 منافساً",
	},
	CapitalBelow: {
		en: "Less than %d %s",
		ar: "أقل من %d %s",
	},
	CapitalRange: {
		en: "%d - %d %s",
		ar: "%d - %d %s",
	},
	CapitalAbove: {
		en: "More than %d %s",
		ar: "أكثر من %d %s",
	},
	Months1To2:   {en: "1-2 months", ar: "1-2 شهر"},
	Months2To3:   {en: "2-3 months", ar: "2-3 أشهر"},
	Months3To6:   {en: "3-6 months", ar: "3-6 أشهر"},
	Months6To9:   {en: "6-9 months", ar: "6-9 أشهر"},
	Months9To12:  {en: "9-12 months", ar: "9-12 شهراً"},
	Months12To18: {en: "12-18 months", ar: "12-18 شهراً"},
	Months18Plus: {en: "18+ months", ar: "أكثر من 18 شهراً"},

	TimeframeConservative: {en: "Months 1-3", ar: "الأشهر 1-3"},
	TimeframeModerate:     {en: "Months 4-6", ar: "الأشهر 4-6"},
	TimeframeOptimistic:   {en: "Months 7-12", ar: "الأشهر 7-12"},
	AssumeUnits: {
		en: "%d units sold per month",
		ar: "بيع %d وحدة شهرياً",
	},
	AssumeMarketing: {
		en: "Marketing spend at %d%% of revenue",
		ar: "إنفاق تسويقي بنسبة %d%% من الإيرادات",
	},
	AssumeCompetition: {
		en: "Competition adjustment factor %.1f",
		ar: "معامل تعديل المنافسة %.1f",
	},
	AssumeConservative: {
		en: "Cautious launch with limited inventory",
		ar: "إطلاق حذر بمخزون محدود",
	},
	AssumeModerate: {
		en: "Steady growth from established listings",
		ar: "نمو ثابت من قوائم راسخة",
	},
	AssumeOptimistic: {
		en: "Volume discounts of 5%% on product cost and 10%% on shipping",
		ar: "خصومات الكمية 5%% على تكلفة المنتج و10%% على الشحن",
	},
	ScaleDemand: {
		en: "Strong demand supports scaling volume",
		ar: "الطلب القوي يدعم زيادة الحجم",
	},
	ScaleMargin: {
		en: "Healthy margins leave room to reinvest in growth",
		ar: "الهوامش الجيدة تتيح إعادة الاستثمار في النمو",
	},
	ScaleCompetition: {
		en: "Manageable competition allows market share gains",
		ar: "المنافسة المعقولة تسمح بزيادة الحصة السوقية",
	},
	ScaleLowPrice: {
		en: "Affordable price point supports repeat and impulse purchases",
		ar: "السعر المناسب يدعم الشراء المتكرر والعفوي",
	},
	ScaleChannels: {
		en: "Expand to additional marketplaces and sales channels",
		ar: "التوسع إلى متاجر وقنوات بيع إضافية",
	},
	ScaleComplementaryGood: {
		en: "Add complementary products to raise average order value",
		ar: "إضافة منتجات مكملة لرفع متوسط قيمة الطلب",
	},

	SummaryNarrative: {
		en: "Market analysis for %s: the verdict is %s. Demand scores %d/100 and competitor strength is %d/100 with %s entry difficulty. The estimated profit margin is %.1f%% and buyer intent is %s. The %s growth scenario is recommended, projecting a monthly profit of %d %s. Overall risk score: %d/100.",
		ar: "تحليل السوق لـ %s: القرار هو %s. درجة الطلب %d/100 وقوة المنافسين %d/100 مع صعوبة دخول %s. هامش الربح المقدر %.1f%% ونية الشراء %s. يوصى بسيناريو النمو %s بربح شهري متوقع %d %s. درجة المخاطرة الإجمالية: %d/100.",
	},
	FindingStrongDemand: {
		en: "Strong market demand (%d/100)",
		ar: "طلب قوي في السوق (%d/100)",
	},
	FindingModerateDemand: {
		en: "Moderate market demand (%d/100)",
		ar: "طلب متوسط في السوق (%d/100)",
	},
	FindingWeakDemand: {
		en: "Weak market demand (%d/100)",
		ar: "طلب ضعيف في السوق (%d/100)",
	},
	FindingLowCompetition: {
		en: "Low competitive pressure (strength %d/100)",
		ar: "ضغط تنافسي منخفض (القوة %d/100)",
	},
	FindingModerateCompetitor: {
		en: "Moderate competitive pressure (strength %d/100)",
		ar: "ضغط تنافسي متوسط (القوة %d/100)",
	},
	FindingHighCompetition: {
		en: "High competitive pressure (strength %d/100)",
		ar: "ضغط تنافسي مرتفع (القوة %d/100)",
	},
	FindingHighMargin: {
		en: "Attractive profit margin (%.1f%%)",
		ar: "هامش ربح جذاب (%.1f%%)",
	},
	FindingModerateMargin: {
		en: "Acceptable profit margin (%.1f%%)",
		ar: "هامش ربح مقبول (%.1f%%)",
	},
	FindingLowMargin: {
		en: "Thin profit margin (%.1f%%)",
		ar: "هامش ربح ضئيل (%.1f%%)",
	},
	FindingHighIntent: {
		en: "Buyers show high purchase intent",
		ar: "المشترون يظهرون نية شراء عالية",
	},
	FindingBeginnerFriendly: {
		en: "Suitable for first-time sellers",
		ar: "مناسب للبائعين المبتدئين",
	},
	StrategyGo: {
		en: "Proceed: the opportunity clears the viability checks with a success score of %d/100",
		ar: "امضِ قدماً: الفرصة تجتاز فحوصات الجدوى بدرجة نجاح %d/100",
	},
	StrategyCaution: {
		en: "Proceed with caution: the success score of %d/100 carries material risks",
		ar: "امضِ بحذر: درجة النجاح %d/100 تحمل مخاطر جوهرية",
	},
	StrategyNoGo: {
		en: "Do not proceed: the success score of %d/100 does not justify the investment",
		ar: "لا تمضِ قدماً: درجة النجاح %d/100 لا تبرر الاستثمار",
	},
	VerdictComputed: {
		en: "Success score %d/100 with %d failed viability checks",
		ar: "درجة النجاح %d/100 مع %d فحوصات جدوى فاشلة",
	},
	NextGo1:      {en: "Secure reliable suppliers and negotiate volume pricing", ar: "أمّن موردين موثوقين وتفاوض على أسعار الكميات"},
	NextGo2:      {en: "Order an initial inventory sized to the recommended scenario", ar: "اطلب مخزوناً أولياً يناسب السيناريو الموصى به"},
	NextGo3:      {en: "Build optimized listings with strong photos and descriptions", ar: "أنشئ قوائم محسنة بصور وأوصاف قوية"},
	NextGo4:      {en: "Launch targeted marketing campaigns on the main marketplaces", ar: "أطلق حملات تسويقية موجهة على المتاجر الرئيسية"},
	NextGo5:      {en: "Track sales and margins weekly and reinvest in growth", ar: "تابع المبيعات والهوامش أسبوعياً وأعد الاستثمار في النمو"},
	NextCaution1: {en: "Validate demand with a small test order first", ar: "تحقق من الطلب بطلبية تجريبية صغيرة أولاً"},
	NextCaution2: {en: "Find a differentiation angle competitors are missing", ar: "ابحث عن زاوية تميز يفتقدها المنافسون"},
	NextCaution3: {en: "Negotiate lower product costs to protect the margin", ar: "تفاوض على تكاليف منتج أقل لحماية الهامش"},
	NextCaution4: {en: "Keep marketing spend small until conversion is proven", ar: "أبقِ الإنفاق التسويقي محدوداً حتى يثبت التحويل"},
	NextCaution5: {en: "Set clear stop-loss criteria before scaling", ar: "حدد معايير واضحة لإيقاف الخسارة قبل التوسع"},
	NextNoGo1:    {en: "Avoid committing capital to this product now", ar: "تجنب استثمار رأس المال في هذا المنتج حالياً"},
	NextNoGo2:    {en: "Research adjacent products with stronger demand", ar: "ابحث عن منتجات قريبة ذات طلب أقوى"},
	NextNoGo3:    {en: "Look for niches with weaker competition", ar: "ابحث عن أسواق متخصصة بمنافسة أضعف"},
	NextNoGo4:    {en: "Revisit this market if costs or demand change", ar: "أعد النظر في هذا السوق إذا تغيرت التكاليف أو الطلب"},
	NextNoGo5:    {en: "Run a new analysis on alternative product ideas", ar: "أجرِ تحليلاً جديداً لأفكار منتجات بديلة"},
}
