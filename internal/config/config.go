package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/irfndi/opportunity-scoring/internal/i18n"
	"github.com/irfndi/opportunity-scoring/internal/utils"
)

type Config struct {
	Environment string          `mapstructure:"environment"`
	LogLevel    string          `mapstructure:"log_level"`
	Language    string          `mapstructure:"default_language"`
	Scoring     ScoringConfig   `mapstructure:"scoring"`
	Telemetry   TelemetryConfig `mapstructure:"telemetry"`
}

// ScoringConfig holds the currency and region assumptions of the scoring pipeline.
// Every monetary constant the analyzers use lives here so the same scoring logic
// can be reparameterized for another market.
type ScoringConfig struct {
	Currency              string                `mapstructure:"currency"`
	CapitalTiers          []float64             `mapstructure:"capital_tiers"`
	OperatingCostMonthly  float64               `mapstructure:"operating_cost_monthly"`
	RunwayMonths          int                   `mapstructure:"runway_months"`
	MarketingBudgetRatio  float64               `mapstructure:"marketing_budget_ratio"`
	EmergencyReserveRatio float64               `mapstructure:"emergency_reserve_ratio"`
	ProductCostRatio      float64               `mapstructure:"product_cost_ratio"`
	ShippingCostRatio     float64               `mapstructure:"shipping_cost_ratio"`
	PlatformFeeRate       float64               `mapstructure:"platform_fee_rate"`
	DefaultBreakEvenUnits int                   `mapstructure:"default_break_even_units"`
	LowPriceThreshold     float64               `mapstructure:"low_price_threshold"`
	CapitalPassLimit      float64               `mapstructure:"capital_pass_limit"`
	CapitalWarnLimit      float64               `mapstructure:"capital_warn_limit"`
	BeginnerCapitalLimit  float64               `mapstructure:"beginner_capital_limit"`
	GenericMarketplaces   []string              `mapstructure:"generic_marketplaces"`
	OperationalBaseCosts  OperationalCostConfig `mapstructure:"operational_base_costs"`
}

// OperationalCostConfig is the fixed monthly overhead per growth scenario
type OperationalCostConfig struct {
	Conservative float64 `mapstructure:"conservative"`
	Moderate     float64 `mapstructure:"moderate"`
	Optimistic   float64 `mapstructure:"optimistic"`
}

type TelemetryConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name"`
	Exporter    string `mapstructure:"exporter"` // stdout or otlp
	Endpoint    string `mapstructure:"endpoint"`
	ExportLogs  bool   `mapstructure:"export_logs"`
}

// DefaultScoringConfig returns the Saudi-market defaults without touching viper.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		Currency:              "SAR",
		CapitalTiers:          []float64{5000, 15000, 30000, 60000, 100000},
		OperatingCostMonthly:  1500,
		RunwayMonths:          3,
		MarketingBudgetRatio:  0.15,
		EmergencyReserveRatio: 0.20,
		ProductCostRatio:      0.40,
		ShippingCostRatio:     0.10,
		PlatformFeeRate:       0.15,
		DefaultBreakEvenUnits: 100,
		LowPriceThreshold:     500,
		CapitalPassLimit:      30000,
		CapitalWarnLimit:      60000,
		BeginnerCapitalLimit:  25000,
		GenericMarketplaces:   []string{"Amazon", "Noon", "Jarir"},
		OperationalBaseCosts: OperationalCostConfig{
			Conservative: 500,
			Moderate:     800,
			Optimistic:   1200,
		},
	}
}

// Default returns a complete development configuration.
func Default() *Config {
	return &Config{
		Environment: "development",
		LogLevel:    "info",
		Language:    string(i18n.English),
		Scoring:     DefaultScoringConfig(),
		Telemetry: TelemetryConfig{
			Enabled:     false,
			ServiceName: "opportunity-scoring",
			Exporter:    "stdout",
			Endpoint:    "http://localhost:4318",
		},
	}
}

func Load() (*Config, error) {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Config file not found, use defaults and environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.Environment = strings.ToLower(config.Environment)
	config.Scoring.Currency = strings.ToUpper(strings.TrimSpace(config.Scoring.Currency))
	config.Telemetry.Exporter = strings.ToLower(strings.TrimSpace(config.Telemetry.Exporter))

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate checks the values the analyzers depend on.
func (c *Config) Validate() error {
	if _, err := i18n.ParseLanguage(c.Language); err != nil {
		return utils.NewValidationError("default_language", err.Error())
	}
	if c.Telemetry.Enabled && c.Telemetry.Exporter != "stdout" && c.Telemetry.Exporter != "otlp" {
		return utils.NewValidationErrorf("telemetry.exporter", "must be stdout or otlp, got %q", c.Telemetry.Exporter)
	}
	if c.Telemetry.ExportLogs && c.Telemetry.Exporter != "otlp" {
		return utils.NewValidationError("telemetry.export_logs", "requires the otlp exporter")
	}
	return c.Scoring.Validate()
}

// Validate checks the scoring parameters.
func (s *ScoringConfig) Validate() error {
	if s.Currency == "" {
		return utils.NewValidationError("scoring.currency", "must not be empty")
	}
	if len(s.CapitalTiers) != 5 {
		return utils.NewValidationErrorf("scoring.capital_tiers", "expected 5 boundaries, got %d", len(s.CapitalTiers))
	}
	for i, bound := range s.CapitalTiers {
		if bound <= 0 {
			return utils.NewValidationErrorf("scoring.capital_tiers", "boundary %d must be positive", i)
		}
		if i > 0 && bound <= s.CapitalTiers[i-1] {
			return utils.NewValidationError("scoring.capital_tiers", "boundaries must be strictly ascending")
		}
	}
	if s.RunwayMonths <= 0 {
		return utils.NewValidationErrorf("scoring.runway_months", "must be positive, got %d", s.RunwayMonths)
	}
	if s.DefaultBreakEvenUnits <= 0 {
		return utils.NewValidationErrorf("scoring.default_break_even_units", "must be positive, got %d", s.DefaultBreakEvenUnits)
	}
	ratios := map[string]float64{
		"scoring.marketing_budget_ratio":  s.MarketingBudgetRatio,
		"scoring.emergency_reserve_ratio": s.EmergencyReserveRatio,
		"scoring.product_cost_ratio":      s.ProductCostRatio,
		"scoring.shipping_cost_ratio":     s.ShippingCostRatio,
		"scoring.platform_fee_rate":       s.PlatformFeeRate,
	}
	for field, ratio := range ratios {
		if ratio < 0 || ratio > 1 {
			return utils.NewValidationErrorf(field, "must be between 0 and 1, got %v", ratio)
		}
	}
	if s.OperatingCostMonthly < 0 || s.LowPriceThreshold < 0 || s.BeginnerCapitalLimit < 0 {
		return utils.NewValidationError("scoring", "monetary values must not be negative")
	}
	if s.CapitalPassLimit <= 0 || s.CapitalWarnLimit <= s.CapitalPassLimit {
		return utils.NewValidationError("scoring.capital_warn_limit", "must exceed a positive capital_pass_limit")
	}
	ops := s.OperationalBaseCosts
	if ops.Conservative < 0 || ops.Moderate < 0 || ops.Optimistic < 0 {
		return utils.NewValidationError("scoring.operational_base_costs", "must not be negative")
	}
	return nil
}

// DefaultLanguage returns the configured presentation language.
func (c *Config) DefaultLanguage() i18n.Language {
	lang, err := i18n.ParseLanguage(c.Language)
	if err != nil {
		return i18n.English
	}
	return lang
}

func setDefaults(v *viper.Viper) {
	d := DefaultScoringConfig()

	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("default_language", "en")

	v.SetDefault("scoring.currency", d.Currency)
	v.SetDefault("scoring.capital_tiers", d.CapitalTiers)
	v.SetDefault("scoring.operating_cost_monthly", d.OperatingCostMonthly)
	v.SetDefault("scoring.runway_months", d.RunwayMonths)
	v.SetDefault("scoring.marketing_budget_ratio", d.MarketingBudgetRatio)
	v.SetDefault("scoring.emergency_reserve_ratio", d.EmergencyReserveRatio)
	v.SetDefault("scoring.product_cost_ratio", d.ProductCostRatio)
	v.SetDefault("scoring.shipping_cost_ratio", d.ShippingCostRatio)
	v.SetDefault("scoring.platform_fee_rate", d.PlatformFeeRate)
	v.SetDefault("scoring.default_break_even_units", d.DefaultBreakEvenUnits)
	v.SetDefault("scoring.low_price_threshold", d.LowPriceThreshold)
	v.SetDefault("scoring.capital_pass_limit", d.CapitalPassLimit)
	v.SetDefault("scoring.capital_warn_limit", d.CapitalWarnLimit)
	v.SetDefault("scoring.beginner_capital_limit", d.BeginnerCapitalLimit)
	v.SetDefault("scoring.generic_marketplaces", d.GenericMarketplaces)
	v.SetDefault("scoring.operational_base_costs.conservative", d.OperationalBaseCosts.Conservative)
	v.SetDefault("scoring.operational_base_costs.moderate", d.OperationalBaseCosts.Moderate)
	v.SetDefault("scoring.operational_base_costs.optimistic", d.OperationalBaseCosts.Optimistic)

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "opportunity-scoring")
	v.SetDefault("telemetry.exporter", "stdout")
	v.SetDefault("telemetry.endpoint", "http://localhost:4318")
	v.SetDefault("telemetry.export_logs", false)
}
