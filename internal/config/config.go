package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete pipeline configuration.
type Config struct {
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Funnel   FunnelConfig   `yaml:"funnel" envconfig:"FUNNEL"`
	Outliers OutliersConfig `yaml:"outliers" envconfig:"OUTLIERS"`
	Products ProductsConfig `yaml:"products" envconfig:"PRODUCTS"`
}

// PathsConfig contains input and output file locations.
type PathsConfig struct {
	SessionFile string `yaml:"session_file" envconfig:"SESSION_FILE"`
	ProductFile string `yaml:"product_file" envconfig:"PRODUCT_FILE"`
	OutputDir   string `yaml:"output_dir" envconfig:"OUTPUT_DIR"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL"`
	Format string `yaml:"format" envconfig:"FORMAT"`
}

// FunnelConfig names the funnel stage columns in depth order and the
// display labels that pair with them. The last stage column is the
// transaction stage used for the converter flag.
type FunnelConfig struct {
	Stages      []string `yaml:"stages" envconfig:"STAGES"`
	StageLabels []string `yaml:"stage_labels" envconfig:"STAGE_LABELS"`
}

// OutliersConfig holds the bot-detection and capping thresholds.
type OutliersConfig struct {
	// RevenueCapPercentile is the percentile of positive transaction
	// revenue at which converter revenue is winsorized.
	RevenueCapPercentile float64 `yaml:"revenue_cap_percentile" envconfig:"REVENUE_CAP_PERCENTILE"`
	// MaxPageviews marks sessions beyond this as bots or crawlers.
	MaxPageviews int `yaml:"max_pageviews" envconfig:"MAX_PAGEVIEWS"`
	// MaxTimeOnSite caps session duration; longer sessions are likely
	// abandoned tabs.
	MaxTimeOnSite int `yaml:"max_time_on_site" envconfig:"MAX_TIME_ON_SITE"`
	// MaxPagesPerSecond flags navigation faster than a human can browse.
	MaxPagesPerSecond float64 `yaml:"max_pages_per_second" envconfig:"MAX_PAGES_PER_SECOND"`
	// MinPageviewsForSpeedCheck exempts short sessions from the speed
	// check so near-instant single-page loads are not flagged.
	MinPageviewsForSpeedCheck int `yaml:"min_pageviews_for_speed_check" envconfig:"MIN_PAGEVIEWS_FOR_SPEED_CHECK"`
}

// ProductsConfig controls product-category normalization.
type ProductsConfig struct {
	// Placeholders are category values treated as "not set" by the
	// source system and mapped to Uncategorized.
	Placeholders []string `yaml:"placeholders" envconfig:"PLACEHOLDERS"`
	// CategoryPrefix is the leading path segment stripped from
	// category values.
	CategoryPrefix string `yaml:"category_prefix" envconfig:"CATEGORY_PREFIX"`
}

// Default returns the configuration with documented defaults.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			SessionFile: "data/session_funnel.csv",
			ProductFile: "data/product_performance.csv",
			OutputDir:   "data",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Funnel: FunnelConfig{
			Stages: []string{
				"reached_home",
				"reached_category_view",
				"reached_product_view",
				"reached_add_to_cart",
				"reached_checkout",
				"reached_transaction",
			},
			StageLabels: []string{
				"Home",
				"Category View",
				"Product View",
				"Add to Cart",
				"Checkout",
				"Transaction",
			},
		},
		Outliers: OutliersConfig{
			RevenueCapPercentile:      99.5,
			MaxPageviews:              200,
			MaxTimeOnSite:             10800, // 3 hours
			MaxPagesPerSecond:         2.0,
			MinPageviewsForSpeedCheck: 5,
		},
		Products: ProductsConfig{
			Placeholders:   []string{"(not set)", "${escCatTitle}", "(not provided)"},
			CategoryPrefix: "Home/",
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file,
// and GA360-prefixed environment variables, in increasing precedence.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			fileCfg, err := loadFromFile(configFile)
			if err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
			*cfg = *fileCfg
		}
	}

	if err := envconfig.Process("GA360", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads configuration from a YAML file, layered over the
// defaults so partial files are valid.
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Paths.SessionFile == "" {
		return fmt.Errorf("session input file must be set")
	}
	if c.Paths.ProductFile == "" {
		return fmt.Errorf("product input file must be set")
	}
	if c.Paths.OutputDir == "" {
		return fmt.Errorf("output directory must be set")
	}
	if len(c.Funnel.Stages) == 0 {
		return fmt.Errorf("at least one funnel stage must be configured")
	}
	if len(c.Funnel.StageLabels) != len(c.Funnel.Stages) {
		return fmt.Errorf("stage labels count %d does not match stage count %d",
			len(c.Funnel.StageLabels), len(c.Funnel.Stages))
	}
	if c.Outliers.RevenueCapPercentile <= 0 || c.Outliers.RevenueCapPercentile > 100 {
		return fmt.Errorf("invalid revenue cap percentile: %v", c.Outliers.RevenueCapPercentile)
	}
	if c.Outliers.MaxPageviews <= 0 {
		return fmt.Errorf("max pageviews threshold must be positive")
	}
	if c.Outliers.MaxTimeOnSite <= 0 {
		return fmt.Errorf("max time-on-site cap must be positive")
	}
	if c.Outliers.MaxPagesPerSecond <= 0 {
		return fmt.Errorf("max pages-per-second threshold must be positive")
	}
	if c.Outliers.MinPageviewsForSpeedCheck < 0 {
		return fmt.Errorf("min pageviews for speed check must not be negative")
	}
	return nil
}

// TransactionStage returns the column name of the deepest funnel
// stage, which marks a converting session.
func (c *Config) TransactionStage() string {
	return c.Funnel.Stages[len(c.Funnel.Stages)-1]
}
