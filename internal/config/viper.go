package config

import (
	"errors"
	"fmt"
	"strings"

	"fjacquet/budget-planner/internal/budget"
	"fjacquet/budget-planner/internal/report"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Budget BudgetConfig `mapstructure:"budget" yaml:"budget"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`
}

// LogConfig controls the logrus backend.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// BudgetConfig holds the analysis thresholds and the overwrite policy.
type BudgetConfig struct {
	NearlyFullRatio float64 `mapstructure:"nearly_full_ratio" yaml:"nearly_full_ratio"`
	BalanceRatio    float64 `mapstructure:"balance_ratio" yaml:"balance_ratio"`
	OverwritePolicy string  `mapstructure:"overwrite_policy" yaml:"overwrite_policy"`
	CurrencySymbol  string  `mapstructure:"currency_symbol" yaml:"currency_symbol"`
}

// OutputConfig controls how summaries are rendered.
type OutputConfig struct {
	Format       string `mapstructure:"format" yaml:"format"`
	CSVDelimiter string `mapstructure:"csv_delimiter" yaml:"csv_delimiter"`
	Color        bool   `mapstructure:"color" yaml:"color"`
}

// ModelOptions converts the budget section into model options.
func (c BudgetConfig) ModelOptions() ([]budget.Option, error) {
	policy, err := budget.ParseOverwritePolicy(c.OverwritePolicy)
	if err != nil {
		return nil, err
	}
	return []budget.Option{
		budget.WithNearlyFullRatio(decimal.NewFromFloat(c.NearlyFullRatio)),
		budget.WithBalanceRatio(decimal.NewFromFloat(c.BalanceRatio)),
		budget.WithOverwritePolicy(policy),
	}, nil
}

// InitializeConfig loads configuration in increasing priority: defaults,
// config file, environment. configFile may be empty to search the default
// locations.
func InitializeConfig(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.budget-planner")
		v.AddConfigPath(".budget-planner")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("BUDGET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Output.Format = strings.ToLower(cfg.Output.Format)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("budget.nearly_full_ratio", 0.10)
	v.SetDefault("budget.balance_ratio", 3.0)
	v.SetDefault("budget.overwrite_policy", string(budget.OverwriteLegacy))
	v.SetDefault("budget.currency_symbol", "$")

	v.SetDefault("output.format", report.FormatText)
	v.SetDefault("output.csv_delimiter", ",")
	v.SetDefault("output.color", true)
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Budget.Validate(); err != nil {
		return fmt.Errorf("budget: %w", err)
	}
	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}

// Validate checks the log section.
func (c *LogConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Level, validation.Required, validation.By(func(value interface{}) error {
			s, _ := value.(string)
			_, err := logrus.ParseLevel(strings.ToLower(s))
			return err
		})),
		validation.Field(&c.Format, validation.Required, validation.In("text", "json")),
	)
}

// Validate checks the budget section.
func (c *BudgetConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.NearlyFullRatio, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&c.BalanceRatio, validation.Required, validation.Min(1.0)),
		validation.Field(&c.OverwritePolicy, validation.In(string(budget.OverwriteLegacy), string(budget.OverwriteRevalidate))),
	)
}

// Validate checks the output section.
func (c *OutputConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Format, validation.Required, validation.In(report.FormatText, report.FormatJSON, report.FormatYAML, report.FormatCSV)),
		validation.Field(&c.CSVDelimiter, validation.Required, validation.RuneLength(1, 1)),
	)
}
