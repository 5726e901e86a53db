// Package config loads dailywords settings from a YAML file, a .env file
// and DAILYWORDS_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Search    SearchConfig    `mapstructure:"search"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	Extract   ExtractConfig   `mapstructure:"extract"`
	Analysis  AnalysisConfig  `mapstructure:"analysis"`
	Aggregate AggregateConfig `mapstructure:"aggregate"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type SearchConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	APIKey    string        `mapstructure:"api_key"`
	NewsDesks []string      `mapstructure:"news_desks"`
	Source    string        `mapstructure:"source"`
	DayOffset int           `mapstructure:"day_offset"`
	PageDelay time.Duration `mapstructure:"page_delay"`
}

type HTTPConfig struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

type ExtractConfig struct {
	NotFoundMarker      string `mapstructure:"not_found_marker"`
	BodySelector        string `mapstructure:"body_selector"`
	ReadabilityFallback bool   `mapstructure:"readability_fallback"`
	EnglishOnly         bool   `mapstructure:"english_only"`
}

type AnalysisConfig struct {
	StopWords []string `mapstructure:"stop_words"`
	Stem      bool     `mapstructure:"stem"`
}

type AggregateConfig struct {
	SkipFailedDocuments bool `mapstructure:"skip_failed_documents"`
}

type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"` // "mysql", "postgres" or "sqlite"
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	Path     string `mapstructure:"path"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format"` // "text" or "json"
}

// Load reads dailywords.yaml from ./, ./config or ~/.dailywords if present.
// A missing file is fine; defaults and the environment still apply.
func Load() (*Config, error) {
	loadDotEnv()
	v := newViper()
	v.SetConfigName("dailywords")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".dailywords"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return unmarshal(v)
}

func LoadFromFile(path string) (*Config, error) {
	loadDotEnv()
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("DAILYWORDS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	overrideFromEnv(&cfg)
	return &cfg, nil
}

// loadDotEnv never overrides variables that are already set.
func loadDotEnv() {
	_ = godotenv.Load()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("search.base_url", "https://api.nytimes.com")
	v.SetDefault("search.api_key", "")
	v.SetDefault("search.news_desks", []string{"national", "world", "politics"})
	v.SetDefault("search.source", "The New York Times")
	v.SetDefault("search.day_offset", 0)
	v.SetDefault("search.page_delay", 100*time.Millisecond)

	v.SetDefault("http.timeout", 30*time.Second)
	v.SetDefault("http.user_agent", "dailywords/1.0")

	v.SetDefault("extract.not_found_marker", "Page Not Found")
	v.SetDefault("extract.body_selector", `p[itemprop="articleBody"]`)
	v.SetDefault("extract.readability_fallback", false)
	v.SetDefault("extract.english_only", false)

	v.SetDefault("analysis.stop_words", []string{
		"THE", "WAS", "NOT", "HAD", "WERE", "BEEN", "EVEN", "ALSO", "MANY", "SAID",
	})
	v.SetDefault("analysis.stem", false)

	v.SetDefault("aggregate.skip_failed_documents", false)

	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "3306")
	v.SetDefault("database.name", "dailywords")
	v.SetDefault("database.path", "dailywords.db")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// NYT_API_KEY is what the API's own docs and most scripts use.
func overrideFromEnv(cfg *Config) {
	if cfg.Search.APIKey == "" {
		if key := os.Getenv("NYT_API_KEY"); key != "" {
			cfg.Search.APIKey = key
		}
	}
}

// Validate checks what a retrieval run that stores its result needs.
func (c *Config) Validate() error {
	if err := c.Search.Validate(); err != nil {
		return err
	}
	return c.Database.Validate()
}

// Validate checks what locating articles needs; a dry run only needs this.
func (s SearchConfig) Validate() error {
	if s.APIKey == "" {
		return errors.New("search.api_key is required (set DAILYWORDS_SEARCH_API_KEY or NYT_API_KEY)")
	}
	if s.PageDelay < 0 {
		return fmt.Errorf("search.page_delay must not be negative, got %s", s.PageDelay)
	}
	if len(s.NewsDesks) == 0 {
		return errors.New("search.news_desks must name at least one desk")
	}
	return nil
}

func (d DatabaseConfig) Validate() error {
	switch d.Driver {
	case "mysql", "postgres":
		if d.Name == "" {
			return fmt.Errorf("database.name is required for %s", d.Driver)
		}
	case "sqlite":
		if d.Path == "" {
			return errors.New("database.path is required for sqlite")
		}
	default:
		return fmt.Errorf("unsupported database.driver %q", d.Driver)
	}
	return nil
}
