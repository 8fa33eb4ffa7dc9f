package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings read from the environment.
type Config struct {
	HTTPAddr string `env:"MORTGAGE_HTTP_ADDR" envDefault:":8080"`
	LogLevel string `env:"LOG_LEVEL"          envDefault:"INFO"`

	RedisAddr     string        `env:"MORTGAGE_REDIS_ADDR"`
	RedisPassword string        `env:"MORTGAGE_REDIS_PASSWORD"`
	RedisDB       int           `env:"MORTGAGE_REDIS_DB"       envDefault:"0"`
	CacheTTL      time.Duration `env:"MORTGAGE_CACHE_TTL"      envDefault:"10m"`

	RateLimit  int           `env:"MORTGAGE_RATE_LIMIT"  envDefault:"60"`
	RateWindow time.Duration `env:"MORTGAGE_RATE_WINDOW" envDefault:"1m"`

	ScenarioWorkers int `env:"MORTGAGE_SCENARIO_WORKERS" envDefault:"4"`
	MaxScenarios    int `env:"MORTGAGE_MAX_SCENARIOS"    envDefault:"100"`

	LLM LLMConfig
}

// LLMConfig points the tip service at an OpenAI-compatible chat endpoint.
type LLMConfig struct {
	URL     string        `env:"MORTGAGE_LLM_URL"     envDefault:"http://localhost:11434/v1/chat/completions"`
	Model   string        `env:"MORTGAGE_LLM_MODEL"   envDefault:"llama3.2"`
	APIKey  string        `env:"MORTGAGE_LLM_API_KEY"`
	Enabled bool          `env:"MORTGAGE_LLM_ENABLED" envDefault:"false"`
	Timeout time.Duration `env:"MORTGAGE_LLM_TIMEOUT" envDefault:"30s"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.RateLimit <= 0 {
		errs = append(errs, errors.New("MORTGAGE_RATE_LIMIT must be positive"))
	}
	if c.RateWindow <= 0 {
		errs = append(errs, errors.New("MORTGAGE_RATE_WINDOW must be positive"))
	}
	if c.ScenarioWorkers <= 0 {
		errs = append(errs, errors.New("MORTGAGE_SCENARIO_WORKERS must be positive"))
	}
	if c.MaxScenarios <= 0 {
		errs = append(errs, errors.New("MORTGAGE_MAX_SCENARIOS must be positive"))
	}
	if c.CacheTTL < 0 {
		errs = append(errs, errors.New("MORTGAGE_CACHE_TTL cannot be negative"))
	}
	if c.LLM.Enabled && c.LLM.URL == "" {
		errs = append(errs, errors.New("MORTGAGE_LLM_URL is required when the LLM is enabled"))
	}
	return errors.Join(errs...)
}
