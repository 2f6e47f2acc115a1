package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application settings. It is loaded once at startup and
// read-only afterwards.
type Config struct {
	App    AppConfig
	Model  ModelConfig
	Server ServerConfig
	Log    LogConfig
}

// AppConfig identifies the application
type AppConfig struct {
	Name    string
	Version string
	Debug   bool
}

// ModelConfig configures the sentiment model and its serving runtime
type ModelConfig struct {
	Name                string
	MaxLength           int
	CostPerInferenceUSD float64
	ServerURL           string
	Timeout             time.Duration
}

// ServerConfig configures the HTTP server
type ServerConfig struct {
	Host string
	Port int
	Mode string
}

// LogConfig configures logging
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from defaults and environment variables.
// Every key has a default, so the service starts with no environment at all.
// Environment overrides use the SENTIMENT_ prefix, e.g. SENTIMENT_SERVER_PORT.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SENTIMENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name:    v.GetString("app.name"),
			Version: v.GetString("app.version"),
			Debug:   v.GetBool("debug"),
		},
		Model: ModelConfig{
			Name:                v.GetString("model.name"),
			MaxLength:           v.GetInt("model.max_length"),
			CostPerInferenceUSD: v.GetFloat64("model.cost_per_inference_usd"),
			ServerURL:           v.GetString("model.server_url"),
			Timeout:             v.GetDuration("model.timeout"),
		},
		Server: ServerConfig{
			Host: v.GetString("server.host"),
			Port: v.GetInt("server.port"),
			Mode: v.GetString("server.mode"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}

	if cfg.App.Debug {
		cfg.Server.Mode = "debug"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "Sentiment Analysis API")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("debug", false)

	v.SetDefault("model.name", "distilbert-base-uncased-finetuned-sst-2-english")
	v.SetDefault("model.max_length", 512)
	v.SetDefault("model.cost_per_inference_usd", 0.0001)
	v.SetDefault("model.server_url", "http://localhost:8500")
	v.SetDefault("model.timeout", "30s")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "release")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Model.MaxLength < 1 {
		return fmt.Errorf("invalid model max length: %d", c.Model.MaxLength)
	}
	if c.Model.ServerURL == "" {
		return fmt.Errorf("model server URL must not be empty")
	}
	if c.Model.CostPerInferenceUSD < 0 {
		return fmt.Errorf("cost per inference must not be negative: %f", c.Model.CostPerInferenceUSD)
	}
	return nil
}
