package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"expense-assistant/internal/model"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Model provider
	Gemini GeminiConfig

	// Assistant behaviour
	Assistant AssistantConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GeminiConfig configures the Generative Language API client.
// APIKey may be empty; requests then fail with a configuration error.
type GeminiConfig struct {
	APIKey    string
	APIURL    string
	Model     string
	Timeout   time.Duration
	Transport string
}

type AssistantConfig struct {
	CacheSize int
	CacheTTL  time.Duration
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied to the environment first.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Gemini (GEMINI_API_KEY maps onto gemini.api_key through the replacer)
	cfg.Gemini.APIKey = v.GetString("gemini.api_key")
	cfg.Gemini.APIURL = v.GetString("gemini.api_url")
	cfg.Gemini.Model = v.GetString("gemini.model")
	cfg.Gemini.Timeout = v.GetDuration("gemini.timeout")
	cfg.Gemini.Transport = v.GetString("gemini.transport")

	// Assistant
	cfg.Assistant.CacheSize = v.GetInt("assistant.cache_size")
	cfg.Assistant.CacheTTL = v.GetDuration("assistant.cache_ttl")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	// Gemini defaults
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.api_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("gemini.model", "gemini-1.5-flash")
	v.SetDefault("gemini.timeout", "30s")
	v.SetDefault("gemini.transport", "rest")

	// Assistant defaults
	v.SetDefault("assistant.cache_size", 0)
	v.SetDefault("assistant.cache_ttl", "5m")
}

// Validate checks the values Load cannot default its way out of.
func (c *Config) Validate() error {
	switch model.Environment(c.Environment.Name) {
	case model.EnvironmentDevelopment, model.EnvironmentStaging, model.EnvironmentProduction:
	default:
		return fmt.Errorf("invalid environment.name %q: must be development, staging or production", c.Environment.Name)
	}

	if c.HTTPServer.Port < 1 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("invalid http_server.port %d: must be between 1 and 65535", c.HTTPServer.Port)
	}

	switch c.HTTPServer.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid http_server.mode %q: must be debug, release or test", c.HTTPServer.Mode)
	}

	switch c.Gemini.Transport {
	case "rest", "sdk":
	default:
		return fmt.Errorf("invalid gemini.transport %q: must be rest or sdk", c.Gemini.Transport)
	}

	if c.Gemini.Timeout <= 0 {
		return fmt.Errorf("invalid gemini.timeout %s: must be positive", c.Gemini.Timeout)
	}

	if c.Assistant.CacheSize < 0 {
		return fmt.Errorf("invalid assistant.cache_size %d: must not be negative", c.Assistant.CacheSize)
	}
	if c.Assistant.CacheSize > 0 && c.Assistant.CacheTTL <= 0 {
		return fmt.Errorf("invalid assistant.cache_ttl %s: must be positive when the cache is enabled", c.Assistant.CacheTTL)
	}

	return nil
}
