package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"gameforge/internal/logging"
)

// EnvPrefix is prepended to every environment override, e.g. GAMEFORGE_SERVER_PORT.
const EnvPrefix = "GAMEFORGE"

// Config holds all application configuration
type Config struct {
	Environment string           `mapstructure:"environment"`
	Server      ServerConfig     `mapstructure:"server"`
	Admin       AdminConfig      `mapstructure:"admin"`
	Logging     logging.Config   `mapstructure:"logging"`
	Storage     StorageConfig    `mapstructure:"storage"`
	Generation  GenerationConfig `mapstructure:"generation"`
	Enrichment  EnrichmentConfig `mapstructure:"enrichment"`
}

// ServerConfig holds HTTP API server configuration
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// AdminConfig holds admin dashboard configuration
type AdminConfig struct {
	Port int `mapstructure:"port"`
}

// StorageConfig selects and configures the project store
type StorageConfig struct {
	Driver string      `mapstructure:"driver"` // json or redis
	Path   string      `mapstructure:"path"`   // json store directory
	Redis  RedisConfig `mapstructure:"redis"`
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Prefix   string        `mapstructure:"prefix"`
	TTL      time.Duration `mapstructure:"ttl"` // 0 keeps projects forever
}

// GenerationConfig controls rendering
type GenerationConfig struct {
	Strict     bool   `mapstructure:"strict"`
	CatalogDir string `mapstructure:"catalog_dir"` // extra YAML templates, optional
	OutputDir  string `mapstructure:"output_dir"`  // default export directory
}

// EnrichmentConfig selects the content provider
type EnrichmentConfig struct {
	Provider string       `mapstructure:"provider"` // mock or openai
	Seed     int64        `mapstructure:"seed"`     // mock seed, 0 = time based
	OpenAI   OpenAIConfig `mapstructure:"openai"`
}

// OpenAIConfig holds chat completion client configuration
type OpenAIConfig struct {
	APIKey     string        `mapstructure:"api_key"`
	BaseURL    string        `mapstructure:"base_url"`
	Model      string        `mapstructure:"model"`
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxRetries int           `mapstructure:"max_retries"`
}

// keys lists every setting that can be overridden from the environment.
var keys = []string{
	"environment",
	"server.port", "server.read_timeout", "server.write_timeout", "server.idle_timeout",
	"admin.port",
	"logging.level", "logging.format", "logging.output",
	"storage.driver", "storage.path",
	"storage.redis.addr", "storage.redis.password", "storage.redis.db", "storage.redis.prefix", "storage.redis.ttl",
	"generation.strict", "generation.catalog_dir", "generation.output_dir",
	"enrichment.provider", "enrichment.seed",
	"enrichment.openai.api_key", "enrichment.openai.base_url", "enrichment.openai.model",
	"enrichment.openai.timeout", "enrichment.openai.max_retries",
}

// Load reads configuration from a YAML file and applies GAMEFORGE_*
// environment overrides. An empty filename loads defaults plus environment.
func Load(filename string) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if filename != "" {
		v.SetConfigFile(filename)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.setDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	var c Config
	c.setDefaults()
	return &c
}

// setDefaults sets default values for missing configuration
func (c *Config) setDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 90 * time.Second
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60 * time.Second
	}
	if c.Admin.Port == 0 {
		c.Admin.Port = 8081
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = "json"
	}
	if c.Storage.Path == "" {
		c.Storage.Path = "data/projects"
	}
	if c.Storage.Redis.Addr == "" {
		c.Storage.Redis.Addr = "localhost:6379"
	}
	if c.Storage.Redis.Prefix == "" {
		c.Storage.Redis.Prefix = "gameforge"
	}
	if c.Generation.OutputDir == "" {
		c.Generation.OutputDir = "out"
	}
	if c.Enrichment.Provider == "" {
		c.Enrichment.Provider = "mock"
	}
	if c.Enrichment.OpenAI.Model == "" {
		c.Enrichment.OpenAI.Model = "gpt-4o-mini"
	}
	if c.Enrichment.OpenAI.Timeout == 0 {
		c.Enrichment.OpenAI.Timeout = 60 * time.Second
	}
	if c.Enrichment.OpenAI.MaxRetries == 0 {
		c.Enrichment.OpenAI.MaxRetries = 3
	}
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	var errs []error
	switch c.Storage.Driver {
	case "json", "redis":
	default:
		errs = append(errs, fmt.Errorf("storage.driver: unknown driver %q (want json or redis)", c.Storage.Driver))
	}
	switch c.Enrichment.Provider {
	case "mock":
	case "openai":
		if c.Enrichment.OpenAI.APIKey == "" {
			errs = append(errs, errors.New("enrichment.openai.api_key is required when provider is openai"))
		}
	default:
		errs = append(errs, fmt.Errorf("enrichment.provider: unknown provider %q (want mock or openai)", c.Enrichment.Provider))
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port: %d out of range", c.Server.Port))
	}
	return errors.Join(errs...)
}

// IsProduction returns true if environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}
