package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env             string
	ServerAddress   string
	ShutdownTimeout time.Duration

	Database DatabaseConfig
	LLM      LLMConfig
	Redis    RedisConfig
	Boss     BossConfig
}

type DatabaseConfig struct {
	Driver       string // "sqlite" or "postgres"
	URL          string // file path / DSN
	MaxOpenConns int
}

// LLMConfig points at an OpenAI-compatible chat-completion endpoint.
// An empty APIKey keeps the mentor and quiz generator in fallback mode.
type LLMConfig struct {
	URL     string
	Model   string
	APIKey  string
	Timeout time.Duration
}

// Enabled reports whether AI calls should be attempted at all.
func (c LLMConfig) Enabled() bool {
	return c.APIKey != "" && c.URL != ""
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type BossConfig struct {
	MaxLives         int
	DefaultTimeLimit time.Duration
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", "development")
	v.SetDefault("server_address", ":8080")
	v.SetDefault("shutdown_timeout", "10s")
	v.SetDefault("db_driver", "sqlite")
	v.SetDefault("database_url", "studyquest.db")
	v.SetDefault("db_max_open_conns", 10)
	v.SetDefault("llm_url", "https://api.openai.com")
	v.SetDefault("llm_model", "gpt-4o-mini")
	v.SetDefault("llm_timeout", "20s")
	v.SetDefault("redis_db", 0)
	v.SetDefault("boss_max_lives", 3)
	v.SetDefault("boss_default_time_limit", "180s")
}

// Load reads configuration from an optional .env file, an optional
// config.yaml in the working directory and the process environment,
// in increasing order of precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	setDefaults(v)
	v.AutomaticEnv()
	// OPENAI_API_KEY is accepted as an alias
	if err := v.BindEnv("llm_api_key", "LLM_API_KEY", "OPENAI_API_KEY"); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read config.yaml: %w", err)
		}
	}

	cfg := &Config{
		Env:             v.GetString("app_env"),
		ServerAddress:   v.GetString("server_address"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		Database: DatabaseConfig{
			Driver:       v.GetString("db_driver"),
			URL:          v.GetString("database_url"),
			MaxOpenConns: v.GetInt("db_max_open_conns"),
		},
		LLM: LLMConfig{
			URL:     v.GetString("llm_url"),
			Model:   v.GetString("llm_model"),
			APIKey:  v.GetString("llm_api_key"),
			Timeout: v.GetDuration("llm_timeout"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis_addr"),
			Password: v.GetString("redis_password"),
			DB:       v.GetInt("redis_db"),
		},
		Boss: BossConfig{
			MaxLives:         v.GetInt("boss_max_lives"),
			DefaultTimeLimit: v.GetDuration("boss_default_time_limit"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad is Load for process start-up: any error is fatal.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic("config: cannot start: " + err.Error())
	}
	return cfg
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("config: DB_DRIVER=%q must be sqlite or postgres", c.Database.Driver)
	}
	if c.ServerAddress == "" {
		return errors.New("config: SERVER_ADDRESS is empty")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("config: SHUTDOWN_TIMEOUT=%s must be positive", c.ShutdownTimeout)
	}
	if c.Boss.MaxLives < 1 {
		return fmt.Errorf("config: BOSS_MAX_LIVES=%d must be at least 1", c.Boss.MaxLives)
	}
	if c.Boss.DefaultTimeLimit <= 0 {
		return fmt.Errorf("config: BOSS_DEFAULT_TIME_LIMIT=%s must be positive", c.Boss.DefaultTimeLimit)
	}
	return nil
}
