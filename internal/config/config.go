package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yb-lee/sns-feed-backend/internal/logger"
	"github.com/yb-lee/sns-feed-backend/internal/utils"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Redis     RedisConfig     `yaml:"redis"`
	RateLimit RateLimitConfig `yaml:"rate_limiting"`
	CORS      CORSConfig      `yaml:"cors"`
	LogMode   string          `yaml:"log_mode"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

// StorageConfig selects the entity store backend. Backend is one of
// "postgres", "sqlite" or "memory".
type StorageConfig struct {
	Backend    string `yaml:"backend"`
	SQLitePath string `yaml:"sqlite_path"`

	PostgresHost     string `yaml:"postgres_host"`
	PostgresPort     string `yaml:"postgres_port"`
	PostgresUser     string `yaml:"postgres_user"`
	PostgresPassword string `yaml:"postgres_password"`
	PostgresName     string `yaml:"postgres_name"`
	PostgresSSLMode  string `yaml:"postgres_sslmode"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	PoolSize int    `yaml:"pool_size"`
}

type RateLimitConfig struct {
	Enabled       bool `yaml:"enabled"`
	Limit         int  `yaml:"limit"`
	WindowSeconds int  `yaml:"window_seconds"`
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: "8080"},
		Storage: StorageConfig{
			Backend:          "postgres",
			SQLitePath:       "sns.db",
			PostgresHost:     "localhost",
			PostgresPort:     "5432",
			PostgresUser:     "postgres",
			PostgresName:     "sns",
			PostgresSSLMode:  "disable",
			PostgresPassword: "",
		},
		Redis:     RedisConfig{PoolSize: 10},
		RateLimit: RateLimitConfig{Limit: 100, WindowSeconds: 60},
		CORS: CORSConfig{AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}},
		LogMode: "development",
	}
}

// Load reads the yaml config file if present and then applies environment
// variable overrides on top of it.
func Load(path string, log *logger.Logger) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case os.IsNotExist(err):
		if log != nil {
			log.Debug("Config file not found, using defaults and environment", "path", path)
		}
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg.Server.Host = utils.GetEnv("SERVER_HOST", cfg.Server.Host, log)
	cfg.Server.Port = utils.GetEnv("SERVER_PORT", cfg.Server.Port, log)
	cfg.Storage.Backend = utils.GetEnv("STORAGE_BACKEND", cfg.Storage.Backend, log)
	cfg.Storage.SQLitePath = utils.GetEnv("SQLITE_PATH", cfg.Storage.SQLitePath, log)
	cfg.Storage.PostgresHost = utils.GetEnv("POSTGRES_HOST", cfg.Storage.PostgresHost, log)
	cfg.Storage.PostgresPort = utils.GetEnv("POSTGRES_PORT", cfg.Storage.PostgresPort, log)
	cfg.Storage.PostgresUser = utils.GetEnv("POSTGRES_USER", cfg.Storage.PostgresUser, log)
	cfg.Storage.PostgresPassword = utils.GetEnv("POSTGRES_PASSWORD", cfg.Storage.PostgresPassword, log)
	cfg.Storage.PostgresName = utils.GetEnv("POSTGRES_NAME", cfg.Storage.PostgresName, log)
	cfg.Storage.PostgresSSLMode = utils.GetEnv("POSTGRES_SSLMODE", cfg.Storage.PostgresSSLMode, log)
	cfg.Redis.Addr = utils.GetEnv("REDIS_ADDR", cfg.Redis.Addr, log)
	cfg.Redis.PoolSize = utils.GetEnvAsInt("REDIS_POOL_SIZE", cfg.Redis.PoolSize, log)
	cfg.RateLimit.Enabled = utils.GetEnvAsBool("RATE_LIMIT_ENABLED", cfg.RateLimit.Enabled, log)
	cfg.RateLimit.Limit = utils.GetEnvAsInt("RATE_LIMIT_LIMIT", cfg.RateLimit.Limit, log)
	cfg.RateLimit.WindowSeconds = utils.GetEnvAsInt("RATE_LIMIT_WINDOW_SECONDS", cfg.RateLimit.WindowSeconds, log)
	cfg.LogMode = utils.GetEnv("LOG_MODE", cfg.LogMode, log)
	if origins := utils.GetEnv("CORS_ALLOW_ORIGINS", "", log); origins != "" {
		cfg.CORS.AllowOrigins = strings.Split(origins, ",")
	}

	switch cfg.Storage.Backend {
	case "postgres", "sqlite", "memory":
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	return &cfg, nil
}
