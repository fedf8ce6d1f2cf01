package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	Redis    RedisConfig    `yaml:"redis"`
	Sessions SessionsConfig `yaml:"sessions"`
}

type HTTPConfig struct {
	Port int `yaml:"port"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		d.User, d.Password, d.Host, d.Port, d.Database)
}

// RabbitMQConfig with an empty Host disables the kitchen publisher.
type RabbitMQConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	VHost    string `yaml:"vhost"`
}

type RedisConfig struct {
	URL string `yaml:"url"`
}

// SessionsConfig selects the cart store backend: "memory" (default) or
// "redis". TTL applies to the redis backend only.
type SessionsConfig struct {
	Backend string `yaml:"backend"`
	TTL     string `yaml:"ttl"`
}

func (s SessionsConfig) TTLDuration() time.Duration {
	d, err := time.ParseDuration(s.TTL)
	if err != nil || d <= 0 {
		return 24 * time.Hour
	}
	return d
}

// Load reads the YAML config at path (missing file is fine, defaults apply),
// then lets environment variables override individual fields. A .env file
// next to the binary is honored.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTP: HTTPConfig{Port: 9001},
		Database: DatabaseConfig{
			Host: "localhost", Port: 5432,
			User: "postgres", Database: "food_agent",
		},
		RabbitMQ: RabbitMQConfig{Port: 5672, VHost: "/"},
		Sessions: SessionsConfig{Backend: "memory", TTL: "24h"},
	}

	if b, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	applyEnv(cfg)

	if cfg.Sessions.Backend == "redis" && cfg.Redis.URL == "" {
		return nil, fmt.Errorf("sessions backend is redis but redis.url is empty")
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.HTTP.Port = envInt("PORT", cfg.HTTP.Port)

	cfg.Database.Host = envStr("DB_HOST", cfg.Database.Host)
	cfg.Database.Port = envInt("DB_PORT", cfg.Database.Port)
	cfg.Database.User = envStr("DB_USER", cfg.Database.User)
	cfg.Database.Password = envStr("DB_PASSWORD", cfg.Database.Password)
	cfg.Database.Database = envStr("DB_NAME", cfg.Database.Database)

	cfg.RabbitMQ.Host = envStr("RABBITMQ_HOST", cfg.RabbitMQ.Host)
	cfg.RabbitMQ.Port = envInt("RABBITMQ_PORT", cfg.RabbitMQ.Port)
	cfg.RabbitMQ.User = envStr("RABBITMQ_USER", cfg.RabbitMQ.User)
	cfg.RabbitMQ.Password = envStr("RABBITMQ_PASSWORD", cfg.RabbitMQ.Password)

	cfg.Redis.URL = envStr("REDIS_URL", cfg.Redis.URL)
	cfg.Sessions.Backend = envStr("SESSIONS_BACKEND", cfg.Sessions.Backend)
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
