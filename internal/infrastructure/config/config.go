package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	FrontendURL string `env:"FRONTEND_URL, default=http://localhost:3000"`

	MySQL MySQLConfig
	Redis RedisConfig
	Admin AdminConfig
}

type MySQLConfig struct {
	Host     string `env:"MYSQL_HOST,     default=localhost"`
	Port     int    `env:"MYSQL_PORT,     default=3306"`
	User     string `env:"MYSQL_USER,     default=root"`
	Password string `env:"MYSQL_PASSWORD"`
	Database string `env:"MYSQL_DB,       default=ieee_events"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// AdminConfig seeds the single admin credential record (cmd/setup only).
type AdminConfig struct {
	Name     string `env:"ADMIN_NAME"`
	Email    string `env:"ADMIN_EMAIL"`
	Password string `env:"ADMIN_PASSWORD"`
}

// IsProduction gates whether internal error detail may be exposed in responses.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
