package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds application, database, Kafka and logging configuration.
type Config struct {
	App      App
	Postgres Postgres
	Kafka    Kafka
}

// App represents HTTP server and logging settings.
type App struct {
	Host           string   `env:"APP_HOST" env-default:"localhost"`
	Port           string   `env:"APP_PORT" env-default:"8080"`
	LogLevel       string   `env:"APP_LOG_LEVEL" env-default:"info"`
	LogFile        string   `env:"APP_LOG_FILE" env-default:""`
	UploadMaxBytes int64    `env:"APP_UPLOAD_MAX_BYTES" env-default:"10485760"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:5173,http://localhost:3000,http://localhost:5174,http://localhost:4200,http://localhost:8080"`
}

// Postgres represents a PostgreSQL connection configuration.
type Postgres struct {
	Host         string `env:"POSTGRES_HOST" env-default:"localhost"`
	Port         int    `env:"POSTGRES_PORT" env-default:"5432"`
	User         string `env:"POSTGRES_USER" env-default:"user"`
	Password     string `env:"POSTGRES_PASSWORD" env-default:"password"`
	Database     string `env:"POSTGRES_DB" env-default:"database"`
	MaxOpenConns int    `env:"POSTGRES_MAX_OPEN_CONNS" env-default:"16"`
	MaxIdleConns int    `env:"POSTGRES_MAX_IDLE_CONNS" env-default:"8"`
}

// Kafka represents the subscription events producer configuration.
// An empty broker list disables publishing.
type Kafka struct {
	Brokers []string `env:"KAFKA_BROKERS" env-separator:","`
	Topic   string   `env:"KAFKA_TOPIC" env-default:"subscriptions"`
}

// Load reads environment variables from the dotenv file at path (if it exists)
// and then fills Config from the process environment.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	return &cfg, nil
}

// PostgresDSN returns the pgx connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.Postgres.User, c.Postgres.Password, c.Postgres.Host, c.Postgres.Port, c.Postgres.Database)
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.App.Host, c.App.Port)
}
