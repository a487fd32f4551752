package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every runtime parameter, read from environment variables.
type Config struct {
	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" required:"true"`

	HTTPPort string `envconfig:"PORT" default:"8080"`

	// JWTSecret verifies tokens issued by the external identity provider.
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	// MinWordCount is the submission policy threshold.
	MinWordCount int `envconfig:"MIN_WORD_COUNT" default:"2000"`

	// Backlog gauge refresh, cron spec.
	BacklogCronSchedule string `envconfig:"BACKLOG_CRON_SCHEDULE" default:"@every 1m"`

	// S3-compatible storage for cover images. Optional: with an empty
	// endpoint the upload route is not registered.
	S3Endpoint string `envconfig:"S3_ENDPOINT"`
	S3Region   string `envconfig:"S3_REGION" default:"us-east-1"`
	S3Key      string `envconfig:"S3_KEY"`
	S3Secret   string `envconfig:"S3_SECRET"`
	S3Bucket   string `envconfig:"S3_BUCKET" default:"covers"`
}

// DSN returns the data source name for the Postgres connection.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

// Load reads the configuration from the environment, honoring a local .env
// file when present.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var c Config
	err := envconfig.Process("", &c)
	return &c, err
}
