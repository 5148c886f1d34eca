package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Supported values of Config.StoreDriver.
const (
	DriverPostgres = "postgres"
	DriverMongoDB  = "mongodb"
	DriverDynamoDB = "dynamodb"
)

var Empty = new(Config)

type Config struct {
	AppEnv         string        `envconfig:"APP_ENV"`
	Port           int           `envconfig:"PORT" default:"3000"`
	SentryDSN      string        `envconfig:"SENTRY_DSN"`
	AllowOrigins   string        `envconfig:"ALLOW_ORIGINS"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"10s"`
	RateLimit      float64       `envconfig:"RATE_LIMIT" default:"20"`
	StoreDriver    string        `envconfig:"STORE_DRIVER" default:"postgres"`

	DB struct {
		Name      string `envconfig:"DB_NAME"`
		Host      string `envconfig:"DB_HOST"`
		Port      int    `envconfig:"DB_PORT"`
		User      string `envconfig:"DB_USER"`
		Pass      string `envconfig:"DB_PASS"`
		EnableSSL bool   `envconfig:"ENABLE_SSL"`
	}
	Mongo struct {
		URI      string `envconfig:"MONGO_URI"`
		Database string `envconfig:"MONGO_DATABASE" default:"movies-lib"`
	}
	DynamoDB struct {
		Region       string `envconfig:"DDB_REGION"`
		Endpoint     string `envconfig:"DDB_ENDPOINT"`
		AccessKey    string `envconfig:"DDB_ACCESS_KEY"`
		SecretKey    string `envconfig:"DDB_SECRET_KEY"`
		SessionToken string `envconfig:"DDB_SESSION_TOKEN"`
		MoviesTable  string `envconfig:"DDB_MOVIES_TABLE" default:"movies"`
		GenresTable  string `envconfig:"DDB_GENRES_TABLE" default:"genres"`
	}
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	switch cfg.StoreDriver {
	case DriverPostgres, DriverMongoDB, DriverDynamoDB:
	default:
		return nil, fmt.Errorf("load config error: unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}

	return cfg, nil
}
