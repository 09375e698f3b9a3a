package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreDynamoDB = "dynamodb"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	Store     StoreConfig
	DynamoDB  DynamoDBConfig
	Postgres  PostgresConfig
	Storage   StorageConfig
	Auth      AuthConfig
	Mail      MailConfig
	Log       LogConfig
	Tracing   TracingConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name        string
	Environment string
	// Origin is the public web origin used to build deep links in emails.
	Origin string
}

type ServerConfig struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

func (s ServerConfig) Address() string {
	return fmt.Sprintf(":%d", s.Port)
}

type StoreConfig struct {
	Driver string
}

type DynamoDBConfig struct {
	Region             string
	Endpoint           string
	AccessKeyID        string
	SecretAccessKey    string
	PrescriptionsTable string
	QuotesTable        string
	ProfilesTable      string
}

type PostgresConfig struct {
	URL      string
	MaxConns int32
	MinConns int32
}

type StorageConfig struct {
	Bucket       string
	Region       string
	Endpoint     string
	SignedURLTTL time.Duration
}

type AuthConfig struct {
	JWTSecret string
	Issuer    string
}

type MailConfig struct {
	Host           string
	Port           int
	Username       string
	Password       string
	From           string
	FromName       string
	OutboxSize     int
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

type TracingConfig struct {
	Enabled     bool
	ServiceName string
	Endpoint    string
	SampleRate  float64
}

type RateLimitConfig struct {
	// Applied per client IP on the email endpoints.
	RequestsPerSecond float64
	Burst             int
}

var defaults = map[string]any{
	"APP_NAME":                "rxquote",
	"APP_ENV":                 "development",
	"APP_ORIGIN":              "http://localhost:3000",
	"PORT":                    8080,
	"SERVER_READ_TIMEOUT":     "15s",
	"SERVER_WRITE_TIMEOUT":    "30s",
	"SERVER_SHUTDOWN_TIMEOUT": "20s",
	"STORE_DRIVER":            StoreDynamoDB,
	"AWS_REGION":              "us-east-1",
	"AWS_ACCESS_KEY_ID":       "local",
	"AWS_SECRET_ACCESS_KEY":   "local",
	"DYNAMODB_ENDPOINT":       "",
	"PRESCRIPTIONS_TABLE":     "prescriptions",
	"QUOTES_TABLE":            "quotes",
	"PROFILES_TABLE":          "profiles",
	"DATABASE_URL":            "",
	"DB_MAX_CONNS":            10,
	"DB_MIN_CONNS":            2,
	"STORAGE_BUCKET":          "prescriptions",
	"STORAGE_REGION":          "us-east-1",
	"STORAGE_ENDPOINT":        "",
	"SIGNED_URL_TTL":          "15m",
	"AUTH_JWT_SECRET":         "",
	"AUTH_ISSUER":             "",
	"SMTP_HOST":               "localhost",
	"SMTP_PORT":               587,
	"SMTP_USERNAME":           "",
	"SMTP_PASSWORD":           "",
	"MAIL_FROM":               "no-reply@rxquote.local",
	"MAIL_FROM_NAME":          "RxQuote",
	"MAIL_OUTBOX_SIZE":        256,
	"MAIL_MAX_ATTEMPTS":       5,
	"MAIL_INITIAL_BACKOFF":    "2s",
	"MAIL_MAX_BACKOFF":        "2m",
	"LOG_LEVEL":               "info",
	"LOG_FORMAT":              "json",
	"TRACING_ENABLED":         false,
	"TRACING_SERVICE_NAME":    "rxquote-api",
	"OTEL_EXPORTER_ENDPOINT":  "localhost:4318",
	"TRACING_SAMPLE_RATE":     0.1,
	"RATE_LIMIT_RPS":          2,
	"RATE_LIMIT_BURST":        5,
}

// Load reads configuration from the environment (and an optional .env file) and validates it.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	for key, val := range defaults {
		v.SetDefault(key, val)
		_ = v.BindEnv(key)
	}

	// .env is optional; godotenv/autoload has usually populated the environment already.
	_ = v.ReadInConfig()

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Name:        v.GetString("APP_NAME"),
			Environment: v.GetString("APP_ENV"),
			Origin:      strings.TrimRight(v.GetString("APP_ORIGIN"), "/"),
		},
		Server: ServerConfig{
			Port:            v.GetInt("PORT"),
			ReadTimeout:     v.GetDuration("SERVER_READ_TIMEOUT"),
			WriteTimeout:    v.GetDuration("SERVER_WRITE_TIMEOUT"),
			ShutdownTimeout: v.GetDuration("SERVER_SHUTDOWN_TIMEOUT"),
		},
		Store: StoreConfig{Driver: strings.ToLower(v.GetString("STORE_DRIVER"))},
		DynamoDB: DynamoDBConfig{
			Region:             v.GetString("AWS_REGION"),
			Endpoint:           v.GetString("DYNAMODB_ENDPOINT"),
			AccessKeyID:        v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey:    v.GetString("AWS_SECRET_ACCESS_KEY"),
			PrescriptionsTable: v.GetString("PRESCRIPTIONS_TABLE"),
			QuotesTable:        v.GetString("QUOTES_TABLE"),
			ProfilesTable:      v.GetString("PROFILES_TABLE"),
		},
		Postgres: PostgresConfig{
			URL:      v.GetString("DATABASE_URL"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
			MinConns: v.GetInt32("DB_MIN_CONNS"),
		},
		Storage: StorageConfig{
			Bucket:       v.GetString("STORAGE_BUCKET"),
			Region:       v.GetString("STORAGE_REGION"),
			Endpoint:     v.GetString("STORAGE_ENDPOINT"),
			SignedURLTTL: v.GetDuration("SIGNED_URL_TTL"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("AUTH_JWT_SECRET"),
			Issuer:    v.GetString("AUTH_ISSUER"),
		},
		Mail: MailConfig{
			Host:           v.GetString("SMTP_HOST"),
			Port:           v.GetInt("SMTP_PORT"),
			Username:       v.GetString("SMTP_USERNAME"),
			Password:       v.GetString("SMTP_PASSWORD"),
			From:           v.GetString("MAIL_FROM"),
			FromName:       v.GetString("MAIL_FROM_NAME"),
			OutboxSize:     v.GetInt("MAIL_OUTBOX_SIZE"),
			MaxAttempts:    v.GetInt("MAIL_MAX_ATTEMPTS"),
			InitialBackoff: v.GetDuration("MAIL_INITIAL_BACKOFF"),
			MaxBackoff:     v.GetDuration("MAIL_MAX_BACKOFF"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Tracing: TracingConfig{
			Enabled:     v.GetBool("TRACING_ENABLED"),
			ServiceName: v.GetString("TRACING_SERVICE_NAME"),
			Endpoint:    v.GetString("OTEL_EXPORTER_ENDPOINT"),
			SampleRate:  v.GetFloat64("TRACING_SAMPLE_RATE"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             v.GetInt("RATE_LIMIT_BURST"),
		},
	}
}

func (c *Config) IsDev() bool {
	return c.App.Environment == "development"
}

// Validate rejects configurations that cannot serve requests safely.
func (c *Config) Validate() error {
	var errs []string

	switch c.Store.Driver {
	case StoreDynamoDB, StoreMemory:
	case StorePostgres:
		if c.Postgres.URL == "" {
			errs = append(errs, "DATABASE_URL is required when STORE_DRIVER=postgres")
		}
	default:
		errs = append(errs, fmt.Sprintf("STORE_DRIVER must be one of dynamodb, postgres, memory; got %q", c.Store.Driver))
	}

	if c.Auth.JWTSecret == "" {
		errs = append(errs, "AUTH_JWT_SECRET is required")
	} else if len(c.Auth.JWTSecret) < 32 && c.App.Environment == "production" {
		errs = append(errs, "AUTH_JWT_SECRET must be at least 32 characters in production")
	}

	if c.Store.Driver == StoreMemory && c.App.Environment == "production" {
		errs = append(errs, "STORE_DRIVER=memory is not allowed in production")
	}

	if c.Mail.OutboxSize <= 0 {
		errs = append(errs, "MAIL_OUTBOX_SIZE must be positive")
	}
	if c.Mail.MaxAttempts <= 0 {
		errs = append(errs, "MAIL_MAX_ATTEMPTS must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
