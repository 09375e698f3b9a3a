package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("APP_ORIGIN", "https://rx.example.com/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreDynamoDB, cfg.Store.Driver)
	assert.Equal(t, "https://rx.example.com", cfg.App.Origin)
	assert.Equal(t, ":8080", cfg.Server.Address())
	assert.Equal(t, "quotes", cfg.DynamoDB.QuotesTable)
	assert.Equal(t, 15*time.Minute, cfg.Storage.SignedURLTTL)
	assert.Equal(t, 5, cfg.Mail.MaxAttempts)
	assert.True(t, cfg.IsDev())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("STORE_DRIVER", "MEMORY")
	t.Setenv("MAIL_MAX_BACKOFF", "30s")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreMemory, cfg.Store.Driver)
	assert.Equal(t, 30*time.Second, cfg.Mail.MaxBackoff)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			App:   AppConfig{Environment: "development"},
			Store: StoreConfig{Driver: StoreDynamoDB},
			Auth:  AuthConfig{JWTSecret: "secret"},
			Mail:  MailConfig{OutboxSize: 10, MaxAttempts: 3},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing secret", mutate: func(c *Config) { c.Auth.JWTSecret = "" }, wantErr: "AUTH_JWT_SECRET is required"},
		{name: "short secret in production", mutate: func(c *Config) { c.App.Environment = "production" }, wantErr: "at least 32 characters"},
		{name: "postgres without url", mutate: func(c *Config) { c.Store.Driver = StorePostgres }, wantErr: "DATABASE_URL is required"},
		{name: "unknown driver", mutate: func(c *Config) { c.Store.Driver = "mongo" }, wantErr: "STORE_DRIVER must be one of"},
		{name: "memory in production", mutate: func(c *Config) {
			c.App.Environment = "production"
			c.Auth.JWTSecret = "0123456789abcdef0123456789abcdef"
			c.Store.Driver = StoreMemory
		}, wantErr: "not allowed in production"},
		{name: "zero outbox", mutate: func(c *Config) { c.Mail.OutboxSize = 0 }, wantErr: "MAIL_OUTBOX_SIZE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
