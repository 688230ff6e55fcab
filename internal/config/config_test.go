package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Env:               "development",
		Port:              "5000",
		DBDriver:          "postgres",
		JWTSecret:         "0123456789abcdef0123456789abcdef",
		RateLimitRequests: 10,
		RateLimitWindow:   60,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid development config",
			mutate: func(c *Config) {},
		},
		{
			name:    "unsupported driver",
			mutate:  func(c *Config) { c.DBDriver = "oracle" },
			wantErr: true,
		},
		{
			name:   "sqlite driver accepted",
			mutate: func(c *Config) { c.DBDriver = "sqlite" },
		},
		{
			name: "missing secret in production",
			mutate: func(c *Config) {
				c.Env = "production"
				c.JWTSecret = ""
			},
			wantErr: true,
		},
		{
			name: "short secret in production",
			mutate: func(c *Config) {
				c.Env = "production"
				c.JWTSecret = "short"
			},
			wantErr: true,
		},
		{
			name: "long secret in production",
			mutate: func(c *Config) {
				c.Env = "production"
			},
		},
		{
			name:    "non-positive rate limit",
			mutate:  func(c *Config) { c.RateLimitRequests = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateFillsDevelopmentSecret(t *testing.T) {
	cfg := validConfig()
	cfg.JWTSecret = ""
	require.NoError(t, cfg.Validate())
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestDSN(t *testing.T) {
	cfg := validConfig()
	cfg.DBHost = "db.internal"
	cfg.DBPort = "5432"
	cfg.DBUser = "app"
	cfg.DBPassword = "pw"
	cfg.DBName = "kehilla"
	cfg.DBSSLMode = "disable"

	assert.Equal(t,
		"host=db.internal port=5432 user=app password=pw dbname=kehilla sslmode=disable",
		cfg.DSN())

	cfg.DBDriver = "sqlite"
	cfg.SQLitePath = "/tmp/test.db"
	assert.Equal(t, "/tmp/test.db", cfg.DSN())
}

func TestOrigins(t *testing.T) {
	cfg := validConfig()
	cfg.AllowedOrigins = "http://localhost:3000, https://app.example.com ,"
	assert.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.Origins())
}
