package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080},
		Fetch: FetchConfig{
			Timeout:     30 * time.Second,
			RetryCount:  2,
			MaxBodySize: 5 * 1024 * 1024,
		},
		Extract: ExtractConfig{MaxTextLength: 8000, MinTextLength: 100},
		Cache: CacheConfig{
			Enabled:         true,
			MaxSize:         1000,
			TTL:             24 * time.Hour,
			CleanupInterval: 10 * time.Minute,
		},
		Queue: QueueConfig{Workers: 5, MaxSize: 100},
	}
}

func TestValidateConfig_Valid(t *testing.T) {
	assert.NoError(t, validateConfig(validTestConfig()))
}

func TestValidateConfig_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing port", func(c *Config) { c.Server.Port = 0 }},
		{"zero fetch timeout", func(c *Config) { c.Fetch.Timeout = 0 }},
		{"negative retry count", func(c *Config) { c.Fetch.RetryCount = -1 }},
		{"zero max body size", func(c *Config) { c.Fetch.MaxBodySize = 0 }},
		{"zero cache max size", func(c *Config) { c.Cache.MaxSize = 0 }},
		{"zero cache ttl", func(c *Config) { c.Cache.TTL = 0 }},
		{"zero queue workers", func(c *Config) { c.Queue.Workers = 0 }},
		{"zero queue max size", func(c *Config) { c.Queue.MaxSize = 0 }},
		{"zero max text length", func(c *Config) { c.Extract.MaxTextLength = 0 }},
		{"negative min text length", func(c *Config) { c.Extract.MinTextLength = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)
			require.Error(t, validateConfig(cfg))
		})
	}
}

func TestValidateConfig_CacheDisabledSkipsCacheChecks(t *testing.T) {
	cfg := validTestConfig()
	cfg.Cache = CacheConfig{Enabled: false}
	assert.NoError(t, validateConfig(cfg))
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "****", maskAPIKey("short"))
	assert.Equal(t, "sk-a...wxyz", maskAPIKey("sk-abcdefghijklmnopqrstuvwxyz"))
}
