package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validTestConfig() *Config {
	return &Config{
		JWT: JWTConfig{
			AccessSecret:       "access-secret",
			RefreshSecret:      "refresh-secret",
			AccessExpiryHours:  24,
			RefreshExpiryHours: 168,
		},
	}
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, validTestConfig().validate())
}

func TestConfigValidateRejectsBadJWT(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing access secret", func(c *Config) { c.JWT.AccessSecret = "" }},
		{"missing refresh secret", func(c *Config) { c.JWT.RefreshSecret = "" }},
		{"identical secrets", func(c *Config) { c.JWT.RefreshSecret = c.JWT.AccessSecret }},
		{"zero access expiry", func(c *Config) { c.JWT.AccessExpiryHours = 0 }},
		{"negative refresh expiry", func(c *Config) { c.JWT.RefreshExpiryHours = -1 }},
		{"access outlives refresh", func(c *Config) {
			c.JWT.AccessExpiryHours = 200
			c.JWT.RefreshExpiryHours = 24
		}},
		{"access equal to refresh", func(c *Config) {
			c.JWT.AccessExpiryHours = 24
			c.JWT.RefreshExpiryHours = 24
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validTestConfig()
			tt.mutate(config)
			assert.Error(t, config.validate())
		})
	}
}
