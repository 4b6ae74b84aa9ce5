package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvConfig mirrors Config with struct tags for environment parsing.
// Only variables that are actually set override the current values.
type EnvConfig struct {
	EndpointAddrHTTP            string `env:"ADDRESS"`
	DatabaseDSN                 string `env:"DATABASE_DSN"`
	SecretKey                   string `env:"SECRET_KEY"`
	AccessTokenValidityDuration int    `env:"ACCESS_TOKEN_VALIDITY_MINUTES"`
}

// parseEnv overlays configuration values from environment variables.
// Unset variables leave the corresponding Config fields untouched.
func parseEnv(config *Config) {
	c := &EnvConfig{}
	if err := env.Parse(c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.AccessTokenValidityDuration > 0 {
		config.AccessTokenValidityDuration = time.Duration(c.AccessTokenValidityDuration) * time.Minute
	}
}
