package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays configuration values from environment variables.
//
// Recognized variables:
//
//	ADDRESS              HTTP bind address
//	DATABASE_DSN         PostgreSQL DSN
//	SECRET_KEY           JWT HMAC secret key
//	ACCESS_TOKEN_TTL_MS  access token validity, milliseconds (> 0)
//	REFRESH_TOKEN_TTL_S  refresh token validity, seconds (> 0)
//
// Unset variables leave the current value untouched; unparsable or
// non-positive durations panic, since a silently wrong token lifetime is
// worse than refusing to start.
func parseEnv(config *Config) {
	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("ACCESS_TOKEN_TTL_MS"); v != "" {
		config.AccessTokenValidityDuration = time.Duration(mustPositiveInt(v)) * time.Millisecond
	}
	if v := os.Getenv("REFRESH_TOKEN_TTL_S"); v != "" {
		config.RefreshTokenValidityDuration = time.Duration(mustPositiveInt(v)) * time.Second
	}
}

func mustPositiveInt(v string) int64 {
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		panic(err)
	}
	if n <= 0 {
		panic("duration must be positive: " + v)
	}
	return n
}
