// Package ttl provides functionality for managing time-to-live (TTL) values in the cache.
// It includes utilities for validating TTL durations, calculating expiration times,
// and checking if entries have expired.
package ttl

import (
	"time"

	"github.com/gozephyr/renderkit/errors"
	"github.com/gozephyr/renderkit/internal"
)

// Config represents configuration for TTL behavior
type Config struct {
	// DefaultTTL is applied when an entry is stored with a zero TTL
	DefaultTTL time.Duration

	// MinTTL is the minimum allowed TTL value (0 means no lower bound)
	MinTTL time.Duration

	// MaxTTL is the maximum allowed TTL value (0 means no upper bound)
	MaxTTL time.Duration

	// ZeroTTLMeansNoExpiry makes a zero TTL mean "never expires" instead
	// of falling back to DefaultTTL
	ZeroTTLMeansNoExpiry bool
}

// DefaultConfig returns the default TTL configuration
func DefaultConfig() Config {
	return Config{
		DefaultTTL: 5 * time.Minute,
	}
}

// Validate validates a TTL value against the configuration
func Validate(ttl time.Duration, config Config) error {
	if ttl < 0 {
		return errors.Wrap("Validate", nil, errors.ErrInvalidTTL)
	}

	if ttl > 0 {
		if config.MinTTL > 0 && ttl < config.MinTTL {
			return errors.Wrap("Validate", nil, errors.ErrTTLTooShort)
		}
		if config.MaxTTL > 0 && ttl > config.MaxTTL {
			return errors.Wrap("Validate", nil, errors.ErrTTLTooLong)
		}
	}

	return nil
}

// Normalize normalizes a TTL value according to the configuration.
// A zero TTL resolves to DefaultTTL, or stays zero when the
// configuration treats zero as "never expires".
func Normalize(ttl time.Duration, config Config) time.Duration {
	if ttl == 0 {
		if config.ZeroTTLMeansNoExpiry {
			return 0
		}
		ttl = config.DefaultTTL
	}

	if config.MinTTL > 0 && ttl < config.MinTTL {
		return config.MinTTL
	}

	if config.MaxTTL > 0 && ttl > config.MaxTTL {
		return config.MaxTTL
	}

	return ttl
}

// ExpirationTime calculates the expiration time for a TTL value
func ExpirationTime(ttl time.Duration, config Config) time.Time {
	normalized := Normalize(ttl, config)
	if normalized == 0 {
		return time.Time{} // Zero time means no expiration
	}
	return time.Now().Add(normalized)
}

// IsExpired checks if a given expiration time has passed
func IsExpired(expirationTime time.Time) bool {
	if expirationTime.IsZero() {
		return false // Zero time means no expiration
	}
	return internal.Expired(expirationTime)
}
