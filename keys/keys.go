// Package keys builds and matches cache keys. Keys are hierarchical
// strings with ':'-separated segments (e.g. "strategy:42:performance"),
// which keeps prefix-style bulk invalidation cheap.
package keys

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Separator joins key segments
const Separator = ":"

// Build joins segments into a cache key
func Build(segments ...string) string {
	return strings.Join(segments, Separator)
}

// Match reports whether key matches pattern. A single '*' matches any
// suffix run: "strategy:*" matches every key starting with "strategy:".
// A pattern without a wildcard is an exact match. Anything after the
// first '*' is ignored, so malformed patterns degrade to prefix or
// literal matching instead of failing.
func Match(pattern, key string) bool {
	i := strings.IndexByte(pattern, '*')
	if i < 0 {
		return key == pattern
	}
	return strings.HasPrefix(key, pattern[:i])
}

// HasWildcard reports whether pattern contains a glob wildcard
func HasWildcard(pattern string) bool {
	return strings.IndexByte(pattern, '*') >= 0
}

// Hash returns a stable hexadecimal digest of the given values, for use
// as a cache key segment. Values are JSON-serialized and hashed with
// xxhash; two calls with equal inputs produce the same digest.
func Hash(values ...any) (string, error) {
	data, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(xxhash.Sum64(data), 16), nil
}

// HashRecord returns a stable digest identifying a single domain record.
// Useful for memoizing derived values keyed by record content.
func HashRecord(record any) (string, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(xxhash.Sum64(data), 16), nil
}
