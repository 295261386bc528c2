package keys

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	require.Equal(t, "strategy:42:performance", Build("strategy", "42", "performance"))
	require.Equal(t, "user", Build("user"))
	require.Equal(t, "", Build())
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		key     string
		want    bool
	}{
		{"exact match", "user:1:data", "user:1:data", true},
		{"exact mismatch", "user:1:data", "user:2:data", false},
		{"prefix wildcard", "strategy:*", "strategy:42:performance", true},
		{"prefix wildcard mismatch", "strategy:*", "user:1:data", false},
		{"bare wildcard matches all", "*", "anything", true},
		{"wildcard matches empty suffix", "strategy:*", "strategy:", true},
		{"text after wildcard ignored", "strategy:*:performance", "strategy:42:foo", true},
		{"empty pattern", "", "key", false},
		{"empty key exact", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Match(tt.pattern, tt.key))
		})
	}
}

func TestHasWildcard(t *testing.T) {
	require.True(t, HasWildcard("strategy:*"))
	require.False(t, HasWildcard("strategy:42"))
}

func TestHashStable(t *testing.T) {
	a, err := Hash("strategy", 42, "performance")
	require.NoError(t, err)
	b, err := Hash("strategy", 42, "performance")
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.NotEmpty(t, a)

	c, err := Hash("strategy", 43, "performance")
	require.NoError(t, err)
	require.NotEqual(t, a, c)
}

func TestHashRecord(t *testing.T) {
	type trade struct {
		Symbol string
		Qty    int
		Price  float64
	}

	t1 := trade{Symbol: "ES", Qty: 2, Price: 4500.25}
	t2 := trade{Symbol: "ES", Qty: 2, Price: 4500.25}
	t3 := trade{Symbol: "NQ", Qty: 2, Price: 4500.25}

	h1, err := HashRecord(t1)
	require.NoError(t, err)
	h2, err := HashRecord(t2)
	require.NoError(t, err)
	h3, err := HashRecord(t3)
	require.NoError(t, err)

	require.Equal(t, h1, h2)
	require.NotEqual(t, h1, h3)
}

func TestHashRejectsUnserializable(t *testing.T) {
	_, err := Hash(func() {})
	require.Error(t, err)
}
