package internal

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExpired(t *testing.T) {
	require.True(t, Expired(time.Now().Add(-time.Second)))
	require.False(t, Expired(time.Now().Add(time.Second)))
}

func TestSafeMapBasicOperations(t *testing.T) {
	m := NewSafeMap[string, int]()

	m.Set("a", 1)
	m.Set("b", 2)

	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	_, ok = m.Get("missing")
	require.False(t, ok)

	require.Equal(t, 2, m.Size())

	m.Delete("a")
	require.Equal(t, 1, m.Size())

	m.Clear()
	require.Equal(t, 0, m.Size())
}

func TestSafeMapConcurrentAccess(t *testing.T) {
	m := NewSafeMap[int, int]()
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Set(n*100+j, j)
				m.Get(n*100 + j)
			}
		}(i)
	}
	wg.Wait()

	require.Equal(t, 1000, m.Size())
}
