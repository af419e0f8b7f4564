package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func byteCost(b []byte) int64 {
	return int64(len(b))
}

func TestNewCache(t *testing.T) {
	c, err := New[[]byte]("Test Pages", time.Minute, byteCost)
	require.NoError(t, err)
	defer c.Close()

	page := []byte("<html>home</html>")
	c.Set("home", page)
	c.Wait()

	got, found := c.Get("home")
	require.True(t, found)
	assert.Equal(t, page, got)
}

func TestGetOrBuild(t *testing.T) {
	c, err := New[[]byte]("Test Pages", time.Minute, byteCost)
	require.NoError(t, err)
	defer c.Close()

	builds := 0
	build := func() ([]byte, error) {
		builds++
		return []byte("rendered"), nil
	}

	first, err := c.GetOrBuild("home", build)
	require.NoError(t, err)
	c.Wait()

	second, err := c.GetOrBuild("home", build)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, builds)
}

func TestGetOrBuildError(t *testing.T) {
	c, err := New[[]byte]("Test Pages", time.Minute, byteCost)
	require.NoError(t, err)
	defer c.Close()

	boom := errors.New("render failed")
	_, err = c.GetOrBuild("home", func() ([]byte, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
	c.Wait()

	_, found := c.Get("home")
	assert.False(t, found)
}

func TestClear(t *testing.T) {
	c, err := New[[]byte]("Test Pages", time.Minute, byteCost)
	require.NoError(t, err)
	defer c.Close()

	c.Set("home", []byte("x"))
	c.Wait()
	c.Clear()

	_, found := c.Get("home")
	assert.False(t, found)
}

func TestCacheStats(t *testing.T) {
	c, err := New[[]byte]("Test Pages", time.Minute, byteCost)
	require.NoError(t, err)
	defer c.Close()

	c.Set("a", []byte("aaaa"))
	c.Wait()
	c.Get("a")
	c.Get("b")

	stats := c.Stats()
	for _, key := range []string{"cache", "hits", "misses", "sets", "total_requests", "hit_rate", "items", "cost_kb"} {
		assert.Contains(t, stats, key)
	}
	assert.Equal(t, "Test Pages", stats["cache"])
	assert.Equal(t, uint64(1), stats["hits"])
	assert.Equal(t, uint64(1), stats["misses"])

	hitRate := stats["hit_rate"].(float64)
	assert.InDelta(t, 50.0, hitRate, 0.001)
}

func TestCacheStatsEmpty(t *testing.T) {
	c, err := New[[]byte]("Empty", time.Minute, byteCost)
	require.NoError(t, err)
	defer c.Close()

	stats := c.Stats()
	assert.Equal(t, uint64(0), stats["total_requests"])
	assert.Equal(t, 0.0, stats["hit_rate"])
}

func BenchmarkGetOrBuild(b *testing.B) {
	c, err := New[[]byte]("Benchmark", time.Minute, byteCost)
	if err != nil {
		b.Fatal(err)
	}
	defer c.Close()

	page := []byte("<html></html>")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.GetOrBuild("home", func() ([]byte, error) { return page, nil })
	}
}
