package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"shiptrack/internal/geo"
	"shiptrack/internal/repository/cache"
)

func TestCache_PutGetDelete(t *testing.T) {
	cch := cache.NewCache()
	defer cch.Close()

	_, ok := cch.Get("nope")
	require.False(t, ok)

	cch.Put("k", 42)
	v, ok := cch.Get("k")
	require.True(t, ok)
	require.Equal(t, 42, v)

	cch.Delete("k")
	_, ok = cch.Get("k")
	require.False(t, ok)
}

func TestCache_TTLExpires(t *testing.T) {
	cch := cache.NewCache(cache.WithTTL(30 * time.Millisecond))
	defer cch.Close()

	cch.Put("k", "v")
	_, ok := cch.Get("k")
	require.True(t, ok)

	time.Sleep(60 * time.Millisecond)
	_, ok = cch.Get("k")
	require.False(t, ok)
}

func TestCache_Snapshot(t *testing.T) {
	cch := cache.NewCache()
	defer cch.Close()

	cch.Put("a", 1)
	cch.Put("b", 2)

	snap := cch.Snapshot()
	require.Len(t, snap, 2)
	require.Equal(t, 1, snap["a"])

	// Snapshot is a copy, not a view.
	cch.Delete("a")
	require.Equal(t, 1, snap["a"])
}

func TestGeoCache_RoundTrip(t *testing.T) {
	cch := cache.NewCache()
	defer cch.Close()
	g := cache.NewGeoCache(cch)

	_, ok := g.GetCoordinates("NLD")
	require.False(t, ok)

	g.PutCoordinates("NLD", geo.Coordinates{Lat: 52.1, Lng: 5.3})
	c, ok := g.GetCoordinates("NLD")
	require.True(t, ok)
	require.Equal(t, 52.1, c.Lat)
	require.Equal(t, 5.3, c.Lng)
}
