package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupDeterministic(t *testing.T) {
	args := LookupArgs{Query: "sour cream", Lat: 25.03, Lon: 121.56, RadiusM: 5000}

	first := Lookup(args)
	second := Lookup(args)

	// 同樣輸入永遠得到同樣輸出
	assert.Equal(t, first, second)
}

func TestLookupShape(t *testing.T) {
	stores := Lookup(LookupArgs{Query: "mirin", Lat: 35.68, Lon: 139.69, RadiusM: 3000})

	require.Len(t, stores, 3)
	for i, s := range stores {
		assert.True(t, strings.HasPrefix(s.Name, "Mirin Market #"), "name %q", s.Name)
		assert.GreaterOrEqual(t, s.DistanceM, 100)
		assert.Less(t, s.DistanceM, 3000+100)
		assert.InDelta(t, 35.68+float64(i)*0.001, s.Lat, 1e-9)
		assert.InDelta(t, 139.69-float64(i)*0.001, s.Lon, 1e-9)
	}
}

func TestLookupDefaultRadius(t *testing.T) {
	stores := Lookup(LookupArgs{Query: "butter", Lat: 0, Lon: 0})

	require.Len(t, stores, 3)
	for _, s := range stores {
		assert.Less(t, s.DistanceM, defaultRadiusM+100)
	}
}

func TestLookupNormalizesQuery(t *testing.T) {
	upper := Lookup(LookupArgs{Query: "  BUTTER ", Lat: 1, Lon: 2})
	lower := Lookup(LookupArgs{Query: "butter", Lat: 1, Lon: 2})

	assert.Equal(t, lower, upper)
}
