package generator

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamplerIntBetween(t *testing.T) {
	s := NewSampler(1)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := s.IntBetween(-2, 2)
		require.GreaterOrEqual(t, v, -2)
		require.LessOrEqual(t, v, 2)
		seen[v] = true
	}
	assert.Len(t, seen, 5, "both bounds are reachable")
	assert.Equal(t, 7, s.IntBetween(7, 7))
	assert.Equal(t, 7, s.IntBetween(7, 3), "an empty range collapses to lo")
}

func TestSamplerTimeBetween(t *testing.T) {
	s := NewSampler(2)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Second)
	for i := 0; i < 500; i++ {
		ts := s.TimeBetween(start, end)
		require.False(t, ts.Before(start))
		require.False(t, ts.After(end))
		require.Zero(t, ts.Nanosecond())
	}
	assert.Equal(t, start, s.TimeBetween(start, start))
}

func TestSamplerDeterminism(t *testing.T) {
	a, b := NewSampler(99), NewSampler(99)
	for i := 0; i < 20; i++ {
		require.Equal(t, a.UUID(), b.UUID())
		require.Equal(t, a.Faker().City(), b.Faker().City())
		require.Equal(t, a.Float64(), b.Float64())
	}
	assert.NotEqual(t, NewSampler(1).UUID(), NewSampler(2).UUID())
}

func TestSamplerUUIDVersion(t *testing.T) {
	id, err := uuid.Parse(NewSampler(5).UUID())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), id.Version())
}

func TestWeightedChoice(t *testing.T) {
	s := NewSampler(3)
	items := []string{"never", "always"}
	for i := 0; i < 200; i++ {
		require.Equal(t, "always", WeightedChoice(s, items, []float64{0, 1}))
	}

	counts := map[string]int{}
	for i := 0; i < 10000; i++ {
		counts[WeightedChoice(s, []string{"a", "b"}, []float64{9, 1})]++
	}
	assert.InDelta(t, 0.9, float64(counts["a"])/10000, 0.03)
}

func TestMaybeMissing(t *testing.T) {
	s := NewSampler(4)
	for i := 0; i < 100; i++ {
		require.NotNil(t, maybeMissing(s, 0, i))
		require.Nil(t, maybeMissing(s, 1, i))
	}
	v := maybeMissing(s, 0, "x")
	assert.Equal(t, "x", *v)
}

func TestZeroSeedUsesSeedFunc(t *testing.T) {
	orig := seedFunc
	defer SetSeedFunc(orig)
	SetSeedFunc(func() int64 { return 12345 })

	assert.Equal(t, NewSampler(12345).UUID(), NewSampler(0).UUID())
}
