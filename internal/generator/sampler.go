package generator

import (
	"math"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

// Sampler is the private random source of one generator. Every draw,
// including UUIDs and fake profile fields, derives from its seed.
type Sampler struct {
	*rand.Rand
	faker *gofakeit.Faker
}

// NewSampler seeds a sampler. A zero seed draws one from seedFunc.
func NewSampler(seed int64) *Sampler {
	seed = resolveSeed(seed)
	return &Sampler{
		Rand:  rand.New(rand.NewSource(seed)),
		faker: gofakeit.New(uint64(seed)),
	}
}

// IntBetween returns a uniform integer in [lo, hi]
func (s *Sampler) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.Intn(hi-lo+1)
}

// Uniform returns a uniform float in [lo, hi)
func (s *Sampler) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.Float64()
}

// Chance reports true with probability p
func (s *Sampler) Chance(p float64) bool {
	return s.Float64() < p
}

// Gauss draws from N(mu, sigma)
func (s *Sampler) Gauss(mu, sigma float64) float64 {
	return mu + sigma*s.NormFloat64()
}

// LogNormal draws exp(N(mu, sigma))
func (s *Sampler) LogNormal(mu, sigma float64) float64 {
	return math.Exp(s.Gauss(mu, sigma))
}

// TimeBetween returns a whole-second instant uniformly in [start, end]
func (s *Sampler) TimeBetween(start, end time.Time) time.Time {
	span := int(end.Sub(start) / time.Second)
	return start.Add(time.Duration(s.IntBetween(0, span)) * time.Second)
}

// UUID draws a version 4 UUID from the sampler
func (s *Sampler) UUID() string {
	id, err := uuid.NewRandomFromReader(s)
	if err != nil {
		// *rand.Rand reads never fail
		panic(err)
	}
	return id.String()
}

// Faker exposes the seeded fake data source
func (s *Sampler) Faker() *gofakeit.Faker {
	return s.faker
}

// Choice picks one item uniformly
func Choice[T any](s *Sampler, items []T) T {
	return items[s.Intn(len(items))]
}

// WeightedChoice picks one item with probability proportional to its weight.
// Weights need not sum to one.
func WeightedChoice[T any](s *Sampler, items []T, weights []float64) T {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	x := s.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if x < acc {
			return items[i]
		}
	}
	return items[len(items)-1]
}

// maybeMissing draws v's null mask: nil with probability p
func maybeMissing[T any](s *Sampler, p float64, v T) *T {
	if s.Chance(p) {
		return nil
	}
	return &v
}
