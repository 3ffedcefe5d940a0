package generator

import (
	"time"

	"github.com/datagen/synthetic-data/internal/dataset"
	"github.com/datagen/synthetic-data/internal/domain"
)

// EventTypes lists the clickstream event kinds
var (
	EventTypes   = []string{"view", "add_to_cart", "purchase"}
	eventWeights = []float64{0.7, 0.2, 0.1}
)

const minEventsPerUser = 5

// EcommerceGenerator emits a per-user event stream with increasing times.
type EcommerceGenerator struct {
	base
	config domain.EcommerceConfig
}

// NewEcommerceGenerator seeds a generator from its config
func NewEcommerceGenerator(config domain.EcommerceConfig) *EcommerceGenerator {
	return &EcommerceGenerator{base: newBase(ScenarioEcommerce, config.Seed), config: config}
}

func (g *EcommerceGenerator) Generate() (dataset.Table, error) {
	cfg := g.config
	lo := minEventsPerUser
	if cfg.MaxEventsPerUser < lo {
		lo = cfg.MaxEventsPerUser
	}
	records := make([]domain.EcommerceEvent, 0, cfg.NumUsers*(lo+cfg.MaxEventsPerUser)/2)

	for userID := 1; userID <= cfg.NumUsers; userID++ {
		t := cfg.StartTime
		numEvents := g.rng.IntBetween(lo, cfg.MaxEventsPerUser)
		for i := 0; i < numEvents; i++ {
			t = t.Add(time.Duration(g.rng.IntBetween(1, 120)) * time.Minute)
			records = append(records, domain.EcommerceEvent{
				UserID:    userID,
				EventTime: t,
				EventType: WeightedChoice(g.rng, EventTypes, eventWeights),
			})
		}
	}
	return finish(&g.base, records)
}
