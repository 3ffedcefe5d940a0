package generator

import (
	"github.com/datagen/synthetic-data/internal/dataset"
	"github.com/datagen/synthetic-data/internal/domain"
)

// ExperimentsGenerator emits noisy measurements around a per-experiment
// baseline.
type ExperimentsGenerator struct {
	base
	config domain.ExperimentsConfig
}

// NewExperimentsGenerator seeds a generator from its config
func NewExperimentsGenerator(config domain.ExperimentsConfig) *ExperimentsGenerator {
	return &ExperimentsGenerator{base: newBase(ScenarioExperiments, config.Seed), config: config}
}

func (g *ExperimentsGenerator) Generate() (dataset.Table, error) {
	cfg := g.config
	records := make([]domain.Measurement, 0, cfg.NumExperiments*cfg.MeasurementsPerExperiment)

	for expID := 1; expID <= cfg.NumExperiments; expID++ {
		baseline := g.rng.Uniform(0.5, 1.5)
		for step := 0; step < cfg.MeasurementsPerExperiment; step++ {
			records = append(records, domain.Measurement{
				ExperimentID: expID,
				Step:         step,
				Value:        baseline + g.rng.Gauss(0, 0.05),
			})
		}
	}
	return finish(&g.base, records)
}
