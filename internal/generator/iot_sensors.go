package generator

import (
	"time"

	"github.com/datagen/synthetic-data/internal/dataset"
	"github.com/datagen/synthetic-data/internal/domain"
	"github.com/datagen/synthetic-data/pkg/decimal"
)

// IoTSensorsGenerator emits fixed-frequency temperature-like readings per
// device.
type IoTSensorsGenerator struct {
	base
	config domain.IoTSensorsConfig
}

// NewIoTSensorsGenerator seeds a generator from its config
func NewIoTSensorsGenerator(config domain.IoTSensorsConfig) *IoTSensorsGenerator {
	return &IoTSensorsGenerator{base: newBase(ScenarioIoTSensors, config.Seed), config: config}
}

func (g *IoTSensorsGenerator) Generate() (dataset.Table, error) {
	cfg := g.config
	step := time.Duration(cfg.FreqSeconds) * time.Second
	records := make([]domain.SensorReading, 0, cfg.NumDevices*cfg.NumPoints)

	for deviceID := 1; deviceID <= cfg.NumDevices; deviceID++ {
		t := cfg.StartTime
		for i := 0; i < cfg.NumPoints; i++ {
			records = append(records, domain.SensorReading{
				DeviceID:  deviceID,
				Timestamp: t,
				Value:     decimal.RoundFloat(20+g.rng.Float64()*5, 3),
			})
			t = t.Add(step)
		}
	}
	return finish(&g.base, records)
}
