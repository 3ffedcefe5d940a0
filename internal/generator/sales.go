package generator

import (
	"fmt"

	"github.com/datagen/synthetic-data/internal/dataset"
	"github.com/datagen/synthetic-data/internal/domain"
	"github.com/datagen/synthetic-data/pkg/dateutil"
	"github.com/datagen/synthetic-data/pkg/decimal"
)

// SalesGenerator emits a random number of orders for each calendar day.
type SalesGenerator struct {
	base
	config domain.SalesConfig
}

// NewSalesGenerator seeds a generator from its config
func NewSalesGenerator(config domain.SalesConfig) *SalesGenerator {
	return &SalesGenerator{base: newBase(ScenarioSales, config.Seed), config: config}
}

func (g *SalesGenerator) Generate() (dataset.Table, error) {
	days := dateutil.DateRange(g.config.StartDate, g.config.EndDate)
	records := make([]domain.SalesOrder, 0, len(days)*g.config.MaxOrdersPerDay/2)

	for _, d := range days {
		numOrders := g.rng.IntBetween(0, g.config.MaxOrdersPerDay)
		for i := 0; i < numOrders; i++ {
			amount := decimal.RoundFloat(g.rng.Uniform(10, 500), 2)
			records = append(records, domain.SalesOrder{
				OrderID:   fmt.Sprintf("O%s%d", d.Format("20060102"), g.rng.IntBetween(1000, 9999)),
				OrderDate: d,
				Amount:    amount,
			})
		}
	}
	return finish(&g.base, records)
}
