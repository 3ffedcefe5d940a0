package generator

import (
	"fmt"

	"github.com/datagen/synthetic-data/internal/dataset"
	"github.com/datagen/synthetic-data/internal/domain"
)

// Loan application enumerations
var (
	ApplicationStatuses = []string{"REJECTED", "PENDING", "APPROVED", "CLOSED"}
	applicationWeights  = []float64{0.3, 0.3, 0.2, 0.2}

	ProductTypes     = []string{"AUTO", "PERSONAL", "HOME"}
	Branches         = []string{"Pokhara", "Biratnagar", "Kathmandu"}
	CreditScoreBands = []string{"LOW", "MEDIUM", "HIGH"}
)

// LoanApplicationsGenerator emits loan applications with field-level gaps.
type LoanApplicationsGenerator struct {
	base
	config domain.LoanApplicationsConfig
}

// NewLoanApplicationsGenerator seeds a generator from its config
func NewLoanApplicationsGenerator(config domain.LoanApplicationsConfig) *LoanApplicationsGenerator {
	return &LoanApplicationsGenerator{base: newBase(ScenarioLoans, config.Seed), config: config}
}

func (g *LoanApplicationsGenerator) Generate() (dataset.Table, error) {
	cfg := g.config
	miss := cfg.Missing
	records := make([]domain.LoanApplication, 0, cfg.NumRows)

	for idx := 1; idx <= cfg.NumRows; idx++ {
		records = append(records, domain.LoanApplication{
			LoanID:          fmt.Sprintf("LN%04d", idx),
			CustomerID:      fmt.Sprintf("CUST%04d", idx),
			CreatedAt:       maybeMissing(g.rng, miss.CreatedAt, g.rng.TimeBetween(cfg.StartDatetime, cfg.EndDatetime)),
			Amount:          maybeMissing(g.rng, miss.Amount, g.amount()),
			InterestRate:    maybeMissing(g.rng, miss.Rate, Choice(g.rng, cfg.InterestRates)),
			TenureMonths:    maybeMissing(g.rng, miss.Tenure, Choice(g.rng, cfg.TenureOptions)),
			Status:          maybeMissing(g.rng, miss.Status, WeightedChoice(g.rng, ApplicationStatuses, applicationWeights)),
			ProductType:     maybeMissing(g.rng, miss.ProductType, Choice(g.rng, ProductTypes)),
			Branch:          maybeMissing(g.rng, miss.Branch, Choice(g.rng, Branches)),
			CreditScoreBand: maybeMissing(g.rng, miss.CreditBand, Choice(g.rng, CreditScoreBands)),
		})
	}
	return finish(&g.base, records)
}

// amount draws from the min..max grid spaced by AmountStep
func (g *LoanApplicationsGenerator) amount() int {
	steps := (g.config.MaxAmount - g.config.MinAmount) / g.config.AmountStep
	return g.config.MinAmount + g.rng.IntBetween(0, steps)*g.config.AmountStep
}
