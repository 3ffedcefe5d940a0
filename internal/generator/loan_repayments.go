package generator

import (
	"fmt"

	"github.com/datagen/synthetic-data/internal/calculation"
	"github.com/datagen/synthetic-data/internal/dataset"
	"github.com/datagen/synthetic-data/internal/domain"
	"github.com/datagen/synthetic-data/pkg/dateutil"
	"github.com/datagen/synthetic-data/pkg/decimal"
	shop "github.com/shopspring/decimal"
)

// maxStartOffsetDays spreads loan start dates after the configured start
const maxStartOffsetDays = 90

// LoanRepaymentsGenerator emits EMI schedules with late and defaulted
// installments overlaid.
type LoanRepaymentsGenerator struct {
	base
	config domain.LoanRepaymentsConfig
}

// NewLoanRepaymentsGenerator seeds a generator from its config
func NewLoanRepaymentsGenerator(config domain.LoanRepaymentsConfig) *LoanRepaymentsGenerator {
	return &LoanRepaymentsGenerator{base: newBase(ScenarioLoanRepayments, config.Seed), config: config}
}

func (g *LoanRepaymentsGenerator) Generate() (dataset.Table, error) {
	cfg := g.config
	behavior := calculation.RepaymentBehavior{
		PLateInstallment: cfg.PLateInstallment,
		PDefaultLoan:     cfg.PDefaultLoan,
	}
	records := make([]domain.LoanRepayment, 0, cfg.NumLoans*(cfg.MinTenureMonths+cfg.MaxTenureMonths)/2)

	for idx := 1; idx <= cfg.NumLoans; idx++ {
		loanID := fmt.Sprintf("LN-REP-%05d", idx)
		customerID := fmt.Sprintf("CUST-%d", g.rng.IntBetween(10000, 99999))

		principal := g.rng.IntBetween(cfg.MinPrincipal, cfg.MaxPrincipal)
		tenure := g.rng.IntBetween(cfg.MinTenureMonths, cfg.MaxTenureMonths)
		annualRate := shop.NewFromFloat(g.rng.Uniform(cfg.MinAnnualRate, cfg.MaxAnnualRate)).Round(2)
		start := cfg.StartDate.AddDate(0, 0, g.rng.IntBetween(0, maxStartOffsetDays))

		schedule, err := calculation.BuildSchedule(calculation.LoanTerms{
			Principal:         decimal.NewMoneyFromInt(int64(principal)),
			AnnualRatePercent: annualRate,
			TenureMonths:      tenure,
		})
		if err != nil {
			return nil, fmt.Errorf("loan %s: %w", loanID, err)
		}
		statuses := calculation.ApplyStatuses(g.rng, tenure, behavior)
		if statuses[len(statuses)-1].Status == domain.InstallmentDefaulted {
			g.Logger.Debugf("%s defaulted (principal %d, %d months at %s%%)", loanID, principal, tenure, annualRate)
		}

		scheduleDate := start
		for i, inst := range schedule {
			missed := 0
			if statuses[i].Missed {
				missed = 1
			}
			records = append(records, domain.LoanRepayment{
				LoanID:             loanID,
				CustomerID:         customerID,
				ScheduleDate:       scheduleDate,
				InstallmentNumber:  inst.Number,
				EMIAmount:          inst.EMI.Float64(),
				PrincipalComponent: inst.Principal.Float64(),
				InterestComponent:  inst.Interest.Float64(),
				RemainingPrincipal: inst.RemainingPrincipal.Float64(),
				Status:             statuses[i].Status,
				IsMissedPayment:    missed,
			})
			scheduleDate = dateutil.NextMonth(scheduleDate)
		}
	}
	return finish(&g.base, records)
}
