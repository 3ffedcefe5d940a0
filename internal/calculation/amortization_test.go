package calculation

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/datagen/synthetic-data/internal/domain"
	"github.com/datagen/synthetic-data/pkg/decimal"
	shop "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyRate(t *testing.T) {
	assert.True(t, MonthlyRate(shop.NewFromInt(12)).Equal(shop.NewFromFloat(0.01)))
	assert.True(t, MonthlyRate(shop.Zero).IsZero())
}

func TestEMIKnownValue(t *testing.T) {
	emi := EMI(decimal.NewMoneyFromInt(100000), MonthlyRate(shop.NewFromInt(12)), 12)
	assert.Equal(t, "8884.88", emi.Round().String())
}

func TestEMIZeroRate(t *testing.T) {
	emi := EMI(decimal.NewMoneyFromInt(1200), shop.Zero, 12)
	assert.Equal(t, "100.00", emi.String())
}

func TestBuildScheduleFirstInstallment(t *testing.T) {
	schedule, err := BuildSchedule(LoanTerms{
		Principal:         decimal.NewMoneyFromInt(100000),
		AnnualRatePercent: shop.NewFromInt(12),
		TenureMonths:      12,
	})
	require.NoError(t, err)
	require.Len(t, schedule, 12)

	first := schedule[0]
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, "8884.88", first.EMI.String())
	assert.Equal(t, "1000.00", first.Interest.String())
	assert.Equal(t, "7884.88", first.Principal.String())
	assert.Equal(t, "92115.12", first.RemainingPrincipal.String())
}

func TestBuildScheduleInvariants(t *testing.T) {
	principals := []int64{1, 999, 50000, 123457, 500000}
	rates := []float64{0, 0.5, 10, 13.37, 18}
	tenures := []int{1, 2, 6, 37, 60}

	for _, p := range principals {
		for _, rate := range rates {
			for _, n := range tenures {
				name := fmt.Sprintf("P=%d/r=%v/n=%d", p, rate, n)
				t.Run(name, func(t *testing.T) {
					principal := decimal.NewMoneyFromInt(p)
					schedule, err := BuildSchedule(LoanTerms{
						Principal:         principal,
						AnnualRatePercent: shop.NewFromFloat(rate),
						TenureMonths:      n,
					})
					require.NoError(t, err)
					require.Len(t, schedule, n)

					total := decimal.Zero()
					prev := principal
					for i, inst := range schedule {
						assert.Equal(t, i+1, inst.Number)
						assert.False(t, inst.RemainingPrincipal.IsNegative(), "balance went negative at %d", inst.Number)
						assert.False(t, inst.Principal.IsNegative(), "negative principal at %d", inst.Number)
						assert.False(t, inst.RemainingPrincipal.GreaterThan(prev), "balance grew at %d", inst.Number)
						assert.True(t, inst.EMI.Equal(inst.Principal.Add(inst.Interest)) || i < n-1,
							"final EMI must equal principal + interest")
						total = total.Add(inst.Principal)
						prev = inst.RemainingPrincipal
					}
					assert.True(t, total.Equal(principal), "principal components sum to %s, want %s", total, principal)
					assert.True(t, schedule[n-1].RemainingPrincipal.IsZero())
				})
			}
		}
	}
}

func TestBuildScheduleRejectsInvalidTerms(t *testing.T) {
	tests := []struct {
		name  string
		terms LoanTerms
	}{
		{"zero tenure", LoanTerms{Principal: decimal.NewMoneyFromInt(1000), AnnualRatePercent: shop.NewFromInt(10)}},
		{"zero principal", LoanTerms{Principal: decimal.Zero(), AnnualRatePercent: shop.NewFromInt(10), TenureMonths: 12}},
		{"negative rate", LoanTerms{Principal: decimal.NewMoneyFromInt(1000), AnnualRatePercent: shop.NewFromInt(-1), TenureMonths: 12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildSchedule(tt.terms)
			assert.Error(t, err)
		})
	}
}

// scriptedRand replays fixed draws.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (s *scriptedRand) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedRand) Intn(n int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v >= n {
		panic("scripted int out of range")
	}
	return v
}

func TestApplyStatusesDefaultCutoff(t *testing.T) {
	// default flag hit, cutoff = 3 + 2 = 5, then five non-late draws
	rng := &scriptedRand{
		floats: []float64{0.01, 0.9, 0.9, 0.9, 0.05, 0.9},
		ints:   []int{2},
	}
	statuses := ApplyStatuses(rng, 8, RepaymentBehavior{PLateInstallment: 0.08, PDefaultLoan: 0.04})
	require.Len(t, statuses, 8)

	want := []string{
		domain.InstallmentPaid, domain.InstallmentPaid, domain.InstallmentPaid,
		domain.InstallmentLate, domain.InstallmentPaid,
		domain.InstallmentDefaulted, domain.InstallmentDefaulted, domain.InstallmentDefaulted,
	}
	for i, s := range statuses {
		assert.Equal(t, want[i], s.Status, "installment %d", i+1)
		assert.Equal(t, s.Status != domain.InstallmentPaid, s.Missed)
	}
}

func TestApplyStatusesShortLoanNeverDefaults(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	statuses := ApplyStatuses(rng, 2, RepaymentBehavior{PDefaultLoan: 1})
	for _, s := range statuses {
		assert.NotEqual(t, domain.InstallmentDefaulted, s.Status)
	}
}

func TestApplyStatusesDefaultIsAbsorbing(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		statuses := ApplyStatuses(rng, 24, RepaymentBehavior{PLateInstallment: 0.2, PDefaultLoan: 1})
		seenDefault := false
		for i, s := range statuses {
			if s.Status == domain.InstallmentDefaulted {
				assert.GreaterOrEqual(t, i+1, 4, "default before cutoff floor")
				seenDefault = true
				continue
			}
			assert.False(t, seenDefault, "non-default status after a default")
		}
	}
}

func TestApplyStatusesCleanBehavior(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, s := range ApplyStatuses(rng, 36, RepaymentBehavior{}) {
		assert.Equal(t, domain.InstallmentPaid, s.Status)
		assert.False(t, s.Missed)
	}
}
