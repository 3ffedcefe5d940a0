package calculation

import (
	"fmt"

	"github.com/datagen/synthetic-data/internal/domain"
	"github.com/datagen/synthetic-data/pkg/decimal"
	shop "github.com/shopspring/decimal"
)

var (
	decimalOne     = shop.NewFromInt(1)
	monthsPerYear  = shop.NewFromInt(12)
	percentDivisor = shop.NewFromInt(100)
)

// earliestDefault is the first installment after which a loan may default
const earliestDefault = 3

// LoanTerms are the inputs of an equated monthly installment schedule
type LoanTerms struct {
	Principal         decimal.Money
	AnnualRatePercent shop.Decimal // e.g. 12.5 for 12.5% p.a.
	TenureMonths      int
}

// Installment is one row of an amortization schedule. Amounts are rounded to
// cents.
type Installment struct {
	Number             int
	EMI                decimal.Money
	Principal          decimal.Money
	Interest           decimal.Money
	RemainingPrincipal decimal.Money
}

// MonthlyRate converts an annual percentage rate into a monthly fraction
func MonthlyRate(annualRatePercent shop.Decimal) shop.Decimal {
	return annualRatePercent.Div(monthsPerYear).Div(percentDivisor)
}

// EMI computes the fixed installment P·r·(1+r)^n / ((1+r)^n − 1), or P/n for
// an interest-free loan. The result is not rounded.
func EMI(principal decimal.Money, monthlyRate shop.Decimal, n int) decimal.Money {
	if monthlyRate.IsZero() {
		return principal.Div(shop.NewFromInt(int64(n)))
	}
	growth := decimalOne.Add(monthlyRate).Pow(shop.NewFromInt(int64(n)))
	return principal.Mul(monthlyRate).Mul(growth).Div(growth.Sub(decimalOne))
}

// BuildSchedule lays out the installments of a loan. Interest accrues on the
// remaining principal each month; the principal component is capped at the
// remaining balance and the final installment absorbs any rounding residue
// so the balance ends at exactly zero.
func BuildSchedule(terms LoanTerms) ([]Installment, error) {
	n := terms.TenureMonths
	if n <= 0 {
		return nil, fmt.Errorf("tenure must be positive, got %d", n)
	}
	if !terms.Principal.IsPositive() {
		return nil, fmt.Errorf("principal must be positive, got %s", terms.Principal)
	}
	if terms.AnnualRatePercent.IsNegative() {
		return nil, fmt.Errorf("annual rate cannot be negative, got %s", terms.AnnualRatePercent)
	}

	r := MonthlyRate(terms.AnnualRatePercent)
	emi := EMI(terms.Principal, r, n).Round()
	remaining := terms.Principal.Round()

	schedule := make([]Installment, 0, n)
	for k := 1; k <= n; k++ {
		interest := remaining.Mul(r).Round()
		principal := emi.Sub(interest).Round()
		payment := emi

		switch {
		case k == n || principal.GreaterThan(remaining):
			principal = remaining
			payment = principal.Add(interest)
		case principal.IsNegative():
			// tiny balances can round interest above the installment
			principal = decimal.Zero()
			payment = interest
		}
		remaining = decimal.Max(decimal.Zero(), remaining.Sub(principal).Round())

		schedule = append(schedule, Installment{
			Number:             k,
			EMI:                payment.Round(),
			Principal:          principal,
			Interest:           interest,
			RemainingPrincipal: remaining,
		})
	}
	return schedule, nil
}

// RandomSource is the subset of *rand.Rand the status overlay draws from
type RandomSource interface {
	Float64() float64
	Intn(n int) int
}

// RepaymentBehavior holds the probabilities of non-ideal repayment
type RepaymentBehavior struct {
	PLateInstallment float64
	PDefaultLoan     float64
}

// InstallmentStatus is the repayment outcome of one installment
type InstallmentStatus struct {
	Status string
	Missed bool
}

// ApplyStatuses decides the repayment status of n installments. A loan flagged
// for default gets a cutoff drawn uniformly from [min(3,n), n]; every
// installment after the cutoff is DEFAULTED. The remaining installments are
// independently LATE with probability PLateInstallment, otherwise PAID.
func ApplyStatuses(rng RandomSource, n int, behavior RepaymentBehavior) []InstallmentStatus {
	willDefault := rng.Float64() < behavior.PDefaultLoan
	cutoff := n
	if willDefault {
		lo := earliestDefault
		if lo > n {
			lo = n
		}
		cutoff = lo + rng.Intn(n-lo+1)
	}

	statuses := make([]InstallmentStatus, n)
	for k := 1; k <= n; k++ {
		switch {
		case willDefault && k > cutoff:
			statuses[k-1] = InstallmentStatus{Status: domain.InstallmentDefaulted, Missed: true}
		case rng.Float64() < behavior.PLateInstallment:
			statuses[k-1] = InstallmentStatus{Status: domain.InstallmentLate, Missed: true}
		default:
			statuses[k-1] = InstallmentStatus{Status: domain.InstallmentPaid}
		}
	}
	return statuses
}
