package generator

import (
	"fmt"
	"math"
	"strings"

	"github.com/datagen/synthetic-data/internal/dataset"
	"github.com/datagen/synthetic-data/internal/domain"
	"github.com/datagen/synthetic-data/pkg/decimal"
)

// Occupations lists the occupations a customer may hold
var Occupations = []string{
	"Student",
	"Engineer",
	"Teacher",
	"Manager",
	"Self-employed",
	"Doctor",
	"Nurse",
	"Government",
	"Unemployed",
	"Retired",
}

// incomeBand is an annual income range for customers younger than MaxAge
type incomeBand struct {
	MaxAge int
	Low    float64
	High   float64
}

var incomeBands = []incomeBand{
	{24, 100000, 400000},
	{35, 300000, 900000},
	{50, 400000, 1500000},
	{math.MaxInt, 200000, 800000},
}

const highRiskIncome = 400000

// Customer360Generator emits customer profiles with product holdings, a
// balance model and derived risk and churn scores.
type Customer360Generator struct {
	base
	config domain.Customer360Config
}

// NewCustomer360Generator seeds a generator from its config
func NewCustomer360Generator(config domain.Customer360Config) *Customer360Generator {
	return &Customer360Generator{base: newBase(ScenarioCustomer360, config.Seed), config: config}
}

func (g *Customer360Generator) Generate() (dataset.Table, error) {
	records := make([]domain.CustomerProfile, 0, g.config.NumCustomers)
	for i := 1; i <= g.config.NumCustomers; i++ {
		records = append(records, g.sampleCustomer(i))
	}
	return finish(&g.base, records)
}

func (g *Customer360Generator) sampleCustomer(idx int) domain.CustomerProfile {
	faker := g.rng.Faker()
	fullName := faker.Name()
	gender := genderCode(faker.Gender())

	age := g.rng.IntBetween(18, 75)
	country := faker.Country()
	city := faker.City()

	var income float64
	for _, band := range incomeBands {
		if age < band.MaxAge {
			income = decimal.RoundFloat(g.rng.Uniform(band.Low, band.High), 2)
			break
		}
	}
	occupation := Choice(g.rng, Occupations)

	hasCreditCard := g.flag(0.65)
	hasLoan := g.flag(0.45)
	hasSavings := g.flag(0.85)
	numProducts := hasCreditCard + hasLoan + hasSavings
	if numProducts == 0 && g.rng.Chance(0.3) {
		hasSavings = 1
		numProducts = 1
	}

	balance := 0.0
	if hasSavings == 1 {
		balance += g.rng.Uniform(20000, 300000)
	}
	if hasCreditCard == 1 {
		balance += g.rng.Uniform(-50000, 50000)
	}
	if hasLoan == 1 {
		balance -= g.rng.Uniform(50000, 500000)
	}
	totalBalance := decimal.RoundFloat(balance, 2)

	var risk string
	indebted := hasLoan == 1 || totalBalance < 0
	switch {
	case indebted && income < highRiskIncome:
		risk = domain.RiskHigh
	case indebted:
		risk = domain.RiskMedium
	default:
		risk = WeightedChoice(g.rng, []string{domain.RiskLow, domain.RiskMedium}, []float64{0.7, 0.3})
	}

	engagement := g.rng.Uniform(0.1, 0.9) + 0.05*float64(numProducts-1)
	engagement = clamp01(engagement)
	churn := 1.0 - engagement
	if risk == domain.RiskHigh {
		churn = math.Min(1.0, churn+0.2)
	}

	return domain.CustomerProfile{
		CustomerID:        fmt.Sprintf("CUST-%06d", idx),
		FullName:          fullName,
		Age:               age,
		Gender:            gender,
		Country:           country,
		City:              city,
		IncomeAnnual:      income,
		Occupation:        occupation,
		RiskSegment:       risk,
		HasCreditCard:     hasCreditCard,
		HasLoan:           hasLoan,
		HasSavingsAccount: hasSavings,
		NumProducts:       numProducts,
		TotalBalance:      totalBalance,
		ChurnScore:        decimal.RoundFloat(churn, 3),
		EngagementScore:   decimal.RoundFloat(engagement, 3),
	}
}

func (g *Customer360Generator) flag(p float64) int {
	if g.rng.Chance(p) {
		return 1
	}
	return 0
}

func genderCode(g string) string {
	switch strings.ToLower(g) {
	case "male", "m":
		return "M"
	case "female", "f":
		return "F"
	}
	return "O"
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
