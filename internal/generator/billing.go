package generator

import (
	"fmt"
	"math"

	"github.com/datagen/synthetic-data/internal/dataset"
	"github.com/datagen/synthetic-data/internal/domain"
	"github.com/datagen/synthetic-data/pkg/dateutil"
	"github.com/datagen/synthetic-data/pkg/decimal"
	shop "github.com/shopspring/decimal"
)

// billingPlan is a subscription tier with a fixed monthly fee
type billingPlan struct {
	Name string
	Fee  decimal.Money
}

var billingPlans = []billingPlan{
	{"BASIC", decimal.NewMoney(9.99)},
	{"STANDARD", decimal.NewMoney(19.99)},
	{"PREMIUM", decimal.NewMoney(49.99)},
}

// Invoice statuses
var (
	InvoiceStatuses      = []string{"PAID", "PARTIAL", "UNPAID"}
	invoiceStatusWeights = []float64{0.8, 0.1, 0.1}
)

// BillingGenerator emits one invoice per customer per month. Plan and
// baseline usage are fixed per customer; usage varies ±30% month to month.
type BillingGenerator struct {
	base
	config domain.BillingConfig
}

// NewBillingGenerator seeds a generator from its config
func NewBillingGenerator(config domain.BillingConfig) *BillingGenerator {
	return &BillingGenerator{base: newBase(ScenarioBilling, config.Seed), config: config}
}

func (g *BillingGenerator) Generate() (dataset.Table, error) {
	cfg := g.config
	unitPrice := shop.NewFromFloat(cfg.UnitPrice)
	firstMonth := dateutil.BeginningOfMonth(cfg.StartMonth)
	records := make([]domain.Invoice, 0, cfg.NumCustomers*cfg.Months)

	invoiceSeq := 0
	for c := 1; c <= cfg.NumCustomers; c++ {
		customerID := fmt.Sprintf("CUST-%05d", c)
		plan := Choice(g.rng, billingPlans)
		baseline := g.rng.Uniform(100, 5000)

		for m := 0; m < cfg.Months; m++ {
			invoiceSeq++
			usage := int(math.Max(0, baseline*g.rng.Uniform(0.7, 1.3)))
			due := plan.Fee.Add(decimal.NewMoneyFromInt(int64(usage)).Mul(unitPrice)).Round()

			status := WeightedChoice(g.rng, InvoiceStatuses, invoiceStatusWeights)
			paid := decimal.Zero()
			switch status {
			case "PAID":
				paid = due
			case "PARTIAL":
				paid = due.Mul(shop.NewFromFloat(g.rng.Uniform(0.1, 0.9))).Round()
			}

			records = append(records, domain.Invoice{
				InvoiceID:    fmt.Sprintf("INV-%07d", invoiceSeq),
				CustomerID:   customerID,
				BillingMonth: dateutil.AddMonths(firstMonth, m),
				Plan:         plan.Name,
				UsageUnits:   usage,
				AmountDue:    due.Float64(),
				AmountPaid:   paid.Float64(),
				Status:       status,
			})
		}
	}
	return finish(&g.base, records)
}
