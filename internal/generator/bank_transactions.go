package generator

import (
	"fmt"

	"github.com/datagen/synthetic-data/internal/dataset"
	"github.com/datagen/synthetic-data/internal/domain"
	"github.com/datagen/synthetic-data/pkg/decimal"
)

// merchantCategory maps a category onto its sample merchants
type merchantCategory struct {
	Name      string
	Merchants []string
}

var bankMerchants = []merchantCategory{
	{"grocery", []string{"Walmart", "Carrefour", "Big Basket", "Kroger"}},
	{"travel", []string{"Uber", "Lyft", "Booking.com", "Airbnb"}},
	{"food", []string{"McDonald's", "Starbucks", "KFC", "Pizza Hut"}},
	{"electronics", []string{"Apple Store", "Best Buy", "Mi Store"}},
	{"utilities", []string{"Electric Co", "Water Board", "Gas Authority"}},
}

// BankChannels lists the channels a bank transaction may use
var BankChannels = []string{"online", "card_swipe", "atm", "upi", "net_banking"}

// BankTransactionsGenerator emits account movements with a flat fraud rate.
type BankTransactionsGenerator struct {
	base
	config domain.BankTransactionsConfig
}

// NewBankTransactionsGenerator seeds a generator from its config
func NewBankTransactionsGenerator(config domain.BankTransactionsConfig) *BankTransactionsGenerator {
	return &BankTransactionsGenerator{base: newBase(ScenarioBankTransactions, config.Seed), config: config}
}

func (g *BankTransactionsGenerator) Generate() (dataset.Table, error) {
	cfg := g.config
	records := make([]domain.BankTransaction, 0, cfg.NumRows)

	for i := 0; i < cfg.NumRows; i++ {
		category := Choice(g.rng, bankMerchants)
		merchant := Choice(g.rng, category.Merchants)
		amount := decimal.RoundFloat(g.rng.Uniform(1, 2500), 2)

		isFraud := 0
		if g.rng.Chance(cfg.FraudRate) {
			isFraud = 1
		}
		txnType := "credit"
		if g.rng.Float64() > 0.5 {
			txnType = "debit"
		}

		records = append(records, domain.BankTransaction{
			TransactionID:    g.rng.UUID(),
			CustomerID:       fmt.Sprintf("CUST-%d", g.rng.IntBetween(10000, 99999)),
			Timestamp:        g.rng.TimeBetween(cfg.StartDate, cfg.EndDate),
			Amount:           amount,
			TransactionType:  txnType,
			Merchant:         merchant,
			MerchantCategory: category.Name,
			Location:         g.rng.Faker().City(),
			Channel:          Choice(g.rng, BankChannels),
			IsFraud:          isFraud,
		})
	}
	return finish(&g.base, records)
}
