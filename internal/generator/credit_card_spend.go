package generator

import (
	"fmt"
	"math"

	"github.com/datagen/synthetic-data/internal/dataset"
	"github.com/datagen/synthetic-data/internal/domain"
	"github.com/datagen/synthetic-data/pkg/decimal"
)

var cardMerchants = []merchantCategory{
	{"grocery", []string{"Local Mart", "City Supermarket", "Fresh Grocery"}},
	{"fuel", []string{"Petro Station", "Fuel Point", "Highway Fuel"}},
	{"travel", []string{"Sky Airlines", "City Hotel", "Travel Hub"}},
	{"food", []string{"Urban Cafe", "Food Corner", "Spice Kitchen"}},
	{"electronics", []string{"Tech World", "Gadget Store", "Digital Arena"}},
	{"clothing", []string{"Fashion Hub", "Style Street", "Trend Store"}},
	{"utilities", []string{"Power Company", "Water Utility", "ISP Service"}},
	{"entertainment", []string{"Cinema Hall", "Game Zone", "Streaming Service"}},
}

// Card enumerations
var (
	CardNetworks    = []string{"VISA", "MASTERCARD", "AMEX", "RUPAY"}
	Currencies      = []string{"NPR", "USD", "EUR", "INR"}
	currencyWeights = []float64{0.6, 0.2, 0.1, 0.1}
	CardChannels    = []string{"POS", "ECOM", "ATM", "UPI"}
)

const (
	minCardAmount = 10
	maxCardAmount = 5000
	maxFraudProb  = 0.9
)

// CreditCardSpendGenerator emits card authorizations whose fraud probability
// rises for international, online and large transactions.
type CreditCardSpendGenerator struct {
	base
	config domain.CreditCardSpendConfig
}

// NewCreditCardSpendGenerator seeds a generator from its config
func NewCreditCardSpendGenerator(config domain.CreditCardSpendConfig) *CreditCardSpendGenerator {
	return &CreditCardSpendGenerator{base: newBase(ScenarioCreditCardSpend, config.Seed), config: config}
}

func (g *CreditCardSpendGenerator) Generate() (dataset.Table, error) {
	records := make([]domain.CardTransaction, 0, g.config.NumRows)
	for i := 0; i < g.config.NumRows; i++ {
		records = append(records, g.sampleTransaction())
	}
	return finish(&g.base, records)
}

func (g *CreditCardSpendGenerator) sampleTransaction() domain.CardTransaction {
	category := Choice(g.rng, cardMerchants)
	merchant := Choice(g.rng, category.Merchants)
	network := Choice(g.rng, CardNetworks)
	currency := WeightedChoice(g.rng, Currencies, currencyWeights)
	channel := Choice(g.rng, CardChannels)

	// skewed positive with a few large outliers
	amount := decimal.RoundFloat(math.Min(math.Max(g.rng.LogNormal(3.0, 0.6), minCardAmount), maxCardAmount), 2)

	isInternational := 0
	if (currency == "USD" || currency == "EUR") && g.rng.Chance(0.5) {
		isInternational = 1
	}
	isOnline := 0
	if channel == "ECOM" || channel == "UPI" {
		isOnline = 1
	}

	isFraud := 0
	if g.rng.Chance(FraudProbability(g.config.FraudRate, isInternational == 1, isOnline == 1, amount)) {
		isFraud = 1
	}

	faker := g.rng.Faker()
	return domain.CardTransaction{
		TransactionID:    g.rng.UUID(),
		CustomerID:       fmt.Sprintf("CUST-%d", g.rng.IntBetween(10000, 99999)),
		CardID:           fmt.Sprintf("CARD-%d", g.rng.IntBetween(100000, 999999)),
		CardNetwork:      network,
		TxnTimestamp:     g.rng.TimeBetween(g.config.StartDate, g.config.EndDate),
		Amount:           amount,
		Currency:         currency,
		Merchant:         merchant,
		MerchantCategory: category.Name,
		Channel:          channel,
		Country:          faker.Country(),
		City:             faker.City(),
		IsInternational:  isInternational,
		IsOnline:         isOnline,
		IsFraud:          isFraud,
	}
}

// FraudProbability adds risk weights to the base rate, capped at 0.9.
func FraudProbability(baseRate float64, international, online bool, amount float64) float64 {
	score := 0.0
	if international {
		score += 0.4
	}
	if online {
		score += 0.3
	}
	if amount > 1000 {
		score += 0.3
	}
	return math.Min(maxFraudProb, baseRate+score)
}
