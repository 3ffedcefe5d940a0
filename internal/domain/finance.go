package domain

import "time"

// BankTransaction is a single account movement.
type BankTransaction struct {
	TransactionID    string    `parquet:"transaction_id"`
	CustomerID       string    `parquet:"customer_id"`
	Timestamp        time.Time `parquet:"timestamp,timestamp(millisecond)"`
	Amount           float64   `parquet:"amount"`
	TransactionType  string    `parquet:"transaction_type"`
	Merchant         string    `parquet:"merchant"`
	MerchantCategory string    `parquet:"merchant_category"`
	Location         string    `parquet:"location"`
	Channel          string    `parquet:"channel"`
	IsFraud          int       `parquet:"is_fraud"`
}

// CardTransaction is a single credit card authorization.
type CardTransaction struct {
	TransactionID    string    `parquet:"transaction_id"`
	CustomerID       string    `parquet:"customer_id"`
	CardID           string    `parquet:"card_id"`
	CardNetwork      string    `parquet:"card_network"`
	TxnTimestamp     time.Time `parquet:"txn_timestamp,timestamp(millisecond)"`
	Amount           float64   `parquet:"amount"`
	Currency         string    `parquet:"currency"`
	Merchant         string    `parquet:"merchant"`
	MerchantCategory string    `parquet:"merchant_category"`
	Channel          string    `parquet:"channel"`
	Country          string    `parquet:"country"`
	City             string    `parquet:"city"`
	IsInternational  int       `parquet:"is_international"`
	IsOnline         int       `parquet:"is_online"`
	IsFraud          int       `parquet:"is_fraud"`
}

// Risk segments
const (
	RiskLow    = "LOW"
	RiskMedium = "MEDIUM"
	RiskHigh   = "HIGH"
)

// CustomerProfile is a single customer 360 view.
type CustomerProfile struct {
	CustomerID        string  `parquet:"customer_id"`
	FullName          string  `parquet:"full_name"`
	Age               int     `parquet:"age"`
	Gender            string  `parquet:"gender"`
	Country           string  `parquet:"country"`
	City              string  `parquet:"city"`
	IncomeAnnual      float64 `parquet:"income_annual"`
	Occupation        string  `parquet:"occupation"`
	RiskSegment       string  `parquet:"risk_segment"`
	HasCreditCard     int     `parquet:"has_credit_card"`
	HasLoan           int     `parquet:"has_loan"`
	HasSavingsAccount int     `parquet:"has_savings_account"`
	NumProducts       int     `parquet:"num_products"`
	TotalBalance      float64 `parquet:"total_balance"`
	ChurnScore        float64 `parquet:"churn_score"`
	EngagementScore   float64 `parquet:"engagement_score"`
}

// Invoice is one monthly bill for a subscription customer.
type Invoice struct {
	InvoiceID    string    `parquet:"invoice_id"`
	CustomerID   string    `parquet:"customer_id"`
	BillingMonth time.Time `parquet:"billing_month,date"`
	Plan         string    `parquet:"plan"`
	UsageUnits   int       `parquet:"usage_units"`
	AmountDue    float64   `parquet:"amount_due"`
	AmountPaid   float64   `parquet:"amount_paid"`
	Status       string    `parquet:"status"`
}
