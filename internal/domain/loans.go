package domain

import "time"

// Installment status values
const (
	InstallmentPaid      = "PAID"
	InstallmentLate      = "LATE"
	InstallmentDefaulted = "DEFAULTED"
)

// LoanApplication is a single application row. Every field after the ids may
// be missing to mimic an unclean source extract.
type LoanApplication struct {
	LoanID          string     `parquet:"loan_id"`
	CustomerID      string     `parquet:"customer_id"`
	CreatedAt       *time.Time `parquet:"created_at,optional,timestamp(millisecond)"`
	Amount          *int       `parquet:"amount,optional"`
	InterestRate    *float64   `parquet:"interest_rate,optional"`
	TenureMonths    *int       `parquet:"tenure_months,optional"`
	Status          *string    `parquet:"status,optional"`
	ProductType     *string    `parquet:"product_type,optional"`
	Branch          *string    `parquet:"branch,optional"`
	CreditScoreBand *string    `parquet:"credit_score_band,optional"`
}

// LoanRepayment is one installment of an EMI schedule.
type LoanRepayment struct {
	LoanID             string    `parquet:"loan_id"`
	CustomerID         string    `parquet:"customer_id"`
	ScheduleDate       time.Time `parquet:"schedule_date,date"`
	InstallmentNumber  int       `parquet:"installment_number"`
	EMIAmount          float64   `parquet:"emi_amount"`
	PrincipalComponent float64   `parquet:"principal_component"`
	InterestComponent  float64   `parquet:"interest_component"`
	RemainingPrincipal float64   `parquet:"remaining_principal"`
	Status             string    `parquet:"status"`
	IsMissedPayment    int       `parquet:"is_missed_payment"`
}
