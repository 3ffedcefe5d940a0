package domain

import (
	"time"
)

// Configuration holds generation parameters for every scenario plus output
// settings. Blocks missing from a YAML file keep their defaults.
type Configuration struct {
	// Seed, when set, replaces the seed of every scenario
	Seed   *int64       `yaml:"seed,omitempty" json:"seed,omitempty"`
	Output OutputConfig `yaml:"output" json:"output"`

	Attendance       AttendanceConfig       `yaml:"attendance" json:"attendance"`
	SparkLogs        SparkLogsConfig        `yaml:"spark_logs" json:"spark_logs"`
	LoanApplications LoanApplicationsConfig `yaml:"loans" json:"loans"`
	LoanRepayments   LoanRepaymentsConfig   `yaml:"loan_repayments" json:"loan_repayments"`
	BankTransactions BankTransactionsConfig `yaml:"bank_transactions" json:"bank_transactions"`
	CreditCardSpend  CreditCardSpendConfig  `yaml:"credit_card_spend" json:"credit_card_spend"`
	Customer360      Customer360Config      `yaml:"customer_360" json:"customer_360"`
	Billing          BillingConfig          `yaml:"etl_billing" json:"etl_billing"`
	Ecommerce        EcommerceConfig        `yaml:"ecommerce" json:"ecommerce"`
	Sales            SalesConfig            `yaml:"sales" json:"sales"`
	IoTSensors       IoTSensorsConfig       `yaml:"iot_sensors" json:"iot_sensors"`
	Experiments      ExperimentsConfig      `yaml:"experiments" json:"experiments"`
}

// OutputConfig controls how tables are written
type OutputConfig struct {
	Dir                string `yaml:"dir,omitempty" json:"dir,omitempty"`
	ParquetCompression string `yaml:"parquet_compression" json:"parquet_compression"` // snappy|zstd|gzip|none
}

// AttendanceConfig drives the employee attendance scenario
type AttendanceConfig struct {
	StartDate    time.Time `yaml:"start_date" json:"start_date"`
	EndDate      time.Time `yaml:"end_date" json:"end_date"`
	NumEmployees int       `yaml:"num_employees" json:"num_employees"`
	Seed         int64     `yaml:"seed" json:"seed"`
}

// SparkLogsConfig drives the Spark-like log scenario. NumRows of zero means
// the job/stage/task loops decide the row count.
type SparkLogsConfig struct {
	NumJobs          int       `yaml:"num_jobs" json:"num_jobs"`
	MaxStagesPerJob  int       `yaml:"max_stages_per_job" json:"max_stages_per_job"`
	MaxTasksPerStage int       `yaml:"max_tasks_per_stage" json:"max_tasks_per_stage"`
	NumRows          int       `yaml:"num_rows,omitempty" json:"num_rows,omitempty"`
	StartTime        time.Time `yaml:"start_time" json:"start_time"`
	Seed             int64     `yaml:"seed" json:"seed"`
}

// LoanApplicationsConfig drives the loan application scenario
type LoanApplicationsConfig struct {
	NumRows       int       `yaml:"num_rows" json:"num_rows"`
	StartDatetime time.Time `yaml:"start_datetime" json:"start_datetime"`
	EndDatetime   time.Time `yaml:"end_datetime" json:"end_datetime"`
	MinAmount     int       `yaml:"min_amount" json:"min_amount"`
	MaxAmount     int       `yaml:"max_amount" json:"max_amount"`
	AmountStep    int       `yaml:"amount_step" json:"amount_step"`
	InterestRates []float64 `yaml:"interest_rates" json:"interest_rates"`
	TenureOptions []int     `yaml:"tenure_options" json:"tenure_options"`
	Seed          int64     `yaml:"seed" json:"seed"`

	// Per-field probability of emitting a missing value
	Missing MissingRates `yaml:"missing" json:"missing"`
}

// MissingRates lists the probability that each loan application field is null
type MissingRates struct {
	CreatedAt   float64 `yaml:"created_at" json:"created_at"`
	Amount      float64 `yaml:"amount" json:"amount"`
	Rate        float64 `yaml:"interest_rate" json:"interest_rate"`
	Tenure      float64 `yaml:"tenure_months" json:"tenure_months"`
	Status      float64 `yaml:"status" json:"status"`
	ProductType float64 `yaml:"product_type" json:"product_type"`
	Branch      float64 `yaml:"branch" json:"branch"`
	CreditBand  float64 `yaml:"credit_score_band" json:"credit_score_band"`
}

// LoanRepaymentsConfig drives the EMI repayment schedule scenario
type LoanRepaymentsConfig struct {
	NumLoans        int       `yaml:"num_loans" json:"num_loans"`
	MinPrincipal    int       `yaml:"min_principal" json:"min_principal"`
	MaxPrincipal    int       `yaml:"max_principal" json:"max_principal"`
	MinTenureMonths int       `yaml:"min_tenure_months" json:"min_tenure_months"`
	MaxTenureMonths int       `yaml:"max_tenure_months" json:"max_tenure_months"`
	MinAnnualRate   float64   `yaml:"min_annual_rate" json:"min_annual_rate"` // percent, e.g. 10.0
	MaxAnnualRate   float64   `yaml:"max_annual_rate" json:"max_annual_rate"`
	StartDate       time.Time `yaml:"start_date" json:"start_date"`
	Seed            int64     `yaml:"seed" json:"seed"`

	PLateInstallment float64 `yaml:"p_late_installment" json:"p_late_installment"`
	PDefaultLoan     float64 `yaml:"p_default_loan" json:"p_default_loan"`
}

// BankTransactionsConfig drives the bank transaction scenario
type BankTransactionsConfig struct {
	NumRows   int       `yaml:"num_rows" json:"num_rows"`
	Seed      int64     `yaml:"seed" json:"seed"`
	FraudRate float64   `yaml:"fraud_rate" json:"fraud_rate"`
	StartDate time.Time `yaml:"start_date" json:"start_date"`
	EndDate   time.Time `yaml:"end_date" json:"end_date"`
}

// CreditCardSpendConfig drives the credit card spend scenario
type CreditCardSpendConfig struct {
	NumRows   int       `yaml:"num_rows" json:"num_rows"`
	Seed      int64     `yaml:"seed" json:"seed"`
	FraudRate float64   `yaml:"fraud_rate" json:"fraud_rate"`
	StartDate time.Time `yaml:"start_date" json:"start_date"`
	EndDate   time.Time `yaml:"end_date" json:"end_date"`
}

// Customer360Config drives the customer profile scenario
type Customer360Config struct {
	NumCustomers int   `yaml:"num_customers" json:"num_customers"`
	Seed         int64 `yaml:"seed" json:"seed"`
}

// BillingConfig drives the monthly invoice scenario
type BillingConfig struct {
	NumCustomers int       `yaml:"num_customers" json:"num_customers"`
	Months       int       `yaml:"months" json:"months"`
	StartMonth   time.Time `yaml:"start_month" json:"start_month"`
	UnitPrice    float64   `yaml:"unit_price" json:"unit_price"`
	Seed         int64     `yaml:"seed" json:"seed"`
}

// EcommerceConfig drives the clickstream scenario
type EcommerceConfig struct {
	NumUsers         int       `yaml:"num_users" json:"num_users"`
	MaxEventsPerUser int       `yaml:"max_events_per_user" json:"max_events_per_user"`
	StartTime        time.Time `yaml:"start_time" json:"start_time"`
	Seed             int64     `yaml:"seed" json:"seed"`
}

// SalesConfig drives the daily sales scenario
type SalesConfig struct {
	StartDate       time.Time `yaml:"start_date" json:"start_date"`
	EndDate         time.Time `yaml:"end_date" json:"end_date"`
	MaxOrdersPerDay int       `yaml:"max_orders_per_day" json:"max_orders_per_day"`
	Seed            int64     `yaml:"seed" json:"seed"`
}

// IoTSensorsConfig drives the sensor time series scenario
type IoTSensorsConfig struct {
	NumDevices  int       `yaml:"num_devices" json:"num_devices"`
	NumPoints   int       `yaml:"num_points" json:"num_points"`
	StartTime   time.Time `yaml:"start_time" json:"start_time"`
	FreqSeconds int       `yaml:"freq_seconds" json:"freq_seconds"`
	Seed        int64     `yaml:"seed" json:"seed"`
}

// ExperimentsConfig drives the lab measurement scenario
type ExperimentsConfig struct {
	NumExperiments            int   `yaml:"num_experiments" json:"num_experiments"`
	MeasurementsPerExperiment int   `yaml:"measurements_per_experiment" json:"measurements_per_experiment"`
	Seed                      int64 `yaml:"seed" json:"seed"`
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DefaultConfiguration returns the built-in parameters of every scenario
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Output: OutputConfig{ParquetCompression: "snappy"},
		Attendance: AttendanceConfig{
			StartDate:    date(2024, time.January, 1),
			EndDate:      date(2024, time.December, 31),
			NumEmployees: 200,
			Seed:         42,
		},
		SparkLogs: SparkLogsConfig{
			NumJobs:          10,
			MaxStagesPerJob:  5,
			MaxTasksPerStage: 20,
			StartTime:        date(2024, time.January, 1),
			Seed:             101,
		},
		LoanApplications: LoanApplicationsConfig{
			NumRows:       1000,
			StartDatetime: time.Date(2025, time.January, 1, 9, 0, 0, 0, time.UTC),
			EndDatetime:   time.Date(2025, time.January, 31, 18, 0, 0, 0, time.UTC),
			MinAmount:     5000,
			MaxAmount:     10000,
			AmountStep:    1000,
			InterestRates: []float64{11.0, 11.5, 12.0, 12.5, 13.0, 13.5, 14.0},
			TenureOptions: []int{12, 24, 36, 48, 60},
			Seed:          123,
			Missing: MissingRates{
				CreatedAt:   0.18,
				Amount:      0.18,
				Rate:        0.16,
				Tenure:      0.22,
				Status:      0.08,
				ProductType: 0.14,
				Branch:      0.10,
				CreditBand:  0.16,
			},
		},
		LoanRepayments: LoanRepaymentsConfig{
			NumLoans:         200,
			MinPrincipal:     50000,
			MaxPrincipal:     500000,
			MinTenureMonths:  6,
			MaxTenureMonths:  60,
			MinAnnualRate:    10.0,
			MaxAnnualRate:    18.0,
			StartDate:        date(2024, time.January, 1),
			Seed:             999,
			PLateInstallment: 0.08,
			PDefaultLoan:     0.04,
		},
		BankTransactions: BankTransactionsConfig{
			NumRows:   1000,
			Seed:      42,
			FraudRate: 0.02,
			StartDate: date(2023, time.January, 1),
			EndDate:   date(2023, time.December, 31),
		},
		CreditCardSpend: CreditCardSpendConfig{
			NumRows:   1000,
			Seed:      101,
			FraudRate: 0.015,
			StartDate: date(2023, time.January, 1),
			EndDate:   date(2023, time.December, 31),
		},
		Customer360: Customer360Config{
			NumCustomers: 1000,
			Seed:         2025,
		},
		Billing: BillingConfig{
			NumCustomers: 100,
			Months:       12,
			StartMonth:   date(2024, time.January, 1),
			UnitPrice:    0.05,
			Seed:         202,
		},
		Ecommerce: EcommerceConfig{
			NumUsers:         200,
			MaxEventsPerUser: 50,
			StartTime:        date(2024, time.January, 1),
			Seed:             7,
		},
		Sales: SalesConfig{
			StartDate:       date(2024, time.January, 1),
			EndDate:         date(2024, time.December, 31),
			MaxOrdersPerDay: 50,
			Seed:            99,
		},
		IoTSensors: IoTSensorsConfig{
			NumDevices:  10,
			NumPoints:   1000,
			StartTime:   date(2024, time.January, 1),
			FreqSeconds: 60,
			Seed:        42,
		},
		Experiments: ExperimentsConfig{
			NumExperiments:            50,
			MeasurementsPerExperiment: 20,
			Seed:                      123,
		},
	}
}

// ApplySeed overrides the seed of every scenario
func (c *Configuration) ApplySeed(seed int64) {
	c.Seed = &seed
	c.Attendance.Seed = seed
	c.SparkLogs.Seed = seed
	c.LoanApplications.Seed = seed
	c.LoanRepayments.Seed = seed
	c.BankTransactions.Seed = seed
	c.CreditCardSpend.Seed = seed
	c.Customer360.Seed = seed
	c.Billing.Seed = seed
	c.Ecommerce.Seed = seed
	c.Sales.Seed = seed
	c.IoTSensors.Seed = seed
	c.Experiments.Seed = seed
}
