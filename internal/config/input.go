package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/datagen/synthetic-data/internal/domain"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file. Blocks absent
// from the file keep their default values.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config := domain.DefaultConfiguration()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if config.Seed != nil {
		config.ApplySeed(*config.Seed)
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Load returns the defaults, or the file at filename when one is given, with
// environment overrides applied on top.
func (ip *InputParser) Load(filename string) (*domain.Configuration, EnvSettings, error) {
	config := domain.DefaultConfiguration()
	if filename != "" {
		var err error
		if config, err = ip.LoadFromFile(filename); err != nil {
			return nil, EnvSettings{}, err
		}
	}
	settings, err := LoadEnvSettings()
	if err != nil {
		return nil, EnvSettings{}, err
	}
	settings.Apply(config)
	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, EnvSettings{}, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, settings, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	switch strings.ToLower(config.Output.ParquetCompression) {
	case "", "snappy", "zstd", "gzip", "none":
	default:
		return fmt.Errorf("output: parquet_compression must be one of snappy, zstd, gzip, none")
	}

	checks := []struct {
		name string
		fn   func() error
	}{
		{"attendance", func() error { return validateAttendance(&config.Attendance) }},
		{"spark_logs", func() error { return validateSparkLogs(&config.SparkLogs) }},
		{"loans", func() error { return validateLoanApplications(&config.LoanApplications) }},
		{"loan_repayments", func() error { return validateLoanRepayments(&config.LoanRepayments) }},
		{"bank_transactions", func() error {
			return validateTransactions(config.BankTransactions.NumRows, config.BankTransactions.FraudRate,
				config.BankTransactions.StartDate, config.BankTransactions.EndDate)
		}},
		{"credit_card_spend", func() error {
			return validateTransactions(config.CreditCardSpend.NumRows, config.CreditCardSpend.FraudRate,
				config.CreditCardSpend.StartDate, config.CreditCardSpend.EndDate)
		}},
		{"customer_360", func() error { return positive("num_customers", config.Customer360.NumCustomers) }},
		{"etl_billing", func() error { return validateBilling(&config.Billing) }},
		{"ecommerce", func() error { return validateEcommerce(&config.Ecommerce) }},
		{"sales", func() error { return validateSales(&config.Sales) }},
		{"iot_sensors", func() error { return validateIoTSensors(&config.IoTSensors) }},
		{"experiments", func() error { return validateExperiments(&config.Experiments) }},
	}
	for _, c := range checks {
		if err := c.fn(); err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
	}
	return nil
}

func positive(field string, v int) error {
	if v <= 0 {
		return fmt.Errorf("%s must be positive", field)
	}
	return nil
}

func probability(field string, p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%s must be between 0 and 1", field)
	}
	return nil
}

func ordered(startField string, start time.Time, endField string, end time.Time) error {
	if end.Before(start) {
		return fmt.Errorf("%s must not be before %s", endField, startField)
	}
	return nil
}

func validateAttendance(c *domain.AttendanceConfig) error {
	if err := positive("num_employees", c.NumEmployees); err != nil {
		return err
	}
	return ordered("start_date", c.StartDate, "end_date", c.EndDate)
}

func validateSparkLogs(c *domain.SparkLogsConfig) error {
	if err := positive("num_jobs", c.NumJobs); err != nil {
		return err
	}
	if c.MaxStagesPerJob < 1 {
		return fmt.Errorf("max_stages_per_job must be at least 1")
	}
	if c.MaxTasksPerStage < 1 {
		return fmt.Errorf("max_tasks_per_stage must be at least 1")
	}
	if c.NumRows < 0 {
		return fmt.Errorf("num_rows cannot be negative")
	}
	return nil
}

func validateLoanApplications(c *domain.LoanApplicationsConfig) error {
	if err := positive("num_rows", c.NumRows); err != nil {
		return err
	}
	if err := ordered("start_datetime", c.StartDatetime, "end_datetime", c.EndDatetime); err != nil {
		return err
	}
	if c.AmountStep <= 0 {
		return fmt.Errorf("amount_step must be positive")
	}
	if c.MinAmount > c.MaxAmount {
		return fmt.Errorf("min_amount cannot be greater than max_amount")
	}
	if len(c.InterestRates) == 0 {
		return fmt.Errorf("interest_rates cannot be empty")
	}
	if len(c.TenureOptions) == 0 {
		return fmt.Errorf("tenure_options cannot be empty")
	}
	m := c.Missing
	for _, f := range []struct {
		name string
		p    float64
	}{
		{"missing.created_at", m.CreatedAt},
		{"missing.amount", m.Amount},
		{"missing.interest_rate", m.Rate},
		{"missing.tenure_months", m.Tenure},
		{"missing.status", m.Status},
		{"missing.product_type", m.ProductType},
		{"missing.branch", m.Branch},
		{"missing.credit_score_band", m.CreditBand},
	} {
		if err := probability(f.name, f.p); err != nil {
			return err
		}
	}
	return nil
}

func validateLoanRepayments(c *domain.LoanRepaymentsConfig) error {
	if err := positive("num_loans", c.NumLoans); err != nil {
		return err
	}
	if c.MinPrincipal <= 0 || c.MinPrincipal > c.MaxPrincipal {
		return fmt.Errorf("principal range must satisfy 0 < min_principal <= max_principal")
	}
	if c.MinTenureMonths <= 0 || c.MinTenureMonths > c.MaxTenureMonths {
		return fmt.Errorf("tenure range must satisfy 0 < min_tenure_months <= max_tenure_months")
	}
	if c.MinAnnualRate < 0 || c.MinAnnualRate > c.MaxAnnualRate {
		return fmt.Errorf("rate range must satisfy 0 <= min_annual_rate <= max_annual_rate")
	}
	if err := probability("p_late_installment", c.PLateInstallment); err != nil {
		return err
	}
	return probability("p_default_loan", c.PDefaultLoan)
}

func validateTransactions(numRows int, fraudRate float64, start, end time.Time) error {
	if err := positive("num_rows", numRows); err != nil {
		return err
	}
	if err := probability("fraud_rate", fraudRate); err != nil {
		return err
	}
	return ordered("start_date", start, "end_date", end)
}

func validateBilling(c *domain.BillingConfig) error {
	if err := positive("num_customers", c.NumCustomers); err != nil {
		return err
	}
	if err := positive("months", c.Months); err != nil {
		return err
	}
	if c.UnitPrice < 0 {
		return fmt.Errorf("unit_price cannot be negative")
	}
	return nil
}

func validateEcommerce(c *domain.EcommerceConfig) error {
	if err := positive("num_users", c.NumUsers); err != nil {
		return err
	}
	return positive("max_events_per_user", c.MaxEventsPerUser)
}

func validateSales(c *domain.SalesConfig) error {
	if c.MaxOrdersPerDay < 0 {
		return fmt.Errorf("max_orders_per_day cannot be negative")
	}
	return ordered("start_date", c.StartDate, "end_date", c.EndDate)
}

func validateIoTSensors(c *domain.IoTSensorsConfig) error {
	if err := positive("num_devices", c.NumDevices); err != nil {
		return err
	}
	if err := positive("num_points", c.NumPoints); err != nil {
		return err
	}
	return positive("freq_seconds", c.FreqSeconds)
}

func validateExperiments(c *domain.ExperimentsConfig) error {
	if err := positive("num_experiments", c.NumExperiments); err != nil {
		return err
	}
	return positive("measurements_per_experiment", c.MeasurementsPerExperiment)
}

// CreateExampleConfiguration creates an example configuration for testing.
// It is the built-in defaults with a fixed global seed and smaller tables.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	config := domain.DefaultConfiguration()
	config.ApplySeed(42)
	config.Output.Dir = "data"
	config.Attendance.NumEmployees = 50
	config.LoanRepayments.NumLoans = 50
	config.Ecommerce.NumUsers = 100
	return config
}
