package generator

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/datagen/synthetic-data/internal/domain"
)

// Canonical scenario names
const (
	ScenarioAttendance       = "attendance"
	ScenarioSparkLogs        = "spark_logs"
	ScenarioLoans            = "loans"
	ScenarioLoanRepayments   = "loan_repayments"
	ScenarioBankTransactions = "bank_transactions"
	ScenarioCreditCardSpend  = "credit_card_spend"
	ScenarioCustomer360      = "customer_360"
	ScenarioBilling          = "etl_billing"
	ScenarioEcommerce        = "ecommerce"
	ScenarioSales            = "sales"
	ScenarioIoTSensors       = "iot_sensors"
	ScenarioExperiments      = "experiments"
)

// ErrUnknownScenario is returned when a scenario name cannot be resolved.
var ErrUnknownScenario = errors.New("unknown scenario")

// Scenario describes a registered generator.
type Scenario struct {
	Name        string
	Description string
	// ExactRows is true when SetRows fixes the output row count exactly;
	// otherwise it sets an entity count and the row count is approximate.
	ExactRows bool
	New       func(cfg *domain.Configuration) Generator
	SetRows   func(cfg *domain.Configuration, rows int)
}

// builtInScenarios stores the available scenarios.
var builtInScenarios = []Scenario{
	{
		Name:        ScenarioAttendance,
		Description: "employee daily attendance with check-in/out times",
		New:         func(c *domain.Configuration) Generator { return NewAttendanceGenerator(c.Attendance) },
		SetRows:     func(c *domain.Configuration, rows int) { c.Attendance.NumEmployees = atLeastOne(rows / 200) },
	},
	{
		Name:        ScenarioSparkLogs,
		Description: "Spark-like job/stage/task log lines",
		ExactRows:   true,
		New:         func(c *domain.Configuration) Generator { return NewSparkLogsGenerator(c.SparkLogs) },
		SetRows:     func(c *domain.Configuration, rows int) { c.SparkLogs.NumRows = rows },
	},
	{
		Name:        ScenarioLoans,
		Description: "loan applications with missing fields",
		ExactRows:   true,
		New:         func(c *domain.Configuration) Generator { return NewLoanApplicationsGenerator(c.LoanApplications) },
		SetRows:     func(c *domain.Configuration, rows int) { c.LoanApplications.NumRows = rows },
	},
	{
		Name:        ScenarioLoanRepayments,
		Description: "EMI repayment schedules with late and defaulted installments",
		New:         func(c *domain.Configuration) Generator { return NewLoanRepaymentsGenerator(c.LoanRepayments) },
		SetRows: func(c *domain.Configuration, rows int) {
			avgTenure := (c.LoanRepayments.MinTenureMonths + c.LoanRepayments.MaxTenureMonths) / 2
			c.LoanRepayments.NumLoans = atLeastOne(rows / atLeastOne(avgTenure))
		},
	},
	{
		Name:        ScenarioBankTransactions,
		Description: "bank account transactions with fraud flags",
		ExactRows:   true,
		New:         func(c *domain.Configuration) Generator { return NewBankTransactionsGenerator(c.BankTransactions) },
		SetRows:     func(c *domain.Configuration, rows int) { c.BankTransactions.NumRows = rows },
	},
	{
		Name:        ScenarioCreditCardSpend,
		Description: "credit card spend with risk-weighted fraud",
		ExactRows:   true,
		New:         func(c *domain.Configuration) Generator { return NewCreditCardSpendGenerator(c.CreditCardSpend) },
		SetRows:     func(c *domain.Configuration, rows int) { c.CreditCardSpend.NumRows = rows },
	},
	{
		Name:        ScenarioCustomer360,
		Description: "customer 360 profiles with risk and churn scores",
		ExactRows:   true,
		New:         func(c *domain.Configuration) Generator { return NewCustomer360Generator(c.Customer360) },
		SetRows:     func(c *domain.Configuration, rows int) { c.Customer360.NumCustomers = rows },
	},
	{
		Name:        ScenarioBilling,
		Description: "monthly subscription invoices",
		New:         func(c *domain.Configuration) Generator { return NewBillingGenerator(c.Billing) },
		SetRows: func(c *domain.Configuration, rows int) {
			c.Billing.NumCustomers = atLeastOne(rows / atLeastOne(c.Billing.Months))
		},
	},
	{
		Name:        ScenarioEcommerce,
		Description: "ecommerce clickstream events",
		New:         func(c *domain.Configuration) Generator { return NewEcommerceGenerator(c.Ecommerce) },
		SetRows: func(c *domain.Configuration, rows int) {
			avgEvents := (minEventsPerUser + c.Ecommerce.MaxEventsPerUser) / 2
			c.Ecommerce.NumUsers = atLeastOne(rows / atLeastOne(avgEvents))
		},
	},
	{
		Name:        ScenarioSales,
		Description: "daily sales orders",
		New:         func(c *domain.Configuration) Generator { return NewSalesGenerator(c.Sales) },
		SetRows: func(c *domain.Configuration, rows int) {
			days := int(c.Sales.EndDate.Sub(c.Sales.StartDate).Hours()/24) + 1
			c.Sales.MaxOrdersPerDay = atLeastOne(2 * rows / atLeastOne(days))
		},
	},
	{
		Name:        ScenarioIoTSensors,
		Description: "IoT sensor time series",
		New:         func(c *domain.Configuration) Generator { return NewIoTSensorsGenerator(c.IoTSensors) },
		SetRows: func(c *domain.Configuration, rows int) {
			c.IoTSensors.NumPoints = atLeastOne(rows / atLeastOne(c.IoTSensors.NumDevices))
		},
	},
	{
		Name:        ScenarioExperiments,
		Description: "lab experiment measurements",
		New:         func(c *domain.Configuration) Generator { return NewExperimentsGenerator(c.Experiments) },
		SetRows: func(c *domain.Configuration, rows int) {
			c.Experiments.NumExperiments = atLeastOne(rows / atLeastOne(c.Experiments.MeasurementsPerExperiment))
		},
	},
}

// aliasMap provides user-friendly synonyms for scenario names.
var aliasMap = map[string]string{
	"loan_applications": ScenarioLoans,
	"applications":      ScenarioLoans,
	"repayments":        ScenarioLoanRepayments,
	"emi":               ScenarioLoanRepayments,
	"bank":              ScenarioBankTransactions,
	"transactions":      ScenarioBankTransactions,
	"credit_card":       ScenarioCreditCardSpend,
	"cards":             ScenarioCreditCardSpend,
	"customer360":       ScenarioCustomer360,
	"customers":         ScenarioCustomer360,
	"billing":           ScenarioBilling,
	"invoices":          ScenarioBilling,
	"events":            ScenarioEcommerce,
	"iot":               ScenarioIoTSensors,
	"sensors":           ScenarioIoTSensors,
	"logs":              ScenarioSparkLogs,
}

// NormalizeScenarioName lowers, maps dashes to underscores and resolves aliases.
func NormalizeScenarioName(name string) string {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// Lookup fetches a registered scenario by name or alias.
func Lookup(name string) (Scenario, error) {
	n := NormalizeScenarioName(name)
	for _, s := range builtInScenarios {
		if s.Name == n {
			return s, nil
		}
	}
	return Scenario{}, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnknownScenario, name,
		strings.Join(AvailableScenarioNames(), ", "), strings.Join(AvailableScenarioAliases(), ", "))
}

// Scenarios returns every registered scenario sorted by name.
func Scenarios() []Scenario {
	out := append([]Scenario(nil), builtInScenarios...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// AvailableScenarioNames returns the canonical scenario names.
func AvailableScenarioNames() []string {
	names := make([]string, 0, len(builtInScenarios))
	for _, s := range builtInScenarios {
		names = append(names, s.Name)
	}
	sort.Strings(names)
	return names
}

// AvailableScenarioAliases returns the supported alias keys.
func AvailableScenarioAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// New resolves a scenario and builds its generator from cfg. A positive rows
// value is mapped onto the scenario's size knob first; cfg is not modified.
func New(name string, cfg *domain.Configuration, rows int, logger Logger) (Generator, error) {
	s, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	local := *cfg
	if rows > 0 {
		s.SetRows(&local, rows)
	}
	g := s.New(&local)
	if ls, ok := g.(interface{ SetLogger(Logger) }); ok {
		ls.SetLogger(logger)
	}
	return g, nil
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
