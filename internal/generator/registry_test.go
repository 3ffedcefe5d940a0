package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datagen/synthetic-data/internal/domain"
)

func TestNormalizeScenarioName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"attendance", ScenarioAttendance},
		{"Spark-Logs", ScenarioSparkLogs},
		{"loan_applications", ScenarioLoans},
		{"billing", ScenarioBilling},
		{" customer360 ", ScenarioCustomer360},
		{"iot", ScenarioIoTSensors},
		{"unknown", "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeScenarioName(tt.in))
		})
	}
}

func TestLookupUnknownScenario(t *testing.T) {
	_, err := Lookup("weather")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownScenario)
	assert.Contains(t, err.Error(), ScenarioAttendance)
}

func TestRegistryCoversEveryScenario(t *testing.T) {
	names := AvailableScenarioNames()
	assert.Len(t, names, 12)
	for _, name := range names {
		g, err := New(name, domain.DefaultConfiguration(), 0, nil)
		require.NoError(t, err)
		assert.Equal(t, name, g.Name())
	}
	for _, alias := range AvailableScenarioAliases() {
		_, err := Lookup(alias)
		assert.NoError(t, err, alias)
	}
}

func TestExactRowScenarios(t *testing.T) {
	for _, s := range Scenarios() {
		if !s.ExactRows {
			continue
		}
		t.Run(s.Name, func(t *testing.T) {
			g, err := New(s.Name, domain.DefaultConfiguration(), 137, nil)
			require.NoError(t, err)
			tbl, err := g.Generate()
			require.NoError(t, err)
			assert.Equal(t, 137, tbl.Len())
		})
	}
}

func TestSetRowsMapping(t *testing.T) {
	tests := []struct {
		scenario string
		rows     int
		check    func(t *testing.T, c *domain.Configuration)
	}{
		{ScenarioAttendance, 1000, func(t *testing.T, c *domain.Configuration) { assert.Equal(t, 5, c.Attendance.NumEmployees) }},
		{ScenarioAttendance, 10, func(t *testing.T, c *domain.Configuration) { assert.Equal(t, 1, c.Attendance.NumEmployees) }},
		{ScenarioLoanRepayments, 3300, func(t *testing.T, c *domain.Configuration) { assert.Equal(t, 100, c.LoanRepayments.NumLoans) }},
		{ScenarioBilling, 1200, func(t *testing.T, c *domain.Configuration) { assert.Equal(t, 100, c.Billing.NumCustomers) }},
		{ScenarioIoTSensors, 500, func(t *testing.T, c *domain.Configuration) { assert.Equal(t, 50, c.IoTSensors.NumPoints) }},
		{ScenarioExperiments, 400, func(t *testing.T, c *domain.Configuration) { assert.Equal(t, 20, c.Experiments.NumExperiments) }},
		{ScenarioSparkLogs, 77, func(t *testing.T, c *domain.Configuration) { assert.Equal(t, 77, c.SparkLogs.NumRows) }},
	}
	for _, tt := range tests {
		t.Run(tt.scenario, func(t *testing.T) {
			s, err := Lookup(tt.scenario)
			require.NoError(t, err)
			cfg := domain.DefaultConfiguration()
			s.SetRows(cfg, tt.rows)
			tt.check(t, cfg)
		})
	}
}

func TestNewDoesNotMutateConfiguration(t *testing.T) {
	cfg := domain.DefaultConfiguration()
	_, err := New(ScenarioLoans, cfg, 5, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfiguration().LoanApplications.NumRows, cfg.LoanApplications.NumRows)
}
