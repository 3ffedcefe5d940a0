package integration

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datagen/synthetic-data/internal/cli"
	"github.com/datagen/synthetic-data/internal/output"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestCLIGenerateCSV(t *testing.T) {
	out := filepath.Join(t.TempDir(), "loans.csv")
	stdout, err := runCLI(t, "generate", "loans", "--out", out, "--rows", "30", "--seed", "5")
	require.NoError(t, err)
	assert.Equal(t, "Generated 30 rows -> "+out+"\n", stdout)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 31)
	assert.Equal(t, "loan_id", records[0][0])
}

func TestCLIGenerateParquet(t *testing.T) {
	tests := []struct {
		scenario  string
		dateCol   string
		exactRows bool
	}{
		{"bank", "", true},
		{"loan_repayments", "schedule_date", false},
		{"loans", "", true},
		{"attendance", "date", false},
		{"sales", "order_date", false},
		{"billing", "billing_month", false},
	}
	for _, tt := range tests {
		t.Run(tt.scenario, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), tt.scenario+".parquet")
			stdout, err := runCLI(t, "generate", tt.scenario, "-o", out, "-n", "300", "--seed", "9")
			require.NoError(t, err)

			var rows int64
			_, err = fmt.Sscanf(stdout, "Generated %d rows", &rows)
			require.NoError(t, err)
			if tt.exactRows {
				assert.Equal(t, int64(300), rows)
			}

			f, err := os.Open(out)
			require.NoError(t, err)
			defer f.Close()
			info, err := f.Stat()
			require.NoError(t, err)
			pf, err := parquet.OpenFile(f, info.Size())
			require.NoError(t, err)
			assert.Equal(t, rows, pf.NumRows())

			if tt.dateCol != "" {
				leaf, ok := pf.Schema().Lookup(tt.dateCol)
				require.True(t, ok)
				require.NotNil(t, leaf.Node.Type().LogicalType())
				assert.NotNil(t, leaf.Node.Type().LogicalType().Date)
			}
		})
	}
}

func TestCLIGenerateWithConfig(t *testing.T) {
	out := filepath.Join(t.TempDir(), "experiments.jsonl")
	stdout, err := runCLI(t, "generate", "experiments", "--config", "../testdata/example_config.yaml", "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Generated 12 rows")

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(b)), "\n"), 12)
}

func TestCLIFormatOverride(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sales.out")
	_, err := runCLI(t, "generate", "sales", "--out", out, "--format", "csv", "--seed", "1")
	require.NoError(t, err)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "order_id,order_date,amount"))
}

func TestCLIUnsupportedExtension(t *testing.T) {
	out := filepath.Join(t.TempDir(), "loans.xlsx")
	_, err := runCLI(t, "generate", "loans", "--out", out)
	require.Error(t, err)
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)
}

func TestCLIUnknownScenario(t *testing.T) {
	_, err := runCLI(t, "generate", "weather", "--out", filepath.Join(t.TempDir(), "w.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown scenario")
}

func TestCLIGenerateAll(t *testing.T) {
	dir := t.TempDir()
	stdout, err := runCLI(t, "generate-all", "--dir", dir, "--ext", "sqlite", "--rows", "50", "--config", "../testdata/example_config.yaml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "SYNTHETIC DATA GENERATION SUMMARY")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 12)
}

func TestCLIList(t *testing.T) {
	stdout, err := runCLI(t, "list")
	require.NoError(t, err)
	for _, name := range []string{"attendance", "loan_repayments", "etl_billing", "iot_sensors"} {
		assert.Contains(t, stdout, name)
	}
	assert.Contains(t, stdout, "Formats: csv, json, jsonl, parquet, sqlite")
}

func TestCLIExampleConfig(t *testing.T) {
	out := filepath.Join(t.TempDir(), "example.yaml")
	_, err := runCLI(t, "example-config", "--out", out)
	require.NoError(t, err)

	// the written example loads back cleanly
	out2 := filepath.Join(t.TempDir(), "c.csv")
	stdout, err := runCLI(t, "generate", "customer_360", "--config", out, "--out", out2, "--rows", "3")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Generated 3 rows")
}

func TestCLIGenerateJSONArray(t *testing.T) {
	out := filepath.Join(t.TempDir(), "customers.json")
	_, err := runCLI(t, "generate", "customer_360", "--out", out, "--rows", "15", "--seed", "2")
	require.NoError(t, err)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	var rows []map[string]any
	require.NoError(t, json.Unmarshal(b, &rows), ".json output is a single JSON document")
	assert.Len(t, rows, 15)
}
