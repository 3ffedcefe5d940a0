package generator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datagen/synthetic-data/internal/domain"
	"github.com/datagen/synthetic-data/internal/output"
)

func TestGenerateAll(t *testing.T) {
	dir := t.TempDir()
	cfg := domain.DefaultConfiguration()
	cfg.ApplySeed(7)

	report, err := GenerateAll(context.Background(), cfg, BatchOptions{Dir: dir, Ext: "csv", Rows: 100, Parallel: 3})
	require.NoError(t, err)
	require.Len(t, report.Results, len(AvailableScenarioNames()))

	for _, res := range report.Results {
		assert.Equal(t, filepath.Join(dir, res.Scenario+".csv"), res.Path)
		assert.Equal(t, "csv", res.Format)
		assert.Positive(t, res.Columns)
		_, err := os.Stat(res.Path)
		assert.NoError(t, err)

		s, err := Lookup(res.Scenario)
		require.NoError(t, err)
		if s.ExactRows {
			assert.Equal(t, 100, res.Rows, res.Scenario)
		}
	}
}

func TestGenerateAllUnsupportedExtension(t *testing.T) {
	_, err := GenerateAll(context.Background(), domain.DefaultConfiguration(), BatchOptions{Dir: t.TempDir(), Ext: "xlsx"})
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)
}

func TestGenerateAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := GenerateAll(ctx, domain.DefaultConfiguration(), BatchOptions{Dir: t.TempDir(), Rows: 10, Parallel: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateAllParquet(t *testing.T) {
	dir := t.TempDir()
	cfg := domain.DefaultConfiguration()
	cfg.ApplySeed(3)

	report, err := GenerateAll(context.Background(), cfg, BatchOptions{Dir: dir, Ext: "parquet", Rows: 30, Parallel: 4})
	require.NoError(t, err)
	require.Len(t, report.Results, len(AvailableScenarioNames()))

	for _, res := range report.Results {
		assert.Equal(t, "parquet", res.Format)
		st, err := os.Stat(res.Path)
		require.NoError(t, err, res.Scenario)
		assert.Positive(t, st.Size(), res.Scenario)
	}
}
