package generator

import (
	"bufio"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datagen/synthetic-data/internal/dataset"
	"github.com/datagen/synthetic-data/internal/domain"
	"github.com/datagen/synthetic-data/internal/output"
)

// countRows reads back a written file and returns how many data rows it holds.
func countRows(t *testing.T, path, format string, tbl dataset.Table) int {
	t.Helper()
	switch format {
	case "parquet":
		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()
		st, err := f.Stat()
		require.NoError(t, err)
		pf, err := parquet.OpenFile(f, st.Size())
		require.NoError(t, err)
		for _, c := range tbl.Columns() {
			leaf, ok := pf.Schema().Lookup(c.Name)
			require.True(t, ok, "column %s", c.Name)
			if c.Kind == dataset.KindDate && !c.Nullable {
				require.NotNil(t, leaf.Node.Type().LogicalType(), c.Name)
				assert.NotNil(t, leaf.Node.Type().LogicalType().Date, c.Name)
			}
			assert.Equal(t, c.Nullable, leaf.Node.Optional(), c.Name)
		}
		return int(pf.NumRows())
	case "csv":
		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()
		records, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		return len(records) - 1
	case "jsonl":
		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()
		sc := bufio.NewScanner(f)
		sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
		n := 0
		for sc.Scan() {
			require.True(t, json.Valid(sc.Bytes()))
			n++
		}
		require.NoError(t, sc.Err())
		return n
	case "json":
		b, err := os.ReadFile(path)
		require.NoError(t, err)
		var rows []map[string]any
		require.NoError(t, json.Unmarshal(b, &rows))
		return len(rows)
	case "sqlite":
		db, err := sql.Open("sqlite", path)
		require.NoError(t, err)
		defer db.Close()
		var n int
		require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM "`+tbl.Name()+`"`).Scan(&n))
		return n
	}
	t.Fatalf("no reader for format %s", format)
	return 0
}

func TestSaveEveryScenarioEverySink(t *testing.T) {
	cfg := domain.DefaultConfiguration()
	cfg.ApplySeed(11)

	for _, s := range Scenarios() {
		for _, format := range output.AvailableFormatNames() {
			t.Run(s.Name+"/"+format, func(t *testing.T) {
				g, err := New(s.Name, cfg, 200, nil)
				require.NoError(t, err)

				path := filepath.Join(t.TempDir(), s.Name+"."+format)
				tbl, err := Save(g, path, "", output.Options{})
				require.NoError(t, err)
				require.Positive(t, tbl.Len())

				assert.Equal(t, tbl.Len(), countRows(t, path, format, tbl))
			})
		}
	}
}
