package output

import (
	"encoding/csv"
	"os"

	"github.com/datagen/synthetic-data/internal/dataset"
)

// CSVSink writes a header line followed by one line per row. Nulls are empty cells.
type CSVSink struct{}

func (CSVSink) Name() string { return "csv" }

func (CSVSink) WriteFile(path string, t dataset.Table, _ Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(dataset.Header(t)); err != nil {
		return err
	}
	for i := 0; i < t.Len(); i++ {
		if err := w.Write(dataset.StringRow(t, i)); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}
