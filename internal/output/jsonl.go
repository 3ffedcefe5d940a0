package output

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"

	"github.com/datagen/synthetic-data/internal/dataset"
)

// JSONLinesSink writes one JSON object per row, keys in column order.
type JSONLinesSink struct{}

func (JSONLinesSink) Name() string { return "jsonl" }

func (JSONLinesSink) WriteFile(path string, t dataset.Table, _ Options) error {
	return writeJSON(path, t, nil, []byte("\n"), []byte("\n"))
}

// JSONSink writes the rows as a single JSON array of objects.
type JSONSink struct{}

func (JSONSink) Name() string { return "json" }

func (JSONSink) WriteFile(path string, t dataset.Table, _ Options) error {
	if t.Len() == 0 {
		return writeJSON(path, t, []byte("[]"), nil, []byte("\n"))
	}
	return writeJSON(path, t, []byte("[\n"), []byte(",\n"), []byte("\n]\n"))
}

// writeJSON streams the row objects of t between start and end, with sep
// written between consecutive rows.
func writeJSON(path string, t dataset.Table, start, sep, end []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	cols := t.Columns()
	keys := make([][]byte, len(cols))
	for i, c := range cols {
		if keys[i], err = json.Marshal(c.Name); err != nil {
			return err
		}
	}

	if _, err := w.Write(start); err != nil {
		return err
	}
	var obj bytes.Buffer
	for i := 0; i < t.Len(); i++ {
		if i > 0 {
			if _, err := w.Write(sep); err != nil {
				return err
			}
		}
		obj.Reset()
		obj.WriteByte('{')
		for c, v := range t.Row(i) {
			if c > 0 {
				obj.WriteByte(',')
			}
			obj.Write(keys[c])
			obj.WriteByte(':')
			b, err := json.Marshal(jsonValue(cols[c].Kind, v))
			if err != nil {
				return err
			}
			obj.Write(b)
		}
		obj.WriteByte('}')
		if _, err := w.Write(obj.Bytes()); err != nil {
			return err
		}
	}
	if t.Len() > 0 || len(start) > 0 {
		if _, err := w.Write(end); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}

// jsonValue renders dates and timestamps with the CSV layouts so every text
// sink agrees on them.
func jsonValue(kind dataset.Kind, v any) any {
	if v == nil {
		return nil
	}
	switch kind {
	case dataset.KindDate, dataset.KindTimestamp:
		return dataset.FormatCell(kind, v)
	}
	return v
}
