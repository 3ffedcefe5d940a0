// Package dataset turns slices of record structs into tables that output
// sinks can write without knowing the concrete record type.
package dataset

import (
	"fmt"
	"reflect"
)

// Table is the materialized result of a generator run.
type Table interface {
	// Name is the scenario the rows came from; sinks use it as a table name.
	Name() string
	Len() int
	Columns() []Column
	// Row returns the raw cells of row i in column order.
	Row(i int) []any
}

// Records is a Table backed by a slice of T.
type Records[T any] struct {
	name    string
	rows    []T
	columns []Column
}

// New builds a table from record structs. It fails when T is not a struct or
// carries a field type no sink can represent.
func New[T any](name string, rows []T) (*Records[T], error) {
	var zero T
	cols, err := ColumnsOf(reflect.TypeOf(zero))
	if err != nil {
		return nil, fmt.Errorf("table %s: %w", name, err)
	}
	return &Records[T]{name: name, rows: rows, columns: cols}, nil
}

func (r *Records[T]) Name() string      { return r.name }
func (r *Records[T]) Len() int          { return len(r.rows) }
func (r *Records[T]) Columns() []Column { return r.columns }

// Rows exposes the typed records
func (r *Records[T]) Rows() []T { return r.rows }

func (r *Records[T]) Row(i int) []any {
	v := reflect.ValueOf(r.rows[i])
	out := make([]any, len(r.columns))
	for c, col := range r.columns {
		out[c] = col.value(v)
	}
	return out
}

// Header returns the column names in order
func Header(t Table) []string {
	cols := t.Columns()
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names
}

// StringRow renders row i of t as text cells
func StringRow(t Table, i int) []string {
	cols := t.Columns()
	raw := t.Row(i)
	out := make([]string, len(raw))
	for c, v := range raw {
		out[c] = FormatCell(cols[c].Kind, v)
	}
	return out
}
