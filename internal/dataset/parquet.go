package dataset

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"
)

var (
	int32Type   = reflect.TypeOf(int32(0))
	int64Type   = reflect.TypeOf(int64(0))
	float64Type = reflect.TypeOf(float64(0))
	boolType    = reflect.TypeOf(false)
	stringType  = reflect.TypeOf("")
)

const secondsPerDay = 24 * 60 * 60

// parquetLayout is the physical row type parquet-go writes for a column list.
// Record structs describe dates as time.Time, which parquet-go only accepts
// as int32 days, so rows are copied into a struct built from the columns.
type parquetLayout struct {
	columns []Column
	typ     reflect.Type
	schema  *parquet.Schema
}

// parquetField maps a column onto a struct field parquet-go can encode.
// Nullable dates are written as optional millisecond timestamps at midnight
// because a zero int32 would be read back as 1970-01-01.
func parquetField(i int, c Column) reflect.StructField {
	tag := []string{c.Name}
	var typ reflect.Type
	switch c.Kind {
	case KindInt:
		typ = int64Type
	case KindFloat:
		typ = float64Type
	case KindBool:
		typ = boolType
	case KindDate:
		if c.Nullable {
			typ = timeType
			tag = append(tag, "optional", "timestamp(millisecond)")
		} else {
			typ = int32Type
			tag = append(tag, "date")
		}
	case KindTimestamp:
		typ = timeType
		if c.Nullable {
			tag = append(tag, "optional")
		}
		tag = append(tag, "timestamp(millisecond)")
	default:
		typ = stringType
	}
	// parquet-go already makes pointer fields optional
	if c.Nullable && typ != timeType {
		typ = reflect.PointerTo(typ)
	}
	return reflect.StructField{
		Name: fmt.Sprintf("Col%d", i),
		Type: typ,
		Tag:  reflect.StructTag(`parquet:"` + strings.Join(tag, ",") + `"`),
	}
}

// newParquetLayout builds the row type and schema for cols. parquet-go
// panics on tags it rejects; that panic comes back as an error.
func newParquetLayout(name string, cols []Column) (layout *parquetLayout, err error) {
	defer recoverParquet(name, &err)

	fields := make([]reflect.StructField, len(cols))
	for i, c := range cols {
		fields[i] = parquetField(i, c)
	}
	typ := reflect.StructOf(fields)
	return &parquetLayout{
		columns: cols,
		typ:     typ,
		schema:  parquet.SchemaOf(reflect.New(typ).Elem().Interface()),
	}, nil
}

// row copies raw cells into a value of the layout's row type. Nil cells are
// left zero, which the optional fields write as null.
func (l *parquetLayout) row(cells []any) any {
	v := reflect.New(l.typ).Elem()
	for i, cell := range cells {
		if cell == nil {
			continue
		}
		field := v.Field(i)
		var val reflect.Value
		switch c := l.columns[i]; {
		case c.Kind == KindDate && !c.Nullable:
			val = reflect.ValueOf(daysSinceEpoch(cell.(time.Time)))
		case c.Kind == KindDate:
			t := cell.(time.Time)
			val = reflect.ValueOf(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
		default:
			val = reflect.ValueOf(cell)
		}
		if field.Kind() == reflect.Ptr {
			p := reflect.New(field.Type().Elem())
			p.Elem().Set(val)
			val = p
		}
		field.Set(val)
	}
	return v.Interface()
}

// daysSinceEpoch is the parquet DATE encoding of the calendar day of t.
func daysSinceEpoch(t time.Time) int32 {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	secs := day.Unix()
	days := secs / secondsPerDay
	if secs%secondsPerDay < 0 {
		days--
	}
	return int32(days)
}

func recoverParquet(name string, err *error) {
	if rec := recover(); rec != nil {
		*err = fmt.Errorf("parquet schema for %s: %v", name, rec)
	}
}

// WriteParquet writes every row of t as one parquet file. Dates become DATE
// columns, timestamps millisecond TIMESTAMP columns and nullable fields
// optional columns.
func WriteParquet(w io.Writer, t Table, options ...parquet.WriterOption) (err error) {
	layout, err := newParquetLayout(t.Name(), t.Columns())
	if err != nil {
		return err
	}
	defer recoverParquet(t.Name(), &err)

	writer := parquet.NewWriter(w, append([]parquet.WriterOption{layout.schema}, options...)...)
	for i := 0; i < t.Len(); i++ {
		if err := writer.Write(layout.row(t.Row(i))); err != nil {
			writer.Close()
			return fmt.Errorf("failed to write records: %w", err)
		}
	}
	return writer.Close()
}
