package dataset

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Kind is the logical type of a column
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindDate
	KindTimestamp
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindDate:
		return "date"
	case KindTimestamp:
		return "timestamp"
	default:
		return "string"
	}
}

// TimestampLayout is how timestamps render in text formats
const TimestampLayout = "2006-01-02 15:04:05"

// DateLayout is how calendar dates render in text formats
const DateLayout = "2006-01-02"

// Column describes one field of a record struct
type Column struct {
	Name     string
	Kind     Kind
	Nullable bool
	index    int
}

var timeType = reflect.TypeOf(time.Time{})

// ColumnsOf derives the column list of a record struct from its parquet tags.
// Fields without a tag use the Go field name; fields tagged "-" are skipped.
func ColumnsOf(t reflect.Type) ([]Column, error) {
	if t.Kind() != reflect.Struct {
		return nil, errors.New("record type needs to be a struct")
	}
	cols := make([]Column, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get("parquet")
		if tag == "-" {
			continue
		}
		parts := strings.Split(tag, ",")
		name := parts[0]
		if name == "" {
			name = field.Name
		}

		ft := field.Type
		nullable := false
		if ft.Kind() == reflect.Ptr {
			nullable = true
			ft = ft.Elem()
		}
		kind, err := kindOf(ft, parts[1:])
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		cols = append(cols, Column{Name: name, Kind: kind, Nullable: nullable, index: i})
	}
	return cols, nil
}

func kindOf(t reflect.Type, opts []string) (Kind, error) {
	if t == timeType {
		for _, o := range opts {
			if o == "date" {
				return KindDate, nil
			}
		}
		return KindTimestamp, nil
	}
	switch t.Kind() {
	case reflect.String:
		return KindString, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindInt, nil
	case reflect.Float32, reflect.Float64:
		return KindFloat, nil
	case reflect.Bool:
		return KindBool, nil
	}
	return 0, fmt.Errorf("unsupported column type %s", t)
}

// value returns the raw cell of a record; nil pointers come back as nil.
func (c Column) value(record reflect.Value) any {
	v := record.Field(c.index)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	switch c.Kind {
	case KindInt:
		if v.CanInt() {
			return v.Int()
		}
		return int64(v.Uint())
	case KindFloat:
		return v.Float()
	case KindBool:
		return v.Bool()
	case KindDate, KindTimestamp:
		return v.Interface().(time.Time)
	default:
		return v.String()
	}
}

// FormatCell renders a raw cell for text outputs. Nil becomes the empty string.
func FormatCell(kind Kind, v any) string {
	if v == nil {
		return ""
	}
	switch kind {
	case KindInt:
		return strconv.FormatInt(v.(int64), 10)
	case KindFloat:
		return strconv.FormatFloat(v.(float64), 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.(bool))
	case KindDate:
		return v.(time.Time).Format(DateLayout)
	case KindTimestamp:
		return v.(time.Time).Format(TimestampLayout)
	default:
		return v.(string)
	}
}
