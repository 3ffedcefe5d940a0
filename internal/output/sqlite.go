package output

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/datagen/synthetic-data/internal/dataset"
	_ "modernc.org/sqlite"
)

// sqliteMaxParams is SQLite's bound-parameter limit; it caps rows per INSERT.
const sqliteMaxParams = 32766

// SQLiteSink writes the table into a SQLite database file, one table per
// scenario. An existing table of the same name is replaced.
type SQLiteSink struct{}

func (SQLiteSink) Name() string { return "sqlite" }

func (SQLiteSink) WriteFile(path string, t dataset.Table, _ Options) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite db: %w", err)
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := writeTable(tx, t); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return db.Close()
}

func writeTable(tx *sql.Tx, t dataset.Table) error {
	name := quoteIdent(t.Name())
	if _, err := tx.Exec("DROP TABLE IF EXISTS " + name); err != nil {
		return fmt.Errorf("drop table %s: %w", t.Name(), err)
	}
	if _, err := tx.Exec(CreateTableSQL(t)); err != nil {
		return fmt.Errorf("create table %s: %w", t.Name(), err)
	}

	cols := t.Columns()
	if len(cols) == 0 || t.Len() == 0 {
		return nil
	}
	pageSize := sqliteMaxParams / len(cols)
	for start := 0; start < t.Len(); start += pageSize {
		stop := min(start+pageSize, t.Len())
		query, args := insertQuery(t, start, stop)
		if _, err := tx.Exec(query, args...); err != nil {
			return fmt.Errorf("insert rows %d-%d into %s: %w", start, stop-1, t.Name(), err)
		}
	}
	return nil
}

// CreateTableSQL returns the CREATE TABLE statement for t.
func CreateTableSQL(t dataset.Table) string {
	cols := t.Columns()
	defs := make([]string, len(cols))
	for i, c := range cols {
		def := quoteIdent(c.Name) + " " + sqliteType(c.Kind)
		if !c.Nullable {
			def += " NOT NULL"
		}
		defs[i] = def
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(t.Name()), strings.Join(defs, ", "))
}

func insertQuery(t dataset.Table, start, stop int) (string, []any) {
	cols := t.Columns()
	placeholder := "(" + strings.TrimSuffix(strings.Repeat("?,", len(cols)), ",") + ")"
	groups := make([]string, 0, stop-start)
	args := make([]any, 0, (stop-start)*len(cols))
	for i := start; i < stop; i++ {
		groups = append(groups, placeholder)
		for c, v := range t.Row(i) {
			args = append(args, sqliteValue(cols[c].Kind, v))
		}
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		quoteIdent(t.Name()), quotedNames(cols), strings.Join(groups, ",")), args
}

func sqliteType(k dataset.Kind) string {
	switch k {
	case dataset.KindInt, dataset.KindBool:
		return "INTEGER"
	case dataset.KindFloat:
		return "REAL"
	default:
		return "TEXT"
	}
}

// sqliteValue stores dates and timestamps as text and booleans as 0/1
func sqliteValue(k dataset.Kind, v any) any {
	if v == nil {
		return nil
	}
	switch k {
	case dataset.KindDate, dataset.KindTimestamp:
		return dataset.FormatCell(k, v)
	case dataset.KindBool:
		if v.(bool) {
			return int64(1)
		}
		return int64(0)
	}
	return v
}

func quotedNames(cols []dataset.Column) string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = quoteIdent(c.Name)
	}
	return strings.Join(names, ", ")
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
