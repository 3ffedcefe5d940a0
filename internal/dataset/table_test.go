package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRow struct {
	ID      int       `parquet:"id"`
	Label   *string   `parquet:"label,optional"`
	Score   float64   `parquet:"score"`
	Day     time.Time `parquet:"day,date"`
	Seen    time.Time `parquet:"seen,timestamp(millisecond)"`
	Active  bool      `parquet:"active"`
	Ignored string    `parquet:"-"`
}

func sampleRows() []sampleRow {
	label := "alpha"
	return []sampleRow{
		{ID: 1, Label: &label, Score: 1.5, Day: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Seen: time.Date(2024, 1, 2, 9, 30, 5, 0, time.UTC), Active: true},
		{ID: 2, Score: 0.25, Day: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), Seen: time.Date(2024, 1, 3, 17, 0, 0, 0, time.UTC)},
	}
}

func TestColumnsOf(t *testing.T) {
	tbl, err := New("sample", sampleRows())
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "label", "score", "day", "seen", "active"}, Header(tbl))

	cols := tbl.Columns()
	assert.Equal(t, KindInt, cols[0].Kind)
	assert.True(t, cols[1].Nullable)
	assert.Equal(t, KindFloat, cols[2].Kind)
	assert.Equal(t, KindDate, cols[3].Kind)
	assert.Equal(t, KindTimestamp, cols[4].Kind)
	assert.Equal(t, KindBool, cols[5].Kind)
}

func TestStringRow(t *testing.T) {
	tbl, err := New("sample", sampleRows())
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Len())

	assert.Equal(t, []string{"1", "alpha", "1.5", "2024-01-02", "2024-01-02 09:30:05", "true"}, StringRow(tbl, 0))
	assert.Equal(t, []string{"2", "", "0.25", "2024-01-03", "2024-01-03 17:00:00", "false"}, StringRow(tbl, 1))
	assert.Nil(t, tbl.Row(1)[1], "nil pointer stays nil")
}

func TestNewRejectsNonStruct(t *testing.T) {
	_, err := New("ints", []int{1, 2})
	assert.Error(t, err)

	type bad struct {
		Tags []string `parquet:"tags"`
	}
	_, err = New("bad", []bad{{}})
	assert.Error(t, err)
}
