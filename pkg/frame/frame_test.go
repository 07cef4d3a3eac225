package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRecordsInference(t *testing.T) {
	header := []string{"id", "score", "active", "name", "notes"}
	records := [][]string{
		{"1", "3.5", "true", "Alice", ""},
		{"2", "4", "false", "Bob", "hello"},
		{"3", "", "TRUE", "Carol", ""},
	}
	f, err := FromRecords(header, records)
	require.NoError(t, err)

	require.Equal(t, 3, f.Rows())
	require.Equal(t, 5, f.Cols())
	assert.Equal(t, header, f.ColumnNames())

	s := f.Schema()
	assert.Equal(t, KindInt, s.Columns[0].Type)
	assert.Equal(t, KindFloat, s.Columns[1].Type)
	assert.Equal(t, KindBool, s.Columns[2].Type)
	assert.Equal(t, KindString, s.Columns[3].Type)
	assert.Equal(t, KindString, s.Columns[4].Type)

	col, ok := f.ColumnByName("id")
	require.True(t, ok)
	v, ok := col.(*IntColumn).Get(2)
	require.True(t, ok)
	assert.Equal(t, int64(3), v)

	// empty score cell on row 2 stays null
	col, _ = f.ColumnByName("score")
	assert.True(t, col.IsNull(2))
	fv, ok := col.(*FloatColumn).Get(0)
	require.True(t, ok)
	assert.Equal(t, 3.5, fv)

	col, _ = f.ColumnByName("active")
	bv, ok := col.(*BoolColumn).Get(2)
	require.True(t, ok)
	assert.True(t, bv)
}

func TestInferKindsMixedNumeric(t *testing.T) {
	// a single non-numeric value among many numbers keeps the column numeric
	records := [][]string{{"1"}, {"2"}, {"x"}, {"4"}, {"5.5"}}
	kinds := InferKinds(records, 1)
	assert.Equal(t, KindFloat, kinds[0])

	// strings win when they outnumber numbers
	records = [][]string{{"a"}, {"b"}, {"3"}}
	kinds = InferKinds(records, 1)
	assert.Equal(t, KindString, kinds[0])

	// all-empty columns fall back to string
	kinds = InferKinds([][]string{{""}, {""}}, 1)
	assert.Equal(t, KindString, kinds[0])

	// scientific notation is a float
	kinds = InferKinds([][]string{{"1e3"}, {"2E-2"}}, 1)
	assert.Equal(t, KindFloat, kinds[0])
}

func TestFromRecordsEmptyHeader(t *testing.T) {
	_, err := FromRecords(nil, nil)
	require.Error(t, err)
}

func TestFromRecordsShortRecord(t *testing.T) {
	f, err := FromRecords([]string{"a", "b"}, [][]string{{"1"}})
	require.NoError(t, err)
	require.Equal(t, 1, f.Rows())
	col, _ := f.ColumnByName("b")
	assert.True(t, col.IsNull(0))
}

func TestSetCellUnknownColumn(t *testing.T) {
	f := NewFrame(Schema{Columns: []ColumnSchema{{Name: "x", Type: KindInt, Nullable: true}}})
	f.AppendNullRow()
	require.Error(t, f.SetCell(0, "nope", int64(1)))
	require.Error(t, f.SetCell(0, "x", "not an int"))
	require.NoError(t, f.SetCell(0, "x", int64(7)))
}
