package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdm0006/parquetize/pkg/frame"
)

func TestCollect(t *testing.T) {
	f, err := frame.FromRecords(
		[]string{"n", "flag", "city"},
		[][]string{
			{"1", "true", "Rome"},
			{"3", "false", "Rome"},
			{"", "true", "Oslo"},
		},
	)
	require.NoError(t, err)

	cols := Collect(f)
	require.Len(t, cols, 3)

	n := cols[0]
	require.NotNil(t, n.Num)
	assert.Equal(t, 2, n.Num.Count)
	assert.Equal(t, 1, n.Num.Nulls)
	assert.Equal(t, 1.0, n.Num.Min)
	assert.Equal(t, 3.0, n.Num.Max)

	flag := cols[1]
	require.NotNil(t, flag.Bool)
	assert.Equal(t, 2, flag.Bool.True)
	assert.Equal(t, 1, flag.Bool.False)

	city := cols[2]
	require.NotNil(t, city.Str)
	assert.Equal(t, 3, city.Str.Count)
	assert.Equal(t, 2, city.Str.Freqs["Rome"])
}

func TestReportText(t *testing.T) {
	f, err := frame.FromRecords(
		[]string{"city"},
		[][]string{{"Rome"}, {"Rome"}, {"Oslo"}},
	)
	require.NoError(t, err)

	text := ReportText(Collect(f), 1)
	assert.Contains(t, text, "city (string)")
	assert.Contains(t, text, "distinct=2")
	assert.Contains(t, text, `"Rome": 2`)
	assert.NotContains(t, text, "Oslo", "topK=1 lists only the most frequent value")
}
