package extract

import (
	"errors"
	"testing"

	"github.com/KaramelBytes/imaris-cli/internal/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"
)

func TestNormalize(t *testing.T) {
	tbl, err := Normalize([][]string{
		{"Average", "Mean", "Sum"},
		{"Filament Volume (sum)", "1.5", "3.0"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Average", "Mean", "Sum"}, tbl.Header)
	assert.Len(t, tbl.Rows, 1)
	assert.Equal(t, 1, tbl.Column("Mean"))
	assert.Equal(t, -1, tbl.Column("Median"))
}

func TestNormalizeTitleRow(t *testing.T) {
	tbl, err := Normalize([][]string{
		{"Average", "", ""},
		{"Variable", "Mean", "Sum"},
		{"Area", "10", ""},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Variable", "Mean", "Sum"}, tbl.Header)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "Area", tbl.Rows[0][0])
}

func TestNormalizeMalformed(t *testing.T) {
	for _, raw := range [][][]string{
		nil,
		{{}},
		{{"Header", "Mean", "Sum"}, {"Area", "1", "2"}},
		{{"average", "Mean"}},
	} {
		_, err := Normalize(raw)
		assert.ErrorIs(t, err, ErrMalformedTable)
	}
}

func TestExtractVersion1(t *testing.T) {
	tbl, err := Normalize([][]string{
		{"Average", "Mean", "Sum"},
		{"Filament Volume (sum)", "1.5", "3.0"},
		{"Not Interesting", "9", "9"},
	})
	require.NoError(t, err)
	recs, err := Extract(tbl, sample.V1, "Tg_AD_007_3", NewVariableSet(DefaultVariables))
	require.NoError(t, err)
	require.Len(t, recs, 1)

	acc := NewAccumulator()
	for _, r := range recs {
		acc.Record(sample.V1, r.Variable, r.Key, r.Reading)
	}
	got, ok := acc.Get(sample.V1, "Filament Volume (sum)", "Tg_AD_007_3")
	require.True(t, ok)
	assert.Equal(t, Reading{Mean: null.FloatFrom(1.5), Sum: null.FloatFrom(3.0)}, got)
	assert.True(t, acc.Empty(sample.V3))
}

func TestExtractVersion3IgnoresSum(t *testing.T) {
	tbl := &Table{Header: []string{"Variable", "Mean", "Sum"}, Rows: [][]string{{"Area", "10", "20"}}}
	recs, err := Extract(tbl, sample.V3, "NI_008_1", NewVariableSet(DefaultVariables))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 10.0, recs[0].Reading.Mean.Float64)
	assert.False(t, recs[0].Reading.Sum.Valid)
}

func TestExtractMissingColumnsDegrade(t *testing.T) {
	tbl := &Table{Header: []string{"Variable", "Median"}, Rows: [][]string{{"Segment Length", "4"}}}
	recs, err := Extract(tbl, sample.V1, "NI_001_1", NewVariableSet(DefaultVariables))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.False(t, recs[0].Reading.Mean.Valid)
	assert.False(t, recs[0].Reading.Sum.Valid)
}

func TestExtractNotNumeric(t *testing.T) {
	tbl := &Table{Header: []string{"Variable", "Mean"}, Rows: [][]string{{"Area", "n/a"}}}
	_, err := Extract(tbl, sample.V3, "NI_001_1", NewVariableSet(DefaultVariables))
	assert.True(t, errors.Is(err, ErrNotNumeric))
}

func TestExtractDecimalComma(t *testing.T) {
	tbl := &Table{Header: []string{"Variable", "Mean"}, Rows: [][]string{{"Volume", "2,25"}}}
	recs, err := Extract(tbl, sample.V3, "Tg_002_1", NewVariableSet(DefaultVariables))
	require.NoError(t, err)
	assert.Equal(t, 2.25, recs[0].Reading.Mean.Float64)
}

func TestAccumulatorOverwrite(t *testing.T) {
	acc := NewAccumulator()
	assert.False(t, acc.Record(sample.V3, "Area", "NI_008_1", Reading{Mean: null.FloatFrom(1)}))
	assert.True(t, acc.Record(sample.V3, "Area", "NI_008_1", Reading{Mean: null.FloatFrom(2)}))
	r, _ := acc.Get(sample.V3, "Area", "NI_008_1")
	assert.Equal(t, 2.0, r.Mean.Float64)

	acc.Record(sample.V3, "Volume", "NI_001_1", Reading{})
	acc.Record(sample.V3, "Area", "Tg_001_1", Reading{})
	var seen []string
	acc.Each(sample.V3, func(variable, key string, _ Reading) { seen = append(seen, variable+"/"+key) })
	assert.Equal(t, []string{"Area/NI_008_1", "Area/Tg_001_1", "Volume/NI_001_1"}, seen)
}
