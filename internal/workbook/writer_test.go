package workbook

import (
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/imaris-cli/internal/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/guregu/null.v3"
)

func TestWriteLayout(t *testing.T) {
	means := analysis.Annotate(&analysis.Frame{
		Name:    "Means",
		Columns: []string{"Filament Length (sum)", "Segment Length"},
		Rows: []analysis.FrameRow{
			{Key: "Tg_AD_007_3", Values: []null.Float{null.FloatFrom(2), {}}},
		},
	}, nil)
	empty := analysis.Annotate(&analysis.Frame{Name: "Means Hull"}, nil)

	p := filepath.Join(t.TempDir(), "out", "resultats.xlsx")
	require.NoError(t, Write(p, []*analysis.AnnotatedTable{means, empty}))

	f, err := excelize.OpenFile(p)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Means", "Means Hull"}, f.GetSheetList())

	rows, err := f.GetRows("Means")
	require.NoError(t, err)
	require.Len(t, rows, 8)
	assert.Equal(t, []string{"Fichier", "Filament Length (sum)", "Segment Length", "Groupe"}, rows[0])
	assert.Equal(t, []string{"007", "2", "", "Tg_AD"}, rows[1])
	assert.Equal(t, []string{"Mean NI"}, rows[2])
	assert.Equal(t, []string{"Mean_TG_AD", "2"}, rows[5])
	assert.Equal(t, []string{"Anova p-value"}, rows[6])
	assert.Equal(t, []string{"Significance", "ns", "ns"}, rows[7])

	hull, err := f.GetRows("Means Hull")
	require.NoError(t, err)
	require.Len(t, hull, 7)
	assert.Equal(t, []string{"Fichier", "Groupe"}, hull[0])
	assert.Equal(t, []string{"Significance"}, hull[6])
}

func TestBuildRequiresSheets(t *testing.T) {
	_, err := Build(nil)
	assert.Error(t, err)
}
