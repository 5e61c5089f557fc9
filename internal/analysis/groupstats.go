package analysis

import (
	"io"
	"log/slog"
	"math"

	"github.com/KaramelBytes/imaris-cli/internal/sample"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/guregu/null.v3"
)

// SummaryKind names one of the rows appended below the samples of a sheet.
type SummaryKind int

const (
	MeanNI SummaryKind = iota
	MeanNIAD
	MeanTg
	MeanTgAD
	ANOVAPValue
	Significance
)

// SummaryKinds lists summary rows in output order.
var SummaryKinds = []SummaryKind{MeanNI, MeanNIAD, MeanTg, MeanTgAD, ANOVAPValue, Significance}

// Label is the text written in the identity column of the summary row.
func (k SummaryKind) Label() string {
	switch k {
	case MeanNI:
		return "Mean NI"
	case MeanNIAD:
		return "Mean_NI_AD"
	case MeanTg:
		return "Mean_TG"
	case MeanTgAD:
		return "Mean_TG_AD"
	case ANOVAPValue:
		return "Anova p-value"
	case Significance:
		return "Significance"
	}
	return ""
}

// Group returns the cohort a mean row summarizes; ok is false for the test rows.
func (k SummaryKind) Group() (g sample.Group, ok bool) {
	switch k {
	case MeanNI:
		return sample.NI, true
	case MeanNIAD:
		return sample.NIAD, true
	case MeanTg:
		return sample.Tg, true
	case MeanTgAD:
		return sample.TgAD, true
	}
	return sample.Unknown, false
}

// SampleRow is one sample of an annotated sheet.
type SampleRow struct {
	Key    string
	Label  string // leading digits of Key
	Group  sample.Group
	Values []null.Float
}

// ColumnStats holds the per-variable summary of an annotated sheet.
type ColumnStats struct {
	Variable   string
	GroupMeans map[sample.Group]float64 // NaN for groups without values
	GroupN     map[sample.Group]int
	ANOVA      ANOVA
	P          float64 // NaN when the test was skipped
	Marker     string
	Err        error // why the test was skipped, if it was
}

// AnnotatedTable is a transposed pivot with group labels and summary rows.
type AnnotatedTable struct {
	Name      string
	Variables []string
	Samples   []SampleRow
	Columns   []ColumnStats
}

// Summary returns the value of summary row kind for column j: a float64 for
// means and p-values (possibly NaN), a string for the significance marker.
func (t *AnnotatedTable) Summary(kind SummaryKind, j int) any {
	c := t.Columns[j]
	if g, ok := kind.Group(); ok {
		return c.GroupMeans[g]
	}
	if kind == ANOVAPValue {
		return c.P
	}
	return c.Marker
}

// Annotate labels each row with its group and computes per-group means and a
// one-way ANOVA per variable. Columns where the test cannot run get a NaN
// p-value, an "ns" marker and a warning on log; the sheet is still produced.
func Annotate(f *Frame, log *slog.Logger) *AnnotatedTable {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	t := &AnnotatedTable{Name: f.Name, Variables: append([]string(nil), f.Columns...)}
	for _, r := range f.Rows {
		t.Samples = append(t.Samples, SampleRow{
			Key:    r.Key,
			Label:  sample.DisplayLabel(r.Key),
			Group:  sample.ClassifyGroup(r.Key),
			Values: r.Values,
		})
	}
	for j, variable := range t.Variables {
		byGroup := make(map[sample.Group][]float64, len(sample.Groups))
		for _, s := range t.Samples {
			if v := s.Values[j]; v.Valid && !math.IsNaN(v.Float64) {
				byGroup[s.Group] = append(byGroup[s.Group], v.Float64)
			}
		}
		cs := ColumnStats{
			Variable:   variable,
			GroupMeans: make(map[sample.Group]float64, len(sample.Groups)),
			GroupN:     make(map[sample.Group]int, len(sample.Groups)),
		}
		inputs := make([][]float64, 0, len(sample.Groups))
		for _, g := range sample.Groups {
			vals := byGroup[g]
			cs.GroupN[g] = len(vals)
			if len(vals) == 0 {
				cs.GroupMeans[g] = math.NaN()
			} else {
				cs.GroupMeans[g] = stat.Mean(vals, nil)
			}
			inputs = append(inputs, vals)
		}
		res, err := OneWayANOVA(inputs...)
		if err != nil {
			cs.Err = err
			cs.P = math.NaN()
			log.Warn("anova skipped for column", "sheet", t.Name, "variable", variable, "err", err)
		} else {
			cs.ANOVA = res
			cs.P = res.P
		}
		cs.Marker = SignificanceMarker(cs.P)
		t.Columns = append(t.Columns, cs)
	}
	return t
}
