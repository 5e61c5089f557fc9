package analysis

import (
	"errors"
	"fmt"
	"sort"

	"github.com/KaramelBytes/imaris-cli/internal/extract"
	"github.com/KaramelBytes/imaris-cli/internal/sample"
	"gopkg.in/guregu/null.v3"
)

// Stat selects which statistic of a Reading a pivot carries.
type Stat int

const (
	StatMean Stat = iota
	StatSum
)

func (s Stat) String() string {
	if s == StatSum {
		return "Sum"
	}
	return "Mean"
}

// SheetSpec names one output sheet and where its values come from.
type SheetSpec struct {
	Name    string
	Version sample.Version
	Stat    Stat
}

// Sheets are the output sheets in workbook order.
var Sheets = []SheetSpec{
	{Name: "Means", Version: sample.V1, Stat: StatMean},
	{Name: "Sums", Version: sample.V1, Stat: StatSum},
	{Name: "Means Hull", Version: sample.V3, Stat: StatMean},
}

var (
	// ErrEmptyAccumulator means no file of a version yielded data.
	ErrEmptyAccumulator = errors.New("no data could be extracted")
	// ErrDuplicateCell means a flat list named the same (variable, key) twice.
	ErrDuplicateCell = errors.New("duplicate variable/sample pair")
)

// Triple is one flattened reading.
type Triple struct {
	Variable string
	Key      string
	Value    null.Float
}

// Flatten lists every reading of version v as triples carrying stat.
func Flatten(acc *extract.Accumulator, v sample.Version, stat Stat) []Triple {
	var out []Triple
	acc.Each(v, func(variable, key string, r extract.Reading) {
		val := r.Mean
		if stat == StatSum {
			val = r.Sum
		}
		out = append(out, Triple{Variable: variable, Key: key, Value: val})
	})
	return out
}

type cell struct{ variable, key string }

// Pivot is a variables x sample keys grid. Rows and columns are sorted.
type Pivot struct {
	Variables []string
	Keys      []string
	cells     map[cell]null.Float
}

// NewPivot reshapes triples into a grid; each (variable, key) may appear once.
func NewPivot(ts []Triple) (*Pivot, error) {
	p := &Pivot{cells: make(map[cell]null.Float, len(ts))}
	vars := map[string]struct{}{}
	keys := map[string]struct{}{}
	for _, t := range ts {
		c := cell{t.Variable, t.Key}
		if _, dup := p.cells[c]; dup {
			return nil, fmt.Errorf("%s / %s: %w", t.Variable, t.Key, ErrDuplicateCell)
		}
		p.cells[c] = t.Value
		vars[t.Variable] = struct{}{}
		keys[t.Key] = struct{}{}
	}
	p.Variables = sortedKeys(vars)
	p.Keys = sortedKeys(keys)
	return p, nil
}

// Value returns the cell for (variable, key); ok is false when it was never set.
func (p *Pivot) Value(variable, key string) (v null.Float, ok bool) {
	v, ok = p.cells[cell{variable, key}]
	return v, ok
}

// Empty reports whether the pivot has no cells.
func (p *Pivot) Empty() bool { return len(p.cells) == 0 }

// Melt is the inverse of NewPivot: it lists every set cell, variable-major.
func (p *Pivot) Melt() []Triple {
	out := make([]Triple, 0, len(p.cells))
	for _, v := range p.Variables {
		for _, k := range p.Keys {
			if val, ok := p.cells[cell{v, k}]; ok {
				out = append(out, Triple{Variable: v, Key: k, Value: val})
			}
		}
	}
	return out
}

// FrameRow is one sample of a transposed pivot.
type FrameRow struct {
	Key    string
	Values []null.Float // aligned with Frame.Columns
}

// Frame is a sample-major table: one row per sample key, one column per variable.
type Frame struct {
	Name    string
	Columns []string
	Rows    []FrameRow
}

// Transpose turns the pivot into a Frame; unset cells become invalid values.
func (p *Pivot) Transpose(name string) *Frame {
	f := &Frame{Name: name, Columns: append([]string(nil), p.Variables...)}
	for _, k := range p.Keys {
		row := FrameRow{Key: k, Values: make([]null.Float, len(p.Variables))}
		for j, v := range p.Variables {
			row.Values[j] = p.cells[cell{v, k}]
		}
		f.Rows = append(f.Rows, row)
	}
	return f
}

// BuildFrames produces one Frame per entry of Sheets. Versions without data
// yield an empty frame and an ErrEmptyAccumulator warning.
func BuildFrames(acc *extract.Accumulator) ([]*Frame, []error) {
	var frames []*Frame
	var warns []error
	warned := map[sample.Version]bool{}
	for _, s := range Sheets {
		if acc.Empty(s.Version) && !warned[s.Version] {
			warned[s.Version] = true
			warns = append(warns, fmt.Errorf("version %s: %w", s.Version, ErrEmptyAccumulator))
		}
		p, err := NewPivot(Flatten(acc, s.Version, s.Stat))
		if err != nil {
			warns = append(warns, fmt.Errorf("sheet %s: %w", s.Name, err))
			p, _ = NewPivot(nil)
		}
		frames = append(frames, p.Transpose(s.Name))
	}
	return frames, warns
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
