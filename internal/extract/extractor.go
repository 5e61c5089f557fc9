package extract

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KaramelBytes/imaris-cli/internal/sample"
	"gopkg.in/guregu/null.v3"
)

// DefaultVariables is the allow-list of IMARIS statistics kept by default.
// "Filament Length (sum)" is listed twice on purpose: it is read as a mean for
// the filament group and again for its sum.
var DefaultVariables = []string{
	"Filament Area (sum)",
	"Filament Full Branch Depth",
	"Filament Full Branch Level",
	"Filament Length (sum)",
	"Filament Volume (sum)",
	"Segment Length",
	"Filament Length (sum)",
	"Area",
	"Intensity Mean",
	"Volume",
}

// VariableSet is the allow-list used to filter statistics rows.
type VariableSet map[string]struct{}

// NewVariableSet builds a set; duplicate names collapse.
func NewVariableSet(names []string) VariableSet {
	s := make(VariableSet, len(names))
	for _, n := range names {
		s[strings.TrimSpace(n)] = struct{}{}
	}
	return s
}

// Has reports whether name is recognized.
func (s VariableSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// ErrNotNumeric is returned when a statistic cell holds text that is not a number.
var ErrNotNumeric = errors.New("value is not numeric")

// Record is one extracted reading, not yet committed to an Accumulator.
type Record struct {
	Variable string
	Key      string
	Reading  Reading
}

// Extract reads the Mean column (and Sum for version 1) of every allowed row.
// A missing column or blank cell yields an invalid value rather than dropping
// the row.
func Extract(t *Table, v sample.Version, key string, allowed VariableSet) ([]Record, error) {
	meanIdx := t.Column("Mean")
	sumIdx := -1
	if v == sample.V1 {
		sumIdx = t.Column("Sum")
	}
	var out []Record
	for i, row := range t.Rows {
		if len(row) == 0 {
			continue
		}
		name := strings.TrimSpace(row[0])
		if !allowed.Has(name) {
			continue
		}
		mean, err := cellFloat(row, meanIdx)
		if err != nil {
			return nil, fmt.Errorf("row %d %q, column Mean: %w", i+1, name, err)
		}
		r := Reading{Mean: mean}
		if v == sample.V1 {
			sum, err := cellFloat(row, sumIdx)
			if err != nil {
				return nil, fmt.Errorf("row %d %q, column Sum: %w", i+1, name, err)
			}
			r.Sum = sum
		}
		out = append(out, Record{Variable: name, Key: key, Reading: r})
	}
	return out, nil
}

func cellFloat(row []string, idx int) (null.Float, error) {
	if idx < 0 || idx >= len(row) {
		return null.Float{}, nil
	}
	s := strings.TrimSpace(row[idx])
	if s == "" {
		return null.Float{}, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		// decimal comma from a French-locale export
		f, err = strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	}
	if err != nil {
		return null.Float{}, fmt.Errorf("%q: %w", s, ErrNotNumeric)
	}
	return null.FloatFrom(f), nil
}
