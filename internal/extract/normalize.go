package extract

import (
	"errors"
	"strings"
)

// AverageMarker is the first cell of every sheet IMARIS writes for its
// "Average" statistics export.
const AverageMarker = "Average"

// ErrMalformedTable means the sheet does not start with AverageMarker, which
// happens when a file was not saved from IMARIS' statistics export.
var ErrMalformedTable = errors.New("first cell is not \"Average\": file was not correctly exported from IMARIS")

// Table is a statistics sheet whose header row has been promoted.
type Table struct {
	Header []string
	Rows   [][]string
}

// Normalize checks the AverageMarker gate and promotes the header row.
// The marker row is normally the header itself; when it names no "Mean"
// column but the row below does, the row below is used instead.
func Normalize(raw [][]string) (*Table, error) {
	if len(raw) == 0 || len(raw[0]) == 0 || strings.TrimSpace(raw[0][0]) != AverageMarker {
		return nil, ErrMalformedTable
	}
	hdr := 0
	if indexOf(raw[0], "Mean") < 0 && len(raw) > 1 && indexOf(raw[1], "Mean") >= 0 {
		hdr = 1
	}
	header := make([]string, len(raw[hdr]))
	for i, h := range raw[hdr] {
		header[i] = strings.TrimSpace(h)
	}
	return &Table{Header: header, Rows: raw[hdr+1:]}, nil
}

// Column returns the index of the named header, or -1.
func (t *Table) Column(name string) int { return indexOf(t.Header, name) }

func indexOf(row []string, name string) int {
	for i, c := range row {
		if strings.TrimSpace(c) == name {
			return i
		}
	}
	return -1
}
