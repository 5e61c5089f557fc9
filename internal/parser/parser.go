package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Reader loads the first worksheet of a spreadsheet export as a grid of cell text.
type Reader interface {
	CanRead(filename string) bool
	Read(path string) ([][]string, error)
}

var registry []Reader

// Register adds a reader implementation to the registry.
func Register(r Reader) {
	registry = append(registry, r)
}

// ErrUnsupported indicates no registered reader handles the file's extension.
var ErrUnsupported = errors.New("unsupported spreadsheet format")

// ReadFile selects a reader based on filename and returns the raw cell grid.
func ReadFile(path string) ([][]string, error) {
	for _, r := range registry {
		if r.CanRead(path) {
			rows, err := r.Read(path)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
			}
			return rows, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrUnsupported)
}

func hasExt(filename string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

// padRows makes the grid rectangular so column lookups never go out of range.
func padRows(rows [][]string) [][]string {
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	for i, r := range rows {
		if len(r) < width {
			tmp := make([]string, width)
			copy(tmp, r)
			rows[i] = tmp
		}
	}
	return rows
}

func init() {
	Register(xlsParser{})
	Register(xlsxParser{})
	Register(csvParser{})
}
