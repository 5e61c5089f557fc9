package workbook

import (
	"fmt"
	"math"

	"github.com/KaramelBytes/imaris-cli/internal/analysis"
	"github.com/KaramelBytes/imaris-cli/internal/utils"
	"github.com/xuri/excelize/v2"
)

const (
	// IdentityHeader heads the column holding sample labels and summary row names.
	IdentityHeader = "Fichier"
	// GroupHeader heads the trailing cohort column.
	GroupHeader = "Groupe"
)

// Write renders every table as one sheet, in order, and saves the workbook to
// path atomically.
func Write(path string, tables []*analysis.AnnotatedTable) error {
	f, err := Build(tables)
	if err != nil {
		return err
	}
	defer f.Close()
	buf, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("encode workbook: %w", err)
	}
	if err := utils.SafeWriteFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// Build lays the tables out in an in-memory workbook.
func Build(tables []*analysis.AnnotatedTable) (*excelize.File, error) {
	if len(tables) == 0 {
		return nil, fmt.Errorf("no sheets to write")
	}
	f := excelize.NewFile()
	defaultSheet := f.GetSheetName(0)
	for i, t := range tables {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, t.Name); err != nil {
				f.Close()
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(t.Name); err != nil {
			f.Close()
			return nil, fmt.Errorf("create sheet %s: %w", t.Name, err)
		}
		if err := writeSheet(f, t); err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %s: %w", t.Name, err)
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

func writeSheet(f *excelize.File, t *analysis.AnnotatedTable) error {
	groupCol := len(t.Variables) + 1
	header := make([]any, 0, groupCol+1)
	header = append(header, IdentityHeader)
	for _, v := range t.Variables {
		header = append(header, v)
	}
	header = append(header, GroupHeader)
	if err := f.SetSheetRow(t.Name, "A1", &header); err != nil {
		return err
	}
	row := 2
	for _, s := range t.Samples {
		if err := setCell(f, t.Name, 0, row, s.Label); err != nil {
			return err
		}
		for j, v := range s.Values {
			if !v.Valid {
				continue
			}
			if err := setCell(f, t.Name, j+1, row, v.Float64); err != nil {
				return err
			}
		}
		if err := setCell(f, t.Name, groupCol, row, s.Group.String()); err != nil {
			return err
		}
		row++
	}
	for _, kind := range analysis.SummaryKinds {
		if err := setCell(f, t.Name, 0, row, kind.Label()); err != nil {
			return err
		}
		for j := range t.Variables {
			if err := setCell(f, t.Name, j+1, row, t.Summary(kind, j)); err != nil {
				return err
			}
		}
		row++
	}
	return nil
}

// setCell writes v at the zero-based column col of the 1-based row. NaN and
// infinite floats are left blank since spreadsheets cannot store them.
func setCell(f *excelize.File, sheet string, col, row int, v any) error {
	if x, ok := v.(float64); ok && (math.IsNaN(x) || math.IsInf(x, 0)) {
		return nil
	}
	ref, err := excelize.CoordinatesToCellName(col+1, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, ref, v)
}
