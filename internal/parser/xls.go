package parser

import (
	"errors"
	"fmt"

	"github.com/extrame/xls"
)

type xlsParser struct{}

func (xlsParser) CanRead(filename string) bool { return hasExt(filename, ".xls") }

// Read loads the first sheet of a legacy BIFF workbook, as exported by IMARIS.
func (xlsParser) Read(path string) (rows [][]string, err error) {
	// extrame/xls panics on some truncated files; surface that as an error.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("decode xls: %v", r)
		}
	}()
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open xls: %w", err)
	}
	if wb.NumSheets() == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, errors.New("first sheet is unreadable")
	}
	// A row's LastCol is exclusive and is zero for rows written without a ROW
	// record, so every row is read to the widest span in the sheet.
	grid := make([]*xls.Row, int(sheet.MaxRow)+1)
	width := 0
	for i := range grid {
		grid[i] = rowAt(sheet, i)
		if grid[i] != nil && grid[i].LastCol() > width {
			width = grid[i].LastCol()
		}
	}
	for _, row := range grid {
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, width)
		for j := range cells {
			cells[j] = row.Col(j)
		}
		rows = append(rows, cells)
	}
	return padRows(rows), nil
}

// rowAt returns nil for rows the sheet never defined; WorkSheet.Row panics on them.
func rowAt(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}
