package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportComparison writes a comparison matrix into an .xlsx workbook: one
// header row of city names, then one row per metric with a group label
// column. Returns the serialized workbook.
func ExportComparison(table *ComparisonTable) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"

	if err := setCell(f, sheet, 1, 1, "Metric"); err != nil {
		return nil, err
	}
	for i, city := range table.Cities {
		header := fmt.Sprintf("%s, %s", city.Name, city.Country)
		if err := setCell(f, sheet, i+2, 1, header); err != nil {
			return nil, err
		}
	}

	row := 2
	lastGroup := ""
	for _, r := range table.Rows {
		if r.Group != lastGroup {
			if err := setCell(f, sheet, 1, row, r.Group); err != nil {
				return nil, err
			}
			lastGroup = r.Group
			row++
		}
		if err := setCell(f, sheet, 1, row, r.Label); err != nil {
			return nil, err
		}
		for i, cell := range r.Cells {
			if err := setCell(f, sheet, i+2, row, cell); err != nil {
				return nil, err
			}
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf, nil
}

func setCell(f *excelize.File, sheet string, col, row int, value string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("failed to address cell: %w", err)
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("failed to write cell %s: %w", cell, err)
	}
	return nil
}
