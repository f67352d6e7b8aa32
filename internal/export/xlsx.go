package export

import (
	"fmt"
	"io"

	"checkcheck/internal/model"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Orders"

// WriteXLSX writes the orders as a spreadsheet, one row per order.
func WriteXLSX(w io.Writer, orders []model.Order) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	if err := setRow(f, 1, header); err != nil {
		return err
	}
	for i, o := range orders {
		if err := setRow(f, i+2, row(o)); err != nil {
			return err
		}
	}

	// Widen the item-summary and address columns for readability.
	if err := f.SetColWidth(sheetName, "E", "F", 40); err != nil {
		return fmt.Errorf("failed to set column widths: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("failed to build cell name: %w", err)
	}
	if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
		return fmt.Errorf("failed to set row %d: %w", rowNum, err)
	}
	return nil
}
