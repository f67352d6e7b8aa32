package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"checkcheck/internal/model"
)

// WriteCSV writes the orders as delimited text with the same column set
// as the spreadsheet export.
func WriteCSV(w io.Writer, orders []model.Order) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, o := range orders {
		if err := cw.Write(row(o)); err != nil {
			return fmt.Errorf("failed to write order row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}
