package export

import (
	"fmt"
	"io"
	"time"

	"checkcheck/internal/model"

	"github.com/jung-kurt/gofpdf"
)

// WriteDailyPDF writes a paginated summary of one day's orders: a block
// per order followed by the day's revenue total.
func WriteDailyPDF(w io.Writer, day time.Time, orders []model.Order) error {
	daily := filterByDay(orders, day)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Check Check City - Orders")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, day.Format("Monday, January 2, 2006"))
	pdf.Ln(12)

	if len(daily) == 0 {
		pdf.Cell(0, 8, "No orders for this day.")
		return pdf.Output(w)
	}

	var revenue float64
	for _, o := range daily {
		revenue += o.Total

		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 7, fmt.Sprintf("#%s - %s (%s)", idPrefix(o), o.CustomerName, o.CustomerPhone))
		pdf.Ln(6)

		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(0, 6, fmt.Sprintf("Location: %s", o.DeliveryZone))
		pdf.Ln(5)
		if o.CustomerAddress != "" {
			pdf.Cell(0, 6, fmt.Sprintf("Address: %s", o.CustomerAddress))
			pdf.Ln(5)
		}
		pdf.Cell(0, 6, fmt.Sprintf("Items: %s", itemSummary(o)))
		pdf.Ln(5)
		pdf.Cell(0, 6, fmt.Sprintf(
			"Subtotal: GHS %.2f   Delivery: GHS %.2f   Total: GHS %.2f   Status: %s",
			o.Subtotal, o.DeliveryFee, o.Total, o.Status,
		))
		pdf.Ln(5)
		pdf.Cell(0, 6, fmt.Sprintf("Placed: %s", o.CreatedAt.Format(timeLayout)))
		pdf.Ln(9)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Orders: %d   Revenue: GHS %.2f", len(daily), revenue))

	return pdf.Output(w)
}
