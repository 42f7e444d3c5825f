package booking

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"
)

// BuildReceiptPDF renders a booking receipt. Returns the PDF bytes
// and a download filename.
func BuildReceiptPDF(b *BookingWithDetails) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TourGo Booking Receipt")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Receipt No : TG-%d", b.ID))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued     : "+b.CreatedAt.Format("Jan 2, 2006 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Guest")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Name  : "+b.UserName)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Email : "+b.UserEmail)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Stay")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Hotel     : "+b.HotelName)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Room      : "+b.RoomName)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Check-in  : "+b.CheckIn.Format("Jan 2, 2006"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Check-out : "+b.CheckOut.Format("Jan 2, 2006"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Status    : "+string(b.Status))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Charges")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	if b.DiscountApplied > 0 {
		pdf.Cell(0, 6, fmt.Sprintf("Discount applied : -%d", b.DiscountApplied))
		pdf.Ln(6)
	}
	if b.CoinsUsed > 0 {
		pdf.Cell(0, 6, fmt.Sprintf("Coins used : %d", b.CoinsUsed))
		pdf.Ln(6)
	}
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %d", b.TotalAmount))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Thank you for booking with TourGo.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RECEIPT_TG-%d.pdf", b.ID)
	return buf.Bytes(), filename, nil
}
