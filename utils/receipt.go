package utils

import (
	"bytes"
	"fmt"

	"qserve/models"

	"github.com/jung-kurt/gofpdf"
)

// RenderReceipt formats a completed transaction into a PDF document.
func RenderReceipt(tx *models.Transaction, senderName, receiverName string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("QPay Transaction Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "QPay Transaction Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(50, 8, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
	}

	row("Transaction ID", tx.TransactionID)
	row("Status", tx.Status)
	row("From", senderName)
	row("To", receiverName)
	row("Amount", fmt.Sprintf("%.2f %s", tx.Amount, tx.Currency))
	if tx.Description != "" {
		row("Description", tx.Description)
	}
	if tx.ServiceDetails != nil && tx.ServiceDetails.Title != "" {
		row("Service", tx.ServiceDetails.Title)
	}
	row("Created", tx.CreatedAt.Format("2 Jan 2006 15:04"))
	if tx.CompletedAt != nil {
		row("Completed", tx.CompletedAt.Format("2 Jan 2006 15:04"))
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, "This receipt was generated electronically and requires no signature.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.Bytes(), nil
}
