package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/hyperlinqai/tulip-foundation/services/donation-api/internal/domain"
)

// CSV export runs over the already-filtered in-memory list; there is no
// second trip to the store. encoding/csv gives RFC-4180 quoting (fields
// with commas or quotes get wrapped, embedded quotes doubled).

func ExportFileName(kind string, now time.Time) string {
	return fmt.Sprintf("%s-%s.csv", kind, now.Format("2006-01-02"))
}

func ExportRegistrationsCSV(w io.Writer, regs []domain.Registration) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"ID", "Name", "Email", "Phone", "Adults", "Kids", "Family Category",
		"Total Amount", "Payment Status", "Transaction ID", "Tulip Parent",
		"T-Shirt Sizes", "Created At",
	}); err != nil {
		return err
	}
	for _, r := range regs {
		txID := ""
		if r.TransactionID != nil {
			txID = *r.TransactionID
		}
		row := []string{
			r.ID,
			r.Name,
			r.Email,
			r.Phone,
			strconv.Itoa(r.AdultCount),
			strconv.Itoa(r.KidsCount),
			r.FamilyCategory,
			strconv.FormatInt(r.TotalAmount, 10),
			r.PaymentStatus,
			txID,
			strconv.FormatBool(r.IsTulipParent),
			strings.Join(r.TShirtSizes, "; "),
			r.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func ExportDonationsCSV(w io.Writer, dons []domain.Donation) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"ID", "First Name", "Last Name", "Email", "Amount", "Designation",
		"Anonymous", "Payment ID", "Status", "Certificate Sent", "Created At",
	}); err != nil {
		return err
	}
	for _, d := range dons {
		row := []string{
			d.ID,
			d.FirstName,
			d.LastName,
			d.Email,
			strconv.FormatInt(d.Amount, 10),
			d.Designation,
			strconv.FormatBool(d.IsAnonymous),
			d.PaymentID,
			d.Status,
			strconv.FormatBool(d.CertificateSent),
			d.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
