package pdf

import (
	"bytes"
	"fmt"
	"time"

	"rxquote/internal/domain/entities"
	"rxquote/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
)

// QuoteRenderer lays out the quote summary attached to the patient email.
type QuoteRenderer struct {
	now func() time.Time
}

var _ interfaces.IQuoteDocumentRenderer = (*QuoteRenderer)(nil)

func NewQuoteRenderer() *QuoteRenderer {
	return &QuoteRenderer{now: time.Now}
}

// column widths in mm for the item table; A4 usable width is 180mm with 15mm margins
var itemColumns = []float64{70, 35, 30, 45}

func (r *QuoteRenderer) RenderQuote(n entities.QuoteCreatedNotice) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(15, 15, 15)
	doc.SetTitle("Quotation", true)
	doc.AddPage()
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 10, tr("Quotation"), "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 6, tr(fmt.Sprintf("Issued by %s on %s", orDash(n.Pharmacy.Name), r.now().Format("02 Jan 2006"))), "", 1, "L", false, 0, "")
	if n.Quote.ID != "" {
		doc.CellFormat(0, 6, tr("Reference: "+n.Quote.ID), "", 1, "L", false, 0, "")
	}
	doc.Ln(4)

	section(doc, tr, "Patient")
	field(doc, tr, "Name", n.Patient.Name)
	field(doc, tr, "Email", n.Patient.Email)
	field(doc, tr, "Phone", firstNonEmpty(n.Prescription.ContactPhone, n.Patient.Phone))
	field(doc, tr, "Address", firstNonEmpty(n.Prescription.DeliveryAddress, n.Patient.Address))
	doc.Ln(2)

	section(doc, tr, "Delivery")
	field(doc, tr, "Preferred date", n.Prescription.PreferredDate)
	field(doc, tr, "Time slot", n.Prescription.PreferredTimeSlot)
	field(doc, tr, "Estimated delivery", n.Quote.EstimatedDelivery)
	doc.Ln(2)

	section(doc, tr, "Items")
	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(235, 240, 245)
	for i, h := range []string{"Drug", "Quantity", "Price", "Notes"} {
		align := "L"
		if i == 2 {
			align = "R"
		}
		doc.CellFormat(itemColumns[i], 7, h, "1", 0, align, true, 0, "")
	}
	doc.Ln(-1)
	doc.SetFont("Helvetica", "", 10)
	for _, it := range n.Quote.Items {
		doc.CellFormat(itemColumns[0], 7, tr(it.Drug), "1", 0, "L", false, 0, "")
		doc.CellFormat(itemColumns[1], 7, tr(it.Quantity), "1", 0, "L", false, 0, "")
		doc.CellFormat(itemColumns[2], 7, it.Price.StringFixed(2), "1", 0, "R", false, 0, "")
		doc.CellFormat(itemColumns[3], 7, tr(it.Notes), "1", 0, "L", false, 0, "")
		doc.Ln(-1)
	}

	labelWidth := itemColumns[0] + itemColumns[1]
	doc.CellFormat(labelWidth, 7, "Delivery fee", "1", 0, "R", false, 0, "")
	doc.CellFormat(itemColumns[2], 7, n.Quote.DeliveryFee.StringFixed(2), "1", 1, "R", false, 0, "")
	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(labelWidth, 8, "Total", "1", 0, "R", true, 0, "")
	doc.CellFormat(itemColumns[2], 8, n.Quote.DisplayTotal(), "1", 1, "R", true, 0, "")
	doc.Ln(4)

	if n.Quote.Notes != "" {
		section(doc, tr, "Pharmacy notes")
		doc.SetFont("Helvetica", "", 10)
		doc.MultiCell(0, 5, tr(n.Quote.Notes), "", "L", false)
		doc.Ln(2)
	}

	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(30, 90, 160)
	link := n.ReviewLink()
	doc.WriteLinkString(5, tr("Review and accept this quote online: "+link), link)
	doc.SetTextColor(0, 0, 0)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render quote pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func section(doc *fpdf.Fpdf, tr func(string) string, title string) {
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, 8, tr(title), "B", 1, "L", false, 0, "")
	doc.Ln(1)
}

func field(doc *fpdf.Fpdf, tr func(string) string, label, value string) {
	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(40, 6, tr(label+":"), "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 6, tr(orDash(value)), "", 1, "L", false, 0, "")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
