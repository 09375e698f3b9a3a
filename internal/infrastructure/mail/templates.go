package mail

import (
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"rxquote/internal/domain/entities"
	"rxquote/internal/usecase/interfaces"
)

const quoteCreatedText = `Hello {{.PatientName}},

{{.PharmacyName}} sent you a quotation for your prescription.

{{range .Items}}- {{.Drug}} ({{.Quantity}}): {{.Price}}{{if .Notes}} [{{.Notes}}]{{end}}
{{end}}
Delivery fee: {{.DeliveryFee}}
Total: {{.Total}}
{{if .EstimatedDelivery}}Estimated delivery: {{.EstimatedDelivery}}
{{end}}{{if .Notes}}Notes: {{.Notes}}
{{end}}
The full quotation is attached as a PDF. Review and accept it here:
{{.Link}}
`

const quoteCreatedHTML = `<!DOCTYPE html>
<html><body style="font-family:Arial,sans-serif;color:#222">
<p>Hello {{.PatientName}},</p>
<p><strong>{{.PharmacyName}}</strong> sent you a quotation for your prescription.</p>
<table cellpadding="6" cellspacing="0" border="1" style="border-collapse:collapse">
<tr style="background:#ebf0f5"><th align="left">Drug</th><th align="left">Quantity</th><th align="right">Price</th><th align="left">Notes</th></tr>
{{range .Items}}<tr><td>{{.Drug}}</td><td>{{.Quantity}}</td><td align="right">{{.Price}}</td><td>{{.Notes}}</td></tr>
{{end}}<tr><td colspan="2" align="right">Delivery fee</td><td align="right">{{.DeliveryFee}}</td><td></td></tr>
<tr><td colspan="2" align="right"><strong>Total</strong></td><td align="right"><strong>{{.Total}}</strong></td><td></td></tr>
</table>
{{if .EstimatedDelivery}}<p>Estimated delivery: {{.EstimatedDelivery}}</p>{{end}}
{{if .Notes}}<p>Notes: {{.Notes}}</p>{{end}}
<p>The full quotation is attached as a PDF.</p>
<p><a href="{{.Link}}">Review and accept the quotation</a></p>
</body></html>
`

const quoteDecidedText = `Hello {{.PharmacyName}},

{{.PatientName}} {{.Verb}} your quotation{{if .Total}} of {{.Total}}{{end}}.
{{if .Accepted}}
Please prepare the order for delivery to {{.DeliveryAddress}}{{if .PreferredDate}} on {{.PreferredDate}}{{end}}{{if .PreferredTimeSlot}} ({{.PreferredTimeSlot}}){{end}}.
Contact phone: {{.ContactPhone}}
{{end}}
Open your dashboard: {{.Link}}
`

const quoteDecidedHTML = `<!DOCTYPE html>
<html><body style="font-family:Arial,sans-serif;color:#222">
<p>Hello {{.PharmacyName}},</p>
<p>{{.PatientName}} <strong>{{.Verb}}</strong> your quotation{{if .Total}} of {{.Total}}{{end}}.</p>
{{if .Accepted}}<p>Please prepare the order for delivery to {{.DeliveryAddress}}{{if .PreferredDate}} on {{.PreferredDate}}{{end}}{{if .PreferredTimeSlot}} ({{.PreferredTimeSlot}}){{end}}.<br>
Contact phone: {{.ContactPhone}}</p>{{end}}
<p><a href="{{.Link}}">Open your dashboard</a></p>
</body></html>
`

type itemView struct {
	Drug     string
	Quantity string
	Price    string
	Notes    string
}

type quoteCreatedView struct {
	PatientName       string
	PharmacyName      string
	Items             []itemView
	DeliveryFee       string
	Total             string
	EstimatedDelivery string
	Notes             string
	Link              string
}

type quoteDecidedView struct {
	PharmacyName      string
	PatientName       string
	Verb              string
	Accepted          bool
	Total             string
	DeliveryAddress   string
	PreferredDate     string
	PreferredTimeSlot string
	ContactPhone      string
	Link              string
}

// TemplateRenderer renders the notification bodies. HTML output is escaped by html/template.
type TemplateRenderer struct {
	createdText *texttemplate.Template
	createdHTML *htmltemplate.Template
	decidedText *texttemplate.Template
	decidedHTML *htmltemplate.Template
}

var _ interfaces.IEmailRenderer = (*TemplateRenderer)(nil)

func NewTemplateRenderer() *TemplateRenderer {
	return &TemplateRenderer{
		createdText: texttemplate.Must(texttemplate.New("quote_created.txt").Parse(quoteCreatedText)),
		createdHTML: htmltemplate.Must(htmltemplate.New("quote_created.html").Parse(quoteCreatedHTML)),
		decidedText: texttemplate.Must(texttemplate.New("quote_decided.txt").Parse(quoteDecidedText)),
		decidedHTML: htmltemplate.Must(htmltemplate.New("quote_decided.html").Parse(quoteDecidedHTML)),
	}
}

func (r *TemplateRenderer) QuoteCreated(n entities.QuoteCreatedNotice) (entities.MailMessage, error) {
	view := quoteCreatedView{
		PatientName:       nameOr(n.Patient.Name, "there"),
		PharmacyName:      nameOr(n.Pharmacy.Name, "A pharmacy"),
		DeliveryFee:       n.Quote.DeliveryFee.StringFixed(2),
		Total:             n.Quote.DisplayTotal(),
		EstimatedDelivery: n.Quote.EstimatedDelivery,
		Notes:             n.Quote.Notes,
		Link:              n.ReviewLink(),
	}
	for _, it := range n.Quote.Items {
		view.Items = append(view.Items, itemView{
			Drug:     it.Drug,
			Quantity: it.Quantity,
			Price:    it.Price.StringFixed(2),
			Notes:    it.Notes,
		})
	}

	text, html, err := render(r.createdText, r.createdHTML, view)
	if err != nil {
		return entities.MailMessage{}, err
	}
	return entities.MailMessage{
		Subject: "New quotation from " + nameOr(n.Pharmacy.Name, "a pharmacy"),
		Text:    text,
		HTML:    html,
	}, nil
}

func (r *TemplateRenderer) QuoteDecided(n entities.QuoteDecidedNotice) (entities.MailMessage, error) {
	accepted := n.Status == entities.QuoteStatusAccepted
	verb := "declined"
	if accepted {
		verb = "accepted"
	}
	view := quoteDecidedView{
		PharmacyName:      nameOr(n.Pharmacy.Name, "there"),
		PatientName:       nameOr(n.Patient.Name, "The patient"),
		Verb:              verb,
		Accepted:          accepted,
		DeliveryAddress:   nameOr(n.Prescription.DeliveryAddress, n.Patient.Address),
		PreferredDate:     n.Prescription.PreferredDate,
		PreferredTimeSlot: n.Prescription.PreferredTimeSlot,
		ContactPhone:      nameOr(n.Prescription.ContactPhone, n.Patient.Phone),
		Link:              n.DashboardLink(),
	}
	if len(n.Quote.Items) > 0 || !n.Quote.DeliveryFee.IsZero() {
		view.Total = n.Quote.DisplayTotal()
	}

	text, html, err := render(r.decidedText, r.decidedHTML, view)
	if err != nil {
		return entities.MailMessage{}, err
	}
	return entities.MailMessage{
		Subject: "Your quotation was " + verb,
		Text:    text,
		HTML:    html,
	}, nil
}

func render(text *texttemplate.Template, html *htmltemplate.Template, data any) (string, string, error) {
	var tb, hb strings.Builder
	if err := text.Execute(&tb, data); err != nil {
		return "", "", err
	}
	if err := html.Execute(&hb, data); err != nil {
		return "", "", err
	}
	return tb.String(), hb.String(), nil
}

func nameOr(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
