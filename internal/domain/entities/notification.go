package entities

import "net/url"

// MailAttachment is a binary file attached to an outbound email.
type MailAttachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// MailMessage is the outbound email contract handed to the mail transport.
type MailMessage struct {
	To          string
	Subject     string
	Text        string
	HTML        string
	Attachments []MailAttachment
}

// QuoteCreatedNotice carries what the patient needs to review a new quote.
type QuoteCreatedNotice struct {
	Quote        Quote
	Prescription Prescription
	Patient      Contact
	Pharmacy     Contact
	Origin       string
}

// QuoteDecidedNotice tells a pharmacy how the patient answered its quote.
type QuoteDecidedNotice struct {
	Quote        Quote
	Prescription Prescription
	Pharmacy     Contact
	Patient      Contact
	Status       QuoteStatus
	Origin       string
}

// ReviewLink is where the patient compares quotes for the prescription.
func (n QuoteCreatedNotice) ReviewLink() string {
	return n.Origin + "/patient/quotations?prescription=" + url.QueryEscape(n.Prescription.ID)
}

// DashboardLink is the pharmacy landing page.
func (n QuoteDecidedNotice) DashboardLink() string {
	return n.Origin + "/pharmacy/dashboard"
}
