package entities

import "testing"

func TestNoticeLinks(t *testing.T) {
	created := QuoteCreatedNotice{Prescription: Prescription{ID: "rx 1"}, Origin: "https://app.example"}
	if got := created.ReviewLink(); got != "https://app.example/patient/quotations?prescription=rx+1" {
		t.Fatalf("unexpected review link %q", got)
	}
	decided := QuoteDecidedNotice{Origin: "https://app.example"}
	if got := decided.DashboardLink(); got != "https://app.example/pharmacy/dashboard" {
		t.Fatalf("unexpected dashboard link %q", got)
	}
}
