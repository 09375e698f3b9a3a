package entities

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestQuote_DisplayTotal(t *testing.T) {
	q := Quote{
		Items: []LineItem{
			{Drug: "Amoxicillin", Quantity: "1 box", Price: decimal.RequireFromString("12.50")},
		},
		DeliveryFee: decimal.RequireFromString("5.00"),
	}
	if got := q.DisplayTotal(); got != "17.50" {
		t.Fatalf("expected 17.50, got %s", got)
	}
}

func TestQuote_TotalKeepsPrecision(t *testing.T) {
	q := Quote{
		Items: []LineItem{
			{Drug: "a", Quantity: "1", Price: decimal.RequireFromString("0.105")},
			{Drug: "b", Quantity: "1", Price: decimal.RequireFromString("0.105")},
		},
		DeliveryFee: decimal.Zero,
	}
	if !q.Total().Equal(decimal.RequireFromString("0.21")) {
		t.Fatalf("expected 0.21, got %s", q.Total())
	}
	if got := q.DisplayTotal(); got != "0.21" {
		t.Fatalf("expected 0.21, got %s", got)
	}
}

func TestQuoteStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to QuoteStatus
		want     bool
	}{
		{QuoteStatusPending, QuoteStatusAccepted, true},
		{QuoteStatusPending, QuoteStatusRejected, true},
		{QuoteStatusPending, QuoteStatusCompleted, false},
		{QuoteStatusAccepted, QuoteStatusCompleted, true},
		{QuoteStatusAccepted, QuoteStatusRejected, false},
		{QuoteStatusRejected, QuoteStatusAccepted, false},
		{QuoteStatusCompleted, QuoteStatusPending, false},
		{QuoteStatus("bogus"), QuoteStatusAccepted, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Fatalf("%s -> %s: expected %v got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestQuoteDecision_Status(t *testing.T) {
	if DecisionAccept.Status() != QuoteStatusAccepted {
		t.Fatalf("accept should map to accepted")
	}
	if DecisionReject.Status() != QuoteStatusRejected {
		t.Fatalf("reject should map to rejected")
	}
	if QuoteDecision("maybe").IsValid() {
		t.Fatalf("unexpected valid decision")
	}
}

func TestNormalizeLineItems(t *testing.T) {
	items := NormalizeLineItems([]LineItemInput{
		{Drug: " Ibuprofen ", Quantity: "20 tabs", Price: "8.90"},
		{Drug: "", Quantity: "1", Price: "3"},
		{Drug: "Paracetamol", Quantity: "  ", Price: "3"},
		{Drug: "Vitamin C", Quantity: "1", Price: "-1"},
		{Drug: "Zinc", Quantity: "1", Price: "abc"},
		{Drug: "Saline", Quantity: "2", Price: "0", Notes: " cold "},
	})
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d: %+v", len(items), items)
	}
	if items[0].Drug != "Ibuprofen" || !items[0].Price.Equal(decimal.RequireFromString("8.9")) {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[1].Notes != "cold" || !items[1].Price.IsZero() {
		t.Fatalf("unexpected second item: %+v", items[1])
	}
}

func TestLineItem_UnmarshalJSON(t *testing.T) {
	t.Run("canonical price number", func(t *testing.T) {
		var li LineItem
		if err := json.Unmarshal([]byte(`{"drug":"A","quantity":"2","price":12.5}`), &li); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !li.Price.Equal(decimal.RequireFromString("12.5")) || li.Quantity != "2" {
			t.Fatalf("unexpected item: %+v", li)
		}
	})

	t.Run("legacy amount string", func(t *testing.T) {
		var li LineItem
		if err := json.Unmarshal([]byte(`{"drug":"A","quantity":3,"amount":"4.75"}`), &li); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !li.Price.Equal(decimal.RequireFromString("4.75")) || li.Quantity != "3" {
			t.Fatalf("unexpected item: %+v", li)
		}
	})

	t.Run("price wins over amount", func(t *testing.T) {
		var li LineItem
		if err := json.Unmarshal([]byte(`{"drug":"A","quantity":"1","price":"1","amount":"9"}`), &li); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !li.Price.Equal(decimal.NewFromInt(1)) {
			t.Fatalf("expected price 1, got %s", li.Price)
		}
	})

	t.Run("bad price", func(t *testing.T) {
		var li LineItem
		if err := json.Unmarshal([]byte(`{"drug":"A","quantity":"1","price":"x"}`), &li); err == nil {
			t.Fatalf("expected error")
		}
	})
}
