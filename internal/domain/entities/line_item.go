package entities

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// LineItem is the canonical quote line: one drug, a free-text quantity and its line price.
type LineItem struct {
	Drug     string          `json:"drug"`
	Quantity string          `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Notes    string          `json:"notes,omitempty"`
}

// LineItemInput is an unvalidated line as submitted by a pharmacy. Price stays textual until
// NormalizeLineItems parses it.
type LineItemInput struct {
	Drug     string
	Quantity string
	Price    string
	Notes    string
}

// NormalizeLineItems trims the inputs and silently drops lines with an empty drug name, an
// empty quantity, or a price that is unparseable or negative.
func NormalizeLineItems(inputs []LineItemInput) []LineItem {
	items := make([]LineItem, 0, len(inputs))
	for _, in := range inputs {
		drug := strings.TrimSpace(in.Drug)
		qty := strings.TrimSpace(in.Quantity)
		if drug == "" || qty == "" {
			continue
		}
		price, err := decimal.NewFromString(strings.TrimSpace(in.Price))
		if err != nil || price.IsNegative() {
			continue
		}
		items = append(items, LineItem{
			Drug:     drug,
			Quantity: qty,
			Price:    price,
			Notes:    strings.TrimSpace(in.Notes),
		})
	}
	return items
}

// UnmarshalJSON accepts the canonical shape plus the legacy one that stored the price
// under "amount", as a JSON number or a numeric string.
func (li *LineItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		Drug     string          `json:"drug"`
		Quantity json.RawMessage `json:"quantity"`
		Price    json.RawMessage `json:"price"`
		Amount   json.RawMessage `json:"amount"`
		Notes    string          `json:"notes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	priceRaw := raw.Price
	if len(priceRaw) == 0 || string(priceRaw) == "null" {
		priceRaw = raw.Amount
	}
	price, err := decimalFromJSON(priceRaw)
	if err != nil {
		return err
	}

	*li = LineItem{
		Drug:     raw.Drug,
		Quantity: TextFromJSON(raw.Quantity),
		Price:    price,
		Notes:    raw.Notes,
	}
	return nil
}

func decimalFromJSON(raw json.RawMessage) (decimal.Decimal, error) {
	text := TextFromJSON(raw)
	if text == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(text)
}

// TextFromJSON renders a JSON scalar (string or number) as plain text. Other values yield "".
func TextFromJSON(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}
