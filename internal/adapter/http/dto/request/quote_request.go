package request

import (
	"encoding/json"

	"rxquote/internal/domain/entities"
	"rxquote/internal/usecase"
)

// QuoteItemRequest keeps numeric fields raw so numbers and numeric strings are both accepted.
// Legacy clients send the line price as "amount".
type QuoteItemRequest struct {
	Drug     string          `json:"drug"`
	Quantity json.RawMessage `json:"quantity" swaggertype:"string"`
	Price    json.RawMessage `json:"price" swaggertype:"string"`
	Amount   json.RawMessage `json:"amount,omitempty" swaggertype:"string"`
	Notes    string          `json:"notes"`
}

func (r QuoteItemRequest) ToInput() entities.LineItemInput {
	price := entities.TextFromJSON(r.Price)
	if price == "" {
		price = entities.TextFromJSON(r.Amount)
	}
	return entities.LineItemInput{
		Drug:     r.Drug,
		Quantity: entities.TextFromJSON(r.Quantity),
		Price:    price,
		Notes:    r.Notes,
	}
}

func ToLineItemInputs(items []QuoteItemRequest) []entities.LineItemInput {
	inputs := make([]entities.LineItemInput, 0, len(items))
	for _, it := range items {
		inputs = append(inputs, it.ToInput())
	}
	return inputs
}

type SubmitQuoteRequest struct {
	Items             []QuoteItemRequest `json:"items"`
	DeliveryFee       json.RawMessage    `json:"delivery_fee" swaggertype:"string"`
	EstimatedDelivery string             `json:"estimated_delivery"`
	Notes             string             `json:"notes"`
}

func (r SubmitQuoteRequest) ToCommand(prescriptionID, pharmacyID string) usecase.SubmitQuoteCommand {
	return usecase.SubmitQuoteCommand{
		PrescriptionID:    prescriptionID,
		PharmacyID:        pharmacyID,
		Items:             ToLineItemInputs(r.Items),
		DeliveryFee:       entities.TextFromJSON(r.DeliveryFee),
		EstimatedDelivery: r.EstimatedDelivery,
		Notes:             r.Notes,
	}
}
