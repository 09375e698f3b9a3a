package repository

import (
	"context"
	"fmt"
	"time"

	"rxquote/internal/domain/entities"
	"rxquote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultQuotesTableName = "quotes"

	QuotePrescriptionIndex = "prescription_id-index"
	QuotePharmacyIndex     = "pharmacy_id-index"
)

// flexNumber accepts numbers stored either as N or S attributes.
type flexNumber string

func (n *flexNumber) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		*n = flexNumber(v.Value)
	case *types.AttributeValueMemberS:
		*n = flexNumber(v.Value)
	default:
		*n = ""
	}
	return nil
}

type lineItemItem struct {
	Drug     string     `dynamodbav:"drug"`
	Quantity flexNumber `dynamodbav:"quantity"`
	Price    flexNumber `dynamodbav:"price,omitempty"`
	// Amount is the legacy price key; it is read but never written.
	Amount flexNumber `dynamodbav:"amount,omitempty"`
	Notes  string     `dynamodbav:"notes,omitempty"`
}

type quoteItem struct {
	ID                string         `dynamodbav:"id"`
	PharmacyID        string         `dynamodbav:"pharmacy_id"`
	PrescriptionID    string         `dynamodbav:"prescription_id"`
	Items             []lineItemItem `dynamodbav:"items"`
	DeliveryFee       flexNumber     `dynamodbav:"delivery_fee"`
	EstimatedDelivery string         `dynamodbav:"estimated_delivery"`
	Notes             string         `dynamodbav:"notes"`
	Status            string         `dynamodbav:"status"`
	AcceptedAt        string         `dynamodbav:"accepted_at,omitempty"`
	RejectedAt        string         `dynamodbav:"rejected_at,omitempty"`
	CompletedAt       string         `dynamodbav:"completed_at,omitempty"`
	CreatedAt         string         `dynamodbav:"created_at"`
	UpdatedAt         string         `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI prescription_id-index: prescription_id (string)
//   - GSI pharmacy_id-index: pharmacy_id (string)
//
// One quote per (prescription, pharmacy) is enforced with a guard item written in the
// same transaction as the quote. Guard items carry only an id, so they never show up in
// the GSIs.
type QuoteDynamoRepository struct {
	ddb                *dynamodb.Client
	tableName          string
	prescriptionsTable string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client, tableName, prescriptionsTable string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:                ddb,
		tableName:          tableOrDefault(tableName, defaultQuotesTableName),
		prescriptionsTable: tableOrDefault(prescriptionsTable, defaultPrescriptionsTableName),
	}
}

func guardID(prescriptionID, pharmacyID string) string {
	return "guard#" + prescriptionID + "#" + pharmacyID
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}
	notExists := map[string]string{"#id": "id"}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName: aws.String(r.tableName),
				Item: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: guardID(q.PrescriptionID, q.PharmacyID)},
				},
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: notExists,
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: notExists,
			}},
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Quote{}, interfaces.ErrDuplicateQuote
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	if it.PrescriptionID == "" {
		// guard item
		return entities.Quote{}, nil
	}
	return fromQuoteItem(it)
}

func (r *QuoteDynamoRepository) ListByPrescription(ctx context.Context, prescriptionID string) ([]entities.Quote, error) {
	items, err := queryIndex[quoteItem](ctx, r.ddb, r.tableName, QuotePrescriptionIndex, "prescription_id", prescriptionID)
	if err != nil {
		return nil, err
	}
	return fromQuoteItems(items)
}

func (r *QuoteDynamoRepository) ListByPharmacy(ctx context.Context, pharmacyID string) ([]entities.Quote, error) {
	items, err := queryIndex[quoteItem](ctx, r.ddb, r.tableName, QuotePharmacyIndex, "pharmacy_id", pharmacyID)
	if err != nil {
		return nil, err
	}
	return fromQuoteItems(items)
}

func (r *QuoteDynamoRepository) Decide(ctx context.Context, quoteID string, status entities.QuoteStatus, at time.Time) (entities.Quote, error) {
	now := formatTime(at)
	if status != entities.QuoteStatusAccepted {
		return r.transition(ctx, quoteID, entities.QuoteStatusPending, status, "rejected_at", now)
	}

	current, err := r.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if current.ID == "" {
		return entities.Quote{}, nil
	}

	_, err = r.ddb.TransactWriteItems(ctx, r.acceptTransaction(quoteID, current.PrescriptionID, now))
	if err != nil {
		if isConditionFailed(err) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	return r.GetByID(ctx, quoteID)
}

// acceptTransaction moves the quote from pending to accepted and closes its prescription.
// Either condition failing cancels both writes.
func (r *QuoteDynamoRepository) acceptTransaction(quoteID, prescriptionID, now string) *dynamodb.TransactWriteItemsInput {
	return &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: r.statusUpdate(quoteID, entities.QuoteStatusPending, entities.QuoteStatusAccepted, "accepted_at", now)},
			{Update: completePrescriptionUpdate(r.prescriptionsTable, prescriptionID, now)},
		},
	}
}

func (r *QuoteDynamoRepository) Complete(ctx context.Context, quoteID string, at time.Time) (entities.Quote, error) {
	return r.transition(ctx, quoteID, entities.QuoteStatusAccepted, entities.QuoteStatusCompleted, "completed_at", formatTime(at))
}

func (r *QuoteDynamoRepository) statusUpdate(id string, from, to entities.QuoteStatus, stampAttr, now string) *types.Update {
	return &types.Update{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("#status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #stamp = :now, #updated_at = :now"),
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#status": "status", "#updated_at": "updated_at"},
			map[string]string{"#stamp": stampAttr},
		),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(from)},
			":to":   &types.AttributeValueMemberS{Value: string(to)},
			":now":  &types.AttributeValueMemberS{Value: now},
		},
	}
}

func (r *QuoteDynamoRepository) transition(ctx context.Context, id string, from, to entities.QuoteStatus, stampAttr, now string) (entities.Quote, error) {
	u := r.statusUpdate(id, from, to, stampAttr, now)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 u.TableName,
		Key:                       u.Key,
		ConditionExpression:       u.ConditionExpression,
		UpdateExpression:          u.UpdateExpression,
		ExpressionAttributeNames:  u.ExpressionAttributeNames,
		ExpressionAttributeValues: u.ExpressionAttributeValues,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it)
}

func toQuoteItem(q entities.Quote) quoteItem {
	items := make([]lineItemItem, 0, len(q.Items))
	for _, li := range q.Items {
		items = append(items, lineItemItem{
			Drug:     li.Drug,
			Quantity: flexNumber(li.Quantity),
			Price:    flexNumber(li.Price.String()),
			Notes:    li.Notes,
		})
	}
	return quoteItem{
		ID:                q.ID,
		PharmacyID:        q.PharmacyID,
		PrescriptionID:    q.PrescriptionID,
		Items:             items,
		DeliveryFee:       flexNumber(q.DeliveryFee.String()),
		EstimatedDelivery: q.EstimatedDelivery,
		Notes:             q.Notes,
		Status:            string(q.Status),
		AcceptedAt:        formatOptionalTime(q.AcceptedAt),
		RejectedAt:        formatOptionalTime(q.RejectedAt),
		CompletedAt:       formatOptionalTime(q.CompletedAt),
		CreatedAt:         formatTime(q.CreatedAt),
		UpdatedAt:         formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) (entities.Quote, error) {
	items := make([]entities.LineItem, 0, len(it.Items))
	for i, li := range it.Items {
		raw := li.Price
		if raw == "" {
			raw = li.Amount
		}
		price, err := parseAmount(raw)
		if err != nil {
			return entities.Quote{}, fmt.Errorf("quote %s: parse item %d price: %w", it.ID, i, err)
		}
		items = append(items, entities.LineItem{
			Drug:     li.Drug,
			Quantity: string(li.Quantity),
			Price:    price,
			Notes:    li.Notes,
		})
	}
	fee, err := parseAmount(it.DeliveryFee)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("quote %s: parse delivery fee: %w", it.ID, err)
	}
	return entities.Quote{
		ID:                it.ID,
		PharmacyID:        it.PharmacyID,
		PrescriptionID:    it.PrescriptionID,
		Items:             items,
		DeliveryFee:       fee,
		EstimatedDelivery: it.EstimatedDelivery,
		Notes:             it.Notes,
		Status:            entities.QuoteStatus(it.Status),
		AcceptedAt:        parseOptionalTime(it.AcceptedAt),
		RejectedAt:        parseOptionalTime(it.RejectedAt),
		CompletedAt:       parseOptionalTime(it.CompletedAt),
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}, nil
}

// parseAmount reads a stored money value. A missing attribute is zero; anything else
// must be a plain decimal.
func parseAmount(raw flexNumber) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(string(raw))
}

func fromQuoteItems(items []quoteItem) ([]entities.Quote, error) {
	out := make([]entities.Quote, 0, len(items))
	for _, it := range items {
		q, err := fromQuoteItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}
