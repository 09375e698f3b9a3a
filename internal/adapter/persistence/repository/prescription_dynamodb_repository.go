package repository

import (
	"context"

	"rxquote/internal/domain/entities"
	"rxquote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPrescriptionsTableName = "prescriptions"

	PrescriptionPatientIndex = "patient_id-index"
	PrescriptionStatusIndex  = "status-index"
)

type fileItem struct {
	Path string `dynamodbav:"path"`
	Name string `dynamodbav:"name"`
}

type prescriptionItem struct {
	ID                string     `dynamodbav:"id"`
	PatientID         string     `dynamodbav:"patient_id"`
	Note              string     `dynamodbav:"note"`
	DeliveryAddress   string     `dynamodbav:"delivery_address"`
	ContactPhone      string     `dynamodbav:"contact_phone"`
	PreferredDate     string     `dynamodbav:"preferred_date"`
	PreferredTimeSlot string     `dynamodbav:"preferred_time_slot"`
	Files             []fileItem `dynamodbav:"files"`
	Status            string     `dynamodbav:"status"`
	CreatedAt         string     `dynamodbav:"created_at"`
	UpdatedAt         string     `dynamodbav:"updated_at"`
}

// PrescriptionDynamoRepository persists Prescription entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI patient_id-index: patient_id (string)
//   - GSI status-index: status (string)
type PrescriptionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPrescriptionRepository = (*PrescriptionDynamoRepository)(nil)

func NewPrescriptionDynamoRepository(ddb *dynamodb.Client, tableName string) *PrescriptionDynamoRepository {
	return &PrescriptionDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultPrescriptionsTableName),
	}
}

func (r *PrescriptionDynamoRepository) Create(ctx context.Context, p entities.Prescription) (entities.Prescription, error) {
	av, err := attributevalue.MarshalMap(toPrescriptionItem(p))
	if err != nil {
		return entities.Prescription{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Prescription{}, err
	}
	return p, nil
}

func (r *PrescriptionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Prescription, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Prescription{}, err
	}
	if len(out.Item) == 0 {
		return entities.Prescription{}, nil
	}

	var it prescriptionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Prescription{}, err
	}
	return fromPrescriptionItem(it), nil
}

func (r *PrescriptionDynamoRepository) ListByPatient(ctx context.Context, patientID string) ([]entities.Prescription, error) {
	items, err := queryIndex[prescriptionItem](ctx, r.ddb, r.tableName, PrescriptionPatientIndex, "patient_id", patientID)
	if err != nil {
		return nil, err
	}
	return fromPrescriptionItems(items), nil
}

func (r *PrescriptionDynamoRepository) ListByStatus(ctx context.Context, status entities.PrescriptionStatus) ([]entities.Prescription, error) {
	items, err := queryIndex[prescriptionItem](ctx, r.ddb, r.tableName, PrescriptionStatusIndex, "status", string(status))
	if err != nil {
		return nil, err
	}
	return fromPrescriptionItems(items), nil
}

// completePrescriptionUpdate is the prescription half of the accept transaction.
func completePrescriptionUpdate(table, id, now string) *types.Update {
	return &types.Update{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("#status = :pending"),
		UpdateExpression:    aws.String("SET #status = :completed, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":    &types.AttributeValueMemberS{Value: string(entities.PrescriptionStatusPending)},
			":completed":  &types.AttributeValueMemberS{Value: string(entities.PrescriptionStatusCompleted)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
	}
}

func toPrescriptionItem(p entities.Prescription) prescriptionItem {
	files := make([]fileItem, 0, len(p.Files))
	for _, f := range p.Files {
		files = append(files, fileItem{Path: f.Path, Name: f.Name})
	}
	return prescriptionItem{
		ID:                p.ID,
		PatientID:         p.PatientID,
		Note:              p.Note,
		DeliveryAddress:   p.DeliveryAddress,
		ContactPhone:      p.ContactPhone,
		PreferredDate:     p.PreferredDate,
		PreferredTimeSlot: p.PreferredTimeSlot,
		Files:             files,
		Status:            string(p.Status),
		CreatedAt:         formatTime(p.CreatedAt),
		UpdatedAt:         formatTime(p.UpdatedAt),
	}
}

func fromPrescriptionItem(it prescriptionItem) entities.Prescription {
	files := make([]entities.FileRef, 0, len(it.Files))
	for _, f := range it.Files {
		files = append(files, entities.FileRef{Path: f.Path, Name: f.Name})
	}
	status := entities.PrescriptionStatus(it.Status)
	if status == "" {
		status = entities.PrescriptionStatusPending
	}
	return entities.Prescription{
		ID:                it.ID,
		PatientID:         it.PatientID,
		Note:              it.Note,
		DeliveryAddress:   it.DeliveryAddress,
		ContactPhone:      it.ContactPhone,
		PreferredDate:     it.PreferredDate,
		PreferredTimeSlot: it.PreferredTimeSlot,
		Files:             files,
		Status:            status,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}

func fromPrescriptionItems(items []prescriptionItem) []entities.Prescription {
	out := make([]entities.Prescription, 0, len(items))
	for _, it := range items {
		out = append(out, fromPrescriptionItem(it))
	}
	return out
}
