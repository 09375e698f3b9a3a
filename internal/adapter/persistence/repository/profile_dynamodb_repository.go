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

const defaultProfilesTableName = "profiles"

type profileItem struct {
	ID            string `dynamodbav:"id"`
	Role          string `dynamodbav:"role"`
	DisplayName   string `dynamodbav:"display_name"`
	Email         string `dynamodbav:"email"`
	Phone         string `dynamodbav:"phone"`
	Address       string `dynamodbav:"address"`
	LicenseNumber string `dynamodbav:"license_number"`
	DateOfBirth   string `dynamodbav:"date_of_birth"`
}

// ProfileDynamoRepository reads user profiles written by the account service.
//
// Table requirements:
//   - PK: id (string)
type ProfileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProfileRepository = (*ProfileDynamoRepository)(nil)

func NewProfileDynamoRepository(ddb *dynamodb.Client, tableName string) *ProfileDynamoRepository {
	return &ProfileDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultProfilesTableName)}
}

func (r *ProfileDynamoRepository) GetByID(ctx context.Context, id string) (entities.Profile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Profile{}, err
	}
	if len(out.Item) == 0 {
		return entities.Profile{}, nil
	}

	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Profile{}, err
	}
	return entities.Profile{
		ID:            it.ID,
		Role:          entities.Role(it.Role),
		DisplayName:   it.DisplayName,
		Email:         it.Email,
		Phone:         it.Phone,
		Address:       it.Address,
		LicenseNumber: it.LicenseNumber,
		DateOfBirth:   it.DateOfBirth,
	}, nil
}
