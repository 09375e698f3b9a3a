package database

import (
	"context"
	"errors"
	"fmt"

	"rxquote/internal/adapter/persistence/repository"
	"rxquote/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// TableSpec describes a table keyed by a string "id" with string-keyed GSIs.
type TableSpec struct {
	Name    string
	Indexes map[string]string // index name -> partition attribute
}

func TableSpecs(cfg config.DynamoDBConfig) []TableSpec {
	return []TableSpec{
		{
			Name: cfg.PrescriptionsTable,
			Indexes: map[string]string{
				repository.PrescriptionPatientIndex: "patient_id",
				repository.PrescriptionStatusIndex:  "status",
			},
		},
		{
			Name: cfg.QuotesTable,
			Indexes: map[string]string{
				repository.QuotePrescriptionIndex: "prescription_id",
				repository.QuotePharmacyIndex:     "pharmacy_id",
			},
		},
		{Name: cfg.ProfilesTable},
	}
}

// CreateTableInput renders the on-demand table definition for spec.
func (s TableSpec) CreateTableInput() *dynamodb.CreateTableInput {
	attrs := []types.AttributeDefinition{
		{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
	}
	seen := map[string]bool{"id": true}
	var gsis []types.GlobalSecondaryIndex
	for index, attr := range s.Indexes {
		if !seen[attr] {
			attrs = append(attrs, types.AttributeDefinition{AttributeName: aws.String(attr), AttributeType: types.ScalarAttributeTypeS})
			seen[attr] = true
		}
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName: aws.String(index),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(attr), KeyType: types.KeyTypeHash},
			},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	return &dynamodb.CreateTableInput{
		TableName:              aws.String(s.Name),
		AttributeDefinitions:   attrs,
		KeySchema:              []types.KeySchemaElement{{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash}},
		GlobalSecondaryIndexes: gsis,
		BillingMode:            types.BillingModePayPerRequest,
	}
}

// EnsureTables creates missing tables. Existing tables are left untouched.
func EnsureTables(ctx context.Context, ddb *dynamodb.Client, cfg config.DynamoDBConfig, log *zap.Logger) error {
	for _, spec := range TableSpecs(cfg) {
		_, err := ddb.CreateTable(ctx, spec.CreateTableInput())
		if err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				log.Info("table already exists", zap.String("table", spec.Name))
				continue
			}
			return fmt.Errorf("create table %s: %w", spec.Name, err)
		}
		log.Info("table created", zap.String("table", spec.Name))
	}
	return nil
}
