package database

import (
	"testing"

	"rxquote/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableSpecs_CreateTableInput(t *testing.T) {
	specs := TableSpecs(config.DynamoDBConfig{
		PrescriptionsTable: "rx",
		QuotesTable:        "quotes",
		ProfilesTable:      "profiles",
	})
	require.Len(t, specs, 3)

	in := specs[1].CreateTableInput()
	assert.Equal(t, "quotes", aws.ToString(in.TableName))
	assert.Equal(t, types.BillingModePayPerRequest, in.BillingMode)
	assert.Len(t, in.GlobalSecondaryIndexes, 2)
	assert.Len(t, in.AttributeDefinitions, 3)

	profiles := specs[2].CreateTableInput()
	assert.Empty(t, profiles.GlobalSecondaryIndexes)
	assert.Len(t, profiles.AttributeDefinitions, 1)
}
