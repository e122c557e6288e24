package repository

import (
	"context"
	"fmt"
	"log"
	"strings"

	"mpesa_c2b/internal/domain/entities"
	"mpesa_c2b/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCredentialsTableName = "gateway_credentials"

// DynamoDBGetItemAPI is the slice of *dynamodb.Client the repository needs.
type DynamoDBGetItemAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

type credentialsItem struct {
	Environment         string `dynamodbav:"environment"`
	APIKey              string `dynamodbav:"api_key"`
	PublicKey           string `dynamodbav:"public_key"`
	ServiceProviderCode string `dynamodbav:"short_code"`
	Origin              string `dynamodbav:"origin"`
	APIHost             string `dynamodbav:"api_host"`
}

// CredentialsDynamoRepository reads gateway credentials from DynamoDB.
//
// Table requirements:
//   - PK: environment (string), one item per environment ("prod", "test")
//
// Any environment other than "prod" reads the "test" item.
type CredentialsDynamoRepository struct {
	ddb       DynamoDBGetItemAPI
	tableName string
}

var _ interfaces.ICredentialsProvider = (*CredentialsDynamoRepository)(nil)

func NewCredentialsDynamoRepository(ddb DynamoDBGetItemAPI, tableName string) *CredentialsDynamoRepository {
	if strings.TrimSpace(tableName) == "" {
		tableName = defaultCredentialsTableName
	}
	return &CredentialsDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CredentialsDynamoRepository) Load(ctx context.Context, environment string) (entities.Credentials, error) {
	key := entities.EnvironmentTest
	if strings.EqualFold(strings.TrimSpace(environment), entities.EnvironmentProduction) {
		key = entities.EnvironmentProduction
	}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"environment": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		log.Printf("[config][dynamodb] get credentials failed table=%s environment=%s err=%v", r.tableName, key, err)
		return entities.Credentials{}, err
	}
	if len(out.Item) == 0 {
		log.Printf("[config][dynamodb] credentials not found table=%s environment=%s", r.tableName, key)
		return entities.Credentials{}, fmt.Errorf("%w: no item for environment %q", entities.ErrMissingCredential, key)
	}

	var it credentialsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Credentials{}, err
	}

	creds := fromCredentialsItem(it)
	if err := creds.Validate(); err != nil {
		log.Printf("[config][dynamodb] credentials incomplete environment=%s err=%v", key, err)
		return entities.Credentials{}, err
	}
	log.Printf("[config][dynamodb] credentials loaded environment=%s creds=%s", key, creds)
	return creds, nil
}

func fromCredentialsItem(it credentialsItem) entities.Credentials {
	return entities.Credentials{
		APIKey:              strings.TrimSpace(it.APIKey),
		PublicKey:           strings.TrimSpace(it.PublicKey),
		ServiceProviderCode: strings.TrimSpace(it.ServiceProviderCode),
		Origin:              strings.TrimSpace(it.Origin),
		APIHost:             strings.TrimSpace(it.APIHost),
	}
}
