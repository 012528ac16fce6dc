package dynamodb_service

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamodb_types "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/ayushijadhav2006/smile-share/functions/gateway/helpers"
	internal_types "github.com/ayushijadhav2006/smile-share/functions/gateway/types"
)

var organizationsTableName = helpers.GetDbTableName(helpers.OrganizationsTablePrefix)

func init() {
	organizationsTableName = helpers.GetDbTableName(helpers.OrganizationsTablePrefix)
}

// OrganizationService is the concrete implementation of the OrganizationServiceInterface.
type OrganizationService struct{}

func NewOrganizationService() internal_types.OrganizationServiceInterface {
	return &OrganizationService{}
}

// GetOrganizationById returns (nil, nil) when the organization does not
// exist; the catalog loader substitutes a placeholder in that case.
func (s *OrganizationService) GetOrganizationById(ctx context.Context, dynamodbClient internal_types.DynamoDBAPI, ngoId string) (*internal_types.Organization, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(organizationsTableName),
		Key: map[string]dynamodb_types.AttributeValue{
			"id": &dynamodb_types.AttributeValueMemberS{Value: ngoId},
		},
	}

	result, err := dynamodbClient.GetItem(ctx, input)
	if err != nil {
		return nil, err
	}

	if len(result.Item) == 0 {
		return nil, nil
	}

	var organization internal_types.Organization
	err = attributevalue.UnmarshalMap(result.Item, &organization)
	if err != nil {
		return nil, err
	}

	return &organization, nil
}

func (s *OrganizationService) InsertOrganization(ctx context.Context, dynamodbClient internal_types.DynamoDBAPI, createOrganization internal_types.OrganizationInsert) (*internal_types.Organization, error) {
	if err := validate.Struct(createOrganization); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if createOrganization.Id == "" {
		createOrganization.Id = uuid.NewString()
	}

	newOrganization := internal_types.Organization{
		Id:       createOrganization.Id,
		NgoName:  createOrganization.NgoName,
		Rating:   createOrganization.Rating,
		Location: createOrganization.Location,
	}

	item, err := attributevalue.MarshalMap(newOrganization)
	if err != nil {
		return nil, err
	}

	if organizationsTableName == "" {
		return nil, fmt.Errorf("ERR: organizationsTableName is empty")
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(organizationsTableName),
		Item:      item,
	}

	_, err = dynamodbClient.PutItem(ctx, input)
	if err != nil {
		return nil, err
	}

	return &newOrganization, nil
}

type MockOrganizationService struct {
	GetOrganizationByIdFunc func(ctx context.Context, dynamodbClient internal_types.DynamoDBAPI, ngoId string) (*internal_types.Organization, error)
	InsertOrganizationFunc  func(ctx context.Context, dynamodbClient internal_types.DynamoDBAPI, organization internal_types.OrganizationInsert) (*internal_types.Organization, error)
}

func (m *MockOrganizationService) GetOrganizationById(ctx context.Context, dynamodbClient internal_types.DynamoDBAPI, ngoId string) (*internal_types.Organization, error) {
	return m.GetOrganizationByIdFunc(ctx, dynamodbClient, ngoId)
}

func (m *MockOrganizationService) InsertOrganization(ctx context.Context, dynamodbClient internal_types.DynamoDBAPI, organization internal_types.OrganizationInsert) (*internal_types.Organization, error) {
	return m.InsertOrganizationFunc(ctx, dynamodbClient, organization)
}
