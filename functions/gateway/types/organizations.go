package types

import "context"

// Organization is the NGO summary attached to activities for display and
// rating lookups. Rating is nil for unrated organizations.
type Organization struct {
	Id       string   `json:"id" dynamodbav:"id"`
	NgoName  string   `json:"ngoName" dynamodbav:"ngoName"`
	Rating   *float64 `json:"rating,omitempty" dynamodbav:"rating,omitempty"`
	Location string   `json:"location,omitempty" dynamodbav:"location"`
}

type OrganizationInsert struct {
	Id       string   `json:"id,omitempty" dynamodbav:"id"`
	NgoName  string   `json:"ngoName" dynamodbav:"ngoName" validate:"required"`
	Rating   *float64 `json:"rating,omitempty" dynamodbav:"rating,omitempty"`
	Location string   `json:"location,omitempty" dynamodbav:"location"`
}

type OrganizationServiceInterface interface {
	GetOrganizationById(ctx context.Context, dynamodbClient DynamoDBAPI, ngoId string) (*Organization, error)
	InsertOrganization(ctx context.Context, dynamodbClient DynamoDBAPI, organization OrganizationInsert) (*Organization, error)
}
