package dynamodb_service

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamodb_types "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"github.com/ayushijadhav2006/smile-share/functions/gateway/helpers"
	internal_types "github.com/ayushijadhav2006/smile-share/functions/gateway/types"
)

var validate *validator.Validate = validator.New()

var activitiesTableName = helpers.GetDbTableName(helpers.ActivitiesTablePrefix)

func init() {
	activitiesTableName = helpers.GetDbTableName(helpers.ActivitiesTablePrefix)
}

// ActivityService is the concrete implementation of the ActivityServiceInterface.
type ActivityService struct{}

func NewActivityService() internal_types.ActivityServiceInterface {
	return &ActivityService{}
}

func (s *ActivityService) GetActivities(ctx context.Context, dynamodbClient internal_types.DynamoDBAPI) ([]internal_types.Activity, error) {
	activities := make([]internal_types.Activity, 0)
	var token map[string]dynamodb_types.AttributeValue

	for {
		input := &dynamodb.ScanInput{
			TableName:         aws.String(activitiesTableName),
			ExclusiveStartKey: token,
		}

		result, err := dynamodbClient.Scan(ctx, input)
		if err != nil {
			return nil, err
		}

		var fetchedActivities []internal_types.Activity
		err = attributevalue.UnmarshalListOfMaps(result.Items, &fetchedActivities)
		if err != nil {
			return nil, err
		}

		activities = append(activities, fetchedActivities...)
		token = result.LastEvaluatedKey
		if token == nil {
			break
		}
	}
	return activities, nil
}

func (s *ActivityService) GetActivityById(ctx context.Context, dynamodbClient internal_types.DynamoDBAPI, activityId string) (*internal_types.Activity, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(activitiesTableName),
		Key: map[string]dynamodb_types.AttributeValue{
			"id": &dynamodb_types.AttributeValueMemberS{Value: activityId},
		},
	}

	result, err := dynamodbClient.GetItem(ctx, input)
	if err != nil {
		return nil, err
	}

	if len(result.Item) == 0 {
		return nil, fmt.Errorf("activity not found")
	}

	var activity internal_types.Activity
	err = attributevalue.UnmarshalMap(result.Item, &activity)
	if err != nil {
		return nil, err
	}

	return &activity, nil
}

func (s *ActivityService) InsertActivity(ctx context.Context, dynamodbClient internal_types.DynamoDBAPI, createActivity internal_types.ActivityInsert) (*internal_types.Activity, error) {
	if err := validate.Struct(createActivity); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if createActivity.Id == "" {
		createActivity.Id = uuid.NewString()
	}
	if createActivity.ParticipationFormStatus == "" {
		createActivity.ParticipationFormStatus = internal_types.FormStatusAccepting
	}

	newActivity := internal_types.Activity{
		Id:                      createActivity.Id,
		EventName:               createActivity.EventName,
		ShortDescription:        createActivity.ShortDescription,
		EventDate:               createActivity.EventDate,
		Category:                createActivity.Category,
		Location:                createActivity.Location,
		NgoId:                   createActivity.NgoId,
		NgoRating:               createActivity.NgoRating,
		AcceptingParticipants:   createActivity.AcceptingParticipants,
		ParticipationFormStatus: createActivity.ParticipationFormStatus,
	}

	item, err := attributevalue.MarshalMap(newActivity)
	if err != nil {
		return nil, err
	}

	if activitiesTableName == "" {
		return nil, fmt.Errorf("ERR: activitiesTableName is empty")
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(activitiesTableName),
		Item:      item,
	}

	_, err = dynamodbClient.PutItem(ctx, input)
	if err != nil {
		return nil, err
	}

	return &newActivity, nil
}

// IncrementParticipantCount bumps noOfParticipants by one, guarded so a full
// or closed activity can never exceed its capacity through a write race.
func (s *ActivityService) IncrementParticipantCount(ctx context.Context, dynamodbClient internal_types.DynamoDBAPI, activityId string) (*internal_types.Activity, error) {
	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(activitiesTableName),
		Key: map[string]dynamodb_types.AttributeValue{
			"id": &dynamodb_types.AttributeValueMemberS{Value: activityId},
		},
		UpdateExpression:    aws.String("ADD #count :one"),
		ConditionExpression: aws.String("#count < #capacity AND #status = :accepting"),
		ExpressionAttributeNames: map[string]string{
			"#count":    "noOfParticipants",
			"#capacity": "acceptingParticipants",
			"#status":   "participationFormStatus",
		},
		ExpressionAttributeValues: map[string]dynamodb_types.AttributeValue{
			":one":       &dynamodb_types.AttributeValueMemberN{Value: "1"},
			":accepting": &dynamodb_types.AttributeValueMemberS{Value: internal_types.FormStatusAccepting},
		},
		ReturnValues: dynamodb_types.ReturnValueAllNew,
	}

	res, err := dynamodbClient.UpdateItem(ctx, input)
	if err != nil {
		return nil, err
	}

	var updatedActivity internal_types.Activity
	err = attributevalue.UnmarshalMap(res.Attributes, &updatedActivity)
	if err != nil {
		return nil, err
	}

	return &updatedActivity, nil
}

type MockActivityService struct {
	GetActivitiesFunc             func(ctx context.Context, dynamodbClient internal_types.DynamoDBAPI) ([]internal_types.Activity, error)
	GetActivityByIdFunc           func(ctx context.Context, dynamodbClient internal_types.DynamoDBAPI, activityId string) (*internal_types.Activity, error)
	InsertActivityFunc            func(ctx context.Context, dynamodbClient internal_types.DynamoDBAPI, activity internal_types.ActivityInsert) (*internal_types.Activity, error)
	IncrementParticipantCountFunc func(ctx context.Context, dynamodbClient internal_types.DynamoDBAPI, activityId string) (*internal_types.Activity, error)
}

func (m *MockActivityService) GetActivities(ctx context.Context, dynamodbClient internal_types.DynamoDBAPI) ([]internal_types.Activity, error) {
	return m.GetActivitiesFunc(ctx, dynamodbClient)
}

func (m *MockActivityService) GetActivityById(ctx context.Context, dynamodbClient internal_types.DynamoDBAPI, activityId string) (*internal_types.Activity, error) {
	return m.GetActivityByIdFunc(ctx, dynamodbClient, activityId)
}

func (m *MockActivityService) InsertActivity(ctx context.Context, dynamodbClient internal_types.DynamoDBAPI, activity internal_types.ActivityInsert) (*internal_types.Activity, error) {
	return m.InsertActivityFunc(ctx, dynamodbClient, activity)
}

func (m *MockActivityService) IncrementParticipantCount(ctx context.Context, dynamodbClient internal_types.DynamoDBAPI, activityId string) (*internal_types.Activity, error) {
	return m.IncrementParticipantCountFunc(ctx, dynamodbClient, activityId)
}
