package dynamodb_service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamodb_types "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/ayushijadhav2006/smile-share/functions/gateway/helpers"
	internal_types "github.com/ayushijadhav2006/smile-share/functions/gateway/types"
)

// ErrAlreadyRegistered is returned when the same user submits the
// registration form for the same activity twice.
var ErrAlreadyRegistered = errors.New("user has already registered for this activity")

var participantsTableName = helpers.GetDbTableName(helpers.ParticipantsTablePrefix)

func init() {
	participantsTableName = helpers.GetDbTableName(helpers.ParticipantsTablePrefix)
}

// ParticipantService is the concrete implementation of the ParticipantServiceInterface.
type ParticipantService struct{}

func NewParticipantService() internal_types.ParticipantServiceInterface {
	return &ParticipantService{}
}

func (s *ParticipantService) InsertParticipant(ctx context.Context, dynamodbClient internal_types.DynamoDBAPI, participant internal_types.ParticipantInsert, activityId, userId string) (*internal_types.Participant, error) {
	if err := validate.Struct(participant); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Anonymous users get a timestamped id so repeated anonymous submissions
	// never collide on the composite key.
	if userId == "anonymous" {
		userId = fmt.Sprintf("%d-anonymous", time.Now().Unix())
	}

	newParticipant := internal_types.Participant{
		ActivityId:   activityId,
		UserId:       userId,
		NgoId:        participant.NgoId,
		Name:         participant.Name,
		Email:        participant.Email,
		Phone:        participant.Phone,
		Attendance:   false,
		SubmissionId: activityId + userId,
		SubmittedAt:  time.Now(),
	}

	item, err := attributevalue.MarshalMap(newParticipant)
	if err != nil {
		return nil, err
	}

	if participantsTableName == "" {
		return nil, fmt.Errorf("ERR: participantsTableName is empty")
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(participantsTableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(activityId) AND attribute_not_exists(userId)"),
	}

	_, err = dynamodbClient.PutItem(ctx, input)
	if err != nil {
		var conditionFailed *dynamodb_types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return nil, ErrAlreadyRegistered
		}
		return nil, err
	}

	return &newParticipant, nil
}

func (s *ParticipantService) GetParticipantByPk(ctx context.Context, dynamodbClient internal_types.DynamoDBAPI, activityId, userId string) (*internal_types.Participant, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(participantsTableName),
		Key: map[string]dynamodb_types.AttributeValue{
			"activityId": &dynamodb_types.AttributeValueMemberS{Value: activityId},
			"userId":     &dynamodb_types.AttributeValueMemberS{Value: userId},
		},
	}

	result, err := dynamodbClient.GetItem(ctx, input)
	if err != nil {
		return nil, err
	}

	if len(result.Item) == 0 {
		return nil, nil
	}

	var participant internal_types.Participant
	err = attributevalue.UnmarshalMap(result.Item, &participant)
	if err != nil {
		return nil, err
	}

	return &participant, nil
}

func (s *ParticipantService) GetParticipantsByActivityID(ctx context.Context, dynamodbClient internal_types.DynamoDBAPI, activityId string) ([]internal_types.Participant, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(participantsTableName),
		KeyConditionExpression: aws.String("activityId = :activityId"),
		ExpressionAttributeValues: map[string]dynamodb_types.AttributeValue{
			":activityId": &dynamodb_types.AttributeValueMemberS{Value: activityId},
		},
	}

	result, err := dynamodbClient.Query(ctx, input)
	if err != nil {
		return nil, err
	}

	var participants []internal_types.Participant
	err = attributevalue.UnmarshalListOfMaps(result.Items, &participants)
	if err != nil {
		return nil, err
	}

	return participants, nil
}

type MockParticipantService struct {
	InsertParticipantFunc           func(ctx context.Context, dynamodbClient internal_types.DynamoDBAPI, participant internal_types.ParticipantInsert, activityId, userId string) (*internal_types.Participant, error)
	GetParticipantByPkFunc          func(ctx context.Context, dynamodbClient internal_types.DynamoDBAPI, activityId, userId string) (*internal_types.Participant, error)
	GetParticipantsByActivityIDFunc func(ctx context.Context, dynamodbClient internal_types.DynamoDBAPI, activityId string) ([]internal_types.Participant, error)
}

func (m *MockParticipantService) InsertParticipant(ctx context.Context, dynamodbClient internal_types.DynamoDBAPI, participant internal_types.ParticipantInsert, activityId, userId string) (*internal_types.Participant, error) {
	return m.InsertParticipantFunc(ctx, dynamodbClient, participant, activityId, userId)
}

func (m *MockParticipantService) GetParticipantByPk(ctx context.Context, dynamodbClient internal_types.DynamoDBAPI, activityId, userId string) (*internal_types.Participant, error) {
	return m.GetParticipantByPkFunc(ctx, dynamodbClient, activityId, userId)
}

func (m *MockParticipantService) GetParticipantsByActivityID(ctx context.Context, dynamodbClient internal_types.DynamoDBAPI, activityId string) ([]internal_types.Participant, error) {
	return m.GetParticipantsByActivityIDFunc(ctx, dynamodbClient, activityId)
}
