package dynamodb_service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamodb_types "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/ayushijadhav2006/smile-share/functions/gateway/test_helpers"
	internal_types "github.com/ayushijadhav2006/smile-share/functions/gateway/types"
)

func validParticipantInsert() internal_types.ParticipantInsert {
	return internal_types.ParticipantInsert{
		Name:  "Asha Patel",
		Email: "asha@example.com",
		Phone: "555-0101",
	}
}

func TestInsertParticipant(t *testing.T) {
	service := NewParticipantService()

	var capturedInput *dynamodb.PutItemInput
	mockDB := &test_helpers.MockDynamoDBClient{
		PutItemFunc: func(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			capturedInput = params
			return &dynamodb.PutItemOutput{}, nil
		},
	}

	participant, err := service.InsertParticipant(context.Background(), mockDB, validParticipantInsert(), "a1", "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if participant.ActivityId != "a1" || participant.UserId != "user-1" {
		t.Errorf("expected composite key fields set, got %+v", participant)
	}
	if participant.SubmissionId != "a1user-1" {
		t.Errorf("expected submission id a1user-1, got %s", participant.SubmissionId)
	}
	if participant.Attendance {
		t.Error("expected attendance to start false")
	}
	if participant.SubmittedAt.IsZero() {
		t.Error("expected SubmittedAt to be stamped")
	}

	if capturedInput == nil {
		t.Fatal("expected PutItemInput to be captured")
	}
	if capturedInput.ConditionExpression == nil {
		t.Fatal("expected a duplicate-guard condition expression")
	}
	if !strings.Contains(*capturedInput.ConditionExpression, "attribute_not_exists") {
		t.Errorf("expected attribute_not_exists guard, got %s", *capturedInput.ConditionExpression)
	}
}

func TestInsertParticipantAnonymousUser(t *testing.T) {
	service := NewParticipantService()

	mockDB := &test_helpers.MockDynamoDBClient{
		PutItemFunc: func(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			return &dynamodb.PutItemOutput{}, nil
		},
	}

	participant, err := service.InsertParticipant(context.Background(), mockDB, validParticipantInsert(), "a1", "anonymous")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if participant.UserId == "anonymous" {
		t.Error("expected anonymous user id to be made unique")
	}
	if !strings.HasSuffix(participant.UserId, "-anonymous") {
		t.Errorf("expected timestamped anonymous id, got %s", participant.UserId)
	}
}

func TestInsertParticipantDuplicate(t *testing.T) {
	service := NewParticipantService()

	mockDB := &test_helpers.MockDynamoDBClient{
		PutItemFunc: func(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			return nil, &dynamodb_types.ConditionalCheckFailedException{}
		},
	}

	_, err := service.InsertParticipant(context.Background(), mockDB, validParticipantInsert(), "a1", "user-1")
	if !errors.Is(err, ErrAlreadyRegistered) {
		t.Errorf("expected ErrAlreadyRegistered, got %v", err)
	}
}

func TestInsertParticipantValidation(t *testing.T) {
	service := NewParticipantService()

	tests := []struct {
		name        string
		participant internal_types.ParticipantInsert
	}{
		{
			name:        "missing name",
			participant: internal_types.ParticipantInsert{Email: "asha@example.com"},
		},
		{
			name:        "missing email",
			participant: internal_types.ParticipantInsert{Name: "Asha Patel"},
		},
		{
			name:        "malformed email",
			participant: internal_types.ParticipantInsert{Name: "Asha Patel", Email: "not-an-email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.InsertParticipant(context.Background(), &test_helpers.MockDynamoDBClient{}, tt.participant, "a1", "user-1")
			if err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestGetParticipantByPkNotFound(t *testing.T) {
	service := NewParticipantService()

	mockDB := &test_helpers.MockDynamoDBClient{
		GetItemFunc: func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{}, nil
		},
	}

	participant, err := service.GetParticipantByPk(context.Background(), mockDB, "a1", "user-1")
	if err != nil {
		t.Fatalf("expected missing participant to be a nil result, got error: %v", err)
	}
	if participant != nil {
		t.Errorf("expected nil participant, got %+v", participant)
	}
}

func TestGetParticipantsByActivityID(t *testing.T) {
	service := NewParticipantService()

	mockDB := &test_helpers.MockDynamoDBClient{
		QueryFunc: func(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
			items := make([]map[string]dynamodb_types.AttributeValue, 0, 2)
			for _, userId := range []string{"user-1", "user-2"} {
				item, err := attributevalue.MarshalMap(internal_types.Participant{
					ActivityId: "a1",
					UserId:     userId,
					Name:       "Volunteer " + userId,
					Email:      userId + "@example.com",
				})
				if err != nil {
					t.Fatalf("failed to marshal participant: %v", err)
				}
				items = append(items, item)
			}
			return &dynamodb.QueryOutput{Items: items}, nil
		},
	}

	participants, err := service.GetParticipantsByActivityID(context.Background(), mockDB, "a1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(participants) != 2 {
		t.Fatalf("expected 2 participants, got %d", len(participants))
	}
	if participants[0].UserId != "user-1" {
		t.Errorf("expected query order preserved, got %+v", participants[0])
	}
}
