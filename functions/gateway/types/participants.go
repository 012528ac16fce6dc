package types

import (
	"context"
	"time"
)

// Participant is one submitted registration for an activity. SubmissionId is
// the composite activityId+userId key the original form used for dedup.
type Participant struct {
	ActivityId   string    `json:"activityId" dynamodbav:"activityId"`
	UserId       string    `json:"userId" dynamodbav:"userId"`
	NgoId        string    `json:"ngoId,omitempty" dynamodbav:"ngoId"`
	Name         string    `json:"name" dynamodbav:"name"`
	Email        string    `json:"email" dynamodbav:"email"`
	Phone        string    `json:"phone,omitempty" dynamodbav:"phone"`
	Attendance   bool      `json:"attendance" dynamodbav:"attendance"`
	SubmissionId string    `json:"sId" dynamodbav:"sId"`
	SubmittedAt  time.Time `json:"submittedAt" dynamodbav:"submittedAt"`
}

type ParticipantInsert struct {
	ActivityId string `json:"activityId,omitempty" dynamodbav:"activityId"`
	UserId     string `json:"userId,omitempty" dynamodbav:"userId"`
	NgoId      string `json:"ngoId,omitempty" dynamodbav:"ngoId"`
	Name       string `json:"name" dynamodbav:"name" validate:"required"`
	Email      string `json:"email" dynamodbav:"email" validate:"required,email"`
	Phone      string `json:"phone,omitempty" dynamodbav:"phone"`
}

type ParticipantServiceInterface interface {
	InsertParticipant(ctx context.Context, dynamodbClient DynamoDBAPI, participant ParticipantInsert, activityId, userId string) (*Participant, error)
	GetParticipantByPk(ctx context.Context, dynamodbClient DynamoDBAPI, activityId, userId string) (*Participant, error)
	GetParticipantsByActivityID(ctx context.Context, dynamodbClient DynamoDBAPI, activityId string) ([]Participant, error)
}
