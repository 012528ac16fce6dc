package types

import (
	"context"
	"time"
)

const (
	FormStatusAccepting = "accepting"
	FormStatusClosed    = "closed"
)

type ActivityLocation struct {
	Address string `json:"address" dynamodbav:"address"`
	City    string `json:"city,omitempty" dynamodbav:"city,omitempty"`
}

// Activity is a single volunteering event published by an NGO. The filter
// and suggestion paths treat it as read-only; only the participant
// registration flow mutates the counters.
type Activity struct {
	Id                      string           `json:"id" dynamodbav:"id"`
	EventName               string           `json:"eventName" dynamodbav:"eventName"`
	ShortDescription        string           `json:"shortDescription,omitempty" dynamodbav:"shortDescription"`
	EventDate               string           `json:"eventDate,omitempty" dynamodbav:"eventDate"`
	Category                string           `json:"category,omitempty" dynamodbav:"category"`
	Location                ActivityLocation `json:"location,omitempty" dynamodbav:"location"`
	NgoId                   string           `json:"ngoId,omitempty" dynamodbav:"ngoId"`
	NgoRating               float64          `json:"ngoRating,omitempty" dynamodbav:"ngoRating"`
	NoOfParticipants        int64            `json:"noOfParticipants" dynamodbav:"noOfParticipants"`
	AcceptingParticipants   int64            `json:"acceptingParticipants" dynamodbav:"acceptingParticipants"`
	ParticipationFormStatus string           `json:"participationFormStatus,omitempty" dynamodbav:"participationFormStatus"`

	// EventDay is EventDate parsed to a midnight-UTC calendar day at catalog
	// load time. Zero when EventDate is absent or unparsable.
	EventDay time.Time `json:"-" dynamodbav:"-"`
}

type ActivityInsert struct {
	Id                      string           `json:"id,omitempty" dynamodbav:"id"`
	EventName               string           `json:"eventName" dynamodbav:"eventName" validate:"required"`
	ShortDescription        string           `json:"shortDescription,omitempty" dynamodbav:"shortDescription"`
	EventDate               string           `json:"eventDate" dynamodbav:"eventDate" validate:"required"`
	Category                string           `json:"category,omitempty" dynamodbav:"category"`
	Location                ActivityLocation `json:"location,omitempty" dynamodbav:"location"`
	NgoId                   string           `json:"ngoId" dynamodbav:"ngoId" validate:"required"`
	NgoRating               float64          `json:"ngoRating,omitempty" dynamodbav:"ngoRating"`
	AcceptingParticipants   int64            `json:"acceptingParticipants" dynamodbav:"acceptingParticipants" validate:"required"`
	ParticipationFormStatus string           `json:"participationFormStatus,omitempty" dynamodbav:"participationFormStatus"`
}

type ActivityServiceInterface interface {
	GetActivities(ctx context.Context, dynamodbClient DynamoDBAPI) ([]Activity, error)
	GetActivityById(ctx context.Context, dynamodbClient DynamoDBAPI, activityId string) (*Activity, error)
	InsertActivity(ctx context.Context, dynamodbClient DynamoDBAPI, activity ActivityInsert) (*Activity, error)
	IncrementParticipantCount(ctx context.Context, dynamodbClient DynamoDBAPI, activityId string) (*Activity, error)
}
