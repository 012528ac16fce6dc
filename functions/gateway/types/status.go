package types

import (
	"context"
	"time"
)

// ActivityStatusUpdate is the payload pushed when an activity's
// registration state changes (count bump, form opened/closed).
type ActivityStatusUpdate struct {
	ActivityId              string    `json:"activityId"`
	NoOfParticipants        int64     `json:"noOfParticipants"`
	AcceptingParticipants   int64     `json:"acceptingParticipants"`
	ParticipationFormStatus string    `json:"participationFormStatus"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

type ActivityStatusPublisherInterface interface {
	PublishStatus(ctx context.Context, update ActivityStatusUpdate) error
}
