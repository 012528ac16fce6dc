package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	internal_types "github.com/ayushijadhav2006/smile-share/functions/gateway/types"
)

var (
	statusStreamName  = os.Getenv("NATS_ACTIVITY_STATUS_STREAM_NAME")
	statusSubjectName = os.Getenv("NATS_ACTIVITY_STATUS_STREAM_SUBJECT")
)

// NatsService fans activity status updates out to live subscribers (the
// registration form watches these to flip to "closed"/"full" without a
// reload). The filter and suggestion paths never subscribe; subscription
// lifecycle belongs to the caller.
type NatsService struct {
	conn *nats.Conn
	js   jetstream.JetStream
}

func GetNatsClient() (*nats.Conn, error) {
	url := os.Getenv("NATS_URL")
	if url == "" {
		return nil, fmt.Errorf("NATS_URL environment variable is required")
	}
	return nats.Connect(url)
}

func NewNatsService(ctx context.Context, conn *nats.Conn) (*NatsService, error) {
	js, err := jetstream.New(conn)
	if err != nil {
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	// Create stream if it does not exist
	_, err = js.Stream(ctx, statusStreamName)
	if err != nil {
		log.Printf("Stream %s does not exist, creating it...", statusStreamName)

		_, err = js.CreateStream(ctx, jetstream.StreamConfig{
			Name:     statusStreamName,
			Subjects: []string{statusSubjectName},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create stream: %w", err)
		}
	}

	return &NatsService{
		conn: conn,
		js:   js,
	}, nil
}

func (s *NatsService) PublishStatus(ctx context.Context, update internal_types.ActivityStatusUpdate) error {
	data, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("failed to marshal status update: %w", err)
	}

	ack, err := s.js.Publish(ctx, statusSubjectName, data)
	if err != nil {
		return fmt.Errorf("failed to publish status update: %w", err)
	}

	log.Printf("Published status update for activity %s at sequence %d on stream %q", update.ActivityId, ack.Sequence, ack.Stream)

	return nil
}

// SubscribeStatus registers a handler for status updates and returns the
// unsubscribe function the caller must invoke when its view goes away.
func (s *NatsService) SubscribeStatus(handler func(internal_types.ActivityStatusUpdate)) (func(), error) {
	sub, err := s.conn.Subscribe(statusSubjectName, func(msg *nats.Msg) {
		var update internal_types.ActivityStatusUpdate
		if err := json.Unmarshal(msg.Data, &update); err != nil {
			log.Printf("dropping undecodable status update: %v", err)
			return
		}
		handler(update)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", statusSubjectName, err)
	}

	return func() {
		if err := sub.Unsubscribe(); err != nil {
			log.Printf("failed to unsubscribe from %s: %v", statusSubjectName, err)
		}
	}, nil
}

func (s *NatsService) Close() error {
	if s.conn != nil {
		s.conn.Close()
	}
	return nil
}
