package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/tagnote-app/tagnote-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the memo activity topic in the background and writes
// an activity trail through the structured logger. Feedback to the user
// happens at the action boundary; this trail is for diagnostics.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	logger    logger.ILogger
}

func NewConsumerService(pubSub *gochannel.GoChannel, topicName string, log logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		logger:    log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

type activityEnvelope struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var envelope activityEnvelope
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		cs.logger.Error("activity", "failed to unmarshal activity message", map[string]interface{}{
			"error": err.Error(),
		})
		// Ack invalid messages to prevent infinite redelivery.
		msg.Ack()
		return
	}

	cs.logger.Info("activity", envelope.Type, map[string]interface{}{
		"data":        envelope.Data,
		"occurred_at": envelope.OccurredAt,
	})
	msg.Ack()
}
