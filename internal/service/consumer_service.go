package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/harshil12345000/certifyr-sub001/internal/dto"
	"github.com/harshil12345000/certifyr-sub001/internal/entity"
	"github.com/harshil12345000/certifyr-sub001/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the internal audit topic and persists entries
// as system log rows, off the request path.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishAuditMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal audit message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	entry := &entity.SystemLog{
		Id:        uuid.New(),
		Level:     payload.Level,
		Message:   payload.Message,
		CreatedAt: time.Now(),
	}
	if payload.Module != "" {
		module := payload.Module
		entry.Module = &module
	}
	if len(payload.Details) > 0 {
		detailsJson, err := json.Marshal(payload.Details)
		if err == nil {
			details := string(detailsJson)
			entry.Details = &details
		}
	}

	if err := uow.SystemLogRepository().Create(ctx, entry); err != nil {
		log.Printf("[ERROR] Failed to persist audit entry: %v", err)
		msg.Nack()
		return
	}

	msg.Ack()
}
