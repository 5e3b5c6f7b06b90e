package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/adjust/rmq/v5"
	"github.com/faretex/faretex/pkg/fares"
	"github.com/faretex/faretex/pkg/objectstore"
	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
)

type NotifyBatchConsumer struct {
	emailManager *EmailManager
}

func NewNotifyBatchConsumer() *NotifyBatchConsumer {
	emailManager := &EmailManager{}
	if err := emailManager.Setup(); err != nil {
		log.Fatal().Err(err).Msg("Failed to setup email client")
	}

	return &NotifyBatchConsumer{emailManager: emailManager}
}

func (c *NotifyBatchConsumer) Consume(batch rmq.Deliveries) {
	payloads := batch.Payloads()

	for _, payload := range payloads {
		var event fares.NotificationEvent
		if err := json.Unmarshal([]byte(payload), &event); err != nil {
			log.Error().Err(err).Msg("Undecodable notification event")
			continue
		}

		if err := c.processNotification(context.Background(), event); err != nil {
			log.Error().Err(err).Str("objectKey", event.ObjectKey).Msg("Notification failed")
		}
	}

	if ackErrors := batch.Ack(); len(ackErrors) > 0 {
		for _, err := range ackErrors {
			log.Fatal().Err(err).Msg("Failed to consume from queue")
		}
	}
}

func (c *NotifyBatchConsumer) processNotification(ctx context.Context, event fares.NotificationEvent) error {
	document, err := objectstore.Get(ctx, objectstore.ValidatedBucket(), event.ObjectKey)
	if err != nil {
		return fmt.Errorf("%w: fetching validated artifact %s: %s", fares.ErrInputUnavailable, event.ObjectKey, err)
	}

	return c.emailManager.SendValidatedDocument(event, document)
}

// AlertBatchConsumer drains the operational alert queue into the log stream.
type AlertBatchConsumer struct {
}

func NewAlertBatchConsumer() *AlertBatchConsumer {
	return &AlertBatchConsumer{}
}

func (c *AlertBatchConsumer) Consume(batch rmq.Deliveries) {
	payloads := batch.Payloads()

	for _, payload := range payloads {
		var alert fares.AlertEvent
		if err := json.Unmarshal([]byte(payload), &alert); err != nil {
			pretty.Println(string(payload))
			continue
		}

		log.Error().
			Str("stage", alert.Stage).
			Str("objectKey", alert.ObjectKey).
			Str("error", alert.Error).
			Time("occurredAt", alert.OccurredAt).
			Msg("Operational alert")
	}

	if ackErrors := batch.Ack(); len(ackErrors) > 0 {
		for _, err := range ackErrors {
			log.Fatal().Err(err).Msg("Failed to consume from queue")
		}
	}
}
