package validator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/adjust/rmq/v5"
	"github.com/faretex/faretex/pkg/fares"
	"github.com/faretex/faretex/pkg/objectstore"
	"github.com/faretex/faretex/pkg/redis_client"
	"github.com/faretex/faretex/pkg/util"
	"github.com/jacoelho/xsd"
	"github.com/rs/zerolog/log"
)

const defaultSchemaPath = "schema/NeTEx_publication.xsd"

type ValidationBatchConsumer struct {
	schema *xsd.Schema

	notifyQueue rmq.Queue
	alertQueue  rmq.Queue
}

func NewValidationBatchConsumer() *ValidationBatchConsumer {
	schemaPath := defaultSchemaPath

	env := util.GetEnvironmentVariables()
	if env["FARETEX_NETEX_SCHEMA"] != "" {
		schemaPath = env["FARETEX_NETEX_SCHEMA"]
	}

	// The published schema is compiled once and reused for every document
	schema, err := xsd.LoadFile(schemaPath)
	if err != nil {
		log.Fatal().Err(err).Str("schema", schemaPath).Msg("Failed to load NeTEx schema")
	}

	notifyQueue, err := redis_client.QueueConnection.OpenQueue(fares.QueueNotify)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open notify queue")
	}

	alertQueue, err := redis_client.QueueConnection.OpenQueue(fares.QueueAlerts)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open alert queue")
	}

	return &ValidationBatchConsumer{
		schema: schema,

		notifyQueue: notifyQueue,
		alertQueue:  alertQueue,
	}
}

func (c *ValidationBatchConsumer) Consume(batch rmq.Deliveries) {
	payloads := batch.Payloads()

	for _, payload := range payloads {
		var event fares.ValidationEvent
		if err := json.Unmarshal([]byte(payload), &event); err != nil {
			log.Error().Err(err).Msg("Undecodable validation event")
			continue
		}

		if err := c.processArtifact(context.Background(), event); err != nil {
			log.Error().Err(err).Str("objectKey", event.ObjectKey).Msg("Validation failed")

			c.raiseAlert(event.ObjectKey, err)
		}
	}

	if ackErrors := batch.Ack(); len(ackErrors) > 0 {
		for _, err := range ackErrors {
			log.Fatal().Err(err).Msg("Failed to consume from queue")
		}
	}
}

// processArtifact validates a generated document against the published
// schema and republishes it to the validated bucket on success. Schema
// failures are surfaced distinctly from generation failures.
func (c *ValidationBatchConsumer) processArtifact(ctx context.Context, event fares.ValidationEvent) error {
	document, err := objectstore.Get(ctx, objectstore.GeneratedBucket(), event.ObjectKey)
	if err != nil {
		return fmt.Errorf("%w: fetching artifact %s: %s", fares.ErrInputUnavailable, event.ObjectKey, err)
	}

	if err := c.schema.Validate(bytes.NewReader(document)); err != nil {
		return fmt.Errorf("%w: %s", fares.ErrSchemaValidationFailure, err)
	}

	if err := objectstore.Move(ctx, objectstore.GeneratedBucket(), objectstore.ValidatedBucket(), event.ObjectKey); err != nil {
		return fmt.Errorf("republishing artifact %s: %w", event.ObjectKey, err)
	}

	log.Info().
		Str("operator", event.OperatorCode).
		Str("artifact", event.ObjectKey).
		Msg("Validated NeTEx document")

	notificationEvent := fares.NotificationEvent{
		ObjectKey:      event.ObjectKey,
		OperatorName:   event.OperatorName,
		SubmitterEmail: event.SubmitterEmail,
	}

	notificationEventJSON, _ := json.Marshal(notificationEvent)

	return c.notifyQueue.PublishBytes(notificationEventJSON)
}

func (c *ValidationBatchConsumer) raiseAlert(objectKey string, cause error) {
	alertJSON, _ := json.Marshal(fares.AlertEvent{
		Stage:      "validation",
		ObjectKey:  objectKey,
		Error:      cause.Error(),
		OccurredAt: time.Now(),
	})

	if err := c.alertQueue.PublishBytes(alertJSON); err != nil {
		log.Error().Err(err).Msg("Failed to publish alert")
	}
}
