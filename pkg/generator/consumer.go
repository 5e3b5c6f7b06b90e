package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/adjust/rmq/v5"
	"github.com/faretex/faretex/pkg/fares"
	"github.com/faretex/faretex/pkg/netex"
	"github.com/faretex/faretex/pkg/objectstore"
	"github.com/faretex/faretex/pkg/redis_client"
	"github.com/rs/zerolog/log"
)

type SubmissionBatchConsumer struct {
	loader    *netex.TemplateLoader
	operators *fares.OperatorCache

	validationQueue rmq.Queue
	alertQueue      rmq.Queue
}

func NewSubmissionBatchConsumer() *SubmissionBatchConsumer {
	operators := &fares.OperatorCache{}
	operators.Setup()

	validationQueue, err := redis_client.QueueConnection.OpenQueue(fares.QueueValidation)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open validation queue")
	}

	alertQueue, err := redis_client.QueueConnection.OpenQueue(fares.QueueAlerts)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open alert queue")
	}

	return &SubmissionBatchConsumer{
		loader:    netex.NewTemplateLoader(),
		operators: operators,

		validationQueue: validationQueue,
		alertQueue:      alertQueue,
	}
}

func (c *SubmissionBatchConsumer) Consume(batch rmq.Deliveries) {
	payloads := batch.Payloads()

	for _, payload := range payloads {
		var event fares.SubmissionEvent
		if err := json.Unmarshal([]byte(payload), &event); err != nil {
			log.Error().Err(err).Msg("Undecodable submission event")
			continue
		}

		if err := c.processSubmission(context.Background(), event); err != nil {
			log.Error().Err(err).Str("objectKey", event.ObjectKey).Msg("Generation failed")

			c.raiseAlert("generation", event.ObjectKey, err)
		}
	}

	if ackErrors := batch.Ack(); len(ackErrors) > 0 {
		for _, err := range ackErrors {
			log.Fatal().Err(err).Msg("Failed to consume from queue")
		}
	}
}

// processSubmission runs one generation: fetch the submitted ticket, look up
// the operator reference data, generate the document and hand the artifact
// off for validation. A failed run produces no artifact.
func (c *SubmissionBatchConsumer) processSubmission(ctx context.Context, event fares.SubmissionEvent) error {
	data, err := objectstore.Get(ctx, objectstore.SubmissionsBucket(), event.ObjectKey)
	if err != nil {
		return fmt.Errorf("%w: fetching submission %s: %s", fares.ErrInputUnavailable, event.ObjectKey, err)
	}

	ticket, err := fares.ParseTicketDescription(data)
	if err != nil {
		return err
	}

	operator, err := c.operators.Get(ctx, ticket.OperatorCode)
	if err != nil {
		return err
	}

	now := time.Now()

	document, err := netex.Generate(c.loader, ticket, operator, now)
	if err != nil {
		return err
	}

	artifactKey := ArtifactKey(ticket, now)

	if err := objectstore.Put(ctx, objectstore.GeneratedBucket(), artifactKey, document); err != nil {
		return fmt.Errorf("uploading artifact %s: %w", artifactKey, err)
	}

	log.Info().
		Str("operator", ticket.OperatorCode).
		Str("variant", ticket.VariantTag).
		Str("artifact", artifactKey).
		Msg("Generated NeTEx document")

	validationEvent := fares.ValidationEvent{
		ObjectKey:      artifactKey,
		OperatorCode:   ticket.OperatorCode,
		OperatorName:   operator.DisplayName(),
		SubmitterEmail: ticket.SubmitterEmail,
	}

	validationEventJSON, _ := json.Marshal(validationEvent)

	return c.validationQueue.PublishBytes(validationEventJSON)
}

func (c *SubmissionBatchConsumer) raiseAlert(stage string, objectKey string, cause error) {
	alertJSON, _ := json.Marshal(fares.AlertEvent{
		Stage:      stage,
		ObjectKey:  objectKey,
		Error:      cause.Error(),
		OccurredAt: time.Now(),
	})

	if err := c.alertQueue.PublishBytes(alertJSON); err != nil {
		log.Error().Err(err).Msg("Failed to publish alert")
	}
}

// ArtifactKey is the deterministic output name for a generated document.
func ArtifactKey(ticket *fares.TicketDescription, now time.Time) string {
	return fmt.Sprintf("%s_%s_%s.xml", ticket.OperatorCode, ticket.VariantTag, now.UTC().Format("20060102T150405Z"))
}
