package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/gmfernandes/leadflow/internal/infra/http/middleware"
)

// AlertSender is the SMTP side of dispatch.
type AlertSender interface {
	Send(to, subject, content string) error
}

// AlertStore settles the email_alerts row after a delivery attempt.
type AlertStore interface {
	MarkSent(ctx context.Context, id int64, sentAt time.Time) error
	MarkFailed(ctx context.Context, id int64, errorMessage string) error
}

type Worker struct {
	Channel *amqp.Channel
	Sender  AlertSender
	Store   AlertStore
}

func NewWorker(ch *amqp.Channel, sender AlertSender, store AlertStore) *Worker {
	return &Worker{Channel: ch, Sender: sender, Store: store}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		log.Fatalf("[WORKER] failed to register consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload AlertPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("[WORKER] malformed alert payload: %s", err)
				// Poison message, reject without requeue so it goes to the DLQ.
				d.Nack(false, false)
				continue
			}

			log.Printf("[WORKER] dispatching alert %d (%s) to %s corr=%s",
				payload.AlertID, payload.AlertType, payload.RecipientEmail, payload.CorrelationID)

			if err := w.dispatch(context.Background(), payload); err != nil {
				log.Printf("[WORKER] alert %d failed: %s", payload.AlertID, err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Alert worker waiting on queue %q", queueName)
	<-forever
}

// dispatch attempts the SMTP send and settles the alert row either way. The
// returned error reflects the send, so a failed send still nacks even after
// the row is marked failed.
func (w *Worker) dispatch(ctx context.Context, payload AlertPayload) error {
	if err := w.Sender.Send(payload.RecipientEmail, payload.Subject, payload.Content); err != nil {
		if storeErr := w.Store.MarkFailed(ctx, payload.AlertID, err.Error()); storeErr != nil {
			log.Printf("[WORKER] could not record failure for alert %d: %s", payload.AlertID, storeErr)
		}
		return err
	}

	middleware.RecordAlertDispatched(payload.AlertType)

	if err := w.Store.MarkSent(ctx, payload.AlertID, time.Now()); err != nil {
		// The mail went out; losing the status update is not worth a
		// redelivery (and a duplicate email).
		log.Printf("[WORKER] could not record delivery for alert %d: %s", payload.AlertID, err)
	}
	return nil
}
