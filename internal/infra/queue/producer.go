package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// AlertPayload is what crosses the broker for one outbound email alert. The
// alert row already exists in email_alerts with delivery_status=pending; the
// worker settles it to sent or failed.
type AlertPayload struct {
	AlertID        int64  `json:"alert_id"`
	BusinessID     int64  `json:"business_id"`
	AlertType      string `json:"alert_type"`
	RecipientEmail string `json:"recipient_email"`
	Subject        string `json:"subject"`
	Content        string `json:"content"`
	CorrelationID  string `json:"correlation_id"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Conn: conn, Ch: ch}
}

func (p *RabbitMQProducer) PublishAlert(ctx context.Context, payload AlertPayload) error {
	if payload.CorrelationID == "" {
		payload.CorrelationID = uuid.New().String()
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal alert payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:   "application/json",
			Body:          body,
			DeliveryMode:  amqp.Persistent,
			CorrelationId: payload.CorrelationID,
		},
	)
	if err != nil {
		return fmt.Errorf("publish alert: %w", err)
	}

	return nil
}
