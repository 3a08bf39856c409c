package usecase

import (
	"context"
	"log"

	"github.com/gmfernandes/leadflow/internal/entity"
	"github.com/gmfernandes/leadflow/internal/infra/queue"
)

// Alert types recorded in email_alerts.alert_type.
const (
	AlertNewLead       = "new_lead"
	AlertLeadConverted = "lead_converted"
)

// QueueAlertUseCase records an outbound notification for a business owner
// and hands it to the broker. The email_alerts row is the source of truth for
// delivery state; the queue is just transport.
type QueueAlertUseCase struct {
	Alerts     EmailAlertRepository
	Businesses BusinessRepository
	Users      UserRepository
	Producer   AlertProducer
}

func NewQueueAlertUseCase(alerts EmailAlertRepository, businesses BusinessRepository, users UserRepository, producer AlertProducer) *QueueAlertUseCase {
	return &QueueAlertUseCase{Alerts: alerts, Businesses: businesses, Users: users, Producer: producer}
}

func (uc *QueueAlertUseCase) Execute(ctx context.Context, businessID int64, alertType, subject, content string) (*entity.EmailAlert, error) {
	biz, err := uc.Businesses.FindByID(ctx, businessID)
	if err != nil {
		return nil, err
	}

	owner, err := uc.Users.FindByID(ctx, biz.OwnerID)
	if err != nil {
		return nil, err
	}

	alert := entity.NewEmailAlert(businessID, alertType, owner.Email, subject, content)
	if err := uc.Alerts.Create(ctx, alert); err != nil {
		return nil, err
	}

	payload := queue.AlertPayload{
		AlertID:        alert.ID,
		BusinessID:     businessID,
		AlertType:      alertType,
		RecipientEmail: alert.RecipientEmail,
		Subject:        subject,
		Content:        content,
	}

	if err := uc.Producer.PublishAlert(ctx, payload); err != nil {
		// The row is stored as pending; a redelivery sweep can pick it up.
		// Losing the publish must not fail the operation that raised it.
		log.Printf("WARN: alert %d stored but not queued: %v", alert.ID, err)
	}

	return alert, nil
}
