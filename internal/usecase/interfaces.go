package usecase

import (
	"context"
	"time"

	"github.com/gmfernandes/leadflow/internal/entity"
	"github.com/gmfernandes/leadflow/internal/infra/queue"
)

// Storage contracts. Repositories surface entity sentinel errors for
// conflicts and missing rows; everything else bubbles up wrapped.
//
// Relationship collections are deliberately not fields on the entities:
// loading a business's leads is an explicit List call so the cost is visible
// at the call site.

type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
}

type BusinessRepository interface {
	Create(ctx context.Context, b *entity.Business) error
	FindByID(ctx context.Context, id int64) (*entity.Business, error)
	FindByOwnerID(ctx context.Context, ownerID int64) (*entity.Business, error)
	Update(ctx context.Context, b *entity.Business) error
}

type ServiceRepository interface {
	Create(ctx context.Context, s *entity.Service) error
	FindByID(ctx context.Context, id int64) (*entity.Service, error)
	ListByBusinessID(ctx context.Context, businessID int64) ([]*entity.Service, error)
	Update(ctx context.Context, s *entity.Service) error
}

type PlatformAccountRepository interface {
	Create(ctx context.Context, a *entity.PlatformAccount) error
	FindByID(ctx context.Context, id int64) (*entity.PlatformAccount, error)
	ListByBusinessID(ctx context.Context, businessID int64) ([]*entity.PlatformAccount, error)
	Update(ctx context.Context, a *entity.PlatformAccount) error
}

type CampaignRepository interface {
	Create(ctx context.Context, c *entity.Campaign) error
	FindByID(ctx context.Context, id int64) (*entity.Campaign, error)
	ListByPlatformAccountID(ctx context.Context, platformAccountID int64) ([]*entity.Campaign, error)
	Update(ctx context.Context, c *entity.Campaign) error
}

type LeadRepository interface {
	Create(ctx context.Context, l *entity.Lead) error
	FindByID(ctx context.Context, id int64) (*entity.Lead, error)
	ListByBusinessID(ctx context.Context, businessID int64, status *entity.LeadStatus) ([]*entity.Lead, error)
	Update(ctx context.Context, l *entity.Lead) error
}

type MessageRepository interface {
	Create(ctx context.Context, m *entity.Message) error
	FindByID(ctx context.Context, id int64) (*entity.Message, error)
	ListByLeadID(ctx context.Context, leadID int64) ([]*entity.Message, error)
	MarkRead(ctx context.Context, id int64) error
}

type SubscriptionRepository interface {
	Create(ctx context.Context, s *entity.Subscription) error
	FindByID(ctx context.Context, id int64) (*entity.Subscription, error)
	FindLastByBusinessID(ctx context.Context, businessID int64) (*entity.Subscription, error)
	Update(ctx context.Context, s *entity.Subscription) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *entity.Payment) error
	FindByID(ctx context.Context, id int64) (*entity.Payment, error)
	ListBySubscriptionID(ctx context.Context, subscriptionID int64) ([]*entity.Payment, error)
	Update(ctx context.Context, p *entity.Payment) error
}

type AnalyticsRepository interface {
	Upsert(ctx context.Context, a *entity.Analytics) error
	Find(ctx context.Context, businessID int64, date time.Time, platformType *entity.PlatformType) (*entity.Analytics, error)
	ListByBusinessID(ctx context.Context, businessID int64, from, to time.Time) ([]*entity.Analytics, error)
}

type RecommendationRepository interface {
	Create(ctx context.Context, r *entity.Recommendation) error
	FindByID(ctx context.Context, id int64) (*entity.Recommendation, error)
	ListActiveByBusinessID(ctx context.Context, businessID int64) ([]*entity.Recommendation, error)
	Update(ctx context.Context, r *entity.Recommendation) error
}

type EmailAlertRepository interface {
	Create(ctx context.Context, a *entity.EmailAlert) error
	FindByID(ctx context.Context, id int64) (*entity.EmailAlert, error)
	MarkSent(ctx context.Context, id int64, sentAt time.Time) error
	MarkFailed(ctx context.Context, id int64, errorMessage string) error
}

// AlertProducer hands alert payloads to the broker; the dispatch worker on
// the other side does the actual SMTP delivery.
type AlertProducer interface {
	PublishAlert(ctx context.Context, payload queue.AlertPayload) error
}

// AnalyticsCache fronts snapshot reads. Get returns (nil, nil) on a miss.
type AnalyticsCache interface {
	Get(ctx context.Context, businessID int64, date time.Time, platformType *entity.PlatformType) (*entity.Analytics, error)
	Set(ctx context.Context, a *entity.Analytics) error
	Invalidate(ctx context.Context, businessID int64, date time.Time, platformType *entity.PlatformType) error
}
