package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/gmfernandes/leadflow/internal/entity"
	"github.com/gmfernandes/leadflow/internal/infra/queue"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *entity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *entity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

type MockBusinessRepository struct {
	mock.Mock
}

func (m *MockBusinessRepository) Create(ctx context.Context, b *entity.Business) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBusinessRepository) FindByID(ctx context.Context, id int64) (*entity.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Business), args.Error(1)
}

func (m *MockBusinessRepository) FindByOwnerID(ctx context.Context, ownerID int64) (*entity.Business, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Business), args.Error(1)
}

func (m *MockBusinessRepository) Update(ctx context.Context, b *entity.Business) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) Create(ctx context.Context, s *entity.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockServiceRepository) FindByID(ctx context.Context, id int64) (*entity.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Service), args.Error(1)
}

func (m *MockServiceRepository) ListByBusinessID(ctx context.Context, businessID int64) ([]*entity.Service, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Service), args.Error(1)
}

func (m *MockServiceRepository) Update(ctx context.Context, s *entity.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type MockPlatformAccountRepository struct {
	mock.Mock
}

func (m *MockPlatformAccountRepository) Create(ctx context.Context, a *entity.PlatformAccount) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockPlatformAccountRepository) FindByID(ctx context.Context, id int64) (*entity.PlatformAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PlatformAccount), args.Error(1)
}

func (m *MockPlatformAccountRepository) ListByBusinessID(ctx context.Context, businessID int64) ([]*entity.PlatformAccount, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.PlatformAccount), args.Error(1)
}

func (m *MockPlatformAccountRepository) Update(ctx context.Context, a *entity.PlatformAccount) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, l *entity.Lead) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id int64) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) ListByBusinessID(ctx context.Context, businessID int64, status *entity.LeadStatus) ([]*entity.Lead, error) {
	args := m.Called(ctx, businessID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Update(ctx context.Context, l *entity.Lead) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, s *entity.Subscription) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) FindByID(ctx context.Context, id int64) (*entity.Subscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) FindLastByBusinessID(ctx context.Context, businessID int64) (*entity.Subscription, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) Update(ctx context.Context, s *entity.Subscription) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, p *entity.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id int64) (*entity.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListBySubscriptionID(ctx context.Context, subscriptionID int64) ([]*entity.Payment, error) {
	args := m.Called(ctx, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Update(ctx context.Context, p *entity.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) Upsert(ctx context.Context, a *entity.Analytics) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAnalyticsRepository) Find(ctx context.Context, businessID int64, date time.Time, platformType *entity.PlatformType) (*entity.Analytics, error) {
	args := m.Called(ctx, businessID, date, platformType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Analytics), args.Error(1)
}

func (m *MockAnalyticsRepository) ListByBusinessID(ctx context.Context, businessID int64, from, to time.Time) ([]*entity.Analytics, error) {
	args := m.Called(ctx, businessID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Analytics), args.Error(1)
}

type MockRecommendationRepository struct {
	mock.Mock
}

func (m *MockRecommendationRepository) Create(ctx context.Context, r *entity.Recommendation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRecommendationRepository) FindByID(ctx context.Context, id int64) (*entity.Recommendation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Recommendation), args.Error(1)
}

func (m *MockRecommendationRepository) ListActiveByBusinessID(ctx context.Context, businessID int64) ([]*entity.Recommendation, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Recommendation), args.Error(1)
}

func (m *MockRecommendationRepository) Update(ctx context.Context, r *entity.Recommendation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

type MockEmailAlertRepository struct {
	mock.Mock
}

func (m *MockEmailAlertRepository) Create(ctx context.Context, a *entity.EmailAlert) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockEmailAlertRepository) FindByID(ctx context.Context, id int64) (*entity.EmailAlert, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.EmailAlert), args.Error(1)
}

func (m *MockEmailAlertRepository) MarkSent(ctx context.Context, id int64, sentAt time.Time) error {
	args := m.Called(ctx, id, sentAt)
	return args.Error(0)
}

func (m *MockEmailAlertRepository) MarkFailed(ctx context.Context, id int64, errorMessage string) error {
	args := m.Called(ctx, id, errorMessage)
	return args.Error(0)
}

type MockAlertProducer struct {
	mock.Mock
}

func (m *MockAlertProducer) PublishAlert(ctx context.Context, payload queue.AlertPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

type MockAnalyticsCache struct {
	mock.Mock
}

func (m *MockAnalyticsCache) Get(ctx context.Context, businessID int64, date time.Time, platformType *entity.PlatformType) (*entity.Analytics, error) {
	args := m.Called(ctx, businessID, date, platformType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Analytics), args.Error(1)
}

func (m *MockAnalyticsCache) Set(ctx context.Context, a *entity.Analytics) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAnalyticsCache) Invalidate(ctx context.Context, businessID int64, date time.Time, platformType *entity.PlatformType) error {
	args := m.Called(ctx, businessID, date, platformType)
	return args.Error(0)
}
