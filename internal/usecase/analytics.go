package usecase

import (
	"context"
	"log"
	"time"

	"github.com/gmfernandes/leadflow/internal/entity"
)

// UpsertAnalyticsUseCase writes one (business, date, platform) snapshot
// bucket. Concurrent sync jobs hitting the same bucket are resolved by the
// repository's upsert, not by locking here.
type UpsertAnalyticsUseCase struct {
	Analytics AnalyticsRepository
	Cache     AnalyticsCache
}

func NewUpsertAnalyticsUseCase(analytics AnalyticsRepository, cache AnalyticsCache) *UpsertAnalyticsUseCase {
	return &UpsertAnalyticsUseCase{Analytics: analytics, Cache: cache}
}

func (uc *UpsertAnalyticsUseCase) Execute(ctx context.Context, input UpsertAnalyticsInput) (*entity.Analytics, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	date, _ := time.Parse("2006-01-02", input.Date) // validated above

	snap := entity.NewAnalytics(input.BusinessID, date, input.PlatformType)
	snap.LeadsCount = input.LeadsCount
	snap.QualifiedLeadsCount = input.QualifiedLeadsCount
	snap.ConvertedLeadsCount = input.ConvertedLeadsCount
	if input.TotalSpend != nil {
		snap.TotalSpend = *input.TotalSpend
	}
	if input.TotalRevenue != nil {
		snap.TotalRevenue = *input.TotalRevenue
	}
	snap.CostPerLead = input.CostPerLead
	snap.ConversionRate = input.ConversionRate
	if input.Metrics != nil {
		snap.Metrics = input.Metrics
	}

	if err := uc.Analytics.Upsert(ctx, snap); err != nil {
		return nil, err
	}

	if uc.Cache != nil {
		if err := uc.Cache.Invalidate(ctx, snap.BusinessID, snap.Date, snap.PlatformType); err != nil {
			log.Printf("WARN: analytics cache invalidation failed: %v", err)
		}
	}

	return snap, nil
}

// GetAnalyticsUseCase reads one snapshot bucket through the cache.
type GetAnalyticsUseCase struct {
	Analytics AnalyticsRepository
	Cache     AnalyticsCache
}

func NewGetAnalyticsUseCase(analytics AnalyticsRepository, cache AnalyticsCache) *GetAnalyticsUseCase {
	return &GetAnalyticsUseCase{Analytics: analytics, Cache: cache}
}

func (uc *GetAnalyticsUseCase) Execute(ctx context.Context, businessID int64, date time.Time, platformType *entity.PlatformType) (*entity.Analytics, error) {
	if uc.Cache != nil {
		cached, err := uc.Cache.Get(ctx, businessID, date, platformType)
		if err != nil {
			log.Printf("WARN: analytics cache read failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	snap, err := uc.Analytics.Find(ctx, businessID, date, platformType)
	if err != nil {
		return nil, err
	}

	if uc.Cache != nil {
		if err := uc.Cache.Set(ctx, snap); err != nil {
			log.Printf("WARN: analytics cache write failed: %v", err)
		}
	}

	return snap, nil
}
