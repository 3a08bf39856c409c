package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gmfernandes/leadflow/internal/entity"
)

type AnalyticsRepository struct {
	DB *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

// Upsert writes one (business, date, platform) snapshot bucket. Concurrent
// writers for the same bucket race on the unique bucket index instead of
// producing duplicate rows; the last writer's snapshot wins. A NULL platform
// coalesces to '' in the index so the all-platforms bucket is unique too.
func (r *AnalyticsRepository) Upsert(ctx context.Context, a *entity.Analytics) error {
	query := `
		INSERT INTO analytics (business_id, date, platform_type, leads_count,
			qualified_leads_count, converted_leads_count, total_spend, total_revenue,
			cost_per_lead, conversion_rate, metrics, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (business_id, date, COALESCE(platform_type, ''))
		DO UPDATE SET
			leads_count = EXCLUDED.leads_count,
			qualified_leads_count = EXCLUDED.qualified_leads_count,
			converted_leads_count = EXCLUDED.converted_leads_count,
			total_spend = EXCLUDED.total_spend,
			total_revenue = EXCLUDED.total_revenue,
			cost_per_lead = EXCLUDED.cost_per_lead,
			conversion_rate = EXCLUDED.conversion_rate,
			metrics = EXCLUDED.metrics
		RETURNING id, created_at
	`

	var platform any
	if a.PlatformType != nil {
		platform = string(*a.PlatformType)
	}

	err := r.DB.QueryRowContext(ctx, query,
		a.BusinessID, a.Date, platform, a.LeadsCount,
		a.QualifiedLeadsCount, a.ConvertedLeadsCount, a.TotalSpend, a.TotalRevenue,
		a.CostPerLead, a.ConversionRate, a.Metrics, a.CreatedAt,
	).Scan(&a.ID, &a.CreatedAt)

	return mapPQError(err)
}

const analyticsColumns = `id, business_id, date, platform_type, leads_count,
	qualified_leads_count, converted_leads_count, total_spend, total_revenue,
	cost_per_lead, conversion_rate, metrics, created_at`

func (r *AnalyticsRepository) Find(ctx context.Context, businessID int64, date time.Time, platformType *entity.PlatformType) (*entity.Analytics, error) {
	query := `SELECT ` + analyticsColumns + `
		FROM analytics
		WHERE business_id = $1 AND date = $2 AND COALESCE(platform_type, '') = $3`

	platform := ""
	if platformType != nil {
		platform = string(*platformType)
	}

	a, err := scanAnalytics(r.DB.QueryRowContext(ctx, query, businessID, date, platform))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return a, err
}

func (r *AnalyticsRepository) ListByBusinessID(ctx context.Context, businessID int64, from, to time.Time) ([]*entity.Analytics, error) {
	query := `SELECT ` + analyticsColumns + `
		FROM analytics
		WHERE business_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date, platform_type`

	rows, err := r.DB.QueryContext(ctx, query, businessID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []*entity.Analytics
	for rows.Next() {
		a, err := scanAnalytics(rows)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, a)
	}
	return snaps, rows.Err()
}

func scanAnalytics(row rowScanner) (*entity.Analytics, error) {
	var a entity.Analytics
	var platform sql.NullString
	var costPerLead, conversionRate decimal.NullDecimal

	err := row.Scan(&a.ID, &a.BusinessID, &a.Date, &platform, &a.LeadsCount,
		&a.QualifiedLeadsCount, &a.ConvertedLeadsCount, &a.TotalSpend, &a.TotalRevenue,
		&costPerLead, &conversionRate, &a.Metrics, &a.CreatedAt)
	if err != nil {
		return nil, err
	}

	a.PlatformType, err = platformPtr(platform)
	if err != nil {
		return nil, err
	}
	a.CostPerLead = decPtr(costPerLead)
	a.ConversionRate = decPtr(conversionRate)
	return &a, nil
}
