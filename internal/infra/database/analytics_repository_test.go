package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/gmfernandes/leadflow/internal/entity"
)

func TestAnalyticsRepositoryUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	platform := entity.PlatformGoogleAds
	snap := entity.NewAnalytics(7, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), &platform)
	snap.LeadsCount = 14

	storedAt := time.Date(2026, 8, 29, 6, 0, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO analytics (.+) ON CONFLICT").
		WithArgs(
			snap.BusinessID, snap.Date, "google_ads", 14,
			0, 0, sqlmock.AnyArg(), sqlmock.AnyArg(),
			nil, nil, sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(31), storedAt))

	repo := NewAnalyticsRepository(db)
	assert.NoError(t, repo.Upsert(context.Background(), snap))

	// The bucket already existed: the row keeps its original identity.
	assert.Equal(t, int64(31), snap.ID)
	assert.Equal(t, storedAt, snap.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepositoryUpsertAggregateBucket(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	snap := entity.NewAnalytics(7, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), nil)

	mock.ExpectQuery("INSERT INTO analytics").
		WithArgs(
			snap.BusinessID, snap.Date, nil, 0,
			0, 0, sqlmock.AnyArg(), sqlmock.AnyArg(),
			nil, nil, sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(32), snap.CreatedAt))

	repo := NewAnalyticsRepository(db)
	assert.NoError(t, repo.Upsert(context.Background(), snap))
	assert.Equal(t, int64(32), snap.ID)
}

func analyticsRow(platform any) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "business_id", "date", "platform_type", "leads_count",
		"qualified_leads_count", "converted_leads_count", "total_spend", "total_revenue",
		"cost_per_lead", "conversion_rate", "metrics", "created_at",
	}).AddRow(
		int64(31), int64(7), time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), platform, 14,
		5, 2, "120.00", "800.00",
		"8.57", "0.1429", []byte(`{}`), time.Now(),
	)
}

func TestAnalyticsRepositoryFindCoalescesPlatform(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	date := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	// Aggregate bucket: the nil platform queries as ''.
	mock.ExpectQuery("SELECT (.+) FROM analytics").
		WithArgs(int64(7), date, "").
		WillReturnRows(analyticsRow(nil))

	repo := NewAnalyticsRepository(db)
	snap, err := repo.Find(context.Background(), 7, date, nil)

	assert.NoError(t, err)
	assert.Nil(t, snap.PlatformType)
	assert.Equal(t, 14, snap.LeadsCount)
	assert.Equal(t, "0.1429", snap.ConversionRate.String())
}

func TestAnalyticsRepositoryFindRejectsDriftedPlatformToken(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	date := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT (.+) FROM analytics").
		WillReturnRows(analyticsRow("yellowpages"))

	repo := NewAnalyticsRepository(db)
	_, err = repo.Find(context.Background(), 7, date, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown token")
}
