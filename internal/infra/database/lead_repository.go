package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/gmfernandes/leadflow/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// Create inserts the lead. The unique key on (platform_account_id,
// platform_lead_id) is what rejects a duplicate sync of the same platform
// lead; that conflict comes back as entity.ErrDuplicateLead.
func (r *LeadRepository) Create(ctx context.Context, l *entity.Lead) error {
	query := `
		INSERT INTO leads (business_id, platform_account_id, campaign_id, service_id,
			customer_name, customer_email, customer_phone, title, description,
			budget, location, status, platform_lead_id, platform_data,
			cost, conversion_value, converted_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id
	`

	err := r.DB.QueryRowContext(ctx, query,
		l.BusinessID, l.PlatformAccountID, l.CampaignID, l.ServiceID,
		l.CustomerName, l.CustomerEmail, l.CustomerPhone, l.Title, l.Description,
		l.Budget, l.Location, l.Status, l.PlatformLeadID, l.PlatformData,
		l.Cost, l.ConversionValue, l.ConvertedAt, l.CreatedAt, l.UpdatedAt,
	).Scan(&l.ID)

	return mapPQError(err)
}

const leadColumns = `id, business_id, platform_account_id, campaign_id, service_id,
	customer_name, customer_email, customer_phone, title, description, budget,
	location, status, platform_lead_id, platform_data, cost, conversion_value,
	converted_at, created_at, updated_at`

func (r *LeadRepository) FindByID(ctx context.Context, id int64) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	l, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return l, err
}

func (r *LeadRepository) ListByBusinessID(ctx context.Context, businessID int64, status *entity.LeadStatus) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE business_id = $1`
	args := []any{businessID}

	if status != nil {
		query += ` AND status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

func (r *LeadRepository) Update(ctx context.Context, l *entity.Lead) error {
	query := `
		UPDATE leads
		SET campaign_id = $1, service_id = $2, customer_name = $3,
			customer_email = $4, customer_phone = $5, title = $6, description = $7,
			budget = $8, location = $9, status = $10, platform_data = $11,
			cost = $12, conversion_value = $13, converted_at = $14, updated_at = $15
		WHERE id = $16
	`

	res, err := r.DB.ExecContext(ctx, query,
		l.CampaignID, l.ServiceID, l.CustomerName, l.CustomerEmail, l.CustomerPhone,
		l.Title, l.Description, l.Budget, l.Location, l.Status, l.PlatformData,
		l.Cost, l.ConversionValue, l.ConvertedAt, l.UpdatedAt, l.ID)
	if err != nil {
		return mapPQError(err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var l entity.Lead
	var campaignID, serviceID sql.NullInt64
	var customerEmail, customerPhone sql.NullString
	var budget, cost, conversionValue decimal.NullDecimal
	var convertedAt sql.NullTime

	err := row.Scan(&l.ID, &l.BusinessID, &l.PlatformAccountID, &campaignID, &serviceID,
		&l.CustomerName, &customerEmail, &customerPhone, &l.Title, &l.Description,
		&budget, &l.Location, &l.Status, &l.PlatformLeadID, &l.PlatformData,
		&cost, &conversionValue, &convertedAt, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}

	l.CampaignID = int64Ptr(campaignID)
	l.ServiceID = int64Ptr(serviceID)
	l.CustomerEmail = strPtr(customerEmail)
	l.CustomerPhone = strPtr(customerPhone)
	l.Budget = decPtr(budget)
	l.Cost = decPtr(cost)
	l.ConversionValue = decPtr(conversionValue)
	l.ConvertedAt = timePtr(convertedAt)
	return &l, nil
}
