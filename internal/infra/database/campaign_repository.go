package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/gmfernandes/leadflow/internal/entity"
)

type CampaignRepository struct {
	DB *sql.DB
}

func NewCampaignRepository(db *sql.DB) *CampaignRepository {
	return &CampaignRepository{DB: db}
}

func (r *CampaignRepository) Create(ctx context.Context, c *entity.Campaign) error {
	query := `
		INSERT INTO campaigns (platform_account_id, name, campaign_type, budget,
			target_keywords, target_location, settings, is_active, started_at,
			ended_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	err := r.DB.QueryRowContext(ctx, query,
		c.PlatformAccountID, c.Name, c.CampaignType, c.Budget,
		c.TargetKeywords, c.TargetLocation, c.Settings, c.IsActive,
		c.StartedAt, c.EndedAt, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)

	return mapPQError(err)
}

const campaignColumns = `id, platform_account_id, name, campaign_type, budget,
	target_keywords, target_location, settings, is_active, started_at, ended_at,
	created_at, updated_at`

func (r *CampaignRepository) FindByID(ctx context.Context, id int64) (*entity.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`

	c, err := scanCampaign(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return c, err
}

func (r *CampaignRepository) ListByPlatformAccountID(ctx context.Context, platformAccountID int64) ([]*entity.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE platform_account_id = $1 ORDER BY id`

	rows, err := r.DB.QueryContext(ctx, query, platformAccountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []*entity.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

func (r *CampaignRepository) Update(ctx context.Context, c *entity.Campaign) error {
	query := `
		UPDATE campaigns
		SET name = $1, budget = $2, target_keywords = $3, target_location = $4,
			settings = $5, is_active = $6, started_at = $7, ended_at = $8, updated_at = $9
		WHERE id = $10
	`

	res, err := r.DB.ExecContext(ctx, query,
		c.Name, c.Budget, c.TargetKeywords, c.TargetLocation,
		c.Settings, c.IsActive, c.StartedAt, c.EndedAt, c.UpdatedAt, c.ID)
	if err != nil {
		return mapPQError(err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func scanCampaign(row rowScanner) (*entity.Campaign, error) {
	var c entity.Campaign
	var budget decimal.NullDecimal
	var startedAt, endedAt sql.NullTime

	err := row.Scan(&c.ID, &c.PlatformAccountID, &c.Name, &c.CampaignType,
		&budget, &c.TargetKeywords, &c.TargetLocation, &c.Settings, &c.IsActive,
		&startedAt, &endedAt, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}

	c.Budget = decPtr(budget)
	c.StartedAt = timePtr(startedAt)
	c.EndedAt = timePtr(endedAt)
	return &c, nil
}
