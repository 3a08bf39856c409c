package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gmfernandes/leadflow/internal/entity"
)

type RecommendationRepository struct {
	DB *sql.DB
}

func NewRecommendationRepository(db *sql.DB) *RecommendationRepository {
	return &RecommendationRepository{DB: db}
}

func (r *RecommendationRepository) Create(ctx context.Context, rec *entity.Recommendation) error {
	query := `
		INSERT INTO recommendations (business_id, type, title, description,
			priority, impact_score, data, is_dismissed, dismissed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := r.DB.QueryRowContext(ctx, query,
		rec.BusinessID, rec.Type, rec.Title, rec.Description,
		rec.Priority, rec.ImpactScore, rec.Data, rec.IsDismissed, rec.DismissedAt,
		rec.CreatedAt,
	).Scan(&rec.ID)

	return mapPQError(err)
}

const recommendationColumns = `id, business_id, type, title, description,
	priority, impact_score, data, is_dismissed, dismissed_at, created_at`

func (r *RecommendationRepository) FindByID(ctx context.Context, id int64) (*entity.Recommendation, error) {
	query := `SELECT ` + recommendationColumns + ` FROM recommendations WHERE id = $1`

	rec, err := scanRecommendation(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return rec, err
}

func (r *RecommendationRepository) ListActiveByBusinessID(ctx context.Context, businessID int64) ([]*entity.Recommendation, error) {
	query := `SELECT ` + recommendationColumns + `
		FROM recommendations
		WHERE business_id = $1 AND is_dismissed = FALSE
		ORDER BY priority, created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*entity.Recommendation
	for rows.Next() {
		rec, err := scanRecommendation(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// Update only touches dismissal state; everything else on a recommendation
// is immutable once created.
func (r *RecommendationRepository) Update(ctx context.Context, rec *entity.Recommendation) error {
	query := `UPDATE recommendations SET is_dismissed = $1, dismissed_at = $2 WHERE id = $3`

	res, err := r.DB.ExecContext(ctx, query, rec.IsDismissed, rec.DismissedAt, rec.ID)
	if err != nil {
		return mapPQError(err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func scanRecommendation(row rowScanner) (*entity.Recommendation, error) {
	var rec entity.Recommendation
	var impactScore sql.NullInt64
	var dismissedAt sql.NullTime

	err := row.Scan(&rec.ID, &rec.BusinessID, &rec.Type, &rec.Title, &rec.Description,
		&rec.Priority, &impactScore, &rec.Data, &rec.IsDismissed, &dismissedAt,
		&rec.CreatedAt)
	if err != nil {
		return nil, err
	}

	rec.ImpactScore = intPtr(impactScore)
	rec.DismissedAt = timePtr(dismissedAt)
	return &rec, nil
}
