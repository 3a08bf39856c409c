package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/gmfernandes/leadflow/internal/entity"
)

// Constraint names the conflict mapper recognizes. They match schema.sql.
const (
	constraintUserEmail     = "users_email_key"
	constraintBusinessOwner = "businesses_owner_id_key"
	constraintLeadPlatform  = "leads_platform_account_id_platform_lead_id_key"
)

// mapPQError translates Postgres SQLSTATEs into the sentinel errors the
// use-case layer branches on. Anything unrecognized passes through wrapped.
func mapPQError(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case "23505": // unique_violation
		switch pqErr.Constraint {
		case constraintUserEmail:
			return entity.ErrEmailAlreadyExists
		case constraintBusinessOwner:
			return entity.ErrBusinessExists
		case constraintLeadPlatform:
			return entity.ErrDuplicateLead
		}
		return fmt.Errorf("unique violation on %s: %w", pqErr.Constraint, err)
	case "23503": // foreign_key_violation
		return fmt.Errorf("%s: %w", pqErr.Constraint, entity.ErrReferencedRowMissing)
	}

	return err
}

// Null scan helpers.

func strPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func timePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	return &v.Time
}

func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func decPtr(v decimal.NullDecimal) *decimal.Decimal {
	if !v.Valid {
		return nil
	}
	return &v.Decimal
}

func platformPtr(v sql.NullString) (*entity.PlatformType, error) {
	if !v.Valid {
		return nil, nil
	}
	p := entity.PlatformType(v.String)
	if !p.Valid() {
		return nil, fmt.Errorf("platform_type: unknown token %q in storage", v.String)
	}
	return &p, nil
}
