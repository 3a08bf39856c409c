package entity

import "errors"

// Sentinel errors surfaced by the storage layer. Validation failures never
// reach storage; these cover what only the database can decide.
var (
	ErrNotFound = errors.New("record not found")

	// Uniqueness conflicts.
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrDuplicateLead      = errors.New("lead already captured for this platform account")
	ErrBusinessExists     = errors.New("user already owns a business")

	// Referential integrity: a foreign key pointed at a row that does not
	// exist. Propagated unchanged, never retried.
	ErrReferencedRowMissing = errors.New("referenced record does not exist")

	// State violations enforced by the use-case layer.
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrPriceRange        = errors.New("price_min must not exceed price_max")
)
