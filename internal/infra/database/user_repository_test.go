package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/gmfernandes/leadflow/internal/entity"
)

func TestUserRepositoryCreateMapsEmailConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

	repo := NewUserRepository(db)
	err = repo.Create(context.Background(), entity.NewUser("taken@example.com", "Ana", "Lima", nil, "hash"))
	assert.ErrorIs(t, err, entity.ErrEmailAlreadyExists)
}

func TestUserRepositoryCreateUnknownConstraintPassesThrough(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_some_other_key"})

	repo := NewUserRepository(db)
	err = repo.Create(context.Background(), entity.NewUser("a@b.com", "Ana", "Lima", nil, "hash"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, entity.ErrEmailAlreadyExists)
}

func TestUserRepositoryFindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("ana@example.com").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "email", "first_name", "last_name", "phone", "password_hash",
			"is_active", "email_verified", "created_at", "updated_at",
		}).AddRow(int64(3), "ana@example.com", "Ana", "Lima", nil, "hash", true, false, now, now))

	repo := NewUserRepository(db)
	user, err := repo.FindByEmail(context.Background(), "ana@example.com")

	assert.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
	assert.Nil(t, user.Phone)
	assert.True(t, user.IsActive)
}

func TestUserRepositoryFindByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := NewUserRepository(db)
	_, err = repo.FindByID(context.Background(), 404)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestBusinessRepositoryCreateMapsOwnerConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO businesses").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "businesses_owner_id_key"})

	repo := NewBusinessRepository(db)
	biz := entity.NewBusiness(3, "Pipes R Us", entity.CategoryHomeServices, "Residential plumbing", "1 Main St", "Austin", "TX", "78701", nil, nil)
	err = repo.Create(context.Background(), biz)
	assert.ErrorIs(t, err, entity.ErrBusinessExists)
}
