package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/polkiloo/foodbridge/internal/domain/errors"
	"github.com/polkiloo/foodbridge/internal/domain/model"
)

var userColumnNames = []string{"id", "email", "name", "role", "password_hash", "created_at"}

func TestUserRepository(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &userRepository{storage: storage}

	createdAt := time.Now()
	draft := model.User{Email: "ann@example.com", Name: "Ann", Role: model.RoleDonor, PasswordHash: "hash"}

	mock.ExpectQuery("INSERT INTO users").WithArgs("ann@example.com", "Ann", "donor", "hash").WillReturnRows(
		pgxmockv3.NewRows([]string{"id", "created_at"}).AddRow(donorID, createdAt),
	)
	user, err := repo.Create(context.Background(), draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != donorID || user.Email != "ann@example.com" || user.Role != model.RoleDonor {
		t.Fatalf("unexpected user: %+v", user)
	}

	mock.ExpectQuery("INSERT INTO users").WithArgs("ann@example.com", "Ann", "donor", "hash").WillReturnError(&pgconn.PgError{Code: "23505"})
	if _, err := repo.Create(context.Background(), draft); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists error, got %v", err)
	}

	mock.ExpectQuery("INSERT INTO users").WithArgs("ann@example.com", "Ann", "donor", "hash").WillReturnError(errors.New("other"))
	if _, err := repo.Create(context.Background(), draft); err == nil {
		t.Fatal("expected error")
	}

	mock.ExpectQuery("FROM users WHERE email=").WithArgs("ann@example.com").WillReturnRows(
		pgxmockv3.NewRows(userColumnNames).AddRow(donorID, "ann@example.com", "Ann", "donor", "hash", createdAt))
	found, err := repo.GetByEmail(context.Background(), "ann@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Role != model.RoleDonor || found.Name != "Ann" {
		t.Fatalf("unexpected user: %+v", found)
	}

	mock.ExpectQuery("FROM users WHERE email=").WithArgs("missing@example.com").WillReturnError(pgx.ErrNoRows)
	if _, err := repo.GetByEmail(context.Background(), "missing@example.com"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectQuery("FROM users WHERE id=").WithArgs(ngoID).WillReturnRows(
		pgxmockv3.NewRows(userColumnNames).AddRow(ngoID, "ngo@example.com", "Helpers", "ngo", "hash", createdAt))
	ngo, err := repo.GetByID(context.Background(), ngoID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ngo.Role != model.RoleNGO {
		t.Fatalf("expected ngo role, got %s", ngo.Role)
	}

	mock.ExpectQuery("FROM users WHERE id=").WithArgs(otherNGOID).WillReturnError(errors.New("boom"))
	if _, err := repo.GetByID(context.Background(), otherNGOID); err == nil || errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected store error, got %v", err)
	}

	if _, err := repo.GetByID(context.Background(), "42"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for malformed id, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}
