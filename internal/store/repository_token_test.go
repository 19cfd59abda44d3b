package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/agrohive/agrigate/models"
)

func newTestTokenRepo(t *testing.T) (*tokenRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, mockDB := newTestDB(t)
	repo := &tokenRepository{db: db, logger: db.logger}
	return repo, mock, mockDB
}

func TestSaveToken_Success(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	ctx := context.Background()
	token := models.Token{
		ID:        "0190a8b2-5a90-7cc8-b4f2-2d76f4a0c111",
		UserID:    1,
		CreatedAt: time.Now(),
	}

	mock.ExpectExec("INSERT INTO tokens").
		WithArgs(token.ID, token.UserID, token.CreatedAt, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SaveToken(ctx, token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFindToken_Success(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"token_id", "user_id", "created_at", "expires_at"}).
		AddRow("abc-123", int64(9), now, nil)

	mock.ExpectQuery("SELECT token_id, user_id, created_at, expires_at FROM tokens").
		WithArgs("abc-123").
		WillReturnRows(rows)

	found, err := repo.FindToken(ctx, "abc-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != 9 {
		t.Errorf("expected UserID=9, got %d", found.UserID)
	}
	if found.ExpiresAt != nil {
		t.Errorf("expected nil ExpiresAt, got %v", found.ExpiresAt)
	}
}

func TestFindToken_NotFound(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT token_id, user_id, created_at, expires_at FROM tokens").
		WithArgs("gone").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindToken(ctx, "gone")
	if !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}
}

func TestDeleteToken_Success(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM tokens").
		WithArgs("abc-123").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteToken(ctx, "abc-123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteToken_AlreadyGone(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM tokens").
		WithArgs("gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteToken(ctx, "gone")
	if !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}
}
