package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/agrohive/agrigate/internal/logger"
	"github.com/agrohive/agrigate/internal/mock"
	"github.com/agrohive/agrigate/internal/store"
	"github.com/agrohive/agrigate/models"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	mockUsers := mock.NewMockUserRepository(ctrl)

	return NewAuthService(mockUsers, logger.Nop()), mockUsers
}

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Name:                 "Ravi Kumar",
		Email:                "ravi@example.com",
		Password:             "growmaize1",
		PasswordConfirmation: "growmaize1",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	req := validRegisterRequest()

	gomock.InOrder(
		mockUsers.EXPECT().FindUserByEmail(ctx, req.Email).Return(models.User{}, store.ErrNoUserWasFound),
		mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, req.Name, u.Name)
				assert.Equal(t, req.Email, u.Email)
				assert.NotEqual(t, req.Password, u.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)))

				u.UserID = 1
				return u, nil
			},
		),
	)

	created, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
}

func TestAuthService_Register_ValidationOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.RegisterRequest)
		message string
	}{
		{
			name:    "missing name",
			mutate:  func(r *models.RegisterRequest) { r.Name = "" },
			message: "The name field is required.",
		},
		{
			name:    "missing email",
			mutate:  func(r *models.RegisterRequest) { r.Email = "" },
			message: "The email field is required.",
		},
		{
			name:    "malformed email",
			mutate:  func(r *models.RegisterRequest) { r.Email = "not-an-email" },
			message: "The email field must be a valid email address.",
		},
		{
			name: "name reported before email",
			mutate: func(r *models.RegisterRequest) {
				r.Name = ""
				r.Email = ""
			},
			message: "The name field is required.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(&req)

			_, err := svc.Register(ctx, req)
			require.Error(t, err)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.message, vErr.Message)
		})
	}
}

func TestAuthService_Register_PasswordRules(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.RegisterRequest)
		message string
	}{
		{
			name: "missing password",
			mutate: func(r *models.RegisterRequest) {
				r.Password = ""
				r.PasswordConfirmation = ""
			},
			message: "The password field is required.",
		},
		{
			name: "short password",
			mutate: func(r *models.RegisterRequest) {
				r.Password = "short"
				r.PasswordConfirmation = "short"
			},
			message: "The password field must be at least 8 characters.",
		},
		{
			name:    "confirmation mismatch",
			mutate:  func(r *models.RegisterRequest) { r.PasswordConfirmation = "different1" },
			message: "The password field confirmation does not match.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(&req)

			// password checks run after the email uniqueness lookup
			mockUsers.EXPECT().FindUserByEmail(ctx, req.Email).Return(models.User{}, store.ErrNoUserWasFound)

			_, err := svc.Register(ctx, req)
			require.Error(t, err)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.message, vErr.Message)
		})
	}
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	req := validRegisterRequest()

	mockUsers.EXPECT().FindUserByEmail(ctx, req.Email).Return(models.User{UserID: 7, Email: req.Email}, nil)

	_, err := svc.Register(ctx, req)
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "The email has already been taken.", vErr.Message)
}

func TestAuthService_Register_RaceOnUniqueConstraint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	req := validRegisterRequest()

	// another registration slips in between the pre-check and the insert
	gomock.InOrder(
		mockUsers.EXPECT().FindUserByEmail(ctx, req.Email).Return(models.User{}, store.ErrNoUserWasFound),
		mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists),
	)

	_, err := svc.Register(ctx, req)
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "The email has already been taken.", vErr.Message)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("growmaize1"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := models.User{
		UserID:       3,
		Name:         "Ravi Kumar",
		Email:        "ravi@example.com",
		PasswordHash: string(hash),
	}

	mockUsers.EXPECT().FindUserByEmail(ctx, stored.Email).Return(stored, nil)

	found, err := svc.Login(ctx, models.LoginRequest{Email: stored.Email, Password: "growmaize1"})
	require.NoError(t, err)
	assert.Equal(t, stored.UserID, found.UserID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByEmail(ctx, "ghost@example.com").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "ghost@example.com", Password: "whatever1"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)

	mockUsers.EXPECT().FindUserByEmail(ctx, "ravi@example.com").
		Return(models.User{UserID: 3, Email: "ravi@example.com", PasswordHash: string(hash)}, nil)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "ravi@example.com", Password: "wrong-password"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_ShapeValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Login(ctx, models.LoginRequest{Email: "", Password: "something1"})
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "The email field is required.", vErr.Message)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "ravi@example.com", Password: ""})
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "The password field is required.", vErr.Message)
}
