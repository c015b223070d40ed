package auth_test

import (
	"context"
	"testing"
	"time"

	"catalogo/internal/domain/model"
	"catalogo/internal/repository"
	auth "catalogo/internal/usecase/auth_usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type AdminRepoMock struct{ mock.Mock }

func (m *AdminRepoMock) FindByEmail(ctx context.Context, email string) (model.Admin, error) {
	args := m.Called(ctx, email)
	a, _ := args.Get(0).(model.Admin)
	return a, args.Error(1)
}

type issuerMock struct{ mock.Mock }

func (m *issuerMock) Issue(adminID int64, catalogID int64, now time.Time) (string, time.Time, error) {
	args := m.Called(adminID, catalogID, now)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var loginNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestLoginUsecase_InvalidCredentials_WhenNotFound(t *testing.T) {
	adminRepo := new(AdminRepoMock)
	uc := auth.NewLoginUsecase(adminRepo, auth.NewBcryptPasswordVerifier(), new(issuerMock), fixedClock{t: loginNow})

	adminRepo.On("FindByEmail", mock.Anything, "ana@example.com").
		Return(model.Admin{}, repository.ErrNotFound)

	_, err := uc.Execute(context.Background(), auth.LoginInput{Email: "Ana@Example.com ", Password: "pw"})
	assert.Equal(t, auth.ErrInvalidCredentials, err)
}

func TestLoginUsecase_InvalidCredentials_WhenWrongPassword(t *testing.T) {
	adminRepo := new(AdminRepoMock)
	hasher := auth.NewBcryptPasswordHasher(4)
	hash, _ := hasher.Hash("correct")

	uc := auth.NewLoginUsecase(adminRepo, auth.NewBcryptPasswordVerifier(), new(issuerMock), fixedClock{t: loginNow})

	adminRepo.On("FindByEmail", mock.Anything, "ana@example.com").
		Return(model.Admin{ID: 1, Email: "ana@example.com", PasswordHash: hash, IsActive: true}, nil)

	_, err := uc.Execute(context.Background(), auth.LoginInput{Email: "ana@example.com", Password: "wrong"})
	assert.Equal(t, auth.ErrInvalidCredentials, err)
}

func TestLoginUsecase_Inactive(t *testing.T) {
	adminRepo := new(AdminRepoMock)
	uc := auth.NewLoginUsecase(adminRepo, auth.NewBcryptPasswordVerifier(), new(issuerMock), fixedClock{t: loginNow})

	adminRepo.On("FindByEmail", mock.Anything, "ana@example.com").
		Return(model.Admin{ID: 1, Email: "ana@example.com", IsActive: false}, nil)

	_, err := uc.Execute(context.Background(), auth.LoginInput{Email: "ana@example.com", Password: "pw"})
	assert.Equal(t, auth.ErrAdminInactive, err)
}

func TestLoginUsecase_Success(t *testing.T) {
	adminRepo := new(AdminRepoMock)
	issuer := new(issuerMock)
	hasher := auth.NewBcryptPasswordHasher(4)
	hash, _ := hasher.Hash("correct")

	uc := auth.NewLoginUsecase(adminRepo, auth.NewBcryptPasswordVerifier(), issuer, fixedClock{t: loginNow})

	adminRepo.On("FindByEmail", mock.Anything, "ana@example.com").
		Return(model.Admin{ID: 1, CatalogID: 3, Email: "ana@example.com", PasswordHash: hash, IsActive: true}, nil)

	expiresAt := loginNow.Add(24 * time.Hour)
	issuer.On("Issue", int64(1), int64(3), loginNow).Return("token123", expiresAt, nil)

	out, err := uc.Execute(context.Background(), auth.LoginInput{Email: "ana@example.com", Password: "correct"})
	assert.NoError(t, err)
	assert.Equal(t, "token123", out.AccessToken)
	assert.Equal(t, expiresAt, out.ExpiresAt)
	assert.Equal(t, int64(3), out.CatalogID)

	adminRepo.AssertExpectations(t)
	issuer.AssertExpectations(t)
}
