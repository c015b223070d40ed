package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"catalogo/internal/repository"
)

// handlerからusecaseに渡す入力
type LoginInput struct {
	Email    string
	Password string
}

// handlerがJSONにして返す
type LoginOutput struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	CatalogID   int64     `json:"catalog_id"`
}

// メールまたはパスワードが違う
var ErrInvalidCredentials = errors.New("invalid credentials")

// 停止済み管理者
var ErrAdminInactive = errors.New("admin is inactive")

// JWTを発行する約束
type AccessTokenIssuer interface {
	Issue(adminID int64, catalogID int64, now time.Time) (token string, expiresAt time.Time, err error)
}

// 入力パスワードと保存したハッシュを比べる約束
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

// 現在時刻の注入口
type Clock interface {
	Now() time.Time
}

type LoginUsecase struct {
	adminRepo repository.AdminRepository
	verifier  PasswordVerifier
	issuer    AccessTokenIssuer
	clock     Clock
}

func NewLoginUsecase(
	adminRepo repository.AdminRepository,
	verifier PasswordVerifier,
	issuer AccessTokenIssuer,
	clock Clock,
) *LoginUsecase {
	return &LoginUsecase{
		adminRepo: adminRepo,
		verifier:  verifier,
		issuer:    issuer,
		clock:     clock,
	}
}

// ログイン処理を実行する。照合は必ずサーバー側で行う。
func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (LoginOutput, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || in.Password == "" {
		return LoginOutput{}, ErrInvalidCredentials
	}

	admin, err := u.adminRepo.FindByEmail(ctx, email)
	if err == repository.ErrNotFound {
		// 存在有無を悟らせない
		return LoginOutput{}, ErrInvalidCredentials
	}
	if err != nil {
		return LoginOutput{}, err
	}

	if !admin.IsActive {
		return LoginOutput{}, ErrAdminInactive
	}

	if !u.verifier.Verify(in.Password, admin.PasswordHash) {
		return LoginOutput{}, ErrInvalidCredentials
	}

	token, expiresAt, err := u.issuer.Issue(admin.ID, admin.CatalogID, u.clock.Now())
	if err != nil {
		return LoginOutput{}, err
	}

	return LoginOutput{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		CatalogID:   admin.CatalogID,
	}, nil
}
