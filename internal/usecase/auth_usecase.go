package usecase

import (
	"context"

	"carezone-storefront/internal/domain"
	"carezone-storefront/pkg/kv"
	"carezone-storefront/pkg/utils"
)

// AuthGateway is the slice of the backend client auth needs.
type AuthGateway interface {
	Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResult, error)
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResult, error)
	GetProfile(ctx context.Context) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, profile domain.Profile) error
}

// AuthUsecase manages the session token and proxies account operations.
// The token persists under the primary key; the legacy key is still read
// as a fallback for sessions written by older clients.
type AuthUsecase struct {
	gateway AuthGateway
	store   kv.Store
}

func NewAuthUsecase(gateway AuthGateway, store kv.Store) *AuthUsecase {
	return &AuthUsecase{
		gateway: gateway,
		store:   store,
	}
}

// Token returns the current session token, "" when logged out.
func (u *AuthUsecase) Token() string {
	if raw, ok := u.store.Get(domain.StorageKeyToken); ok && len(raw) > 0 {
		return string(raw)
	}
	if raw, ok := u.store.Get(domain.StorageKeyUserToken); ok && len(raw) > 0 {
		return string(raw)
	}
	return ""
}

// IsLoggedIn reports whether a session token is present.
func (u *AuthUsecase) IsLoggedIn() bool {
	return u.Token() != ""
}

// IsAdmin reports whether the current token carries an admin role claim.
// The token payload is parsed without signature verification; the backend
// remains the authority on every admin call.
func (u *AuthUsecase) IsAdmin() bool {
	token := u.Token()
	if token == "" {
		return false
	}
	if _, err := utils.ParseClaims(token); err != nil {
		return false
	}
	return utils.HasAdminRole(token)
}

// Login authenticates and persists the returned token.
func (u *AuthUsecase) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResult, error) {
	result, err := u.gateway.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	if result.Token != "" {
		u.store.Set(domain.StorageKeyToken, []byte(result.Token))
	}
	return result, nil
}

// Register creates an account and persists the returned token.
func (u *AuthUsecase) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResult, error) {
	result, err := u.gateway.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	if result.Token != "" {
		u.store.Set(domain.StorageKeyToken, []byte(result.Token))
	}
	return result, nil
}

// Logout drops the session token, legacy key included.
func (u *AuthUsecase) Logout() {
	u.store.Remove(domain.StorageKeyToken)
	u.store.Remove(domain.StorageKeyUserToken)
}

func (u *AuthUsecase) GetProfile(ctx context.Context) (*domain.Profile, error) {
	return u.gateway.GetProfile(ctx)
}

func (u *AuthUsecase) UpdateProfile(ctx context.Context, profile domain.Profile) error {
	return u.gateway.UpdateProfile(ctx, profile)
}
