package backend

import (
	"context"

	"carezone-storefront/internal/domain"
)

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResult, error) {
	var result domain.AuthResult
	if err := c.postJSON(ctx, "/api/Auth/login", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Register creates an account and logs it in.
func (c *Client) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResult, error) {
	var result domain.AuthResult
	if err := c.postJSON(ctx, "/api/Auth/register", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetProfile fetches the authenticated user's profile.
func (c *Client) GetProfile(ctx context.Context) (*domain.Profile, error) {
	var profile domain.Profile
	if err := c.get(ctx, "/api/Auth/profile", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile saves profile edits for the authenticated user.
func (c *Client) UpdateProfile(ctx context.Context, profile domain.Profile) error {
	return c.putJSON(ctx, "/api/Auth/profile", profile, nil)
}
