// Package services contains the application services of the marketplace
// client. Each service derives requests from caller state, calls the remote
// API through api.Client, and normalizes responses for the views.
package services

import (
	"context"
	"fmt"

	"github.com/nuwanw/lankalist/internal/client/api"
	"github.com/nuwanw/lankalist/internal/client/session"
)

// AuthService defines authentication operations for the client.
//
// Contract:
//   - Login: exchange credentials for a token and establish the session.
//   - Register: create an account, then establish the session with its token.
//   - Logout: destroy the session.
//
// All methods honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
}

type authService struct {
	client  api.Client
	session *session.Store
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(client api.Client, sess *session.Store) AuthService {
	return &authService{client: client, session: sess}
}

func (a *authService) Login(ctx context.Context, email, password string) error {
	resp, err := a.client.LoginForm(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}
	return a.session.Login(ctx, resp.AccessToken, resp.Role)
}

// Register creates the account and logs straight in with the returned token.
// The register endpoint does not report a role; new accounts are plain users.
func (a *authService) Register(ctx context.Context, email, password string) error {
	resp, err := a.client.Register(ctx, email, password)
	if err != nil {
		return fmt.Errorf("registration error: %w", err)
	}
	return a.session.Login(ctx, resp.AccessToken, "user")
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}
