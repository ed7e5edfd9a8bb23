// Package session owns the cross-cutting authentication state: the bearer
// token and the identity derived from it. It is the only writer of that
// state; every other component reads it through accessors. State survives
// restarts via the local metadata store.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jmoiron/sqlx"

	"github.com/nuwanw/lankalist/internal/client/models"
	"github.com/nuwanw/lankalist/internal/client/repositories/metadata"
	"github.com/nuwanw/lankalist/internal/dbx"
	"github.com/nuwanw/lankalist/internal/logging"
)

const (
	keyToken = "token"
	keyUser  = "user"
)

// Store holds the current session. All mutation goes through Login, Logout
// and Restore; reads are plain accessors. The application is single-threaded
// event handling, so no locking is needed.
type Store struct {
	db  *sqlx.DB
	log logging.Logger

	token string
	user  *models.User
}

func NewStore(db *sqlx.DB, log logging.Logger) *Store {
	return &Store{db: db, log: log}
}

// Restore rehydrates the persisted session at startup. The application must
// not serve any screen before Restore returns. A corrupt persisted user blob
// drops the session instead of failing startup.
func (s *Store) Restore(ctx context.Context) error {
	repo := metadata.NewSQLiteRepository(s.db)

	token, err := repo.Get(ctx, keyToken)
	if err != nil {
		return fmt.Errorf("restoring session: %w", err)
	}
	userBlob, err := repo.Get(ctx, keyUser)
	if err != nil {
		return fmt.Errorf("restoring session: %w", err)
	}

	if len(token) == 0 || len(userBlob) == 0 {
		return nil
	}

	var user models.User
	if err := json.Unmarshal(userBlob, &user); err != nil {
		s.log.Warn(ctx, "dropping corrupt persisted session", "err", err)
		return s.Logout(ctx)
	}

	s.token = string(token)
	s.user = &user
	return nil
}

// Login decodes the token's payload to derive a display identity and
// persists the session. The payload is decoded WITHOUT signature
// verification: the result is for display only and must never back an
// authorization decision; the server enforces those.
//
// A malformed payload is logged and leaves the session unauthenticated;
// it does not crash the application.
func (s *Store) Login(ctx context.Context, token, role string) error {
	user, err := decodeUser(token, role)
	if err != nil {
		s.log.Error(ctx, "failed to decode token", "err", err)
		return nil
	}

	userBlob, err := json.Marshal(user)
	if err != nil {
		return err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, keyUser, userBlob)
	})
	if err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}

	s.token = token
	s.user = user
	return nil
}

// Logout clears the in-memory session and the persisted copy.
func (s *Store) Logout(ctx context.Context) error {
	s.token = ""
	s.user = nil

	repo := metadata.NewSQLiteRepository(s.db)
	return repo.Clear(ctx)
}

// Token returns the current bearer token, or "" when unauthenticated.
func (s *Store) Token() string { return s.token }

// User returns the derived display identity, or nil when unauthenticated.
func (s *Store) User() *models.User { return s.user }

// IsAuthenticated reports whether a token is held.
func (s *Store) IsAuthenticated() bool { return s.token != "" }

// IsAdmin reports whether the display identity carries the admin role.
// This gates client-side rendering only; the server is the real boundary.
func (s *Store) IsAdmin() bool {
	return s.user != nil && s.user.Role == "admin"
}

// decodeUser extracts id and email from the token payload without verifying
// the signature. Role comes from the login response, not the token.
func decodeUser(token, role string) (*models.User, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return nil, err
	}

	email, _ := claims["email"].(string)

	return &models.User{ID: sub, Email: email, Role: role}, nil
}
