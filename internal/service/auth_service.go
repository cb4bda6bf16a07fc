package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"filebox/internal/domain"
	"filebox/internal/platform/crypto"
	"filebox/internal/store"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// sessionTTL is the fixed lifetime of a session token.
const sessionTTL = 24 * time.Hour

// AuthService defines the interface for the session authority. It exclusively
// owns the token -> user mapping; every protected operation passes through
// Resolve.
type AuthService interface {
	// Authenticate checks the credentials and, on success, mints a fresh
	// session. On absent user or bad password it fails with
	// ErrInvalidCredentials and no token is minted.
	Authenticate(ctx context.Context, email, password string) (*domain.Session, error)

	// Resolve returns the identity a token authorizes, or ErrUnauthorized if
	// the token is missing, expired, or malformed.
	Resolve(ctx context.Context, token string) (bson.ObjectID, error)

	// Revoke deletes the session and reports whether one existed. Revoking
	// twice is not an error; the second call simply reports false.
	Revoke(ctx context.Context, token string) (bool, error)
}

// authService is the concrete implementation of the AuthService interface.
type authService struct {
	userStore    store.UserStore
	sessionStore store.SessionStore
	tokenGen     crypto.TokenGenerator
	passSvc      crypto.PasswordManager
}

// NewAuthService creates a new instance of the session authority.
func NewAuthService(
	userStore store.UserStore,
	sessionStore store.SessionStore,
	tokenGen crypto.TokenGenerator,
	passSvc crypto.PasswordManager,
) AuthService {
	return &authService{
		userStore:    userStore,
		sessionStore: sessionStore,
		tokenGen:     tokenGen,
		passSvc:      passSvc,
	}
}

// Authenticate looks up the user, compares the password digest, and stores a
// fresh token in the session cache with the fixed 24-hour expiry.
func (s *authService) Authenticate(ctx context.Context, email, password string) (*domain.Session, error) {
	user, err := s.userStore.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.passSvc.Compare(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokenGen.New()
	if err != nil {
		return nil, fmt.Errorf("failed to mint session token: %w", err)
	}

	expiresAt := time.Now().Add(sessionTTL)
	if err := s.sessionStore.Set(ctx, token, user.ID.Hex(), sessionTTL); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return &domain.Session{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: expiresAt,
	}, nil
}

// Resolve is a pure cache lookup. Anything other than a well-formed, live
// entry maps to ErrUnauthorized.
func (s *authService) Resolve(ctx context.Context, token string) (bson.ObjectID, error) {
	if token == "" {
		return bson.ObjectID{}, ErrUnauthorized
	}

	userID, err := s.sessionStore.Get(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return bson.ObjectID{}, ErrUnauthorized
		}
		return bson.ObjectID{}, err
	}

	id, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return bson.ObjectID{}, ErrUnauthorized
	}

	return id, nil
}

// Revoke deletes the cache entry for a token.
func (s *authService) Revoke(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	return s.sessionStore.Del(ctx, token)
}
