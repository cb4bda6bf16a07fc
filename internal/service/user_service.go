package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"filebox/internal/domain"
	"filebox/internal/platform/crypto"
	"filebox/internal/store"
)

// UserService defines the interface for user-related business logic.
type UserService interface {
	// Register creates a new account. A taken email fails with
	// store.ErrConflict and leaves the existing record untouched.
	Register(ctx context.Context, email, password string) (*domain.User, error)

	// GetMe resolves the token and returns the authenticated user.
	GetMe(ctx context.Context, token string) (*domain.User, error)
}

// userService is the concrete implementation of the UserService interface.
type userService struct {
	userStore store.UserStore
	authSvc   AuthService
	passSvc   crypto.PasswordManager
}

// NewUserService creates a new instance of the user service.
func NewUserService(userStore store.UserStore, authSvc AuthService, passSvc crypto.PasswordManager) UserService {
	return &userService{
		userStore: userStore,
		authSvc:   authSvc,
		passSvc:   passSvc,
	}
}

// Register handles the business logic for creating a new account. Uniqueness
// is the store's responsibility; there is no check-then-insert here, so two
// concurrent registrations cannot both slip past a pre-check.
func (s *userService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" {
		return nil, &MissingFieldError{Field: "email"}
	}
	if password == "" {
		return nil, &MissingFieldError{Field: "password"}
	}

	hashedPassword, err := s.passSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now(),
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetMe returns the user behind a session token. A dangling session whose
// user record vanished maps to ErrUnauthorized rather than not-found.
func (s *userService) GetMe(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.authSvc.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.userStore.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	return user, nil
}
