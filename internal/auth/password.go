package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/caretrack/wellness/internal/models"
	"github.com/caretrack/wellness/internal/storage"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already registered")
)

// UserStorage is the slice of the store the authenticator needs. Keeping it
// narrow lets the authenticator stay independent of the full Store interface.
type UserStorage interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// PasswordAuthenticator implements password-based registration and login
// using bcrypt. The plaintext password never reaches the store: only the
// hash is placed on the user record.
type PasswordAuthenticator struct {
	storage UserStorage
}

// NewPasswordAuthenticator creates a password-based authenticator backed by
// the given user storage.
func NewPasswordAuthenticator(storage UserStorage) *PasswordAuthenticator {
	return &PasswordAuthenticator{storage: storage}
}

// Register creates a new account with a hashed password. The email must not
// already be registered (compared case-insensitively by the store).
func (a *PasswordAuthenticator) Register(ctx context.Context, insert models.InsertUser) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(insert.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        insert.Email,
		PasswordHash: string(hashed),
		Name:         insert.Name,
		Role:         insert.Role,
		Profile: models.Profile{
			Allergies:   []string{},
			Medications: []string{},
		},
		DataConsent: insert.DataConsent,
	}

	if err := a.storage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrEmailExists) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate verifies the email and password, returning the user if valid.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := a.storage.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
