// Package service implements the application's business rules. Every
// operation takes the acting identity as an explicit parameter; nothing in
// this package reads ambient request state.
package service

import (
	"context"

	"warbler/internal/models"
	"warbler/internal/repository"
	"warbler/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// AuthService provides signup and credential verification.
type AuthService struct {
	userRepo repository.UserRepository
}

// SignupInput carries the fields accepted at account creation.
type SignupInput struct {
	Username string
	Email    string
	Password string
	ImageURL string
}

// NewAuthService returns a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Signup validates the input, hashes the password and persists the new user.
// A username or email collision surfaces as a validation error and nothing is
// committed.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	imageURL := in.ImageURL
	if imageURL == "" {
		imageURL = models.DefaultImageURL
	}

	user := &models.User{
		Username:       in.Username,
		Email:          in.Email,
		Password:       string(hashed),
		ImageURL:       imageURL,
		HeaderImageURL: models.DefaultHeaderImageURL,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies username and password. An unknown username and a
// wrong password are indistinguishable: both return (nil, nil).
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, nil
	}
	return user, nil
}
