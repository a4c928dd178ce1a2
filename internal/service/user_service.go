package service

import (
	"context"

	"warbler/internal/models"
	"warbler/internal/repository"
	"warbler/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles profile reads, edits, deletion and user search.
type UserService struct {
	userRepo    repository.UserRepository
	messageRepo repository.MessageRepository
	followRepo  repository.FollowRepository
}

// UpdateProfileInput carries the editable profile fields. The password is the
// caller's current password and is required to confirm the edit; it is never
// changed here.
type UpdateProfileInput struct {
	Username       string
	Email          string
	ImageURL       string
	HeaderImageURL string
	Bio            string
	Location       string
	Password       string
}

// ProfileMessagesLimit caps how many messages a profile page carries.
const ProfileMessagesLimit = 100

// Profile is a user together with their recent messages and counts.
type Profile struct {
	User           *models.User     `json:"user"`
	Messages       []models.Message `json:"messages"`
	MessageCount   int64            `json:"message_count"`
	FollowingCount int64            `json:"following_count"`
	FollowerCount  int64            `json:"follower_count"`
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, messageRepo repository.MessageRepository, followRepo repository.FollowRepository) *UserService {
	return &UserService{userRepo: userRepo, messageRepo: messageRepo, followRepo: followRepo}
}

// GetProfile returns the user's profile page data: the user, their newest
// messages and the aggregate counts.
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*Profile, error) {
	user, err := s.userRepo.GetByIDWithMessages(ctx, userID, ProfileMessagesLimit)
	if err != nil {
		return nil, err
	}

	messageCount, err := s.messageRepo.CountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	followingCount, err := s.followRepo.CountFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	followerCount, err := s.followRepo.CountFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		User:           user,
		Messages:       user.Messages,
		MessageCount:   messageCount,
		FollowingCount: followingCount,
		FollowerCount:  followerCount,
	}, nil
}

// UpdateProfile applies the edit after re-verifying the caller's password.
// A wrong password is unauthorized, not a validation failure.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)) != nil {
		return nil, models.NewUnauthorizedError("Invalid password")
	}

	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	user.Username = in.Username
	user.Email = in.Email
	user.Bio = in.Bio
	user.Location = in.Location
	if in.ImageURL != "" {
		user.ImageURL = in.ImageURL
	}
	if in.HeaderImageURL != "" {
		user.HeaderImageURL = in.HeaderImageURL
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount removes the user and everything attached to them.
func (s *UserService) DeleteAccount(ctx context.Context, userID uint) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, userID)
}

// Search returns users whose username contains the query. An empty query
// lists everyone, capped by the repository.
func (s *UserService) Search(ctx context.Context, query string, limit, offset int) ([]models.User, error) {
	return s.userRepo.Search(ctx, query, limit, offset)
}
