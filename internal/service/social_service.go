package service

import (
	"context"

	"warbler/internal/models"
	"warbler/internal/repository"
)

// SocialService manages the follow graph.
type SocialService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

// NewSocialService returns a new SocialService.
func NewSocialService(userRepo repository.UserRepository, followRepo repository.FollowRepository) *SocialService {
	return &SocialService{userRepo: userRepo, followRepo: followRepo}
}

// Follow makes followerID follow followeeID. Following yourself is rejected
// and following someone twice is a no-op.
func (s *SocialService) Follow(ctx context.Context, followerID, followeeID uint) error {
	if followerID == followeeID {
		return models.NewValidationError("You cannot follow yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, followeeID); err != nil {
		return err
	}
	return s.followRepo.Create(ctx, followerID, followeeID)
}

// Unfollow removes the follow edge if present.
func (s *SocialService) Unfollow(ctx context.Context, followerID, followeeID uint) error {
	if _, err := s.userRepo.GetByID(ctx, followeeID); err != nil {
		return err
	}
	return s.followRepo.Delete(ctx, followerID, followeeID)
}

// IsFollowing reports whether followerID currently follows followeeID.
func (s *SocialService) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.followRepo.Exists(ctx, followerID, followeeID)
}

// IsFollowedBy reports whether userID is followed by otherID. It is the
// mirror of IsFollowing: IsFollowedBy(a, b) == IsFollowing(b, a).
func (s *SocialService) IsFollowedBy(ctx context.Context, userID, otherID uint) (bool, error) {
	return s.followRepo.Exists(ctx, otherID, userID)
}

// Following lists the users userID follows, oldest follow first.
func (s *SocialService) Following(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.Following(ctx, userID)
}

// Followers lists the users following userID, oldest follow first.
func (s *SocialService) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.Followers(ctx, userID)
}
