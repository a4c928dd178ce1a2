package service

import (
	"context"

	"warbler/internal/models"
	"warbler/internal/repository"
)

// EngagementService covers messages and likes.
type EngagementService struct {
	userRepo    repository.UserRepository
	messageRepo repository.MessageRepository
	likeRepo    repository.LikeRepository
}

// NewEngagementService returns a new EngagementService.
func NewEngagementService(userRepo repository.UserRepository, messageRepo repository.MessageRepository, likeRepo repository.LikeRepository) *EngagementService {
	return &EngagementService{userRepo: userRepo, messageRepo: messageRepo, likeRepo: likeRepo}
}

// PostMessage creates a message authored by userID. Length limits are
// enforced at persistence so every write path shares them.
func (s *EngagementService) PostMessage(ctx context.Context, userID uint, text string) (*models.Message, error) {
	msg := &models.Message{UserID: userID, Text: text}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return s.messageRepo.GetByID(ctx, msg.ID)
}

// GetMessage returns a single message with its author and like count, and
// whether viewerID has liked it. viewerID zero means no viewer.
func (s *EngagementService) GetMessage(ctx context.Context, messageID, viewerID uint) (*models.Message, error) {
	msg, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return nil, err
	}

	count, err := s.likeRepo.CountForMessage(ctx, messageID)
	if err != nil {
		return nil, err
	}
	msg.LikesCount = int(count)

	if viewerID != 0 {
		liked, err := s.likeRepo.IsLiked(ctx, viewerID, messageID)
		if err != nil {
			return nil, err
		}
		msg.Liked = liked
	}
	return msg, nil
}

// DeleteMessage removes a message. Only the author may delete it.
func (s *EngagementService) DeleteMessage(ctx context.Context, actorID, messageID uint) error {
	msg, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}
	if msg.UserID != actorID {
		return models.NewForbiddenError("You can only delete your own messages")
	}
	return s.messageRepo.Delete(ctx, messageID)
}

// ToggleLike flips actorID's like on the message. Liking your own message is
// forbidden.
func (s *EngagementService) ToggleLike(ctx context.Context, actorID, messageID uint) (models.LikeState, error) {
	msg, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return "", err
	}
	if msg.UserID == actorID {
		return "", models.NewForbiddenError("You cannot like your own message")
	}
	return s.likeRepo.Toggle(ctx, actorID, messageID)
}

// LikedMessages lists the messages userID has liked, most recent like first.
func (s *EngagementService) LikedMessages(ctx context.Context, userID uint) ([]models.Message, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	msgs, err := s.likeRepo.LikedMessages(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range msgs {
		msgs[i].Liked = true
	}
	return msgs, nil
}
