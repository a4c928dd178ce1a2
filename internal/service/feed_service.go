package service

import (
	"context"

	"warbler/internal/models"
	"warbler/internal/repository"
)

// FeedService assembles the home timeline.
type FeedService struct {
	messageRepo repository.MessageRepository
	likeRepo    repository.LikeRepository
}

// NewFeedService returns a new FeedService.
func NewFeedService(messageRepo repository.MessageRepository, likeRepo repository.LikeRepository) *FeedService {
	return &FeedService{messageRepo: messageRepo, likeRepo: likeRepo}
}

// HomeFeed returns the viewer's timeline: their own messages and those of
// the users they follow, newest first, with the viewer's like marks applied.
func (s *FeedService) HomeFeed(ctx context.Context, viewerID uint) ([]models.Message, error) {
	msgs, err := s.messageRepo.HomeFeed(ctx, viewerID, repository.HomeFeedLimit)
	if err != nil {
		return nil, err
	}
	if len(msgs) == 0 {
		return msgs, nil
	}

	ids := make([]uint, len(msgs))
	for i := range msgs {
		ids[i] = msgs[i].ID
	}
	likedIDs, err := s.likeRepo.LikedMessageIDs(ctx, viewerID, ids)
	if err != nil {
		return nil, err
	}
	liked := make(map[uint]struct{}, len(likedIDs))
	for _, id := range likedIDs {
		liked[id] = struct{}{}
	}
	for i := range msgs {
		if _, ok := liked[msgs[i].ID]; ok {
			msgs[i].Liked = true
		}
	}
	return msgs, nil
}
