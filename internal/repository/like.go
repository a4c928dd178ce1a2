package repository

import (
	"context"
	"errors"

	"warbler/internal/models"

	"gorm.io/gorm"
)

// LikeRepository defines persistence operations for likes.
type LikeRepository interface {
	Toggle(ctx context.Context, userID, messageID uint) (models.LikeState, error)
	IsLiked(ctx context.Context, userID, messageID uint) (bool, error)
	LikedMessages(ctx context.Context, userID uint) ([]models.Message, error)
	LikedMessageIDs(ctx context.Context, userID uint, messageIDs []uint) ([]uint, error)
	CountForMessage(ctx context.Context, messageID uint) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository returns a new LikeRepository implementation.
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Toggle flips the like state for (userID, messageID) inside a transaction:
// an existing like is removed, otherwise one is created. A concurrent
// duplicate insert is rejected by the unique index and resolved as "already
// liked" rather than an error.
func (r *likeRepository) Toggle(ctx context.Context, userID, messageID uint) (models.LikeState, error) {
	var state models.LikeState

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Like
		err := tx.Where("user_id = ? AND message_id = ?", userID, messageID).
			First(&existing).Error

		switch {
		case err == nil:
			state = models.LikeStateUnliked
			return tx.Delete(&models.Like{}, existing.ID).Error

		case errors.Is(err, gorm.ErrRecordNotFound):
			like := models.Like{UserID: userID, MessageID: messageID}
			if createErr := tx.Create(&like).Error; createErr != nil {
				if isUniqueConstraintError(createErr) {
					// Lost a race with ourselves; the like exists either way.
					state = models.LikeStateLiked
					return nil
				}
				return createErr
			}
			state = models.LikeStateLiked
			return nil

		default:
			return err
		}
	})
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return state, nil
}

func (r *likeRepository) IsLiked(ctx context.Context, userID, messageID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND message_id = ?", userID, messageID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// LikedMessages returns the messages a user liked, most recently liked first.
func (r *likeRepository) LikedMessages(ctx context.Context, userID uint) ([]models.Message, error) {
	var messages []models.Message
	if err := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Preload("User").
		Joins("JOIN likes l ON l.message_id = messages.id").
		Where("l.user_id = ?", userID).
		Order("l.created_at DESC").
		Find(&messages).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}

// LikedMessageIDs filters messageIDs down to the ones userID liked. Used to
// mark feed entries without one query per message.
func (r *likeRepository) LikedMessageIDs(ctx context.Context, userID uint, messageIDs []uint) ([]uint, error) {
	if len(messageIDs) == 0 {
		return nil, nil
	}

	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND message_id IN ?", userID, messageIDs).
		Pluck("message_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

func (r *likeRepository) CountForMessage(ctx context.Context, messageID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("message_id = ?", messageID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
