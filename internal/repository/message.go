package repository

import (
	"context"
	"errors"

	"warbler/internal/cache"
	"warbler/internal/models"

	"gorm.io/gorm"
)

// HomeFeedLimit bounds the home feed to the most recent messages.
const HomeFeedLimit = 100

// MessageRepository defines persistence operations for messages.
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	GetByID(ctx context.Context, id uint) (*models.Message, error)
	GetByUserID(ctx context.Context, userID uint, limit int) ([]models.Message, error)
	Delete(ctx context.Context, id uint) error
	HomeFeed(ctx context.Context, viewerID uint, limit int) ([]models.Message, error)
	CountByUserID(ctx context.Context, userID uint) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository returns a new MessageRepository implementation.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		// The BeforeSave hook surfaces validation failures as AppErrors.
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return models.NewInternalError(err)
	}
	// The author's cached profile embeds their messages.
	cache.InvalidateUser(ctx, message.UserID)
	return nil
}

func (r *messageRepository) GetByID(ctx context.Context, id uint) (*models.Message, error) {
	var message models.Message
	if err := r.db.WithContext(ctx).Preload("User").First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Message", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &message, nil
}

func (r *messageRepository) GetByUserID(ctx context.Context, userID uint, limit int) ([]models.Message, error) {
	if limit <= 0 || limit > HomeFeedLimit {
		limit = HomeFeedLimit
	}

	var messages []models.Message
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}

// Delete removes the message and its likes in one transaction so no like row
// can dangle.
func (r *messageRepository) Delete(ctx context.Context, id uint) error {
	var authorID uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var message models.Message
		if err := tx.Select("id", "user_id").First(&message, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Message", id)
			}
			return err
		}
		authorID = message.UserID

		if err := tx.Where("message_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Message{}, id).Error
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, authorID)
	return nil
}

// HomeFeed returns the newest messages authored by the viewer or anyone the
// viewer follows, newest first, bounded to limit.
func (r *messageRepository) HomeFeed(ctx context.Context, viewerID uint, limit int) ([]models.Message, error) {
	if limit <= 0 || limit > HomeFeedLimit {
		limit = HomeFeedLimit
	}

	followees := r.db.Model(&models.Follow{}).
		Select("followee_id").
		Where("follower_id = ?", viewerID)

	var messages []models.Message
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ? OR user_id IN (?)", viewerID, followees).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}

func (r *messageRepository) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
