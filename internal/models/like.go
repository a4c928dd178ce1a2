package models

import (
	"time"
)

// Like records a user's endorsement of a message they did not author.
// The combination of UserID and MessageID must be unique.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_message" json:"user_id"`
	MessageID uint      `gorm:"not null;uniqueIndex:idx_user_message" json:"message_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Message Message `gorm:"foreignKey:MessageID" json:"message,omitempty"`
}

// LikeState is the outcome of a like toggle.
type LikeState string

const (
	// LikeStateLiked indicates the toggle created a like.
	LikeStateLiked LikeState = "liked"
	// LikeStateUnliked indicates the toggle removed an existing like.
	LikeStateUnliked LikeState = "unliked"
)
