package models

import (
	"time"
	"unicode/utf8"

	"gorm.io/gorm"
)

// MaxMessageLength is the upper bound on message text, enforced at the
// persistence layer so an over-length message can never be silently truncated.
const MaxMessageLength = 140

// Message is a single warble. CreatedAt is the ordering field for every
// timeline query.
type Message struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Text   string `gorm:"size:140;not null" json:"text"`
	UserID uint   `gorm:"not null;index" json:"user_id"`
	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"-" json:"likes_count"`
	// Liked indicates whether the current requesting user liked this message (computed)
	Liked     bool      `gorm:"-" json:"liked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeSave rejects empty or over-length text before it reaches the database.
// Some drivers (sqlite in particular) ignore varchar sizes, so the bound must
// hold here rather than in the column definition.
func (m *Message) BeforeSave(_ *gorm.DB) error {
	if len(m.Text) == 0 {
		return NewValidationError("Message text is required")
	}
	if utf8.RuneCountInString(m.Text) > MaxMessageLength {
		return NewValidationError("Message text exceeds 140 characters")
	}
	return nil
}
