// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Default profile images used when a signup does not supply its own.
const (
	DefaultImageURL       = "/static/images/default-pic.png"
	DefaultHeaderImageURL = "/static/images/warbler-hero.jpg"
)

// User represents an account in the Warbler application.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"size:30;unique;not null" json:"username"`
	Email          string    `gorm:"size:50;unique;not null" json:"email"`
	Password       string    `gorm:"not null" json:"-"`
	ImageURL       string    `gorm:"default:'/static/images/default-pic.png'" json:"image_url"`
	HeaderImageURL string    `gorm:"default:'/static/images/warbler-hero.jpg'" json:"header_image_url"`
	Bio            string    `json:"bio"`
	Location       string    `json:"location"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Messages       []Message `gorm:"foreignKey:UserID" json:"messages,omitempty"`
}
