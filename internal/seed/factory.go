// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"warbler/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	return &Factory{db: db, rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	username := gofakeit.Username()
	if len(username) > 25 {
		username = username[:25]
	}
	user := &models.User{
		Username: fmt.Sprintf("%s%d", username, gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Bio:      gofakeit.Sentence(8),
		Location: fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.StateAbr()),
		ImageURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hashedPassword)

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildMessage constructs a message for the user without persisting it.
// Text is clipped to the length limit and created_at is spread over the
// last maxDays days so timelines look lived-in.
func (f *Factory) BuildMessage(user *models.User, maxDays int) *models.Message {
	if maxDays <= 0 {
		maxDays = 90
	}
	text := gofakeit.Sentence(f.rand.Intn(12) + 3)
	if len(text) > models.MaxMessageLength {
		text = text[:models.MaxMessageLength]
	}

	daysBack := f.rand.Intn(maxDays)
	minsBack := f.rand.Intn(24 * 60)
	return &models.Message{
		UserID:    user.ID,
		Text:      text,
		CreatedAt: time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(minsBack)*time.Minute),
	}
}

// CreateMessagesBatch persists multiple messages in a single DB call.
func (f *Factory) CreateMessagesBatch(messages []*models.Message) error {
	if len(messages) == 0 {
		return nil
	}
	return f.db.Create(&messages).Error
}
