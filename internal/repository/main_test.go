package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"warbler/internal/database"
	"warbler/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory sqlite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	return db
}

// mustCreateUser inserts a user directly, bypassing the service layer.
func mustCreateUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed-password",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

// mustCreateMessage inserts a message with an explicit timestamp so ordering
// assertions do not depend on clock granularity.
func mustCreateMessage(t *testing.T, db *gorm.DB, userID uint, text string, at time.Time) *models.Message {
	t.Helper()
	msg := &models.Message{Text: text, UserID: userID, CreatedAt: at}
	if err := db.Create(msg).Error; err != nil {
		t.Fatalf("create message for user %d: %v", userID, err)
	}
	return msg
}

func ctx() context.Context {
	return context.Background()
}

var clock = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
var clockMu sync.Mutex

// now hands out strictly increasing timestamps for fixtures.
func now(t *testing.T) time.Time {
	t.Helper()
	clockMu.Lock()
	defer clockMu.Unlock()
	clock = clock.Add(time.Second)
	return clock
}
