package seed

import (
	"fmt"
	"log"

	"warbler/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumMessages int
	ShouldClean bool
	MaxDays     int
}

// Seed populates the database with test data: users, a follow mesh,
// messages, and likes.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d messages...", opts.NumUsers, opts.NumMessages)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	f := NewFactory(db)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create users: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("%d users created", len(users))

	messages := make([]*models.Message, 0, opts.NumMessages)
	for i := 0; i < opts.NumMessages; i++ {
		author := users[f.rand.Intn(len(users))]
		messages = append(messages, f.BuildMessage(author, opts.MaxDays))
	}
	if err := f.CreateMessagesBatch(messages); err != nil {
		return fmt.Errorf("failed to create messages: %w", err)
	}
	log.Printf("%d messages created", len(messages))

	follows, err := seedFollowMesh(db, f, users)
	if err != nil {
		return fmt.Errorf("failed to create follows: %w", err)
	}
	log.Printf("%d follow edges created", follows)

	likes, err := seedLikes(db, f, users, messages)
	if err != nil {
		return fmt.Errorf("failed to create likes: %w", err)
	}
	log.Printf("%d likes created", likes)

	log.Println("Database seeding completed successfully!")
	return nil
}

// seedFollowMesh gives every user a handful of random followees. Self
// edges and duplicates are skipped.
func seedFollowMesh(db *gorm.DB, f *Factory, users []*models.User) (int, error) {
	if len(users) < 2 {
		return 0, nil
	}

	created := 0
	for _, follower := range users {
		n := f.rand.Intn(5) + 1
		for i := 0; i < n; i++ {
			followee := users[f.rand.Intn(len(users))]
			if followee.ID == follower.ID {
				continue
			}
			follow := &models.Follow{FollowerID: follower.ID, FolloweeID: followee.ID}
			res := db.Where(follow).FirstOrCreate(follow)
			if res.Error != nil {
				return created, res.Error
			}
			if res.RowsAffected > 0 {
				created++
			}
		}
	}
	return created, nil
}

// seedLikes sprinkles likes over the messages, never letting an author
// like their own message.
func seedLikes(db *gorm.DB, f *Factory, users []*models.User, messages []*models.Message) (int, error) {
	created := 0
	for _, msg := range messages {
		n := f.rand.Intn(4)
		for i := 0; i < n; i++ {
			liker := users[f.rand.Intn(len(users))]
			if liker.ID == msg.UserID {
				continue
			}
			like := &models.Like{UserID: liker.ID, MessageID: msg.ID}
			res := db.Where(like).FirstOrCreate(like)
			if res.Error != nil {
				return created, res.Error
			}
			if res.RowsAffected > 0 {
				created++
			}
		}
	}
	return created, nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE likes, follows, messages, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}
