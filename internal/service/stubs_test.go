package service

import (
	"context"

	"warbler/internal/models"
)

type userRepoStub struct {
	getByIDFn             func(context.Context, uint) (*models.User, error)
	getByIDWithMessagesFn func(context.Context, uint, int) (*models.User, error)
	getByEmailFn          func(context.Context, string) (*models.User, error)
	getByUsernameFn       func(context.Context, string) (*models.User, error)
	createFn              func(context.Context, *models.User) error
	updateFn              func(context.Context, *models.User) error
	deleteFn              func(context.Context, uint) error
	searchFn              func(context.Context, string, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByIDWithMessages(ctx context.Context, id uint, limit int) (*models.User, error) {
	return s.getByIDWithMessagesFn(ctx, id, limit)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) Search(ctx context.Context, q string, limit, offset int) ([]models.User, error) {
	return s.searchFn(ctx, q, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:             func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByIDWithMessagesFn: func(context.Context, uint, int) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:          func(context.Context, string) (*models.User, error) { return nil, nil },
		getByUsernameFn:       func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:              func(context.Context, *models.User) error { return nil },
		updateFn:              func(context.Context, *models.User) error { return nil },
		deleteFn:              func(context.Context, uint) error { return nil },
		searchFn:              func(context.Context, string, int, int) ([]models.User, error) { return nil, nil },
	}
}

type messageRepoStub struct {
	createFn        func(context.Context, *models.Message) error
	getByIDFn       func(context.Context, uint) (*models.Message, error)
	getByUserIDFn   func(context.Context, uint, int) ([]models.Message, error)
	deleteFn        func(context.Context, uint) error
	homeFeedFn      func(context.Context, uint, int) ([]models.Message, error)
	countByUserIDFn func(context.Context, uint) (int64, error)
}

func (s *messageRepoStub) Create(ctx context.Context, message *models.Message) error {
	return s.createFn(ctx, message)
}
func (s *messageRepoStub) GetByID(ctx context.Context, id uint) (*models.Message, error) {
	return s.getByIDFn(ctx, id)
}
func (s *messageRepoStub) GetByUserID(ctx context.Context, userID uint, limit int) ([]models.Message, error) {
	return s.getByUserIDFn(ctx, userID, limit)
}
func (s *messageRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *messageRepoStub) HomeFeed(ctx context.Context, viewerID uint, limit int) ([]models.Message, error) {
	return s.homeFeedFn(ctx, viewerID, limit)
}
func (s *messageRepoStub) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	return s.countByUserIDFn(ctx, userID)
}

func noopMessageRepo() *messageRepoStub {
	return &messageRepoStub{
		createFn:        func(context.Context, *models.Message) error { return nil },
		getByIDFn:       func(context.Context, uint) (*models.Message, error) { return &models.Message{}, nil },
		getByUserIDFn:   func(context.Context, uint, int) ([]models.Message, error) { return nil, nil },
		deleteFn:        func(context.Context, uint) error { return nil },
		homeFeedFn:      func(context.Context, uint, int) ([]models.Message, error) { return nil, nil },
		countByUserIDFn: func(context.Context, uint) (int64, error) { return 0, nil },
	}
}

type followRepoStub struct {
	createFn         func(context.Context, uint, uint) error
	deleteFn         func(context.Context, uint, uint) error
	existsFn         func(context.Context, uint, uint) (bool, error)
	followingFn      func(context.Context, uint) ([]models.User, error)
	followersFn      func(context.Context, uint) ([]models.User, error)
	countFollowingFn func(context.Context, uint) (int64, error)
	countFollowersFn func(context.Context, uint) (int64, error)
}

func (s *followRepoStub) Create(ctx context.Context, followerID, followeeID uint) error {
	return s.createFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) Delete(ctx context.Context, followerID, followeeID uint) error {
	return s.deleteFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) Exists(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.existsFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) Following(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followingFn(ctx, userID)
}
func (s *followRepoStub) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followersFn(ctx, userID)
}
func (s *followRepoStub) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowingFn(ctx, userID)
}
func (s *followRepoStub) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowersFn(ctx, userID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		createFn:         func(context.Context, uint, uint) error { return nil },
		deleteFn:         func(context.Context, uint, uint) error { return nil },
		existsFn:         func(context.Context, uint, uint) (bool, error) { return false, nil },
		followingFn:      func(context.Context, uint) ([]models.User, error) { return nil, nil },
		followersFn:      func(context.Context, uint) ([]models.User, error) { return nil, nil },
		countFollowingFn: func(context.Context, uint) (int64, error) { return 0, nil },
		countFollowersFn: func(context.Context, uint) (int64, error) { return 0, nil },
	}
}

type likeRepoStub struct {
	toggleFn          func(context.Context, uint, uint) (models.LikeState, error)
	isLikedFn         func(context.Context, uint, uint) (bool, error)
	likedMessagesFn   func(context.Context, uint) ([]models.Message, error)
	likedMessageIDsFn func(context.Context, uint, []uint) ([]uint, error)
	countForMessageFn func(context.Context, uint) (int64, error)
}

func (s *likeRepoStub) Toggle(ctx context.Context, userID, messageID uint) (models.LikeState, error) {
	return s.toggleFn(ctx, userID, messageID)
}
func (s *likeRepoStub) IsLiked(ctx context.Context, userID, messageID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, messageID)
}
func (s *likeRepoStub) LikedMessages(ctx context.Context, userID uint) ([]models.Message, error) {
	return s.likedMessagesFn(ctx, userID)
}
func (s *likeRepoStub) LikedMessageIDs(ctx context.Context, userID uint, messageIDs []uint) ([]uint, error) {
	return s.likedMessageIDsFn(ctx, userID, messageIDs)
}
func (s *likeRepoStub) CountForMessage(ctx context.Context, messageID uint) (int64, error) {
	return s.countForMessageFn(ctx, messageID)
}

func noopLikeRepo() *likeRepoStub {
	return &likeRepoStub{
		toggleFn:          func(context.Context, uint, uint) (models.LikeState, error) { return models.LikeStateLiked, nil },
		isLikedFn:         func(context.Context, uint, uint) (bool, error) { return false, nil },
		likedMessagesFn:   func(context.Context, uint) ([]models.Message, error) { return nil, nil },
		likedMessageIDsFn: func(context.Context, uint, []uint) ([]uint, error) { return nil, nil },
		countForMessageFn: func(context.Context, uint) (int64, error) { return 0, nil },
	}
}
