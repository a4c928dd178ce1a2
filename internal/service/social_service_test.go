package service

import (
	"context"
	"errors"
	"testing"

	"warbler/internal/models"
)

func TestSocialServiceFollowSelf(t *testing.T) {
	followRepo := noopFollowRepo()
	followRepo.createFn = func(context.Context, uint, uint) error {
		t.Fatal("no edge may be written for a self follow")
		return nil
	}

	svc := NewSocialService(noopUserRepo(), followRepo)
	err := svc.Follow(context.Background(), 3, 3)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation error, got %#v", err)
	}
}

func TestSocialServiceFollowUnknownTarget(t *testing.T) {
	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(context.Context, uint) (*models.User, error) {
		return nil, models.NewNotFoundError("User", 0)
	}

	svc := NewSocialService(userRepo, noopFollowRepo())
	err := svc.Follow(context.Background(), 1, 99)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "NOT_FOUND" {
		t.Fatalf("expected not found error, got %#v", err)
	}
}

func TestSocialServiceFollowCreatesEdge(t *testing.T) {
	var gotFollower, gotFollowee uint
	followRepo := noopFollowRepo()
	followRepo.createFn = func(_ context.Context, followerID, followeeID uint) error {
		gotFollower, gotFollowee = followerID, followeeID
		return nil
	}

	svc := NewSocialService(noopUserRepo(), followRepo)
	if err := svc.Follow(context.Background(), 1, 2); err != nil {
		t.Fatalf("follow failed: %v", err)
	}
	if gotFollower != 1 || gotFollowee != 2 {
		t.Fatalf("edge direction wrong: %d -> %d", gotFollower, gotFollowee)
	}
}

func TestSocialServiceUnfollow(t *testing.T) {
	var deleted bool
	followRepo := noopFollowRepo()
	followRepo.deleteFn = func(_ context.Context, followerID, followeeID uint) error {
		deleted = true
		return nil
	}

	svc := NewSocialService(noopUserRepo(), followRepo)
	if err := svc.Unfollow(context.Background(), 1, 2); err != nil {
		t.Fatalf("unfollow failed: %v", err)
	}
	if !deleted {
		t.Fatal("expected delete to be called")
	}
}

func TestSocialServiceListsCheckUser(t *testing.T) {
	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(context.Context, uint) (*models.User, error) {
		return nil, models.NewNotFoundError("User", 0)
	}

	svc := NewSocialService(userRepo, noopFollowRepo())

	if _, err := svc.Following(context.Background(), 42); err == nil {
		t.Fatal("expected not found for following list")
	}
	if _, err := svc.Followers(context.Background(), 42); err == nil {
		t.Fatal("expected not found for followers list")
	}
}

func TestSocialServiceFollowDirectionAgreement(t *testing.T) {
	// Single directed edge 1 -> 2.
	followRepo := noopFollowRepo()
	followRepo.existsFn = func(_ context.Context, followerID, followeeID uint) (bool, error) {
		return followerID == 1 && followeeID == 2, nil
	}

	svc := NewSocialService(noopUserRepo(), followRepo)
	ctx := context.Background()

	// IsFollowing(a, b) and IsFollowedBy(b, a) must always agree.
	for _, pair := range [][2]uint{{1, 2}, {2, 1}, {1, 3}} {
		a, b := pair[0], pair[1]
		following, err := svc.IsFollowing(ctx, a, b)
		if err != nil {
			t.Fatalf("IsFollowing(%d, %d): %v", a, b, err)
		}
		followedBy, err := svc.IsFollowedBy(ctx, b, a)
		if err != nil {
			t.Fatalf("IsFollowedBy(%d, %d): %v", b, a, err)
		}
		if following != followedBy {
			t.Fatalf("IsFollowing(%d, %d)=%v disagrees with IsFollowedBy(%d, %d)=%v",
				a, b, following, b, a, followedBy)
		}
	}

	got, err := svc.IsFollowing(ctx, 1, 2)
	if err != nil || !got {
		t.Fatalf("expected edge 1 -> 2 to be reported, got %v err %v", got, err)
	}
	rev, err := svc.IsFollowing(ctx, 2, 1)
	if err != nil || rev {
		t.Fatalf("edge must be directed, reverse reported %v err %v", rev, err)
	}
}
