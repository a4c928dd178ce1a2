package repository

import (
	"testing"

	"warbler/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowCreateAndExists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)

	alice := mustCreateUser(t, db, "alice")
	bob := mustCreateUser(t, db, "bob")

	require.NoError(t, repo.Create(ctx(), alice.ID, bob.ID))

	following, err := repo.Exists(ctx(), alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, following)

	// The inverse query must agree with the forward one.
	reverse, err := repo.Exists(ctx(), bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, reverse, "follow edges are directed")
}

func TestFollowDuplicateIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)

	alice := mustCreateUser(t, db, "alice")
	bob := mustCreateUser(t, db, "bob")

	require.NoError(t, repo.Create(ctx(), alice.ID, bob.ID))
	require.NoError(t, repo.Create(ctx(), alice.ID, bob.ID), "duplicate edge must not error")

	var count int64
	db.Model(&models.Follow{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestFollowToggleReturnsToOriginalState(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)

	alice := mustCreateUser(t, db, "alice")
	bob := mustCreateUser(t, db, "bob")

	require.NoError(t, repo.Create(ctx(), alice.ID, bob.ID))
	require.NoError(t, repo.Delete(ctx(), alice.ID, bob.ID))

	following, err := repo.Exists(ctx(), alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, following)

	// Deleting again is a no-op, not an error.
	require.NoError(t, repo.Delete(ctx(), alice.ID, bob.ID))
}

func TestFollowingAndFollowersLists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)

	alice := mustCreateUser(t, db, "alice")
	bob := mustCreateUser(t, db, "bob")
	carol := mustCreateUser(t, db, "carol")

	// alice -> bob, alice -> carol, carol -> alice
	require.NoError(t, repo.Create(ctx(), alice.ID, bob.ID))
	require.NoError(t, repo.Create(ctx(), alice.ID, carol.ID))
	require.NoError(t, repo.Create(ctx(), carol.ID, alice.ID))

	following, err := repo.Following(ctx(), alice.ID)
	require.NoError(t, err)
	require.Len(t, following, 2)
	assert.Equal(t, "bob", following[0].Username)
	assert.Equal(t, "carol", following[1].Username)

	followers, err := repo.Followers(ctx(), alice.ID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, "carol", followers[0].Username)

	nFollowing, err := repo.CountFollowing(ctx(), alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, nFollowing)

	nFollowers, err := repo.CountFollowers(ctx(), alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, nFollowers)
}
