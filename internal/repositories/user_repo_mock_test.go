package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trackvault/internal/apperrors"
	"trackvault/internal/models"
	"trackvault/internal/repositories"
)

func TestMockUserRepository_Uniqueness(t *testing.T) {
	repo := repositories.NewMockUserRepository()

	first := &models.User{Username: "alice", Email: "a@x.com", Password: "digest"}
	assert.NoError(t, repo.Create(first))
	assert.NotEmpty(t, first.ID)

	// Same username, different email.
	err := repo.Create(&models.User{Username: "alice", Email: "b@y.com", Password: "digest"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	// Same email, different username.
	err = repo.Create(&models.User{Username: "bob", Email: "a@x.com", Password: "digest"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestMockUserRepository_Lookups(t *testing.T) {
	repo := repositories.NewMockUserRepository()

	user := &models.User{Username: "alice", Email: "a@x.com", Password: "digest"}
	assert.NoError(t, repo.Create(user))

	byUsername, err := repo.GetByUsername("alice")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, byUsername.ID)

	byEither, err := repo.GetByEmailOrUsername("a@x.com", "someone-else")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, byEither.ID)

	byID, err := repo.GetByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	_, err = repo.GetByUsername("ghost")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = repo.GetByEmailOrUsername("ghost@x.com", "ghost")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMockTrackRepository_OwnerScoping(t *testing.T) {
	repo := repositories.NewMockTrackRepository()

	track := &models.Track{
		OwnerID:   "owner-a",
		SpotifyID: "spotify:track:abc",
		Title:     "Song",
		Artist:    "Artist",
		Album:     "Album",
		ImageURL:  "https://img.example.com/a.jpg",
	}
	assert.NoError(t, repo.Create(track))

	mine, err := repo.GetAllByOwner("owner-a")
	assert.NoError(t, err)
	assert.Len(t, mine, 1)

	theirs, err := repo.GetAllByOwner("owner-b")
	assert.NoError(t, err)
	assert.Empty(t, theirs)

	// Delete under the wrong owner behaves like a missing record.
	assert.ErrorIs(t, repo.DeleteByOwner("owner-b", track.ID), apperrors.ErrNotFound)
	assert.NoError(t, repo.DeleteByOwner("owner-a", track.ID))
	assert.ErrorIs(t, repo.DeleteByOwner("owner-a", track.ID), apperrors.ErrNotFound)
}
