package repositories

import "trackvault/internal/models"

// TrackRepository defines the interface for track data access. List and
// delete are always scoped by owner; there is no unscoped read path.
type TrackRepository interface {
	Create(track *models.Track) error
	GetAllByOwner(ownerID string) ([]models.Track, error)
	// DeleteByOwner removes the track only when it exists and belongs to
	// ownerID; both "no such track" and "someone else's track" report
	// apperrors.ErrNotFound.
	DeleteByOwner(ownerID, trackID string) error
}
