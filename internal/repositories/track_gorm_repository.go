package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"trackvault/internal/apperrors"
	"trackvault/internal/models"
)

// GORMTrackRepository is a GORM implementation of TrackRepository.
type GORMTrackRepository struct {
	db *gorm.DB
}

// NewGORMTrackRepository creates a new instance of GORMTrackRepository.
func NewGORMTrackRepository(db *gorm.DB) *GORMTrackRepository {
	return &GORMTrackRepository{
		db: db,
	}
}

// Create inserts a new track.
func (r *GORMTrackRepository) Create(track *models.Track) error {
	if track.ID == "" {
		track.ID = uuid.New().String()
	}
	if err := r.db.Create(track).Error; err != nil {
		return fmt.Errorf("failed to create track: %w", err)
	}
	return nil
}

// GetAllByOwner retrieves all tracks belonging to ownerID. An empty
// result is a valid outcome, not an error.
func (r *GORMTrackRepository) GetAllByOwner(ownerID string) ([]models.Track, error) {
	var tracks []models.Track
	if err := r.db.Find(&tracks, "owner_id = ?", ownerID).Error; err != nil {
		return nil, fmt.Errorf("failed to get tracks for owner: %w", err)
	}
	return tracks, nil
}

// DeleteByOwner deletes the track with trackID owned by ownerID. The
// owner filter is part of the delete itself, so a foreign owner's track
// is indistinguishable from a missing one.
func (r *GORMTrackRepository) DeleteByOwner(ownerID, trackID string) error {
	res := r.db.Delete(&models.Track{}, "id = ? AND owner_id = ?", trackID, ownerID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete track: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
