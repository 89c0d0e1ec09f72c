package repositories

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"trackvault/internal/apperrors"
	"trackvault/internal/models"
)

// MockTrackRepository is an in-memory implementation of TrackRepository.
type MockTrackRepository struct {
	tracks map[string]models.Track
	mu     sync.RWMutex
}

// NewMockTrackRepository creates a new instance of MockTrackRepository.
func NewMockTrackRepository() *MockTrackRepository {
	return &MockTrackRepository{
		tracks: make(map[string]models.Track),
	}
}

// Create adds a new track.
func (r *MockTrackRepository) Create(track *models.Track) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if track.ID == "" {
		track.ID = uuid.New().String()
	}
	track.CreatedAt = time.Now()
	track.UpdatedAt = time.Now()
	r.tracks[track.ID] = *track
	return nil
}

// GetAllByOwner returns all tracks belonging to ownerID.
func (r *MockTrackRepository) GetAllByOwner(ownerID string) ([]models.Track, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trackList := make([]models.Track, 0)
	for _, track := range r.tracks {
		if track.OwnerID == ownerID {
			trackList = append(trackList, track)
		}
	}
	return trackList, nil
}

// DeleteByOwner removes a track only when it exists under ownerID.
func (r *MockTrackRepository) DeleteByOwner(ownerID, trackID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	track, ok := r.tracks[trackID]
	if !ok || track.OwnerID != ownerID {
		return apperrors.ErrNotFound
	}
	delete(r.tracks, trackID)
	return nil
}
