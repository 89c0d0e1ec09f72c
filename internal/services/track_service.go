package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"trackvault/internal/apperrors"
	"trackvault/internal/models"
	"trackvault/internal/repositories"
)

// TrackEventPublisher publishes track lifecycle events to a message
// broker. Satisfied by *rabbitmq.Client; a nil publisher skips
// publication.
type TrackEventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// AddTrackRequest carries the track fields supplied by the client. The
// owner is never part of the request; it comes from the verified token.
type AddTrackRequest struct {
	SpotifyID string `json:"spotify_id" validate:"required"`
	Title     string `json:"title" validate:"required"`
	Artist    string `json:"artist" validate:"required"`
	Album     string `json:"album" validate:"required"`
	ImageURL  string `json:"image_url" validate:"required"`
}

// TrackService handles business logic for owner-scoped track storage.
type TrackService struct {
	trackRepo repositories.TrackRepository
	userRepo  repositories.UserRepository
	events    TrackEventPublisher
}

// NewTrackService creates a new TrackService. events may be nil.
func NewTrackService(trackRepo repositories.TrackRepository, userRepo repositories.UserRepository, events TrackEventPublisher) *TrackService {
	return &TrackService{
		trackRepo: trackRepo,
		userRepo:  userRepo,
		events:    events,
	}
}

// AddTrack persists a new track owned by ownerID. The owner id must be a
// well-formed UUID referencing an existing user; the write is never
// attempted otherwise.
func (s *TrackService) AddTrack(ownerID string, req AddTrackRequest) (*models.Track, error) {
	if req.SpotifyID == "" || req.Title == "" || req.Artist == "" || req.Album == "" || req.ImageURL == "" {
		return nil, fmt.Errorf("%w: spotify_id, title, artist, album and image_url are required", apperrors.ErrValidation)
	}
	if _, err := uuid.Parse(ownerID); err != nil {
		return nil, fmt.Errorf("%w: invalid owner id", apperrors.ErrValidation)
	}

	if _, err := s.userRepo.GetByID(ownerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: owner does not exist", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to verify owner: %w", err)
	}

	track := &models.Track{
		OwnerID:   ownerID,
		SpotifyID: req.SpotifyID,
		Title:     req.Title,
		Artist:    req.Artist,
		Album:     req.Album,
		ImageURL:  req.ImageURL,
	}
	if err := s.trackRepo.Create(track); err != nil {
		return nil, err
	}

	s.publishEvent("track.added", track)
	return track, nil
}

// ListTracks returns the tracks owned by ownerID. An owner with no
// tracks gets an empty list, not an error.
func (s *TrackService) ListTracks(ownerID string) ([]models.Track, error) {
	return s.trackRepo.GetAllByOwner(ownerID)
}

// DeleteTrack removes trackID if it belongs to ownerID. A track that
// does not exist and a track owned by another user both report
// apperrors.ErrNotFound.
func (s *TrackService) DeleteTrack(ownerID, trackID string) error {
	if err := s.trackRepo.DeleteByOwner(ownerID, trackID); err != nil {
		return err
	}

	s.publishEvent("track.deleted", &models.Track{ID: trackID, OwnerID: ownerID})
	return nil
}

// ListTracksByUsername resolves username to a user and returns their
// tracks. An unknown username reports apperrors.ErrNotFound.
func (s *TrackService) ListTracksByUsername(username string) ([]models.Track, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	return s.trackRepo.GetAllByOwner(user.ID)
}

// publishEvent emits a track lifecycle event. Publication is best-effort:
// a broker failure is logged, never surfaced to the caller.
func (s *TrackService) publishEvent(kind string, track *models.Track) {
	if s.events == nil {
		return
	}

	body, err := json.Marshal(map[string]string{
		"track_id": track.ID,
		"owner_id": track.OwnerID,
		"event":    kind,
	})
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", kind, err)
		return
	}
	if err := s.events.Publish(kind, body); err != nil {
		log.Printf("Warning: failed to publish %s event for track %s: %v", kind, track.ID, err)
	}
}
