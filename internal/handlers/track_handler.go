package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"trackvault/internal/middleware"
	"trackvault/internal/services"
)

// TrackHandler handles HTTP requests for owner-scoped tracks.
type TrackHandler struct {
	trackService *services.TrackService
	validate     *validator.Validate
}

// NewTrackHandler creates a new TrackHandler.
func NewTrackHandler(trackService *services.TrackService) *TrackHandler {
	return &TrackHandler{
		trackService: trackService,
		validate:     validator.New(),
	}
}

// RegisterRoutes registers the track routes behind the given auth
// middleware. Every handler here reads the caller identity from the
// verified token, never from the request.
func (h *TrackHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	musicRoutes := router.Group("/music", auth)
	musicRoutes.Post("/", h.HandleAddTrack)
	musicRoutes.Get("/tracks", h.HandleListTracks)
	musicRoutes.Delete("/tracks/:id", h.HandleDeleteTrack)

	userRoutes := router.Group("/users", auth)
	userRoutes.Get("/:username/songs", h.HandleListTracksByUsername)
}

// callerID returns the verified subject id stored by AuthRequired. A
// missing or empty local means the route was reached without the gate.
func callerID(c *fiber.Ctx) (string, bool) {
	ownerID, ok := c.Locals(middleware.UserIDKey).(string)
	return ownerID, ok && ownerID != ""
}

// HandleAddTrack saves a new track owned by the authenticated caller.
func (h *TrackHandler) HandleAddTrack(c *fiber.Ctx) error {
	ownerID, ok := callerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	var req services.AddTrackRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add track request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	track, err := h.trackService.AddTrack(ownerID, req)
	if err != nil {
		return respondError(c, err, "Could not save track")
	}

	return c.Status(fiber.StatusCreated).JSON(track)
}

// HandleListTracks returns the authenticated caller's tracks. A caller
// with no tracks gets an empty list.
func (h *TrackHandler) HandleListTracks(c *fiber.Ctx) error {
	ownerID, ok := callerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	tracks, err := h.trackService.ListTracks(ownerID)
	if err != nil {
		return respondError(c, err, "Could not retrieve tracks")
	}
	return c.JSON(tracks)
}

// HandleDeleteTrack deletes one of the caller's tracks. A track owned by
// someone else reports the same 404 as a missing track.
func (h *TrackHandler) HandleDeleteTrack(c *fiber.Ctx) error {
	ownerID, ok := callerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}
	trackID := c.Params("id")

	if err := h.trackService.DeleteTrack(ownerID, trackID); err != nil {
		return respondError(c, err, "Could not delete track")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleListTracksByUsername returns the tracks saved by the named user.
func (h *TrackHandler) HandleListTracksByUsername(c *fiber.Ctx) error {
	username := c.Params("username")

	tracks, err := h.trackService.ListTracksByUsername(username)
	if err != nil {
		return respondError(c, err, "Could not retrieve tracks for user")
	}
	return c.JSON(tracks)
}
