package handlers

import (
	"github.com/gofiber/fiber/v2"

	"trackvault/internal/services"
)

// UserHandler handles HTTP requests for the admin user listing.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// RegisterRoutes registers the admin user routes. The router must carry
// both AuthRequired and AdminOnly.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/users", h.HandleListUsers)
}

// HandleListUsers returns username/email summaries of all users.
func (h *UserHandler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers()
	if err != nil {
		return respondError(c, err, "Could not retrieve users")
	}
	return c.JSON(users)
}
