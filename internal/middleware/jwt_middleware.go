package middleware

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"trackvault/internal/apperrors"
	"trackvault/internal/models"
	"trackvault/internal/repositories"
	"trackvault/internal/security"
)

// UserIDKey is the Fiber locals key under which AuthRequired stores the
// verified subject id. Handlers take the caller identity only from here,
// never from request payloads.
const UserIDKey = "user_id"

// AuthRequired is a Fiber middleware that verifies the bearer token and
// stores the subject user id in the request locals.
func AuthRequired(tokens *security.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		subjectID, err := tokens.Verify(parts[1])
		if err != nil {
			log.Printf("Token verification failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		c.Locals(UserIDKey, subjectID)
		return c.Next()
	}
}

// AdminOnly is a Fiber middleware that allows only users with the admin
// role through. It must run after AuthRequired.
func AdminOnly(userRepo repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		subjectID, ok := c.Locals(UserIDKey).(string)
		if !ok || subjectID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authentication required",
			})
		}

		user, err := userRepo.GetByID(subjectID)
		if err != nil {
			// A token subject with no user row gets the same 403 as a
			// missing role; anything else is a storage failure.
			if errors.Is(err, apperrors.ErrNotFound) {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"message": "Admin access required",
				})
			}
			log.Printf("Failed to load user %s for role check: %v", subjectID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not verify access",
			})
		}
		if user.Role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Admin access required",
			})
		}
		return c.Next()
	}
}
