package services

import (
	"trackvault/internal/models"
	"trackvault/internal/repositories"
)

// UserService handles business logic for user listings.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// ListUsers returns username/email summaries of all users. Digests and
// ids stay server-side.
func (s *UserService) ListUsers() ([]models.UserSummary, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, models.UserSummary{
			Username: user.Username,
			Email:    user.Email,
		})
	}
	return summaries, nil
}
