package services

import (
	"errors"
	"fmt"

	"trackvault/internal/apperrors"
	"trackvault/internal/models"
	"trackvault/internal/repositories"
	"trackvault/internal/security"
)

// AuthService handles business logic for registration and login.
type AuthService struct {
	userRepo repositories.UserRepository
	hasher   *security.PasswordHasher
	tokens   *security.TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, hasher *security.PasswordHasher, tokens *security.TokenManager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// Register creates a new user with a hashed password. The duplicate
// lookup checks both unique fields in one query so the conflict message
// can name the offending field, with email taking precedence; the unique
// indexes at the storage layer remain the authoritative guard.
func (s *AuthService) Register(username, email, password string) (*models.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", apperrors.ErrValidation)
	}

	existing, err := s.userRepo.GetByEmailOrUsername(email, username)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		if existing.Email == email {
			return nil, fmt.Errorf("%w: email '%s' already registered", apperrors.ErrConflict, email)
		}
		return nil, fmt.Errorf("%w: username '%s' already taken", apperrors.ErrConflict, username)
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: digest,
		Role:     models.RoleUser,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user and returns a bearer token bound to their
// id. A missing user and a wrong password produce the same error so
// usernames cannot be enumerated.
func (s *AuthService) Login(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", fmt.Errorf("%w: username and password are required", apperrors.ErrValidation)
	}

	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.hasher.Verify(password, user.Password) {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}
