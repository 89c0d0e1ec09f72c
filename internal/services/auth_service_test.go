package services_test

import (
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"trackvault/internal/apperrors"
	"trackvault/internal/models"
	"trackvault/internal/security"
	"trackvault/internal/services"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmailOrUsername(email, username string) (*models.User, error) {
	args := m.Called(email, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetAll() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func TestMain(m *testing.M) {
	log.SetOutput(os.Stdout)
	code := m.Run()
	os.Exit(code)
}

func newAuthService(repo *MockUserRepository) (*services.AuthService, *security.TokenManager) {
	hasher := security.NewPasswordHasher(bcrypt.MinCost)
	tokens := security.NewTokenManager("test_jwt_secret", time.Hour)
	return services.NewAuthService(repo, hasher, tokens), tokens
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService, _ := newAuthService(mockRepo)

	mockRepo.On("GetByEmailOrUsername", "test@example.com", "testuser").Return(nil, apperrors.ErrNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	user, err := authService.Register("testuser", "test@example.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, "testuser", user.Username)
	assert.Equal(t, models.RoleUser, user.Role)
	// The stored digest must never be the raw password.
	assert.NotEqual(t, "password123", user.Password)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Register_EmptyFields(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService, _ := newAuthService(mockRepo)

	for _, tc := range []struct{ username, email, password string }{
		{"", "test@example.com", "password123"},
		{"testuser", "", "password123"},
		{"testuser", "test@example.com", ""},
	} {
		_, err := authService.Register(tc.username, tc.email, tc.password)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	}
	// No repository call happens for invalid input.
	mockRepo.AssertNotCalled(t, "GetByEmailOrUsername")
	mockRepo.AssertNotCalled(t, "Create")
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService, _ := newAuthService(mockRepo)

	existing := &models.User{ID: "user-1", Username: "testuser", Email: "other@example.com"}
	mockRepo.On("GetByEmailOrUsername", "test@example.com", "testuser").Return(existing, nil).Once()

	_, err := authService.Register("testuser", "test@example.com", "password123")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Contains(t, err.Error(), "username 'testuser' already taken")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Register_EmailTakesPrecedence(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService, _ := newAuthService(mockRepo)

	// Both fields collide; the conflict message names the email.
	existing := &models.User{ID: "user-1", Username: "testuser", Email: "test@example.com"}
	mockRepo.On("GetByEmailOrUsername", "test@example.com", "testuser").Return(existing, nil).Once()

	_, err := authService.Register("testuser", "test@example.com", "password123")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Contains(t, err.Error(), "email 'test@example.com' already registered")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Register_StoreConflictWins(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService, _ := newAuthService(mockRepo)

	// The pre-check missed a concurrent registration; the unique index
	// still rejects the insert.
	mockRepo.On("GetByEmailOrUsername", "test@example.com", "testuser").Return(nil, apperrors.ErrNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(apperrors.ErrConflict).Once()

	_, err := authService.Register("testuser", "test@example.com", "password123")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService, tokens := newAuthService(mockRepo)

	digest, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	user := &models.User{
		ID:       "user-123",
		Username: "testuser",
		Email:    "test@example.com",
		Password: string(digest),
	}

	mockRepo.On("GetByUsername", "testuser").Return(user, nil).Once()

	token, err := authService.Login("testuser", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := tokens.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, subject)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login_CredentialOpacity(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService, _ := newAuthService(mockRepo)

	digest, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	user := &models.User{ID: "user-123", Username: "testuser", Password: string(digest)}

	// Wrong password for an existing user.
	mockRepo.On("GetByUsername", "testuser").Return(user, nil).Once()
	_, errWrongPassword := authService.Login("testuser", "wrongpassword")

	// Nonexistent user.
	mockRepo.On("GetByUsername", "ghost").Return(nil, apperrors.ErrNotFound).Once()
	_, errNoUser := authService.Login("ghost", "password123")

	// Both failure modes must be the identical error.
	assert.ErrorIs(t, errWrongPassword, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errNoUser, apperrors.ErrInvalidCredentials)
	assert.Equal(t, errWrongPassword.Error(), errNoUser.Error())
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService, _ := newAuthService(mockRepo)

	_, err := authService.Login("", "password123")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = authService.Login("testuser", "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	mockRepo.AssertNotCalled(t, "GetByUsername")
}
