package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/proroofers/crm-api/internal/auth"
	"github.com/proroofers/crm-api/internal/constants"
	"github.com/proroofers/crm-api/internal/dto"
	"github.com/proroofers/crm-api/internal/models"
	"github.com/proroofers/crm-api/internal/repository"
)

var (
	ErrDuplicateUsername    = errors.New("username already exists")
	ErrDuplicateEmail       = errors.New("email already exists")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles registration and credential verification.
type AuthService struct {
	userRepo repository.UserRepository
	issuer   *auth.TokenIssuer
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, issuer *auth.TokenIssuer) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		issuer:   issuer,
	}
}

// Register creates a new staff user and issues a token for it.
//
// The pre-insert duplicate checks are not atomic with the insert; the
// unique indexes are the real guarantor, and a constraint violation from
// the race maps to the same duplicate errors.
func (s *AuthService) Register(input dto.RegisterRequest) (*models.User, string, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, "", fmt.Errorf("username is required")
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, "", ErrPasswordTooShort
	}

	if taken, err := s.userRepo.ExistsByUsername(username); err != nil {
		return nil, "", fmt.Errorf("failed to check username: %w", err)
	} else if taken {
		return nil, "", ErrDuplicateUsername
	}

	if taken, err := s.userRepo.ExistsByEmail(input.Email); err != nil {
		return nil, "", fmt.Errorf("failed to check email: %w", err)
	} else if taken {
		return nil, "", ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", ErrFailedToHashPassword
	}

	user := &models.User{
		Username:     username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleStaff,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", s.resolveDuplicate(username)
		}
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}

// Login verifies credentials and issues a token. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(input dto.LoginRequest) (*models.User, string, error) {
	user, err := s.userRepo.FindByUsername(input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// ListUsers returns all users.
func (s *AuthService) ListUsers() ([]models.User, error) {
	return s.userRepo.List()
}

// resolveDuplicate decides which unique index a racing insert tripped.
func (s *AuthService) resolveDuplicate(username string) error {
	if taken, err := s.userRepo.ExistsByUsername(username); err == nil && taken {
		return ErrDuplicateUsername
	}
	return ErrDuplicateEmail
}
