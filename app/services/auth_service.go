package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ecofinds/ecofinds/app/models"
	"github.com/ecofinds/ecofinds/app/repositories"
	"github.com/ecofinds/ecofinds/pkg/auth"
	"github.com/ecofinds/ecofinds/pkg/validate"
	"gorm.io/gorm"
)

// AuthService implements the credential boundary: registration, login,
// and profile updates. The rest of the system only ever consumes the
// opaque user id it hands out.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{users: repositories.NewUserRepository(db)}
}

// RegisterInput is the signup payload.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"nullable,max=255"`
	Password string `json:"password" validate:"required,min=8"`
}

// Register creates a new account. A taken email reports ErrConflict.
func (s *AuthService) Register(in RegisterInput) (models.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if errs := validate.Struct(in); len(errs) > 0 {
		return models.User{}, NewValidationError(errs)
	}

	if _, err := s.users.FindByEmail(in.Email); err == nil {
		return models.User{}, ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, fmt.Errorf("auth: lookup email: %w", err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("auth: hash password: %w", err)
	}

	user := models.User{Email: in.Email, Username: in.Username, Password: hash}
	if err := s.users.Create(&user); err != nil {
		return models.User{}, fmt.Errorf("auth: create user: %w", err)
	}
	return user, nil
}

// Login verifies credentials and returns a signed token with the user.
// An unknown email and a wrong password produce the same error.
func (s *AuthService) Login(email, password string) (string, models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return "", models.User{}, fmt.Errorf("auth: lookup email: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return "", models.User{}, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		return "", models.User{}, fmt.Errorf("auth: sign token: %w", err)
	}
	return token, user, nil
}

// ProfileInput is the profile update payload. Empty fields are left
// unchanged; NewPassword is optional.
type ProfileInput struct {
	Username    string `json:"username" validate:"nullable,max=255"`
	Email       string `json:"email" validate:"nullable,email"`
	NewPassword string `json:"new_password" validate:"nullable,min=8"`
}

// UpdateProfile applies the input to the user's account. Changing the
// email to one already in use reports ErrConflict.
func (s *AuthService) UpdateProfile(id uint, in ProfileInput) (models.User, error) {
	if errs := validate.Struct(in); len(errs) > 0 {
		return models.User{}, NewValidationError(errs)
	}

	user, err := s.users.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("auth: lookup user: %w", err)
	}

	if in.Username != "" {
		user.Username = in.Username
	}

	if in.Email != "" {
		email := strings.ToLower(strings.TrimSpace(in.Email))
		taken, err := s.users.EmailTakenByOther(email, id)
		if err != nil {
			return models.User{}, fmt.Errorf("auth: check email: %w", err)
		}
		if taken {
			return models.User{}, ErrConflict
		}
		user.Email = email
	}

	if in.NewPassword != "" {
		hash, err := auth.HashPassword(in.NewPassword)
		if err != nil {
			return models.User{}, fmt.Errorf("auth: hash password: %w", err)
		}
		user.Password = hash
	}

	if err := s.users.Update(&user); err != nil {
		return models.User{}, fmt.Errorf("auth: update user: %w", err)
	}
	return user, nil
}

// Profile returns the account for display.
func (s *AuthService) Profile(id uint) (models.User, error) {
	user, err := s.users.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("auth: lookup user: %w", err)
	}
	return user, nil
}
