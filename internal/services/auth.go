package services

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/MarwahManan/Hackathon-2/internal/auth"
	"github.com/MarwahManan/Hackathon-2/internal/models"

	"gorm.io/gorm"
)

const minPasswordLen = 8

// AuthService handles account creation and login. Both operations return the
// user together with a freshly signed bearer token.
type AuthService interface {
	Signup(db *gorm.DB, email, password string) (models.User, string, error)
	Login(db *gorm.DB, email, password string) (models.User, string, error)
}

type AuthServiceImpl struct {
	hasher *auth.PasswordHasher
	tokens *auth.TokenManager
}

func NewAuthService(hasher *auth.PasswordHasher, tokens *auth.TokenManager) *AuthServiceImpl {
	return &AuthServiceImpl{hasher: hasher, tokens: tokens}
}

func (s *AuthServiceImpl) Signup(db *gorm.DB, email, password string) (models.User, string, error) {
	email = normalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return models.User{}, "", fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}
	if len(password) < minPasswordLen {
		return models.User{}, "", fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLen)
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return models.User{}, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{Email: email, PasswordHash: passwordHash}
	err = db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.Where("email = ?", email).First(&existing).Error
		if err == nil {
			return ErrEmailExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return models.User{}, "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return models.User{}, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, token, nil
}

func (s *AuthServiceImpl) Login(db *gorm.DB, email, password string) (models.User, string, error) {
	email = normalizeEmail(email)

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, "", ErrInvalidCredentials
		}
		return models.User{}, "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return models.User{}, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
