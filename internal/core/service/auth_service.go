package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/ieee-kiit/events-api/internal/core/domain"
	"github.com/ieee-kiit/events-api/internal/core/ports"
)

// dummyHash is compared against when the email is unknown, so the lookup-miss
// path costs roughly one bcrypt comparison like the hash-mismatch path.
var dummyHash = []byte("$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5B4TZ8eIoYdGqkLsO0bPN1rXSaW9u")

// AuthService implements single-admin login with HS256 bearer tokens.
type AuthService struct {
	repo      ports.AuthRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.AuthRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Login authenticates by email and password. An unknown email and a wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	admin, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.generateToken(admin)
}

func (s *AuthService) generateToken(admin *domain.Admin) (string, error) {
	claims := jwt.MapClaims{
		"id":    admin.ID,
		"name":  admin.Name,
		"email": admin.Email,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
