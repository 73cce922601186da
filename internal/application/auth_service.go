package application

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-shop-storefront/internal/domain/entity"
	repo "github.com/oksasatya/go-shop-storefront/internal/domain/repository"
	"github.com/oksasatya/go-shop-storefront/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRegistrationFailed = errors.New("registration failed")
)

// AuthService covers registration and credential verification.
type AuthService struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewAuthService(repo repo.UserRepository, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: repo, Logger: logger}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register hashes the password and persists a new user. Store failures
// (including a duplicate email) collapse into ErrRegistrationFailed so
// no detail reaches the caller.
func (s *AuthService) Register(in RegisterInput) (*entity.User, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Username: in.Username,
		Email:    in.Email,
		Password: hash,
	}
	if err := s.Repo.Create(u); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", in.Email).Warn("user insert failed")
		}
		return nil, ErrRegistrationFailed
	}
	return u, nil
}

// Authenticate validates email/password and returns the matching user.
// An unknown email and a wrong password are indistinguishable to the
// caller; both yield ErrInvalidCredentials.
func (s *AuthService) Authenticate(email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
