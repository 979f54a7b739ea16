package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"servana/config"
	"servana/internal/auth"
	"servana/internal/models"
	"servana/internal/repository"
)

var (
	ErrEmailExists  = errors.New("email already registered")
	ErrInvalidCreds = errors.New("invalid email or password")
)

type AuthService struct {
	cfg      *config.Config
	userRepo *repository.UserRepository
}

func NewAuthService(cfg *config.Config, userRepo *repository.UserRepository) *AuthService {
	return &AuthService{cfg: cfg, userRepo: userRepo}
}

func (s *AuthService) Register(name, email, password, role string) (*models.User, auth.Pair, error) {
	_, err := s.userRepo.GetByEmail(email)
	if err == nil {
		return nil, auth.Pair{}, ErrEmailExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, auth.Pair{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, auth.Pair{}, err
	}
	u := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.userRepo.Create(u); err != nil {
		return nil, auth.Pair{}, err
	}
	pair, err := auth.NewPair(&s.cfg.JWT, u.ID, u.Email, u.Role)
	if err != nil {
		return u, auth.Pair{}, err
	}
	return u, pair, nil
}

func (s *AuthService) Login(email, password string) (*models.User, auth.Pair, error) {
	u, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auth.Pair{}, ErrInvalidCreds
		}
		return nil, auth.Pair{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, auth.Pair{}, ErrInvalidCreds
	}
	pair, err := auth.NewPair(&s.cfg.JWT, u.ID, u.Email, u.Role)
	if err != nil {
		return u, auth.Pair{}, err
	}
	return u, pair, nil
}

// Refresh redeems a refresh token for a new pair. Email and role come
// from the database, so a role change takes effect on the next refresh.
func (s *AuthService) Refresh(refreshToken string) (*models.User, auth.Pair, error) {
	userID, err := auth.ParseRefresh(&s.cfg.JWT, refreshToken)
	if err != nil {
		return nil, auth.Pair{}, err
	}
	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auth.Pair{}, auth.ErrInvalidToken
		}
		return nil, auth.Pair{}, err
	}
	pair, err := auth.NewPair(&s.cfg.JWT, u.ID, u.Email, u.Role)
	if err != nil {
		return u, auth.Pair{}, err
	}
	return u, pair, nil
}
