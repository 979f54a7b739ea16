// Package auth issues and verifies the signed tokens the API runs on.
// Access and refresh tokens share one claims shape but carry a kind
// marker, so a long-lived refresh token can never pass where an access
// token is expected.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"servana/config"
	"servana/internal/domain"
)

var ErrInvalidToken = errors.New("invalid token")

const (
	kindAccess  = "access"
	kindRefresh = "refresh"
)

type Claims struct {
	UserID uint   `json:"uid"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"`
	Kind   string `json:"kind"`
	jwt.RegisteredClaims
}

// Pair is the access/refresh token bundle handed out on register, login
// and refresh.
type Pair struct {
	Access  string `json:"access_token"`
	Refresh string `json:"refresh_token"`
}

// NewPair issues a fresh access/refresh pair for the user. The refresh
// token carries only the user ID; email and role are re-read from the
// database when it is redeemed.
func NewPair(cfg *config.JWTConfig, userID uint, email, role string) (Pair, error) {
	if !validRole(role) {
		return Pair{}, ErrInvalidToken
	}
	access, err := sign(cfg.AccessSecret, Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		Kind:   kindAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(cfg.AccessExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    cfg.Issuer,
		},
	})
	if err != nil {
		return Pair{}, err
	}
	refresh, err := sign(cfg.RefreshSecret, Claims{
		UserID: userID,
		Kind:   kindRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(cfg.RefreshExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    cfg.Issuer,
		},
	})
	if err != nil {
		return Pair{}, err
	}
	return Pair{Access: access, Refresh: refresh}, nil
}

// ParseAccess verifies an access token and returns its claims.
func ParseAccess(cfg *config.JWTConfig, token string) (*Claims, error) {
	return parse(cfg, cfg.AccessSecret, token, kindAccess)
}

// ParseRefresh verifies a refresh token and returns the user ID it was
// issued to.
func ParseRefresh(cfg *config.JWTConfig, token string) (uint, error) {
	claims, err := parse(cfg, cfg.RefreshSecret, token, kindRefresh)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

func sign(secret string, claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func parse(cfg *config.JWTConfig, secret, token, kind string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{},
		func(t *jwt.Token) (interface{}, error) { return []byte(secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Kind != kind {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func validRole(role string) bool {
	switch role {
	case domain.RoleUser, domain.RoleProvider, domain.RoleAdmin:
		return true
	}
	return false
}
