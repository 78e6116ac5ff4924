package services

import (
	"errors"
	"time"

	"spiderhome-backend/models"

	"github.com/golang-jwt/jwt/v5"
)

// TokenLifetime is the fixed lifetime of admin session tokens.
const TokenLifetime = 24 * time.Hour

const tokenIssuer = "spiderhome-admin"

// ErrInvalidToken is returned for every verification failure (bad signature,
// malformed token, expired claim) so callers cannot distinguish the reason.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenClaims is the session payload carried by an admin bearer token.
type TokenClaims struct {
	UserID   uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 session tokens.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), now: time.Now}
}

// Issue mints a signed token embedding the user's id, username and role,
// expiring TokenLifetime from now.
func (s *TokenService) Issue(user models.User) (string, error) {
	now := s.now()
	claims := TokenClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a token string. Any failure maps to
// ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
