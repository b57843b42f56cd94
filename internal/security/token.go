package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token has expired")
	ErrWrongTokenType = errors.New("wrong token type for this endpoint")
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// UserClaims defines the standard claims for our application
type UserClaims struct {
	UserID int32     `json:"user_id"`
	Email  string    `json:"email,omitempty"`
	Type   TokenType `json:"type"`
	jwt.RegisteredClaims
}

type TokenManager interface {
	GenerateAccessToken(userID int32, email string) (string, error)
	GenerateRefreshToken(userID int32, email string) (string, error)
	ValidateToken(tokenString string) (*UserClaims, error)
}

type tokenManager struct {
	secret        []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewTokenManager(secret string, accessExpiryMinutes, refreshExpiryMinutes int) TokenManager {
	if accessExpiryMinutes <= 0 {
		accessExpiryMinutes = 60
	}
	if refreshExpiryMinutes <= 0 {
		refreshExpiryMinutes = 60 * 24 * 7
	}
	return &tokenManager{
		secret:        []byte(secret),
		accessExpiry:  time.Duration(accessExpiryMinutes) * time.Minute,
		refreshExpiry: time.Duration(refreshExpiryMinutes) * time.Minute,
	}
}

func (m *tokenManager) GenerateAccessToken(userID int32, email string) (string, error) {
	return m.generate(userID, email, TokenTypeAccess, m.accessExpiry)
}

func (m *tokenManager) GenerateRefreshToken(userID int32, email string) (string, error) {
	return m.generate(userID, email, TokenTypeRefresh, m.refreshExpiry)
}

func (m *tokenManager) generate(userID int32, email string, typ TokenType, expiry time.Duration) (string, error) {
	claims := UserClaims{
		UserID: userID,
		Email:  email,
		Type:   typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(int(userID)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "fleetrent-backend",
			ID:        generateJTI(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) ValidateToken(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		// Populate UserID from Subject if it was lost (though we set both)
		if claims.UserID == 0 && claims.Subject != "" {
			uid, _ := strconv.Atoi(claims.Subject)
			claims.UserID = int32(uid)
		}
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// Simple unique ID generator
func generateJTI() string {
	return strconv.FormatInt(time.Now().UnixNano(), 16)
}
