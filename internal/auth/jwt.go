package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/bookswap/bookswap/internal/logger"
	"github.com/bookswap/bookswap/internal/models"
)

var (
	ErrInvalidToken = errors.New("invalid token")

	// Initialized from the environment, or explicitly via InitJWTKey
	// once configuration has been loaded.
	jwtKey = []byte(os.Getenv("JWT_SECRET"))
	log    = logger.New("auth")
)

// InitJWTKey sets the signing key. Call after configuration is loaded,
// or from tests that need a known key.
func InitJWTKey(key []byte) {
	jwtKey = key
}

// Claims are the JWT claims carried by a BookSwap session token
type Claims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed session token for a user
func GenerateToken(user *models.User) (string, time.Time, error) {
	if user == nil {
		return "", time.Time{}, errors.New("user cannot be nil")
	}
	if user.ID == uuid.Nil {
		return "", time.Time{}, errors.New("user ID cannot be empty")
	}

	expiry := time.Now().Add(24 * time.Hour)

	claims := &Claims{
		UserID: user.ID.String(),
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtKey)

	return tokenString, expiry, err
}

// ValidateToken parses and verifies a session token
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtKey, nil
	})
	if err != nil {
		log.Debug("token validation failed: %v", err)
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// SubjectID extracts the user id from validated claims
func SubjectID(claims *Claims) (uuid.UUID, error) {
	if claims == nil {
		return uuid.Nil, errors.New("claims cannot be nil")
	}
	return uuid.Parse(claims.UserID)
}
