package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"brandconnect/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "brandconnect-dev-secret"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT with the given subject (account
// ID), role and session ID. The token expires after the given duration.
func GenerateToken(subject, role, sessionID string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"sid":  sessionID,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// HashToken computes a SHA-256 hash of the token string. Only the hash
// is stored, so a DB leak cannot replay live tokens.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates a token string.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// TokenClaims extracts the subject, role and session ID from a valid
// token string.
func TokenClaims(tokenString string) (subject, role, sessionID string, err error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", "", "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", "", errors.New("invalid token")
	}
	subject, _ = claims["sub"].(string)
	role, _ = claims["role"].(string)
	sessionID, _ = claims["sid"].(string)
	if subject == "" || sessionID == "" {
		return "", "", "", errors.New("token missing 'sub' or 'sid' claim")
	}
	return subject, role, sessionID, nil
}
