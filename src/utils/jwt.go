package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ScopeSubmissions lets the bearer list and export one questionnaire's submissions.
const ScopeSubmissions = "submissions"

type AccessClaims struct {
	QuestionnaireID string `json:"questionnaireId"`
	Scope           string `json:"scope"`
	jwt.RegisteredClaims
}

func GenerateAccessToken(secret []byte, questionnaireID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		QuestionnaireID: questionnaireID,
		Scope:           ScopeSubmissions,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   questionnaireID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ParseAccessToken(secret []byte, tokenStr string) (*AccessClaims, error) {
	if tokenStr == "" {
		return nil, fmt.Errorf("empty token string")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &AccessClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || token == nil {
		return nil, fmt.Errorf("token parsing failed: %v", err)
	}

	claims, ok := token.Claims.(*AccessClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

// LooksLikeJWT reports whether s has the three dot-separated segments of a JWT.
func LooksLikeJWT(s string) bool {
	dots := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			dots++
		}
	}
	return dots == 2
}

// GenerateRandomString generates a random hex string of the given length.
func GenerateRandomString(length int) (string, error) {
	bytes := make([]byte, (length+1)/2)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes)[:length], nil
}
