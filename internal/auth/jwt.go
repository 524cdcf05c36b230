// File: internal/auth/jwt.go
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/graceworks/churchos/internal/domain"
)

const sessionTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid session token")

// GenerateSessionToken signs a token carrying the user's identity, role
// and branch so downstream handlers never trust client-supplied values.
func GenerateSessionToken(user *domain.User, secretKey []byte) (string, error) {
	if user == nil || user.ID == 0 {
		return "", errors.New("user ID cannot be zero")
	}

	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(sessionTTL).Unix(),
	}
	if user.BranchID != nil {
		claims["branch_id"] = *user.BranchID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// ValidateSessionToken checks the signature and expiry and returns the
// principal the token vouches for.
func ValidateSessionToken(tokenString string, secretKey []byte) (domain.Principal, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey, nil
	})
	if err != nil {
		return domain.Principal{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return domain.Principal{}, ErrInvalidToken
	}

	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return domain.Principal{}, ErrInvalidToken
	}
	role, ok := claims["role"].(string)
	if !ok || !domain.IsValidRole(role) {
		return domain.Principal{}, ErrInvalidToken
	}

	p := domain.Principal{UserID: uint(sub), Role: role}
	if branch, ok := claims["branch_id"].(float64); ok && branch > 0 {
		id := uint(branch)
		p.BranchID = &id
	}
	return p, nil
}
