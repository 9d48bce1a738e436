package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
)

var ErrInvalidServiceToken = errors.New("invalid service token")

// IssueServiceToken signs an HS256 token for name with the given role.
func IssueServiceToken(secret string, name string, role string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  name,
		"role": role,
		"exp":  time.Now().Add(ttl).Unix(),
	})
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("middleware.IssueServiceToken: %w", err)
	}
	return tokenString, nil
}

func looksLikeToken(credential string) bool {
	return strings.Count(credential, ".") == 2
}

func verifyServiceToken(secret string, tokenString string) (principal, error) {
	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidServiceToken
		}
		return []byte(secret), nil
	})
	if err != nil || !parsedToken.Valid {
		return principal{}, fmt.Errorf("middleware.verifyServiceToken: %w", ErrInvalidServiceToken)
	}
	name, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if name == "" {
		return principal{}, fmt.Errorf("middleware.verifyServiceToken: %w", ErrInvalidServiceToken)
	}
	switch role {
	case RoleAdmin, RoleService, RoleReader:
	case "":
		role = RoleReader
	default:
		return principal{}, fmt.Errorf("middleware.verifyServiceToken: %w", ErrInvalidServiceToken)
	}
	return principal{name: name, role: role}, nil
}
