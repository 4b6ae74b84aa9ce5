package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kyraymege/bookmarkd/internal/common"
)

// Claims is the decoded payload of a signed access token: the standard
// registered claims (subject carries the user ID) plus the user's email.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// GenerateToken signs an HS256 bearer token for the given user, valid for
// validityDuration from now. The token is stateless: nothing is persisted
// server-side, expiry is enforced at parse time.
func GenerateToken(userID, email string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		Email: email,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and expiry of an access token and
// returns its claims. It fails with common.ErrTokenExpired for stale tokens
// and common.ErrInvalidToken for everything else (bad signature, malformed
// structure, unexpected signing method).
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
