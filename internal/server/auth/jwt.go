// Package auth issues and checks the server's signed tokens: access tokens
// carrying the user id and the time the user last proved their identity,
// and short-lived state tokens for the federated consent flow.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/esgportal/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the access token payload: the standard claims plus UserID and
// AuthTime, the unix time of the last sign-in or re-authentication.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"uid"`
	AuthTime int64  `json:"auth_time"`
}

// Principal is the caller an access token speaks for.
type Principal struct {
	UserID   string
	AuthTime time.Time
}

// AuthenticatedSince reports whether the caller proved their identity
// within window of now.
func (p Principal) AuthenticatedSince(now time.Time, window time.Duration) bool {
	return !p.AuthTime.IsZero() && now.Sub(p.AuthTime) <= window
}

func GenerateToken(userID string, authTime time.Time, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID:   userID,
		AuthTime: authTime.Unix(),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken validates tokenString and returns its principal. Expired tokens
// yield common.ErrTokenExpired, anything else wrong common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (Principal, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Principal{}, common.ErrTokenExpired
		}
		return Principal{}, common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" {
		return Principal{}, common.ErrInvalidToken
	}

	return Principal{UserID: claims.UserID, AuthTime: time.Unix(claims.AuthTime, 0)}, nil
}
