package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/esgportal/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// stateAudience keeps state tokens from being accepted as access tokens
// and the other way round.
const stateAudience = "federated-state"

type stateClaims struct {
	jwt.RegisteredClaims
	Provider string `json:"provider"`
}

// GenerateStateToken returns an opaque OAuth state value bound to provider.
func GenerateStateToken(provider, nonce string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, stateClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        nonce,
			Audience:  jwt.ClaimStrings{stateAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		Provider: provider,
	})
	return token.SignedString(secretKey)
}

// CheckStateToken verifies that state was issued by GenerateStateToken for
// provider and has not expired.
func CheckStateToken(state, provider string, secretKey []byte) error {
	claims := &stateClaims{}
	_, err := jwt.ParseWithClaims(state, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithAudience(stateAudience))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return common.ErrTokenExpired
		}
		return common.ErrInvalidToken
	}
	if claims.Provider != provider {
		return common.ErrInvalidToken
	}
	return nil
}
