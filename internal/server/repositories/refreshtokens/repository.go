// Package refreshtokens declares the server-side repository contract for
// managing refresh tokens in persistent storage.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/esgportal/internal/server/models"
)

// Repository defines operations for issuing, redeeming, and revoking refresh tokens.
type Repository interface {
	// Create stores a new refresh token for userID with an expiry of
	// now+validity. authTime is carried over on rotation.
	Create(ctx context.Context, userID string, token string, validity time.Duration, authTime time.Time) error

	// Take removes the token and returns what it stored, so a token can be
	// redeemed only once. Absent tokens yield a not-found error.
	Take(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete removes a refresh token by its token string. Deleting a non-existent
	// token is not an error.
	Delete(ctx context.Context, token string) error

	// DeleteByUser revokes every refresh token of userID.
	DeleteByUser(ctx context.Context, userID string) error
}
