// Package metadata is the client's local key/value store. It keeps what a
// restarted CLI needs to resume a session: the refresh token, the uid and
// email of the last signed-in identity and the endpoint they belong to.
package metadata

import (
	"context"
	"time"
)

// Well-known keys.
const (
	KeyRefreshToken = "session.refresh_token"
	KeyUID          = "session.uid"
	KeyEmail        = "session.email"
	KeyEndpoint     = "session.endpoint"
)

// SessionKeys lists every key written for a saved session.
var SessionKeys = []string{KeyRefreshToken, KeyUID, KeyEmail, KeyEndpoint}

// Entry is a stored value with its last write time.
type Entry struct {
	Value     []byte
	UpdatedAt time.Time
}

// Repository stores small values by key. Get of a missing key returns
// (nil, nil).
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetMany(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string]Entry, error)
	Clear(ctx context.Context) error
}
