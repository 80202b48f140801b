package models

import "time"

// RefreshToken is a server-stored, single-use refresh token. AuthTime is
// when the user last proved their identity and survives rotation.
type RefreshToken struct {
	Token    string
	UserID   string
	AuthTime time.Time
	Expires  time.Time
}
