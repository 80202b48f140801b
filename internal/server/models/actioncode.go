package models

import "time"

// Action code purposes.
const (
	PurposeVerifyEmail   = "verify-email"
	PurposeResetPassword = "reset-password"
)

// ActionCode is a single-use code mailed to the user. Email is the address
// the code was sent to; a verification code is void once the account email
// has changed.
type ActionCode struct {
	Code      string
	AccountID string
	Purpose   string
	Email     string
	Expires   time.Time
}
