// Package models defines server-side data models persisted in the database.
package models

import "time"

// Account is an identity known to the server. Salt and Verifier are empty
// for accounts that only ever signed in through a federated provider.
type Account struct {
	ID            string
	Email         string
	DisplayName   string
	PhotoURL      string
	EmailVerified bool
	Salt          []byte
	Verifier      []byte
	// ProviderID is the login method the account was created with.
	ProviderID  string
	CreatedAt   time.Time
	LastLoginAt time.Time
}

// HasPassword reports whether a password login is linked.
func (a *Account) HasPassword() bool {
	return len(a.Verifier) > 0
}

// FederatedIdentity links an external provider subject to an account.
type FederatedIdentity struct {
	Provider  string
	Subject   string
	AccountID string
	Email     string
}
