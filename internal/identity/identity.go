// Package identity describes the identity-provider boundary: who is signed
// in, how they signed in, and the operations that change it.
//
// The session manager only ever talks to the Provider interface. Two
// implementations exist: the gRPC client in internal/client/client, used by
// the CLI against the identity server, and MemoryProvider, used by tests and
// the CLI's memory mode.
package identity

import (
	"slices"
	"time"
)

// ProviderTag names a login method.
type ProviderTag string

const (
	ProviderPassword ProviderTag = "password"
	ProviderGoogle   ProviderTag = "google.com"
	ProviderGitHub   ProviderTag = "github.com"
)

// FederatedProviders lists the tags accepted by SignInWithFederated.
var FederatedProviders = []ProviderTag{ProviderGoogle, ProviderGitHub}

// IsFederated reports whether tag is a supported federated provider.
func IsFederated(tag ProviderTag) bool {
	return slices.Contains(FederatedProviders, tag)
}

// Identity is the provider's view of the signed-in user. It is owned by the
// provider; consumers receive copies.
type Identity struct {
	UID           string
	Email         string
	DisplayName   string
	PhotoURL      string
	EmailVerified bool
	IsAnonymous   bool
	ProviderID    ProviderTag
	// Providers lists every login method linked to the account.
	Providers    []ProviderTag
	CreatedAt    time.Time
	LastLoginAt  time.Time
	RefreshToken string
}

// Clone returns a deep copy; nil stays nil.
func (i *Identity) Clone() *Identity {
	if i == nil {
		return nil
	}
	c := *i
	c.Providers = slices.Clone(i.Providers)
	return &c
}

// Credential is proof of identity used to link a login method or to
// re-authenticate. Password credentials fill Email and Password; federated
// ones fill State and Code from a completed consent flow.
type Credential struct {
	Provider ProviderTag
	Email    string
	Password string
	State    string
	Code     string
}

// PasswordCredential builds an email/password credential.
func PasswordCredential(email, password string) Credential {
	return Credential{Provider: ProviderPassword, Email: email, Password: password}
}

// ProfileChanges carries optional display name and photo updates. Nil
// fields are left unchanged.
type ProfileChanges struct {
	DisplayName *string
	PhotoURL    *string
}

// Empty reports whether no field is set.
func (c ProfileChanges) Empty() bool {
	return c.DisplayName == nil && c.PhotoURL == nil
}

// FederatedResult is returned by a federated sign-in.
type FederatedResult struct {
	Identity *Identity
	// IsNewUser is true on the first ever sign-in of this identity.
	IsNewUser bool
}
