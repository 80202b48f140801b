package identity

import "context"

// Provider is the identity-provider boundary.
//
// Errors are *autherr.Error values from a finite set of codes. Session
// changes are reported through Subscribe: the listener is invoked with the
// initial state once it is known and after every change, with nil meaning
// "signed out". Listeners must not block.
type Provider interface {
	Subscribe(fn func(*Identity)) (unsubscribe func())
	CurrentIdentity() *Identity

	SignInWithPassword(ctx context.Context, email, password string) (*Identity, error)
	CreateUserWithPassword(ctx context.Context, email, password string) (*Identity, error)
	SignInWithFederated(ctx context.Context, tag ProviderTag) (*FederatedResult, error)
	SignOut(ctx context.Context) error

	SendPasswordResetEmail(ctx context.Context, email string) error
	SendEmailVerification(ctx context.Context) error

	UpdateProfile(ctx context.Context, changes ProfileChanges) error
	UpdateEmail(ctx context.Context, email string) error
	UpdatePassword(ctx context.Context, password string) error

	// LinkCredential and Reauthenticate run the consent flow themselves when
	// given a federated credential without a Code.
	LinkCredential(ctx context.Context, cred Credential) (*Identity, error)
	Reauthenticate(ctx context.Context, cred Credential) error

	DeleteUser(ctx context.Context) error
}

// FederatedFlow runs the interactive part of a federated sign-in: it shows
// the consent URL and returns the authorization code the provider handed
// back. An empty code means the user gave up.
type FederatedFlow interface {
	Authorize(ctx context.Context, tag ProviderTag, consentURL string) (code string, err error)
}
