package session

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/esgportal/internal/autherr"
	"github.com/dmitrijs2005/esgportal/internal/common"
	"github.com/dmitrijs2005/esgportal/internal/identity"
	"github.com/dmitrijs2005/esgportal/internal/profiles"
)

// op is the bookkeeping of one running operation.
type op struct {
	m       *Manager
	name    string
	loading bool
}

// begin starts an operation: it clears the last operation error and, for
// operations that can change the session, marks the state as loading. The
// profile warning stays until a reconcile finds the profile again.
func (m *Manager) begin(name string, loading bool) *op {
	m.mu.Lock()
	defer m.mu.Unlock()

	if loading {
		m.inflight++
	}
	if !m.warned {
		m.state.Error = ""
	}
	m.publishLocked()
	return &op{m: m, name: name, loading: loading}
}

// end finishes the operation. A non-nil err is classified, stored in the
// state, shown through the notifier and returned.
func (o *op) end(ctx context.Context, err error) error {
	m := o.m
	var e *autherr.Error
	var msg string
	if err != nil {
		e = autherr.Classify(err)
		msg = autherr.Message(e)
		m.logger.Warn(ctx, "operation failed", "op", o.name, "code", e.Code, "error", err)
	}

	m.mu.Lock()
	if o.loading {
		m.inflight--
	}
	if e != nil {
		m.state.Error = msg
		m.warned = false
	}
	m.publishLocked()
	m.mu.Unlock()

	if e == nil {
		m.logger.Debug(ctx, "operation done", "op", o.name)
		return nil
	}
	m.notifier.Notify(ctx, LevelError, msg)
	return e
}

// currentUID returns the signed-in uid from the session state, or "" when
// nobody is signed in.
func (m *Manager) currentUID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.CurrentIdentity == nil {
		return ""
	}
	return m.state.CurrentIdentity.UID
}

// storeErr classifies a profile store failure. Taxonomy errors pass through;
// everything else is an outage.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	var e *autherr.Error
	if errors.As(err, &e) {
		return e
	}
	return autherr.Wrap(autherr.CodeServiceUnavailable, err)
}

func (m *Manager) requireStore() error {
	if m.store == nil {
		return autherr.New(autherr.CodeServiceUnavailable, "profile store not configured")
	}
	return nil
}

func required(values ...string) error {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return autherr.New(autherr.CodeInvalidArgument, "required field is empty")
		}
	}
	return nil
}

// SignIn authenticates with email and password and reconciles the session.
func (m *Manager) SignIn(ctx context.Context, email, password string) error {
	o := m.begin("sign_in", true)
	if err := required(email, password); err != nil {
		return o.end(ctx, err)
	}

	if _, err := m.provider.SignInWithPassword(ctx, email, password); err != nil {
		return o.end(ctx, err)
	}
	m.forgetTouch()
	m.Reload(ctx)
	return o.end(ctx, nil)
}

// SignUp creates an identity and its profile record. extra is stored in the
// record's extensions. If the profile cannot be written the new identity is
// deleted again and the call fails.
func (m *Manager) SignUp(ctx context.Context, email, password string, extra profiles.Extensions) error {
	o := m.begin("sign_up", true)
	if err := required(email, password); err != nil {
		return o.end(ctx, err)
	}

	provisioned := m.provision()
	defer provisioned()

	ident, err := m.provider.CreateUserWithPassword(ctx, email, password)
	if err != nil {
		return o.end(ctx, err)
	}

	err = m.requireStore()
	if err == nil {
		rec := profiles.NewUserRecord(ident.UID, ident.Email, ident.DisplayName, ident.PhotoURL, ident.EmailVerified, extra)
		_, err = m.store.Create(ctx, rec)
		err = storeErr(err)
	}
	if err != nil {
		m.logger.Error(ctx, "profile create failed, rolling back identity", "uid", ident.UID, "error", err)
		if delErr := m.provider.DeleteUser(ctx); delErr != nil {
			m.logger.Error(ctx, "identity rollback failed", "uid", ident.UID, "error", delErr)
		}
		provisioned()
		m.Reload(ctx)
		return o.end(ctx, err)
	}
	provisioned()

	if err := m.provider.SendEmailVerification(ctx); err != nil {
		m.logger.Warn(ctx, "verification email failed", "uid", ident.UID, "error", err)
	}

	m.Reload(ctx)
	return o.end(ctx, nil)
}

// SignOut ends the session. The local state is cleared even when the
// provider call fails.
func (m *Manager) SignOut(ctx context.Context) error {
	o := m.begin("sign_out", true)

	err := m.provider.SignOut(ctx)
	m.reconcile(ctx, m.nextTicket(), nil, false)
	return o.end(ctx, err)
}

// ResetPassword asks the provider to email a reset link. Unknown addresses
// succeed silently. The session is not touched.
func (m *Manager) ResetPassword(ctx context.Context, email string) error {
	o := m.begin("reset_password", false)
	if err := required(email); err != nil {
		return o.end(ctx, err)
	}

	if err := m.provider.SendPasswordResetEmail(ctx, email); err != nil {
		return o.end(ctx, err)
	}
	m.notifier.Notify(ctx, LevelInfo, "If an account exists for that address, a password reset email is on its way.")
	return o.end(ctx, nil)
}

// UpdateProfile changes display name and/or photo on the identity, then on
// the profile record.
func (m *Manager) UpdateProfile(ctx context.Context, changes identity.ProfileChanges) error {
	o := m.begin("update_profile", true)
	uid := m.currentUID()
	if uid == "" {
		return o.end(ctx, autherr.ErrNotAuthenticated)
	}
	if changes.Empty() {
		return o.end(ctx, nil)
	}

	if err := m.provider.UpdateProfile(ctx, changes); err != nil {
		return o.end(ctx, err)
	}

	if err := m.patchProfile(ctx, uid, profiles.Patch{DisplayName: changes.DisplayName, PhotoURL: changes.PhotoURL}); err != nil {
		m.Reload(ctx)
		return o.end(ctx, err)
	}

	m.Reload(ctx)
	return o.end(ctx, nil)
}

// patchProfile writes patch to the record. A missing record is logged and
// skipped.
func (m *Manager) patchProfile(ctx context.Context, uid string, patch profiles.Patch) error {
	if err := m.requireStore(); err != nil {
		return err
	}
	_, err := m.store.Update(ctx, uid, patch)
	if isNotFound(err) {
		m.logger.Warn(ctx, "no profile record to update", "uid", uid)
		return nil
	}
	return storeErr(err)
}

// UpdateEmail changes the email on the identity and the record, marks it
// unverified and sends a new verification email.
func (m *Manager) UpdateEmail(ctx context.Context, email string) error {
	o := m.begin("update_email", true)
	uid := m.currentUID()
	if uid == "" {
		return o.end(ctx, autherr.ErrNotAuthenticated)
	}
	email, err := identity.NormalizeEmail(email)
	if err != nil {
		return o.end(ctx, err)
	}

	if err := m.provider.UpdateEmail(ctx, email); err != nil {
		return o.end(ctx, err)
	}

	verified := false
	if err := m.patchProfile(ctx, uid, profiles.Patch{Email: &email, EmailVerified: &verified}); err != nil {
		m.Reload(ctx)
		return o.end(ctx, err)
	}

	if err := m.provider.SendEmailVerification(ctx); err != nil {
		m.logger.Warn(ctx, "verification email failed", "uid", uid, "error", err)
	}

	m.Reload(ctx)
	return o.end(ctx, nil)
}

// UpdatePassword changes the password. The profile record is not written:
// a password change affects neither the verified flag nor the timestamps.
func (m *Manager) UpdatePassword(ctx context.Context, password string) error {
	o := m.begin("update_password", true)
	if m.currentUID() == "" {
		return o.end(ctx, autherr.ErrNotAuthenticated)
	}
	if err := required(password); err != nil {
		return o.end(ctx, err)
	}

	return o.end(ctx, m.provider.UpdatePassword(ctx, password))
}

// LoginWithFederatedProvider signs in through a federated provider. The
// first login of an identity creates its profile record; later ones refresh
// its login time.
func (m *Manager) LoginWithFederatedProvider(ctx context.Context, tag identity.ProviderTag) error {
	o := m.begin("login_federated", true)
	if !identity.IsFederated(tag) {
		return o.end(ctx, autherr.New(autherr.CodeUnsupportedProvider, string(tag)))
	}

	provisioned := m.provision()
	res, err := m.provider.SignInWithFederated(ctx, tag)
	if err != nil {
		provisioned()
		return o.end(ctx, err)
	}

	err = m.provisionFederated(ctx, res)
	provisioned()
	m.Reload(ctx)
	return o.end(ctx, err)
}

func (m *Manager) provisionFederated(ctx context.Context, res *identity.FederatedResult) error {
	if err := m.requireStore(); err != nil {
		return err
	}
	ident := res.Identity

	if !res.IsNewUser {
		err := m.store.TouchLastLogin(ctx, ident.UID)
		if err == nil {
			m.mu.Lock()
			m.touchedUID = ident.UID
			m.mu.Unlock()
			return nil
		}
		if !isNotFound(err) {
			return storeErr(err)
		}
		m.logger.Warn(ctx, "federated identity without profile record, creating it", "uid", ident.UID)
	}

	rec := profiles.NewUserRecord(ident.UID, ident.Email, ident.DisplayName, ident.PhotoURL, ident.EmailVerified, nil)
	_, err := m.store.Create(ctx, rec)
	if errors.Is(err, common.ErrorAlreadyExists) {
		return nil
	}
	return storeErr(err)
}

// LinkCredential attaches another login method to the current identity.
func (m *Manager) LinkCredential(ctx context.Context, cred identity.Credential) error {
	o := m.begin("link_credential", true)
	if m.currentUID() == "" {
		return o.end(ctx, autherr.ErrNotAuthenticated)
	}

	if _, err := m.provider.LinkCredential(ctx, cred); err != nil {
		return o.end(ctx, err)
	}
	m.Reload(ctx)
	return o.end(ctx, nil)
}

// Reauthenticate proves the user's identity again, which sensitive
// operations require after a while. The session is not changed.
func (m *Manager) Reauthenticate(ctx context.Context, cred identity.Credential) error {
	o := m.begin("reauthenticate", false)
	if m.currentUID() == "" {
		return o.end(ctx, autherr.ErrNotAuthenticated)
	}
	return o.end(ctx, m.provider.Reauthenticate(ctx, cred))
}

// SendVerificationEmail asks for a verification email. It never fails;
// problems are logged.
func (m *Manager) SendVerificationEmail(ctx context.Context) {
	uid := m.currentUID()
	if uid == "" {
		m.logger.Warn(ctx, "verification email requested without a session")
		return
	}
	if err := m.provider.SendEmailVerification(ctx); err != nil {
		m.logger.Warn(ctx, "verification email failed", "uid", uid, "error", err)
		return
	}
	m.notifier.Notify(ctx, LevelInfo, "Verification email sent.")
}

// CheckIsAdmin reads the admin flag of uid's profile record. Any failure,
// including a missing record, yields false.
func (m *Manager) CheckIsAdmin(ctx context.Context, uid string) bool {
	if uid == "" || m.store == nil {
		return false
	}
	rec, err := m.store.Get(ctx, uid)
	if err != nil {
		if !isNotFound(err) {
			m.logger.Warn(ctx, "admin check failed", "uid", uid, "error", err)
		}
		return false
	}
	return rec.IsAdmin
}

// DeleteAccount removes the profile record and then the identity. If the
// identity delete fails the session stays, since the identity is still live.
func (m *Manager) DeleteAccount(ctx context.Context) error {
	o := m.begin("delete_account", true)
	uid := m.currentUID()
	if uid == "" {
		return o.end(ctx, autherr.ErrNotAuthenticated)
	}
	if err := m.requireStore(); err != nil {
		return o.end(ctx, err)
	}

	if err := m.store.Delete(ctx, uid); err != nil {
		return o.end(ctx, storeErr(err))
	}

	if err := m.provider.DeleteUser(ctx); err != nil {
		m.logger.Error(ctx, "identity delete failed after profile delete", "uid", uid, "error", err)
		m.Reload(ctx)
		return o.end(ctx, err)
	}

	m.reconcile(ctx, m.nextTicket(), nil, false)
	m.notifier.Notify(ctx, LevelInfo, "Your account has been deleted.")
	return o.end(ctx, nil)
}
