package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/esgportal/internal/autherr"
	"github.com/dmitrijs2005/esgportal/internal/common"
	"github.com/dmitrijs2005/esgportal/internal/identity"
)

var errNeedsServer = errors.New("this command needs a server connection")

func (a *App) say(format string, args ...any) {
	fmt.Fprintf(a.out, format+"\n", args...)
}

// fail reports an error the manager did not already report.
func (a *App) fail(err error) error {
	a.say("[error] %s", autherr.Message(err))
	return err
}

func (a *App) ask(prompt string) (string, error) {
	s, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", a.fail(err)
	}
	return s, nil
}

// askPassword reads a password and returns it as a string. The raw bytes
// are wiped.
func (a *App) askPassword(prompt string) (string, error) {
	pw, err := getPassword(prompt, a.out)
	if err != nil {
		return "", a.fail(err)
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

func (a *App) askCredentials() (email, password string, err error) {
	if email, err = a.ask("Enter email"); err != nil {
		return "", "", err
	}
	if password, err = a.askPassword("Enter password"); err != nil {
		return "", "", err
	}
	return email, password, nil
}

// SignUp creates an account with email and password. An optional
// organisation name is kept in the profile extensions.
func (a *App) SignUp(ctx context.Context) error {
	email, password, err := a.askCredentials()
	if err != nil {
		return err
	}
	org, err := a.ask("Organisation (optional)")
	if err != nil {
		return err
	}

	ext, err := signUpExtensions(org)
	if err != nil {
		return a.fail(err)
	}

	if err := a.manager.SignUp(ctx, email, password, ext); err != nil {
		return err
	}
	a.say("Account created. A verification email is on its way.")
	return nil
}

func (a *App) SignIn(ctx context.Context) error {
	email, password, err := a.askCredentials()
	if err != nil {
		return err
	}
	if err := a.manager.SignIn(ctx, email, password); err != nil {
		return err
	}
	a.say("Signed in as %s", email)
	return nil
}

func (a *App) SignInWith(ctx context.Context, tag identity.ProviderTag) error {
	if err := a.manager.LoginWithFederatedProvider(ctx, tag); err != nil {
		return err
	}
	a.say("Signed in with %s", tag)
	return nil
}

func (a *App) SignOut(ctx context.Context) error {
	if err := a.manager.SignOut(ctx); err != nil {
		return err
	}
	a.say("Signed out")
	return nil
}

func (a *App) ResetPassword(ctx context.Context) error {
	email, err := a.ask("Enter email")
	if err != nil {
		return err
	}
	if err := a.manager.ResetPassword(ctx, email); err != nil {
		return err
	}
	a.say("If an account exists for %s, a reset email has been sent.", email)
	return nil
}

// ConfirmReset applies the code from a password reset email.
func (a *App) ConfirmReset(ctx context.Context) error {
	if a.backend.codes == nil {
		return a.fail(errNeedsServer)
	}
	code, err := a.ask("Reset code")
	if err != nil {
		return err
	}
	password, err := a.askPassword("New password")
	if err != nil {
		return err
	}
	if err := a.backend.codes.ConfirmPasswordReset(ctx, code, password); err != nil {
		return a.fail(err)
	}
	a.say("Password changed. You can sign in now.")
	return nil
}

func (a *App) SendVerification(ctx context.Context) error {
	a.manager.SendVerificationEmail(ctx)
	return nil
}

// VerifyEmail applies the code from a verification email and refreshes the
// session so the prompt shows the new state.
func (a *App) VerifyEmail(ctx context.Context) error {
	if a.backend.codes == nil {
		return a.fail(errNeedsServer)
	}
	code, err := a.ask("Verification code")
	if err != nil {
		return err
	}
	if err := a.backend.codes.VerifyEmail(ctx, code); err != nil {
		return a.fail(err)
	}
	a.manager.Reload(ctx)
	a.say("Email verified")
	return nil
}

func (a *App) Reauthenticate(ctx context.Context) error {
	cred, err := a.askCredential("Sign in again with")
	if err != nil {
		return err
	}
	if err := a.manager.Reauthenticate(ctx, cred); err != nil {
		return err
	}
	a.say("Confirmed")
	return nil
}

func (a *App) LinkProvider(ctx context.Context) error {
	cred, err := a.askCredential("Provider to link")
	if err != nil {
		return err
	}
	if err := a.manager.LinkCredential(ctx, cred); err != nil {
		return err
	}
	a.say("%s linked", cred.Provider)
	return nil
}

// askCredential asks for a provider and, for password, the email and
// password. Federated credentials are completed by the consent flow.
func (a *App) askCredential(prompt string) (identity.Credential, error) {
	answer, err := a.ask(prompt + " (password, google, github)")
	if err != nil {
		return identity.Credential{}, err
	}

	tag, err := parseProvider(answer)
	if err != nil {
		return identity.Credential{}, a.fail(err)
	}
	if tag != identity.ProviderPassword {
		return identity.Credential{Provider: tag}, nil
	}

	email, password, err := a.askCredentials()
	if err != nil {
		return identity.Credential{}, err
	}
	return identity.PasswordCredential(email, password), nil
}

func parseProvider(s string) (identity.ProviderTag, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "password":
		return identity.ProviderPassword, nil
	case "google", "google.com":
		return identity.ProviderGoogle, nil
	case "github", "github.com":
		return identity.ProviderGitHub, nil
	}
	return "", autherr.New(autherr.CodeUnsupportedProvider, s)
}

func (a *App) DeleteAccount(ctx context.Context) error {
	answer, err := a.ask("Type DELETE to remove your account for good")
	if err != nil {
		return err
	}
	if answer != "DELETE" {
		a.say("Cancelled")
		return nil
	}
	if err := a.manager.DeleteAccount(ctx); err != nil {
		return err
	}
	a.say("Account deleted")
	return nil
}
