package cli

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/esgportal/internal/identity"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) SignUp(ctx context.Context) error {
	return f.record("signup")
}
func (f *fakeExec) SignIn(ctx context.Context) error {
	f.loggedIn = true
	return f.record("signin")
}
func (f *fakeExec) SignInWith(ctx context.Context, tag identity.ProviderTag) error {
	f.loggedIn = true
	return f.record("federated:" + string(tag))
}
func (f *fakeExec) SignOut(ctx context.Context) error {
	f.loggedIn = false
	return f.record("signout")
}
func (f *fakeExec) ResetPassword(ctx context.Context) error    { return f.record("reset") }
func (f *fakeExec) ConfirmReset(ctx context.Context) error     { return f.record("confirm-reset") }
func (f *fakeExec) UpdateProfile(ctx context.Context) error    { return f.record("profile") }
func (f *fakeExec) UploadAvatar(ctx context.Context) error     { return f.record("avatar") }
func (f *fakeExec) UpdateEmail(ctx context.Context) error      { return f.record("email") }
func (f *fakeExec) UpdatePassword(ctx context.Context) error   { return f.record("password") }
func (f *fakeExec) LinkProvider(ctx context.Context) error     { return f.record("link") }
func (f *fakeExec) Reauthenticate(ctx context.Context) error   { return f.record("reauth") }
func (f *fakeExec) SendVerification(ctx context.Context) error { return f.record("verify") }
func (f *fakeExec) VerifyEmail(ctx context.Context) error      { return f.record("verify-code") }
func (f *fakeExec) CheckAdmin(ctx context.Context) error       { return f.record("admin") }
func (f *fakeExec) DeleteAccount(ctx context.Context) error    { return f.record("delete") }
func (f *fakeExec) Status(ctx context.Context) error           { return f.record("status") }

func silence(t *testing.T) *[]string {
	t.Helper()
	var printed []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		for _, v := range a {
			if s, ok := v.(string); ok {
				printed = append(printed, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &printed
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	silence(t)

	input := rdr("help\nsignin\ngoogle\ngithub\nprofile\navatar\nemail\npassword\nlink\nreauth\n" +
		"verify\nverify-code\nadmin\ndelete\nstatus\nwhoami\nreset\nconfirm-reset\nsignup\nsignout\nexit\nsignin\n")
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "status" }, input)

	want := []string{
		"signin", "federated:google.com", "federated:github.com", "profile", "avatar", "email",
		"password", "link", "reauth", "verify", "verify-code", "admin", "delete", "status", "status",
		"reset", "confirm-reset", "signup", "signout",
	}
	require.Equal(t, want, exec.calls, "nothing after exit runs")
}

func TestRunREPL_HelpFollowsSession(t *testing.T) {
	printed := silence(t)

	runREPL(context.Background(), &fakeExec{}, func() string { return "" }, rdr("help\nlogin\nhelp\nquit\n"))

	require.Contains(t, *printed, helpSignedOut)
	require.Contains(t, *printed, helpSignedIn)
	require.Contains(t, *printed, "Bye!")
}

func TestRunREPL_UnknownAndBlankLines(t *testing.T) {
	printed := silence(t)
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "s" }, rdr("\n   \nfoobar\n"))

	require.Empty(t, exec.calls)
	require.Contains(t, *printed, "Unknown command:")
	require.Contains(t, *printed, "foobar")
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	silence(t)
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "s" }, rdr("status"))

	require.Equal(t, []string{"status"}, exec.calls)
}

func TestRunREPL_PromptShowsStatus(t *testing.T) {
	printed := silence(t)

	runREPL(context.Background(), &fakeExec{}, func() string { return "(a@x.com online)" }, rdr("exit\n"))

	require.Equal(t, "esg (a@x.com online)> ", (*printed)[0])
}
