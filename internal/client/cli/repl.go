package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/esgportal/internal/identity"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	SignUp(ctx context.Context) error
	SignIn(ctx context.Context) error
	SignInWith(ctx context.Context, tag identity.ProviderTag) error
	SignOut(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	ConfirmReset(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	UploadAvatar(ctx context.Context) error
	UpdateEmail(ctx context.Context) error
	UpdatePassword(ctx context.Context) error
	LinkProvider(ctx context.Context) error
	Reauthenticate(ctx context.Context) error
	SendVerification(ctx context.Context) error
	VerifyEmail(ctx context.Context) error
	CheckAdmin(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	Status(ctx context.Context) error
}

const (
	helpSignedOut = "Available commands: signup, signin, google, github, reset, confirm-reset, status, exit"
	helpSignedIn  = "Available commands: status, profile, avatar, email, password, link, reauth, verify, verify-code, admin, delete, signout, exit"
)

// runREPL starts a simple read–eval–print loop for the ESG portal CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Errors returned by command handlers are not printed here: the session
// manager reports them through its notifier.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("esg %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpSignedOut)
			}

		case "signup", "register":
			_ = a.SignUp(ctx)

		case "signin", "login":
			_ = a.SignIn(ctx)

		case "google":
			_ = a.SignInWith(ctx, identity.ProviderGoogle)

		case "github":
			_ = a.SignInWith(ctx, identity.ProviderGitHub)

		case "signout", "logout":
			_ = a.SignOut(ctx)

		case "reset":
			_ = a.ResetPassword(ctx)

		case "confirm-reset":
			_ = a.ConfirmReset(ctx)

		case "profile":
			_ = a.UpdateProfile(ctx)

		case "avatar":
			_ = a.UploadAvatar(ctx)

		case "email":
			_ = a.UpdateEmail(ctx)

		case "password":
			_ = a.UpdatePassword(ctx)

		case "link":
			_ = a.LinkProvider(ctx)

		case "reauth":
			_ = a.Reauthenticate(ctx)

		case "verify":
			_ = a.SendVerification(ctx)

		case "verify-code":
			_ = a.VerifyEmail(ctx)

		case "admin":
			_ = a.CheckAdmin(ctx)

		case "delete":
			_ = a.DeleteAccount(ctx)

		case "status", "whoami":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
