package client

import (
	"context"

	"github.com/dmitrijs2005/esgportal/internal/autherr"
	"github.com/dmitrijs2005/esgportal/internal/identity"
	pb "github.com/dmitrijs2005/esgportal/internal/proto"
	"github.com/dmitrijs2005/esgportal/internal/rpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

// authenticate runs a call that returns a session and makes it current.
func (c *GRPCClient) authenticate(ctx context.Context, call func(context.Context, IdentityAPI) (*pb.Session, error)) (*pb.Session, *identity.Identity, error) {
	api, err := c.identityAPI()
	if err != nil {
		return nil, nil, err
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	sess, err := call(ctx, api)
	if err != nil {
		return nil, nil, mapError(err)
	}
	if sess.GetIdentity() == nil {
		return nil, nil, autherr.New(autherr.CodeUnknown, "session without identity")
	}
	ident := c.applySession(ctx, sess, true)
	return sess, ident, nil
}

func (c *GRPCClient) SignInWithPassword(ctx context.Context, email, password string) (*identity.Identity, error) {
	_, ident, err := c.authenticate(ctx, func(ctx context.Context, api IdentityAPI) (*pb.Session, error) {
		return api.SignIn(ctx, &pb.SignInRequest{Email: email, Password: password})
	})
	return ident, err
}

func (c *GRPCClient) CreateUserWithPassword(ctx context.Context, email, password string) (*identity.Identity, error) {
	_, ident, err := c.authenticate(ctx, func(ctx context.Context, api IdentityAPI) (*pb.Session, error) {
		return api.SignUp(ctx, &pb.SignUpRequest{Email: email, Password: password})
	})
	return ident, err
}

// consent runs the federated consent flow and returns state and code.
func (c *GRPCClient) consent(ctx context.Context, api IdentityAPI, tag identity.ProviderTag) (state, code string, err error) {
	if !identity.IsFederated(tag) {
		return "", "", autherr.New(autherr.CodeUnsupportedProvider, string(tag))
	}
	if c.flow == nil {
		return "", "", autherr.ErrPopupClosedByUser
	}

	start, err := api.FederatedStart(ctx, &pb.FederatedStartRequest{Provider: string(tag)})
	if err != nil {
		return "", "", mapError(err)
	}
	code, err = c.flow.Authorize(ctx, tag, start.GetAuthUrl())
	if err != nil {
		return "", "", err
	}
	if code == "" {
		return "", "", autherr.ErrPopupClosedByUser
	}
	return start.GetState(), code, nil
}

// SignInWithFederated runs the consent flow for tag outside the call
// timeout, since the user may take a while, then finishes the sign-in.
func (c *GRPCClient) SignInWithFederated(ctx context.Context, tag identity.ProviderTag) (*identity.FederatedResult, error) {
	api, err := c.identityAPI()
	if err != nil {
		return nil, err
	}
	state, code, err := c.consent(ctx, api, tag)
	if err != nil {
		return nil, err
	}

	sess, ident, err := c.authenticate(ctx, func(ctx context.Context, api IdentityAPI) (*pb.Session, error) {
		return api.FederatedFinish(ctx, &pb.FederatedFinishRequest{Provider: string(tag), State: state, Code: code})
	})
	if err != nil {
		return nil, err
	}
	return &identity.FederatedResult{Identity: ident, IsNewUser: sess.GetIsNewUser()}, nil
}

// SignOut revokes the refresh token. The local session ends even when the
// server cannot be reached.
func (c *GRPCClient) SignOut(ctx context.Context) error {
	_, refreshToken := c.tokens()
	defer c.endSession(ctx)

	if refreshToken == "" {
		return nil
	}
	api, err := c.identityAPI()
	if err != nil {
		return err
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	_, err = api.SignOut(ctx, &pb.SignOutRequest{RefreshToken: refreshToken})
	return mapError(err)
}

// call runs an authenticated call that returns nothing of interest.
func (c *GRPCClient) call(ctx context.Context, fn func(context.Context, IdentityAPI) error) error {
	api, err := c.identityAPI()
	if err != nil {
		return err
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	return mapError(fn(ctx, api))
}

func (c *GRPCClient) SendPasswordResetEmail(ctx context.Context, email string) error {
	return c.call(ctx, func(ctx context.Context, api IdentityAPI) error {
		_, err := api.SendPasswordReset(ctx, &pb.EmailRequest{Email: email})
		return err
	})
}

// ConfirmPasswordReset sets a new password with the code from a reset email.
func (c *GRPCClient) ConfirmPasswordReset(ctx context.Context, code, password string) error {
	return c.call(ctx, func(ctx context.Context, api IdentityAPI) error {
		_, err := api.ConfirmPasswordReset(ctx, &pb.ActionCodeRequest{Code: code, NewPassword: password})
		return err
	})
}

func (c *GRPCClient) SendEmailVerification(ctx context.Context) error {
	if c.CurrentIdentity() == nil {
		return autherr.ErrNotAuthenticated
	}
	return c.call(ctx, func(ctx context.Context, api IdentityAPI) error {
		_, err := api.SendEmailVerification(ctx, &emptypb.Empty{})
		return err
	})
}

// VerifyEmail applies the code from a verification email.
func (c *GRPCClient) VerifyEmail(ctx context.Context, code string) error {
	err := c.call(ctx, func(ctx context.Context, api IdentityAPI) error {
		_, err := api.VerifyEmail(ctx, &pb.ActionCodeRequest{Code: code})
		return err
	})
	if err == nil {
		c.mu.Lock()
		if c.current != nil {
			c.current.EmailVerified = true
		}
		c.mu.Unlock()
	}
	return err
}

func (c *GRPCClient) UpdateProfile(ctx context.Context, changes identity.ProfileChanges) error {
	return c.call(ctx, func(ctx context.Context, api IdentityAPI) error {
		resp, err := api.UpdateProfile(ctx, &pb.UpdateIdentityProfileRequest{DisplayName: changes.DisplayName, PhotoUrl: changes.PhotoURL})
		if err != nil {
			return err
		}
		c.setIdentity(resp.GetIdentity())
		return nil
	})
}

func (c *GRPCClient) UpdateEmail(ctx context.Context, email string) error {
	return c.call(ctx, func(ctx context.Context, api IdentityAPI) error {
		resp, err := api.UpdateEmail(ctx, &pb.EmailRequest{Email: email})
		if err != nil {
			return err
		}
		c.setIdentity(resp.GetIdentity())
		return nil
	})
}

func (c *GRPCClient) UpdatePassword(ctx context.Context, password string) error {
	return c.call(ctx, func(ctx context.Context, api IdentityAPI) error {
		_, err := api.UpdatePassword(ctx, &pb.PasswordRequest{Password: password})
		return err
	})
}

// resolveCredential runs the consent flow for a federated credential that
// carries no code yet.
func (c *GRPCClient) resolveCredential(ctx context.Context, api IdentityAPI, cred identity.Credential) (identity.Credential, error) {
	if !identity.IsFederated(cred.Provider) || cred.Code != "" {
		return cred, nil
	}
	state, code, err := c.consent(ctx, api, cred.Provider)
	if err != nil {
		return cred, err
	}
	cred.State, cred.Code = state, code
	return cred, nil
}

func (c *GRPCClient) LinkCredential(ctx context.Context, cred identity.Credential) (*identity.Identity, error) {
	api, err := c.identityAPI()
	if err != nil {
		return nil, err
	}
	cred, err = c.resolveCredential(ctx, api, cred)
	if err != nil {
		return nil, err
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	resp, err := api.LinkCredential(ctx, &pb.CredentialRequest{Credential: rpc.FromCredential(cred)})
	if err != nil {
		return nil, mapError(err)
	}
	c.setIdentity(resp.GetIdentity())
	return c.CurrentIdentity(), nil
}

// Reauthenticate proves the identity again. The server answers with fresh
// tokens whose auth time is now.
func (c *GRPCClient) Reauthenticate(ctx context.Context, cred identity.Credential) error {
	api, err := c.identityAPI()
	if err != nil {
		return err
	}
	cred, err = c.resolveCredential(ctx, api, cred)
	if err != nil {
		return err
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	sess, err := api.Reauthenticate(ctx, &pb.CredentialRequest{Credential: rpc.FromCredential(cred)})
	if err != nil {
		return mapError(err)
	}
	c.applySession(ctx, sess, false)
	return nil
}

func (c *GRPCClient) DeleteUser(ctx context.Context) error {
	err := c.call(ctx, func(ctx context.Context, api IdentityAPI) error {
		_, err := api.DeleteUser(ctx, &emptypb.Empty{})
		return err
	})
	if err != nil {
		return err
	}
	c.endSession(ctx)
	return nil
}

// AvatarUploadURL asks for a presigned upload URL. The returned photo URL
// is what UpdateProfile should store once the upload has succeeded.
func (c *GRPCClient) AvatarUploadURL(ctx context.Context, contentType string) (uploadURL, photoURL string, err error) {
	err = c.call(ctx, func(ctx context.Context, api IdentityAPI) error {
		resp, err := api.AvatarUploadURL(ctx, &pb.AvatarUploadRequest{ContentType: contentType})
		if err != nil {
			return err
		}
		uploadURL, photoURL = resp.GetUploadUrl(), resp.GetPhotoUrl()
		return nil
	})
	return uploadURL, photoURL, err
}

var _ identity.Provider = (*GRPCClient)(nil)
