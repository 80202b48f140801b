package grpc

import (
	"context"

	"github.com/dmitrijs2005/esgportal/internal/autherr"
	pb "github.com/dmitrijs2005/esgportal/internal/proto"
	"github.com/dmitrijs2005/esgportal/internal/rpc"
	"github.com/dmitrijs2005/esgportal/internal/server/services"
	"google.golang.org/protobuf/types/known/emptypb"
)

type identityHandler struct {
	pb.UnimplementedIdentityServiceServer
	s *GRPCServer
}

func toSession(r *services.AuthResult) *pb.Session {
	return &pb.Session{
		Identity:     rpc.FromIdentity(r.Identity),
		AccessToken:  r.Tokens.AccessToken,
		RefreshToken: r.Tokens.RefreshToken,
		IsNewUser:    r.IsNewUser,
	}
}

// session converts the outcome of an authenticating call.
func (h *identityHandler) session(ctx context.Context, method string, r *services.AuthResult, err error) (*pb.Session, error) {
	if err != nil {
		return nil, h.fail(ctx, method, err)
	}
	return toSession(r), nil
}

// fail logs unexpected errors and converts err into a status.
func (h *identityHandler) fail(ctx context.Context, method string, err error) error {
	if autherr.CodeOf(err) == autherr.CodeUnknown {
		h.s.logger.Error(ctx, "request failed", "method", method, "error", err)
	}
	return autherr.ToStatus(err)
}

func (h *identityHandler) SignIn(ctx context.Context, req *pb.SignInRequest) (*pb.Session, error) {
	r, err := h.s.accounts.SignIn(ctx, req.GetEmail(), req.GetPassword())
	return h.session(ctx, "SignIn", r, err)
}

func (h *identityHandler) SignUp(ctx context.Context, req *pb.SignUpRequest) (*pb.Session, error) {
	r, err := h.s.accounts.SignUp(ctx, req.GetEmail(), req.GetPassword())
	return h.session(ctx, "SignUp", r, err)
}

func (h *identityHandler) Refresh(ctx context.Context, req *pb.RefreshRequest) (*pb.Session, error) {
	r, err := h.s.accounts.Refresh(ctx, req.GetRefreshToken())
	return h.session(ctx, "Refresh", r, err)
}

func (h *identityHandler) SignOut(ctx context.Context, req *pb.SignOutRequest) (*emptypb.Empty, error) {
	if err := h.s.accounts.SignOut(ctx, req.GetRefreshToken()); err != nil {
		return nil, h.fail(ctx, "SignOut", err)
	}
	return &emptypb.Empty{}, nil
}

func (h *identityHandler) FederatedStart(ctx context.Context, req *pb.FederatedStartRequest) (*pb.FederatedStartResponse, error) {
	authURL, state, err := h.s.accounts.FederatedStart(ctx, req.GetProvider())
	if err != nil {
		return nil, h.fail(ctx, "FederatedStart", err)
	}
	return &pb.FederatedStartResponse{AuthUrl: authURL, State: state}, nil
}

func (h *identityHandler) FederatedFinish(ctx context.Context, req *pb.FederatedFinishRequest) (*pb.Session, error) {
	r, err := h.s.accounts.FederatedFinish(ctx, req.GetProvider(), req.GetState(), req.GetCode())
	return h.session(ctx, "FederatedFinish", r, err)
}

func (h *identityHandler) SendPasswordReset(ctx context.Context, req *pb.EmailRequest) (*emptypb.Empty, error) {
	if err := h.s.accounts.SendPasswordReset(ctx, req.GetEmail()); err != nil {
		return nil, h.fail(ctx, "SendPasswordReset", err)
	}
	return &emptypb.Empty{}, nil
}

func (h *identityHandler) ConfirmPasswordReset(ctx context.Context, req *pb.ActionCodeRequest) (*emptypb.Empty, error) {
	if err := h.s.accounts.ConfirmPasswordReset(ctx, req.GetCode(), req.GetNewPassword()); err != nil {
		return nil, h.fail(ctx, "ConfirmPasswordReset", err)
	}
	return &emptypb.Empty{}, nil
}

func (h *identityHandler) SendEmailVerification(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.s.accounts.SendEmailVerification(ctx, p); err != nil {
		return nil, h.fail(ctx, "SendEmailVerification", err)
	}
	return &emptypb.Empty{}, nil
}

func (h *identityHandler) VerifyEmail(ctx context.Context, req *pb.ActionCodeRequest) (*emptypb.Empty, error) {
	if err := h.s.accounts.VerifyEmail(ctx, req.GetCode()); err != nil {
		return nil, h.fail(ctx, "VerifyEmail", err)
	}
	return &emptypb.Empty{}, nil
}

func (h *identityHandler) UpdateProfile(ctx context.Context, req *pb.UpdateIdentityProfileRequest) (*pb.IdentityResponse, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	ident, err := h.s.accounts.UpdateProfile(ctx, p, req.DisplayName, req.PhotoUrl)
	if err != nil {
		return nil, h.fail(ctx, "UpdateProfile", err)
	}
	return &pb.IdentityResponse{Identity: rpc.FromIdentity(ident)}, nil
}

func (h *identityHandler) UpdateEmail(ctx context.Context, req *pb.EmailRequest) (*pb.IdentityResponse, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	ident, err := h.s.accounts.UpdateEmail(ctx, p, req.GetEmail())
	if err != nil {
		return nil, h.fail(ctx, "UpdateEmail", err)
	}
	return &pb.IdentityResponse{Identity: rpc.FromIdentity(ident)}, nil
}

func (h *identityHandler) UpdatePassword(ctx context.Context, req *pb.PasswordRequest) (*emptypb.Empty, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.s.accounts.UpdatePassword(ctx, p, req.GetPassword()); err != nil {
		return nil, h.fail(ctx, "UpdatePassword", err)
	}
	return &emptypb.Empty{}, nil
}

func (h *identityHandler) LinkCredential(ctx context.Context, req *pb.CredentialRequest) (*pb.IdentityResponse, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	ident, err := h.s.accounts.LinkCredential(ctx, p, rpc.ToCredential(req.GetCredential()))
	if err != nil {
		return nil, h.fail(ctx, "LinkCredential", err)
	}
	return &pb.IdentityResponse{Identity: rpc.FromIdentity(ident)}, nil
}

func (h *identityHandler) Reauthenticate(ctx context.Context, req *pb.CredentialRequest) (*pb.Session, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	r, err := h.s.accounts.Reauthenticate(ctx, p, rpc.ToCredential(req.GetCredential()))
	return h.session(ctx, "Reauthenticate", r, err)
}

func (h *identityHandler) DeleteUser(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.s.accounts.DeleteUser(ctx, p); err != nil {
		return nil, h.fail(ctx, "DeleteUser", err)
	}
	return &emptypb.Empty{}, nil
}

func (h *identityHandler) AvatarUploadURL(ctx context.Context, req *pb.AvatarUploadRequest) (*pb.AvatarUploadResponse, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	uploadURL, photoURL, err := h.s.avatars.UploadURL(ctx, p, req.GetContentType())
	if err != nil {
		return nil, h.fail(ctx, "AvatarUploadURL", err)
	}
	return &pb.AvatarUploadResponse{UploadUrl: uploadURL, PhotoUrl: photoURL}, nil
}

func (h *identityHandler) Ping(ctx context.Context, _ *emptypb.Empty) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

var _ pb.IdentityServiceServer = (*identityHandler)(nil)
