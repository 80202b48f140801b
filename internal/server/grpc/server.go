// Package grpc exposes the identity and profile services over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/esgportal/internal/identity"
	"github.com/dmitrijs2005/esgportal/internal/logging"
	"github.com/dmitrijs2005/esgportal/internal/profiles"
	pb "github.com/dmitrijs2005/esgportal/internal/proto"
	"github.com/dmitrijs2005/esgportal/internal/server/auth"
	"github.com/dmitrijs2005/esgportal/internal/server/services"
	"google.golang.org/grpc"
)

type accountSvc interface {
	SignUp(ctx context.Context, email, password string) (*services.AuthResult, error)
	SignIn(ctx context.Context, email, password string) (*services.AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*services.AuthResult, error)
	SignOut(ctx context.Context, refreshToken string) error
	FederatedStart(ctx context.Context, provider string) (string, string, error)
	FederatedFinish(ctx context.Context, provider, state, code string) (*services.AuthResult, error)
	SendPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, code, password string) error
	SendEmailVerification(ctx context.Context, p auth.Principal) error
	VerifyEmail(ctx context.Context, code string) error
	UpdateProfile(ctx context.Context, p auth.Principal, displayName, photoURL *string) (*identity.Identity, error)
	UpdateEmail(ctx context.Context, p auth.Principal, email string) (*identity.Identity, error)
	UpdatePassword(ctx context.Context, p auth.Principal, password string) error
	LinkCredential(ctx context.Context, p auth.Principal, cred identity.Credential) (*identity.Identity, error)
	Reauthenticate(ctx context.Context, p auth.Principal, cred identity.Credential) (*services.AuthResult, error)
	DeleteUser(ctx context.Context, p auth.Principal) error
}

type profileSvc interface {
	Get(ctx context.Context, p auth.Principal, uid string) (*profiles.Record, error)
	Create(ctx context.Context, p auth.Principal, rec *profiles.Record) (*profiles.Record, error)
	Update(ctx context.Context, p auth.Principal, uid string, patch profiles.Patch) (*profiles.Record, error)
	TouchLastLogin(ctx context.Context, p auth.Principal, uid string) error
	Delete(ctx context.Context, p auth.Principal, uid string) error
}

type avatarSvc interface {
	UploadURL(ctx context.Context, p auth.Principal, contentType string) (string, string, error)
}

type GRPCServer struct {
	address      string
	accounts     accountSvc
	profiles     profileSvc
	avatars      avatarSvc
	logger       logging.Logger
	jwtSecret    []byte
	interceptors []grpc.UnaryServerInterceptor
}

// NewGRPCServer wires the handlers. Extra interceptors run before the
// access token check, so they also see rejected calls.
func NewGRPCServer(a string, l logging.Logger, as accountSvc, ps profileSvc, av avatarSvc, secretKey string,
	interceptors ...grpc.UnaryServerInterceptor) (*GRPCServer, error) {
	return &GRPCServer{
		address:      a,
		logger:       l.With("module", "grpc_server"),
		accounts:     as,
		profiles:     ps,
		avatars:      av,
		jwtSecret:    []byte(secretKey),
		interceptors: interceptors,
	}, nil
}

// NewServer builds a gRPC server with both services registered.
func (s *GRPCServer) NewServer() *grpc.Server {
	chain := append(append([]grpc.UnaryServerInterceptor{}, s.interceptors...), s.accessTokenInterceptor)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(chain...))

	pb.RegisterIdentityServiceServer(srv, &identityHandler{s: s})
	pb.RegisterProfileServiceServer(srv, &profileHandler{s: s})
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
