package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/esgportal/internal/autherr"
	"github.com/dmitrijs2005/esgportal/internal/common"
	"github.com/dmitrijs2005/esgportal/internal/rpc"
	"github.com/dmitrijs2005/esgportal/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// errTokenExpired is the exact answer the client recognises as "refresh
// and retry".
var errTokenExpired = status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if rpc.PublicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, autherr.ToStatus(autherr.New(autherr.CodeNotAuthenticated, "missing token"))
	}

	p, err := auth.ParseToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, errTokenExpired
		}
		return nil, autherr.ToStatus(autherr.New(autherr.CodeNotAuthenticated, "invalid token"))
	}

	return handler(auth.WithPrincipal(ctx, p), req)
}

// principal returns the caller set by the interceptor.
func principal(ctx context.Context) (auth.Principal, error) {
	p, ok := auth.PrincipalFrom(ctx)
	if !ok {
		return auth.Principal{}, autherr.ToStatus(autherr.New(autherr.CodeNotAuthenticated, "missing principal"))
	}
	return p, nil
}
