package client

import (
	"errors"

	"github.com/dmitrijs2005/esgportal/internal/autherr"
	"github.com/dmitrijs2005/esgportal/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNoEndpoint is returned when the client has nothing to dial.
var ErrNoEndpoint = errors.New("server endpoint not configured")

// mapError converts an identity call error into the taxonomy.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	return autherr.FromStatus(err)
}

// mapStoreError converts a profile call error. Missing and duplicate
// records become the repository sentinels; anything else is classified.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}
	switch status.Code(err) {
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.AlreadyExists:
		return common.ErrorAlreadyExists
	}
	return autherr.FromStatus(err)
}

// isExpiredToken reports whether err is the server's "access token expired"
// answer.
func isExpiredToken(err error) bool {
	st, ok := status.FromError(err)
	return ok && st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error()
}

// isRejectedSession reports whether the server refused a refresh token for
// good, as opposed to being unreachable.
func isRejectedSession(err error) bool {
	return errors.Is(err, autherr.ErrNotAuthenticated) || errors.Is(err, autherr.ErrInvalidCredentials)
}
