package autherr

import (
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorDomain tags ErrorInfo details produced by this package.
const ErrorDomain = "identity.esgportal"

var grpcCodes = map[Code]codes.Code{
	CodeInvalidCredentials:     codes.Unauthenticated,
	CodeEmailAlreadyInUse:      codes.AlreadyExists,
	CodeWeakPassword:           codes.InvalidArgument,
	CodeUserNotFound:           codes.NotFound,
	CodeRequiresRecentLogin:    codes.FailedPrecondition,
	CodeTooManyRequests:        codes.ResourceExhausted,
	CodeNetworkUnavailable:     codes.Unavailable,
	CodeNotAuthenticated:       codes.Unauthenticated,
	CodeUnsupportedProvider:    codes.InvalidArgument,
	CodeCredentialAlreadyInUse: codes.AlreadyExists,
	CodePopupClosedByUser:      codes.Canceled,
	CodeInvalidArgument:        codes.InvalidArgument,
	CodePermissionDenied:       codes.PermissionDenied,
	CodeExpiredActionCode:      codes.FailedPrecondition,
	CodeServiceUnavailable:     codes.Unavailable,
	CodeUnknown:                codes.Internal,
}

// ToStatus converts err into a gRPC status error carrying the Code as an
// ErrorInfo reason. Unknown errors are reported as "internal error" so that
// server internals never cross the wire.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	e := Classify(err)
	grpcCode, ok := grpcCodes[e.Code]
	if !ok {
		grpcCode = codes.Internal
	}

	msg := e.Detail
	if e.Code == CodeUnknown || msg == "" {
		msg = string(e.Code)
	}
	if e.Code == CodeUnknown {
		msg = "internal error"
	}

	st := status.New(grpcCode, msg)
	withInfo, detailErr := st.WithDetails(&errdetails.ErrorInfo{Reason: string(e.Code), Domain: ErrorDomain})
	if detailErr != nil {
		return st.Err()
	}
	return withInfo.Err()
}

// FromStatus converts a gRPC error back into an *Error. Statuses without
// our ErrorInfo are classified from the gRPC code alone.
func FromStatus(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return Classify(err)
	}

	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == ErrorDomain {
			return &Error{Code: Code(info.GetReason()), Detail: st.Message()}
		}
	}

	switch st.Code() {
	case codes.Unauthenticated:
		return &Error{Code: CodeNotAuthenticated, Detail: st.Message()}
	case codes.PermissionDenied:
		return &Error{Code: CodePermissionDenied, Detail: st.Message()}
	case codes.Unavailable:
		return &Error{Code: CodeServiceUnavailable, Detail: st.Message()}
	case codes.DeadlineExceeded, codes.Canceled:
		return &Error{Code: CodeNetworkUnavailable, Detail: st.Message()}
	case codes.ResourceExhausted:
		return &Error{Code: CodeTooManyRequests, Detail: st.Message()}
	case codes.InvalidArgument:
		return &Error{Code: CodeInvalidArgument, Detail: st.Message()}
	default:
		return &Error{Code: CodeUnknown, Detail: st.Message()}
	}
}
