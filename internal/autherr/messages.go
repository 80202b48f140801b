package autherr

import "fmt"

var messages = map[Code]string{
	CodeInvalidCredentials:     "The email or password is incorrect.",
	CodeEmailAlreadyInUse:      "An account with this email already exists.",
	CodeWeakPassword:           "The password is too weak. Use at least 8 characters with letters and digits.",
	CodeUserNotFound:           "No account was found for this email.",
	CodeRequiresRecentLogin:    "Please sign in again to complete this action.",
	CodeTooManyRequests:        "Too many attempts. Please wait a moment and try again.",
	CodeNetworkUnavailable:     "Network error. Check your connection and try again.",
	CodeNotAuthenticated:       "You need to be signed in to do that.",
	CodeUnsupportedProvider:    "This sign-in method is not supported.",
	CodeCredentialAlreadyInUse: "This credential is already linked to another account.",
	CodePopupClosedByUser:      "Sign-in was cancelled before it completed.",
	CodeInvalidArgument:        "Please fill in all required fields.",
	CodePermissionDenied:       "You do not have permission to do that.",
	CodeExpiredActionCode:      "This link has expired or was already used.",
	CodeServiceUnavailable:     "The service is temporarily unavailable. Please try again later.",
}

// Message returns the user-facing sentence for err. Unknown codes produce a
// generic sentence that includes the raw detail.
func Message(err error) string {
	if err == nil {
		return ""
	}
	e := Classify(err)
	if msg, ok := messages[e.Code]; ok {
		return msg
	}
	detail := e.Detail
	if detail == "" && e.Err != nil {
		detail = e.Err.Error()
	}
	if detail == "" {
		detail = string(e.Code)
	}
	return fmt.Sprintf("An unexpected error occurred: %s", detail)
}
