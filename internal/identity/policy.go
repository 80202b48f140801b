package identity

import (
	"net/mail"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/esgportal/internal/autherr"
)

// MinPasswordLength is the default minimum password length.
const MinPasswordLength = 8

// CheckPassword enforces the password policy: at least minLen characters
// with at least one letter and one digit.
func CheckPassword(password string, minLen int) error {
	if password == "" {
		return autherr.New(autherr.CodeInvalidArgument, "password is required")
	}
	if minLen <= 0 {
		minLen = MinPasswordLength
	}
	if len([]rune(password)) < minLen {
		return autherr.New(autherr.CodeWeakPassword, "password too short")
	}

	var letter, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !letter || !digit {
		return autherr.New(autherr.CodeWeakPassword, "password needs letters and digits")
	}
	return nil
}

// NormalizeEmail trims and lower-cases an address and checks its syntax.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", autherr.New(autherr.CodeInvalidArgument, "email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", autherr.New(autherr.CodeInvalidArgument, "malformed email")
	}
	return email, nil
}
