package auth

import (
	"strings"
	"unicode"

	"github.com/navportal/navportal/internal/apperr"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

// CheckPassword enforces the password policy: MinPasswordLength characters
// including an upper case letter, a lower case letter and a digit.
func CheckPassword(password string) error {
	var upper, lower, digit bool

	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}

	if len([]rune(password)) < MinPasswordLength || !upper || !lower || !digit {
		return apperr.Validation(msgPasswordPolicy, MinPasswordLength)
	}

	return nil
}

// CheckEmailDomain requires email to end with domain, ignoring case.
func CheckEmailDomain(email, domain string) error {
	if domain == "" {
		return nil
	}

	local := strings.TrimSuffix(strings.ToLower(email), strings.ToLower(domain))
	if local == strings.ToLower(email) || local == "" {
		return apperr.Validation(msgEmailDomain, domain)
	}

	return nil
}
