package validator

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

var (
	alphanumericRegex  = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	numericStringRegex = regexp.MustCompile(`^[0-9]+$`)
)

// Email accepts a bare address with a dotted domain, e.g. "jane@example.com".
func Email(message string) Validator[string] {
	return Validator[string]{
		Check: func(value string) bool {
			addr, err := mail.ParseAddress(value)
			if err != nil || addr.Address != value {
				return false
			}

			local, domain, _ := strings.Cut(addr.Address, "@")
			if local == "" || !strings.Contains(domain, ".") {
				return false
			}
			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
		},
	}.WithMessage(message)
}

// URL accepts absolute URLs with a scheme and host.
func URL(message string) Validator[string] {
	return Validator[string]{
		Check: func(value string) bool {
			u, err := url.ParseRequestURI(value)
			return err == nil && u.Scheme != "" && u.Host != ""
		},
		Error: ValidationError{
			Message:        "must be a valid URL",
			TranslationKey: "validation.url",
		},
	}.WithMessage(message)
}

func Alphanumeric(message string) Validator[string] {
	return Validator[string]{
		Check: alphanumericRegex.MatchString,
		Error: ValidationError{
			Message:        "must contain only letters and numbers",
			TranslationKey: "validation.alphanumeric",
		},
	}.WithMessage(message)
}

// Digits accepts non-empty strings of ASCII digits. Unlike a conversion step
// it keeps leading zeros.
func Digits(message string) Validator[string] {
	return Validator[string]{
		Check: numericStringRegex.MatchString,
		Error: ValidationError{
			Message:        "must contain only digits",
			TranslationKey: "validation.numeric",
		},
	}.WithMessage(message)
}
