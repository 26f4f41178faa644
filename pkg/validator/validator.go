package validator

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	minEmailLength       = 3
	maxEmailLength       = 255
	maxUserNameLength    = 100
	maxPasswordLength    = 128
	maxPhoneLength       = 32
	maxTaskNameLength    = 255
	maxDescriptionLength = 4096
	maxStatusLength      = 50
	asciiControlStart    = 32
	asciiDelete          = 127

	errEmailEmptyFmt         = "email cannot be empty"
	errEmailLengthFmt        = "email must be between %d and %d characters"
	errEmailInvalidFmt       = "The UserEmail field is not a valid e-mail address."
	errUserNameRequiredFmt   = "The UserName field is required."
	errUserNameMaxLengthFmt  = "username must not exceed %d characters"
	errUserNameControlFmt    = "username cannot contain control characters"
	errPasswordRequiredFmt   = "The Password field is required."
	errPasswordMaxLengthFmt  = "password must not exceed %d characters"
	errPhoneMaxLengthFmt     = "phone must not exceed %d characters"
	errTaskNameMaxLengthFmt  = "task name must not exceed %d characters"
	errDescriptionMaxLenFmt  = "description must not exceed %d characters"
	errStatusMaxLengthFmt    = "status must not exceed %d characters"
	errStatusControlCharsFmt = "status cannot contain control characters"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func Email(email string) error {
	if email == "" {
		return fmt.Errorf(errEmailEmptyFmt)
	}

	if len(email) < minEmailLength || len(email) > maxEmailLength {
		return fmt.Errorf(errEmailLengthFmt, minEmailLength, maxEmailLength)
	}

	if !emailRegex.MatchString(email) {
		return fmt.Errorf(errEmailInvalidFmt)
	}

	return nil
}

func UserName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf(errUserNameRequiredFmt)
	}

	if len(name) > maxUserNameLength {
		return fmt.Errorf(errUserNameMaxLengthFmt, maxUserNameLength)
	}

	if hasControlChars(name) {
		return fmt.Errorf(errUserNameControlFmt)
	}

	return nil
}

// Password only checks presence and an upper bound; stored secrets are compared verbatim.
func Password(password string) error {
	if strings.TrimSpace(password) == "" {
		return fmt.Errorf(errPasswordRequiredFmt)
	}

	if len(password) > maxPasswordLength {
		return fmt.Errorf(errPasswordMaxLengthFmt, maxPasswordLength)
	}

	return nil
}

// Phone only bounds the length; numbers are stored as written.
func Phone(phone string) error {
	if len(phone) > maxPhoneLength {
		return fmt.Errorf(errPhoneMaxLengthFmt, maxPhoneLength)
	}

	return nil
}

func TaskName(name string) error {
	if len(name) > maxTaskNameLength {
		return fmt.Errorf(errTaskNameMaxLengthFmt, maxTaskNameLength)
	}
	return nil
}

func Description(description string) error {
	if len(description) > maxDescriptionLength {
		return fmt.Errorf(errDescriptionMaxLenFmt, maxDescriptionLength)
	}
	return nil
}

func Status(status string) error {
	if len(status) > maxStatusLength {
		return fmt.Errorf(errStatusMaxLengthFmt, maxStatusLength)
	}

	if hasControlChars(status) {
		return fmt.Errorf(errStatusControlCharsFmt)
	}

	return nil
}

func hasControlChars(s string) bool {
	for _, char := range s {
		if char < asciiControlStart || char == asciiDelete {
			return true
		}
	}
	return false
}
