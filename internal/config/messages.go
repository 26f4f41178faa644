package config

import "fmt"

const (
	errStoreDriverInvalidFmt = "STORE_DRIVER must be one of %q or %q, got %q"
	errJWTSecretMinLengthFmt = "JWT_SECRET must be at least %d characters"
	errLogFormatInvalidFmt   = "LOG_FORMAT must be json or console, got %q"
)

type messageBuilders struct {
	storeDriverInvalid func(string) error
	jwtSecretTooShort  func(int) error
	logFormatInvalid   func(string) error
}

func newMessageBuilders() messageBuilders {
	return messageBuilders{
		storeDriverInvalid: func(driver string) error {
			return fmt.Errorf(errStoreDriverInvalidFmt, StoreDriverMemory, StoreDriverPostgres, driver)
		},
		jwtSecretTooShort: func(min int) error {
			return fmt.Errorf(errJWTSecretMinLengthFmt, min)
		},
		logFormatInvalid: func(format string) error {
			return fmt.Errorf(errLogFormatInvalidFmt, format)
		},
	}
}

var messages = newMessageBuilders()
