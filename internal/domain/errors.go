package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrNoZoneSpecified    = errors.New("no zone specified")
	ErrZoneNotFound       = errors.New("zone not found")

	ErrInvalidType = errors.New("invalid type")
	ErrInvalidTTL  = errors.New("invalid TTL")
	ErrRequired    = errors.New("required field missing")

	ErrDNSError          = errors.New("DNS operation failed")
	ErrDNSRecordNotFound = errors.New("DNS record not found")
)

func RequiredField(field string) error {
	return fmt.Errorf("%w: %s", ErrRequired, field)
}

func WrapOp(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
