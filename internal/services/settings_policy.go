package services

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidTimezone  = errors.New("timezone must be a valid IANA identifier")
	ErrInvalidResetHour = errors.New("daily reset hour must be in 0..23")
	ErrInvalidPrefTime  = errors.New("notification time must be HH:MM")
)

// ValidateTimezone resolves an IANA timezone identifier. The profile keeps
// the name, not the location, so a later tzdata update is picked up.
func ValidateTimezone(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidTimezone
	}
	if _, err := time.LoadLocation(trimmed); err != nil {
		return "", ErrInvalidTimezone
	}
	return trimmed, nil
}

func ValidateResetHour(hour int) error {
	if hour < 0 || hour > 23 {
		return ErrInvalidResetHour
	}
	return nil
}

// ValidatePrefTime checks the check-in/reflect reminder times, which share
// the HH:MM shape of habit target times.
func ValidatePrefTime(raw string) error {
	if !ValidTargetTime(strings.TrimSpace(raw)) {
		return ErrInvalidPrefTime
	}
	return nil
}
