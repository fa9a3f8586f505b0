package domain

import "errors"

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrUniversityNotFound   = errors.New("university not found")
	ErrRegistrationNotFound = errors.New("registration not found")
)

var (
	ErrUnauthorized    = errors.New("invalid or expired token")
	ErrAccountDisabled = errors.New("account has been deactivated")
)

var (
	ErrEmailTaken        = errors.New("an account with this email already exists")
	ErrAlreadyRegistered = errors.New("user already has a registration for this event")
)

var (
	ErrValidation       = errors.New("validation error")
	ErrExtractFailed    = errors.New("failed to extract event information")
	ErrRouteUnavailable = errors.New("route unavailable")
)
