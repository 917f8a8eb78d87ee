package service

import "errors"

// Sentinel errors the handlers map onto HTTP statuses.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidIndex    = errors.New("invalid question index")
	ErrInvalidOption   = errors.New("invalid option index")
	ErrUserNotFound    = errors.New("user not found")
	ErrUsernameTaken   = errors.New("username already taken")

	// Login failures are deliberately distinguishable: the original product
	// tells the user whether the account or the password was wrong. A UX
	// choice, not a security posture.
	ErrAccountNotFound = errors.New("account not found")
	ErrWrongPassword   = errors.New("incorrect password")

	ErrInvalidCode = errors.New("invalid or expired verification code")

	ErrSessionFinalized = errors.New("session already finalized")
)
