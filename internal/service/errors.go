package service

import "errors"

// Business-rule failures handlers translate into status codes. Anything else
// coming out of a service is an unexpected failure and surfaces as a 500.
var (
	ErrUsernameTaken       = errors.New("username already taken")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrQuizNotFound        = errors.New("quiz not found")
	ErrQuizNotAvailable    = errors.New("quiz is not available")
	ErrAttemptLimitReached = errors.New("maximum attempts reached")
)
