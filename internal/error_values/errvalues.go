package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	// Raised when no authenticated user is attached to the call
	ErrUnauthenticated = errors.New("user is not authenticated")
	// Unknown or inactive quest
	ErrQuestNotFound = errors.New("quest doesn't exist or is inactive")
	// Persistence layer failure, caller may retry
	ErrStore         = errors.New("store unavailable")
	ErrInvalidAmount = errors.New("credit amount must be positive")

	ErrInvalidQuestType = errors.New("quest type must be daily, weekly or special")
	ErrValidation       = errors.New("validation error")
)
