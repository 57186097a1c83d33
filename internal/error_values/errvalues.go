package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrWrongOwner       = errors.New("resource belongs to another user")

	ErrValidation   = errors.New("validation error")
	ErrMoodNotFound = errors.New("mood entry doesn't exist")
	ErrPostNotFound = errors.New("community post doesn't exist")
	ErrPushFailed   = errors.New("push delivery failed")
	ErrUnknownJob   = errors.New("unknown job")
	ErrInvalidTZ    = errors.New("unknown time zone")
)
