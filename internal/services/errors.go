package services

import "errors"

var (
	ErrUserAlreadyExists  = errors.New("username taken")
	ErrInvalidCredentials = errors.New("invalid username and/or password")
	ErrCourseNotFound     = errors.New("course not found")
)

// ValidationError reports a missing or invalid form field. Message is shown
// to the user as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
