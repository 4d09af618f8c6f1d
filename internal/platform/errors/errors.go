package apperrors

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidDate  = errors.New("invalid date")
	ErrNotFound     = errors.New("not found")
	ErrNoQuiz       = errors.New("no quiz for month")
)
