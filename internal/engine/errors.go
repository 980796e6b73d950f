package engine

import "errors"

// Validation rejections. The engine declines the operation and leaves state
// untouched; callers decide how to surface them.
var (
	ErrEmptyTitle      = errors.New("title is required")
	ErrEmptyName       = errors.New("name is required")
	ErrTaskNotFound    = errors.New("task not found")
	ErrHabitNotFound   = errors.New("habit not found")
	ErrInvalidMinutes  = errors.New("minutes must be positive")
	ErrInvalidDocument = errors.New("invalid document")
)
