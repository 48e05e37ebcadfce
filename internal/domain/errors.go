package domain

import "errors"

var (
	ErrItemNotFound    = errors.New("item not found")
	ErrItemUnavailable = errors.New("item unavailable")
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInternal        = errors.New("internal error")
)
