package service

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrNotPermitted = errors.New("not permitted")
	ErrValidation   = errors.New("validation failed")
)
