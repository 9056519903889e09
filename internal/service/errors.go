package service

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrMissingFields      = errors.New("missing required fields")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("resource not found")
	ErrFileTooLarge       = errors.New("file exceeds the maximum upload size")
	ErrFileType           = errors.New("file type not allowed")
)
