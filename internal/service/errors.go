package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAccount     = errors.New("username must be non-empty and password at least 4 characters")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidMessage     = errors.New("message text must be non-empty and under 255 characters")
	ErrMessageNotFound    = errors.New("message not found")
	ErrStorage            = errors.New("storage failure")
)

// StorageError wraps a repository failure. It matches ErrStorage with errors.Is.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err.Error())
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}
