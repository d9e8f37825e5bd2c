package model

import "errors"

// Sentinel errors returned by stores and services. Callers match them with
// errors.Is; the HTTP layer translates them into status codes.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)
