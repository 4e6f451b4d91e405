package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidState       = errors.New("invalid donation state")
	ErrInsufficientPoints = errors.New("not enough points")
	ErrInvalidDonation    = errors.New("invalid donation")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidRole        = errors.New("invalid role")
)
