package services

import "errors"

var (
	// ErrInvalidInput marks validation failures; handlers report these as 400.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmailExists is returned on signup with an already-registered email.
	ErrEmailExists = errors.New("email already exists")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login failures never reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
