package service

import "errors"

// Business outcomes that must be distinguishable by the HTTP layer.
// Absence ("not found", and deliberately also "found but not owned by
// the actor" on update/delete paths) is not an error: those methods
// return nil views or false instead, so an unauthorized actor cannot
// tell "exists but not yours" from "does not exist".
var (
	// ErrEmailTaken is returned when registering with an email that is
	// already registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUsernameTaken is returned when registering or updating to a
	// username that is already in use.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials is returned on login failure. It does not
	// distinguish an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrSelfFollow is returned when a user attempts to follow or
	// unfollow themselves.
	ErrSelfFollow = errors.New("cannot follow yourself")
)
