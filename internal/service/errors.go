package service

import "errors"

// Domain errors. The HTTP layer maps these to statuses with errors.Is;
// matching on message text is forbidden.
var (
	// ErrValidation marks malformed or missing caller input.
	ErrValidation = errors.New("invalid input")

	// ErrDuplicateUser is returned when registering an email that already
	// has an account.
	ErrDuplicateUser = errors.New("user already exists with this email")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. The two cases are deliberately indistinguishable so that
	// login responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken covers every session-token failure: bad signature,
	// malformed payload, and expiry alike.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrNotFound is returned both when an item does not exist and when it
	// exists but belongs to a different owner, so that responses cannot
	// leak the existence of other users' items.
	ErrNotFound = errors.New("todo not found")

	// ErrMalformedDigest is returned when a stored password digest is not
	// a product of the hasher.
	ErrMalformedDigest = errors.New("malformed password digest")
)
