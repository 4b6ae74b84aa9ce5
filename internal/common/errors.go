// Package common defines shared constants and sentinel errors used across
// client and server layers of bookmarkd. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Credential lifecycle errors. Unknown email and wrong password map to
	// the same sentinel so signin never discloses which check failed.
	ErrorEmailTaken         = errors.New("email is already taken")
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Ownership errors: the resource is absent or belongs to someone else.
	// Deliberately indistinguishable to the caller.
	ErrorAccessDenied = errors.New("access to resource is denied")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
