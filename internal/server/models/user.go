// Package models holds the persisted entities of the server.
package models

import "time"

// User is a registered identity, uniquely keyed by email. PasswordHash is
// opaque to every layer above the hasher and is never serialized to clients.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
