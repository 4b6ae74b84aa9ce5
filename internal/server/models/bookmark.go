package models

import "time"

// Bookmark is a user-owned resource. UserID is set once at creation and is
// immutable; every read/update/delete must match it against the caller.
type Bookmark struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Link        string    `json:"link,omitempty"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
