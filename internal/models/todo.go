package models

import "time"

// Todo is a single user-owned task item. OwnerID is set once at creation
// and never reassigned.
type Todo struct {
	ID          int       `json:"id"`
	OwnerID     int       `json:"ownerId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}
