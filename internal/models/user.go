package models

import "time"

// User is the stored account record.
type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never serialized outward
	CreatedAt    time.Time `json:"createdAt"`
}

// PublicUser is the outward-safe projection of a User. It is the only
// user shape that may cross the HTTP boundary.
type PublicUser struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public projects the user without its password hash.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
