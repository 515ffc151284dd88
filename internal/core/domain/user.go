package domain

import "time"

// User is a durable identity record keyed by email. Exactly one record exists
// per email; concurrent upserts are merged by the storage layer.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Principal is the identity asserted by a verified token, prior to being
// resolved to a durable User record.
type Principal struct {
	Email  string
	Name   string
	Avatar string
}
