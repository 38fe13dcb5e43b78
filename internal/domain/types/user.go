package types

import "time"

// User is a registered wallet owner as known to the client.
type User struct {
	ID        *int64     `json:"id,omitempty"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Document  string     `json:"document"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// Clone returns a copy that shares no pointers with u.
func (u User) Clone() User {
	out := u
	if u.ID != nil {
		id := *u.ID
		out.ID = &id
	}
	if u.CreatedAt != nil {
		at := *u.CreatedAt
		out.CreatedAt = &at
	}
	return out
}

// RegisterInput carries the fields needed to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Document string
	Password string
}

// Registration is the outcome of a successful sign-up: the stored user and
// the bearer token issued for it.
type Registration struct {
	User  User
	Token string
}

// UserState is the user repository's cache.
type UserState struct {
	RegisteredUser *User
}
