package models

import "time"

// Role is the closed set of user roles recognised by the API.
type Role string

const (
	// RoleUser is assigned to every newly registered account.
	RoleUser Role = "user"
	// RoleAdmin marks an administrator account.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents an account entity used for authentication and as the owner
// of products.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the opaque unique identifier (UUID) of the user.
	ID string `json:"id"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never serialised; plaintext passwords are never stored.
	PasswordHash string `json:"-"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Role is the authorization role of the user.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Response returns the sanitized representation of u that is safe to send to
// clients.
func (u User) Response() UserResponse {
	resp := UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
	if !u.CreatedAt.IsZero() {
		createdAt := u.CreatedAt
		resp.CreatedAt = &createdAt
	}

	return resp
}

// UserResponse is the public projection of a [User]. It never carries the
// password hash.
type UserResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      Role       `json:"role"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// UserResponses converts a slice of users into their public projections.
func UserResponses(users []User) []UserResponse {
	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, u.Response())
	}

	return resp
}
