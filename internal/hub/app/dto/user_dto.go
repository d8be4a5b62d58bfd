// Package dto contains the request and response shapes of the HTTP surface.
package dto

import "encoding/json"

// CreateUserRequest is the registration payload.
type CreateUserRequest struct {
	FirstName string            `json:"first_name"`
	LastName  string            `json:"last_name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone"`
	Password  string            `json:"password"`
	Land      []json.RawMessage `json:"land"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// UserProfile is the redacted projection of a user record returned across
// the API boundary. It never carries the password hash.
type UserProfile struct {
	ID        string            `json:"id"`
	FirstName string            `json:"first_name"`
	LastName  string            `json:"last_name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone"`
	Land      []json.RawMessage `json:"land"`
}

// UpdateUserRequest is the partial-update payload: a field map whose
// allow-listed keys overwrite the stored record and whose unknown keys are
// silently ignored.
type UpdateUserRequest map[string]json.RawMessage
