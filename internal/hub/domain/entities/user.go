// Package entities contains the core domain model of the hub service.
package entities

import (
	"encoding/json"
	"errors"
	"time"
)

// User domain errors.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrEmptyFirstName = errors.New("first name cannot be empty")
	ErrEmptyLastName  = errors.New("last name cannot be empty")
	ErrEmptyEmail     = errors.New("email cannot be empty")
	ErrEmptyPhone     = errors.New("phone cannot be empty")
	ErrEmptyPassword  = errors.New("password cannot be empty")
)

// User is the sole persistent entity. PasswordHash always holds a bcrypt
// hash; plaintext is never stored. Land is an opaque passthrough of the
// parcel descriptors supplied at registration.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	PasswordHash string
	Land         []json.RawMessage
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
