// Package services defines service-level domain errors and the token claims
// model shared between the token adapter and the use cases.
package services

import (
	"errors"
	"time"
)

// Credential and token errors.
var (
	ErrInvalidPassword    = errors.New("invalid password")
	ErrHashingFailed      = errors.New("password hashing failed")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrGeneratingToken    = errors.New("error generating token")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")
)

// Repository-level conflicts surfaced to callers.
var ErrEmailAlreadyExists = errors.New("user with this email already exists")

// Device gateway errors.
var (
	ErrDeviceUnreachable = errors.New("device unreachable")
	ErrMalformedReading  = errors.New("malformed device reading")
)

// TokenClaims is the domain view of a bearer token payload.
type TokenClaims struct {
	UserID    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
