package id

import (
	"crypto/rand"

	"github.com/google/uuid"
)

// GenerateID creates a unique 16-character alphanumeric ID.
func GenerateID() string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	for i := range b {
		b[i] = chars[b[i]%byte(len(chars))]
	}
	return string(b)
}

// NewTimeOrdered returns a UUIDv7 string. IDs created later sort after
// earlier ones, so they double as a creation timestamp.
func NewTimeOrdered() string {
	u, err := uuid.NewV7()
	if err != nil {
		panic("uuid v7 failed: " + err.Error())
	}
	return u.String()
}
