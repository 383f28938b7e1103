package id

import "github.com/google/uuid"

// NewUID returns a random UUIDv4 string, the public identifier format for
// loans and movements.
func NewUID() string { return uuid.NewString() }

// IsUID reports whether s is a well-formed UUID.
func IsUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
