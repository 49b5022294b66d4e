// File: internal/data/password.go
package data

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Password represents a hashed password. The plaintext is kept only for
// the lifetime of the struct and never logged or stored.
type Password struct {
	hash      []byte
	plaintext *string
}

// Set hashes a plaintext password and stores it in the Password struct.
func (p *Password) Set(plaintextPassword string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(plaintextPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.plaintext = &plaintextPassword
	p.hash = hashedPassword
	return nil
}

// Matches checks if the provided plaintext password matches the stored
// hash. A mismatch is not an error.
func (p *Password) Matches(plaintextPassword string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(p.hash, []byte(plaintextPassword))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
