package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor used for stored password hashes
const PasswordCost = 10

// bcrypt only reads the first 72 bytes of a password. Longer passwords are
// cut there on both hashing and checking so they stay usable.
const maxPasswordBytes = 72

// HashPassword hashes a plain text password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(passwordBytes(password), PasswordCost)
	return string(bytes), err
}

// CheckPassword compares a bcrypt hash with a plain text password
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), passwordBytes(password))
	return err == nil
}

func passwordBytes(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}
