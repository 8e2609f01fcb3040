package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a bcrypt hash from the given plain-text password.
//
// The hash embeds its own random salt and cost factor, so no additional
// secret material is required to verify it later.
//
// Parameters:
//
//	password - the plain-text password to hash
//
// Returns:
//
//	string - the bcrypt hash in its standard encoded form
//	error  - non-nil if the password exceeds bcrypt's length limit or
//	         hashing fails
//
// Example usage:
//
//	hash, err := utils.HashPassword("correct horse battery staple")
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether the given plain-text password matches the
// stored bcrypt hash.
//
// Parameters:
//
//	hash     - the stored bcrypt hash
//	password - the plain-text password to verify
//
// Returns:
//
//	bool - true if the password matches the hash
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
