package util

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is fixed at 12. Existing hashes were written at this cost;
// verification works across costs, but new hashes must not drop below it.
const BcryptCost = 12

const MinPasswordLength = 6

var ErrPasswordTooShort = errors.New("password must be at least 6 characters long")

// ValidatePassword checks raw length. Whitespace counts: the untrimmed
// string is what gets hashed, so it is what gets measured.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func VerifyPassword(password, hash string) bool {
	if password == "" || hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
