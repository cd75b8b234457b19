package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Bounds accepted for account passwords. bcrypt ignores bytes past 72.
const (
	MinLength = 6
	MaxLength = 72
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrTooShort        = fmt.Errorf("password must be at least %d characters", MinLength)
	ErrTooLong         = fmt.Errorf("password must be at most %d bytes", MaxLength)
)

// Check enforces the length bounds without hashing.
func Check(password string) error {
	switch {
	case len([]rune(password)) < MinLength:
		return ErrTooShort
	case len(password) > MaxLength:
		return ErrTooLong
	default:
		return nil
	}
}

// Hash returns the bcrypt hash of a password that passes Check.
func Hash(password string) (string, error) {
	if err := Check(password); err != nil {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashed), nil
}

// Verify reports ErrInvalidPassword for any mismatch, including an empty input or a malformed hash.
func Verify(password, hash string) error {
	if password == "" || hash == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return nil
	}

	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) || errors.Is(err, bcrypt.ErrHashTooShort) {
		return ErrInvalidPassword
	}

	return fmt.Errorf("failed to verify password: %w", err)
}
