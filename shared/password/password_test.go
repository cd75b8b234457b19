package password_test

import (
	"strings"
	"testing"
	"venuely/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "minimum length", password: "abc123"},
		{name: "maximum length", password: strings.Repeat("a", password.MaxLength)},
		{name: "multibyte runes count once", password: "pässwö"},
		{name: "too short", password: "abc12", wantErr: password.ErrTooShort},
		{name: "empty", password: "", wantErr: password.ErrTooShort},
		{name: "too long", password: strings.Repeat("a", password.MaxLength+1), wantErr: password.ErrTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, password.Check(tt.password), tt.wantErr)
		})
	}
}

func TestHashAndVerify(t *testing.T) {
	hashed, err := password.Hash("wedding-2025")
	require.NoError(t, err)
	assert.NotEqual(t, "wedding-2025", hashed)

	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  error
	}{
		{name: "matching password", password: "wedding-2025", hash: hashed},
		{name: "wrong password", password: "wedding-2026", hash: hashed, wantErr: password.ErrInvalidPassword},
		{name: "empty password", password: "", hash: hashed, wantErr: password.ErrInvalidPassword},
		{name: "empty hash", password: "wedding-2025", hash: "", wantErr: password.ErrInvalidPassword},
		{name: "malformed hash", password: "wedding-2025", hash: "not-a-hash", wantErr: password.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, password.Verify(tt.password, tt.hash), tt.wantErr)
		})
	}
}

func TestHash_RejectsOutOfBounds(t *testing.T) {
	_, err := password.Hash("short")
	assert.ErrorIs(t, err, password.ErrTooShort)

	_, err = password.Hash(strings.Repeat("x", 100))
	assert.ErrorIs(t, err, password.ErrTooLong)
}

func TestHash_Salted(t *testing.T) {
	first, err := password.Hash("same-secret")
	require.NoError(t, err)

	second, err := password.Hash("same-secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NoError(t, password.Verify("same-secret", first))
	assert.NoError(t, password.Verify("same-secret", second))
}
