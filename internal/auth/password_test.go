package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)

	// Two hashes of the same password differ because of the salt.
	other, err := HashPassword("secret123")
	assert.NoError(t, err)
	assert.NotEqual(t, hash, other)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	assert.NoError(t, err)

	tests := []struct {
		name  string
		plain string
		hash  string
		want  bool
	}{
		{name: "correct password", plain: "secret123", hash: hash, want: true},
		{name: "wrong password", plain: "secret124", hash: hash, want: false},
		{name: "empty password", plain: "", hash: hash, want: false},
		{name: "malformed hash", plain: "secret123", hash: "not-a-bcrypt-hash", want: false},
		{name: "empty hash", plain: "secret123", hash: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckPassword(tt.plain, tt.hash))
		})
	}
}
