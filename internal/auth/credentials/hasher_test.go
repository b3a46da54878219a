package credentials

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("MyAmazingPassw0rd")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$2a$"))
	assert.NotContains(t, hash, "MyAmazingPassw0rd")
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("secret")
	require.NoError(t, err)
	second, err := HashPassword("secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestIsValid(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)

	tests := []struct {
		name     string
		hash     string
		password string
		want     bool
	}{
		{name: "matching password", hash: hash, password: "secret", want: true},
		{name: "wrong password", hash: hash, password: "Secret", want: false},
		{name: "empty password", hash: hash, password: "", want: false},
		{name: "empty hash", hash: "", password: "secret", want: false},
		{name: "malformed hash", hash: "not-a-hash", password: "secret", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.hash, tt.password))
		})
	}
}
