package credentials

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash_RandomSalt(t *testing.T) {
	first, err := Hash("pw1234")
	require.NoError(t, err)
	second, err := Hash("pw1234")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NotContains(t, first, "pw1234")
	assert.True(t, strings.HasPrefix(first, "$2a$"))
}

func TestVerify(t *testing.T) {
	hash, err := Hash("pw1234")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{name: "match", password: "pw1234", hash: hash, want: true},
		{name: "wrong password", password: "pw12345", hash: hash, want: false},
		{name: "empty password", password: "", hash: hash, want: false},
		{name: "malformed hash", password: "pw1234", hash: "not-a-hash", want: false},
		{name: "empty hash", password: "pw1234", hash: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Verify(tt.password, tt.hash))
		})
	}
}

func TestHash_LongPasswords(t *testing.T) {
	long := strings.Repeat("a", 100)
	hash, err := Hash(long)
	require.NoError(t, err)

	assert.True(t, Verify(long, hash))
	// Differs only past bcrypt's 72 byte window.
	assert.False(t, Verify(strings.Repeat("a", 99)+"b", hash))
	assert.False(t, Verify(strings.Repeat("a", 72), hash))
}
