package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordDigest_KnownVector(t *testing.T) {
	// sha256("password"), fixed by the storage format.
	require.Equal(t,
		"5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
		PasswordDigest("password"))
}

func TestPasswordDigest_Deterministic(t *testing.T) {
	assert.Equal(t, PasswordDigest("s3cret"), PasswordDigest("s3cret"))
	assert.NotEqual(t, PasswordDigest("s3cret"), PasswordDigest("s3cret "))
}

func TestVerifyPassword(t *testing.T) {
	d := PasswordDigest("correct horse")
	assert.True(t, VerifyPassword("correct horse", d))
	assert.False(t, VerifyPassword("battery staple", d))
	assert.False(t, VerifyPassword("correct horse", "not-a-digest"))
}
