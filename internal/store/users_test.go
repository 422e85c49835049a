package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordSetAndCompare(t *testing.T) {
	var p password

	require.NoError(t, p.Set("secret1"))
	require.NotEmpty(t, p.hash)
	assert.NotEqual(t, "secret1", string(p.hash))

	assert.NoError(t, p.Compare("secret1"))
	assert.Error(t, p.Compare("wrongpass"))
}

func TestPasswordSaltedPerRecord(t *testing.T) {
	var a, b password

	require.NoError(t, a.Set("secret1"))
	require.NoError(t, b.Set("secret1"))

	// bcrypt embeds a random salt, so identical inputs must not collide
	assert.NotEqual(t, a.hash, b.hash)
}
