package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenHashIDRoundTrip(t *testing.T) {
	for _, id := range []uint64{1, 42, 987654} {
		ref, err := GenHashID("salt", id)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(ref, "ORD-"))
		assert.GreaterOrEqual(t, len(ref), 4+hashMinLength)

		got, err := DecodeHashID("salt", ref)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
}

func TestGenHashIDDependsOnSalt(t *testing.T) {
	a, err := GenHashID("salt-a", 7)
	require.NoError(t, err)
	b, err := GenHashID("salt-b", 7)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
