package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := createSessionToken("mage@example.com", "Mage", time.Hour)
	require.NoError(t, err)

	claims, err := parseAndValidateSession(token)
	require.NoError(t, err)
	require.Equal(t, "mage@example.com", claims.Sub)
	require.Equal(t, "Mage", claims.Name)
}

func TestSessionTokenRejectsTampering(t *testing.T) {
	token, err := createSessionToken("mage@example.com", "Mage", time.Hour)
	require.NoError(t, err)

	_, err = parseAndValidateSession(token + "x")
	require.Error(t, err)

	_, err = parseAndValidateSession("not.a.token")
	require.Error(t, err)
}

func TestSessionTokenExpires(t *testing.T) {
	token, err := createSessionToken("mage@example.com", "Mage", -time.Minute)
	require.NoError(t, err)

	_, err = parseAndValidateSession(token)
	require.Error(t, err)
}

func TestNormalizeJoinCode(t *testing.T) {
	code, ok := normalizeJoinCode("  ab2cde ")
	require.True(t, ok)
	require.Equal(t, "AB2CDE", code)

	for _, bad := range []string{"", "ABC", "ABCDEFG", "ABC0DE", "ABCD1E", "ABCIDE", "ABCLDE"} {
		_, ok := normalizeJoinCode(bad)
		require.False(t, ok, "expected %q to be rejected", bad)
	}
}
