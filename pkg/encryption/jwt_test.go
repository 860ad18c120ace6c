package encryption

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJwtRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	// Snowflake sized ID, must survive the round trip exactly
	var userID uint64 = 1864712345678901248

	token, err := GenerateNewJwtToken(userID, time.Now().Add(10*24*time.Hour))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsedID, err := ParseJwtToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestJwtExpired(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	token, err := GenerateNewJwtToken(42, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = ParseJwtToken(token)
	assert.Error(t, err)
}

func TestJwtWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	token, err := GenerateNewJwtToken(42, time.Now().Add(time.Hour))
	require.NoError(t, err)

	t.Setenv("JWT_SECRET_KEY", "other-secret")
	_, err = ParseJwtToken(token)
	assert.Error(t, err)
}

func TestJwtGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	_, err := ParseJwtToken("not-a-token")
	assert.Error(t, err)
}
