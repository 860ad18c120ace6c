package encryption

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandStringRunes(t *testing.T) {
	code, err := RandStringRunes(6)
	require.NoError(t, err)
	assert.Len(t, code, 6)

	for _, r := range code {
		assert.True(t, strings.ContainsRune(string(codeRunes), r), "unexpected rune %q", r)
	}
}

func TestGenerateRandomBase64String(t *testing.T) {
	token, err := GenerateRandomBase64String()
	require.NoError(t, err)

	raw, err := base64.URLEncoding.DecodeString(token)
	require.NoError(t, err)
	assert.Len(t, raw, 32)

	other, err := GenerateRandomBase64String()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}
