package encryption

import (
	"crypto/rand"
	"encoding/base64"
	"math/big"
)

var codeRunes = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890")

// RandStringRunes generates a short uppercase alphanumeric code, used for
// password reset codes sent by email
func RandStringRunes(n int) (string, error) {
	b := make([]rune, n)
	for i := range b {
		index, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeRunes))))
		if err != nil {
			return "", err
		}
		b[i] = codeRunes[index.Int64()]
	}
	return string(b), nil
}

// GenerateRandomBase64String returns a URL-safe random token
func GenerateRandomBase64String() (string, error) {
	randomBytes := make([]byte, 32)
	_, err := rand.Read(randomBytes)
	if err != nil {
		return "", err
	}

	return base64.URLEncoding.EncodeToString(randomBytes), nil
}
