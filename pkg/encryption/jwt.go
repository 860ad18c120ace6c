package encryption

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Generate new jwt session token bound to a user ID. The ID travels as a
// decimal string, snowflake IDs don't survive a float64 round trip.
func GenerateNewJwtToken(id uint64, expiresAt time.Time) (string, error) {
	secret := os.Getenv("JWT_SECRET_KEY")

	claims := jwt.MapClaims{}
	claims["id"] = strconv.FormatUint(id, 10)
	claims["iat"] = time.Now().Unix()
	claims["expires"] = expiresAt.Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	t, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return t, nil
}

// ParseJwtToken validates signature and expiry and returns the user ID
func ParseJwtToken(tokenString string) (uint64, error) {
	secret := os.Getenv("JWT_SECRET_KEY")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("invalid token claims")
	}

	expiresAtFloat, ok := claims["expires"].(float64)
	if !ok {
		return 0, fmt.Errorf("invalid expires datatype")
	}
	if time.Now().Unix() >= int64(expiresAtFloat) {
		return 0, fmt.Errorf("token expired")
	}

	idString, ok := claims["id"].(string)
	if !ok {
		return 0, fmt.Errorf("invalid id datatype")
	}
	userID, err := strconv.ParseUint(idString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id value")
	}

	return userID, nil
}
