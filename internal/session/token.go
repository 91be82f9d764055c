package session

import (
	"errors"
	"time"

	"github.com/dkuleshov/emgtrack/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

var errInvalidToken = errors.New("invalid session token")

// claims carries the standard claims plus the signed-in user's id.
type claims struct {
	jwt.RegisteredClaims
	UserID string
}

// generateToken mints an HS256 token wrapping userID. A zero validity
// produces a token without an expiry. Each token gets a random jti so
// re-saving the same session still rewrites the stored value.
func generateToken(userID string, secret []byte, validity time.Duration) (string, error) {
	jti, err := common.MakeRandHexString(8)
	if err != nil {
		return "", err
	}
	c := claims{UserID: userID}
	c.ID = jti
	if validity != 0 {
		c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(validity))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(secret)
}

// userIDFromToken verifies the token signature and expiry and returns the
// embedded user id.
func userIDFromToken(tokenString string, secret []byte) (string, error) {
	c := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, c, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errInvalidToken
	}
	return c.UserID, nil
}
