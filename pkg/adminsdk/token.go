package adminsdk

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims returns the decoded-but-unverified claims of a JWT bearer
// credential. The server remains the sole authority on token validity;
// this exists for display purposes (expiry countdowns, signed-in subject)
// and must never gate authorization.
func Claims(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("adminsdk: parse token: %w", err)
	}
	return claims, nil
}

// Expiry extracts the token's expiration time, if it carries one.
func Expiry(token string) (time.Time, bool) {
	claims, err := Claims(token)
	if err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Subject extracts the token's subject, if it carries one.
func Subject(token string) (string, bool) {
	claims, err := Claims(token)
	if err != nil {
		return "", false
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", false
	}
	return sub, true
}
