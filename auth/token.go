// auth/token.go - JWT issuing and verification
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = time.Hour

var (
	// ErrTokenExpired means the token was well-formed but past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMalformed covers every other verification failure: bad
	// signature, wrong algorithm, garbage input, missing claims.
	ErrTokenMalformed = errors.New("token malformed")
)

// Claims is the identity carried by a verified token.
type Claims struct {
	UserID uint
	Email  string
}

// IssueToken signs a token for the user, expiring TokenTTL from now.
func IssueToken(secret string, userID uint, email string) (string, error) {
	return issueTokenAt(secret, userID, email, time.Now())
}

func issueTokenAt(secret string, userID uint, email string, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"iat":     now.Unix(),
		"exp":     now.Add(TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyToken checks signature and expiry and returns the embedded
// identity. Expired and malformed tokens fail with distinct errors so
// callers can log them apart; both must surface as 401 to clients.
func VerifyToken(secret, tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}
	if !token.Valid {
		return nil, ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenMalformed
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, ErrTokenMalformed
	}
	email, ok := claims["email"].(string)
	if !ok {
		return nil, ErrTokenMalformed
	}

	return &Claims{UserID: uint(userID), Email: email}, nil
}
