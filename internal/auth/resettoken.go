// internal/auth/resettoken.go
package auth

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// ErrInvalidToken covers every reset-token failure: malformed, tampered and
// expired tokens are deliberately indistinguishable to the caller.
var ErrInvalidToken = errors.New("token is invalid or has expired")

// DefaultResetTokenMaxAge is how long an issued reset token stays valid.
const DefaultResetTokenMaxAge = 1800 * time.Second

// ResetTokenUtil issues and verifies stateless password-reset tokens. A token
// is an HS256-signed capsule of the user id and issue time; validity is
// checked by signature and elapsed time, no storage lookup involved.
type ResetTokenUtil struct {
	secretKey string
	maxAge    time.Duration
}

func NewResetTokenUtil(secretKey string, maxAge time.Duration) *ResetTokenUtil {
	if maxAge <= 0 {
		maxAge = DefaultResetTokenMaxAge
	}
	return &ResetTokenUtil{
		secretKey: secretKey,
		maxAge:    maxAge,
	}
}

type resetClaims struct {
	UserID int `json:"userId"`
	jwt.StandardClaims
}

func (u *ResetTokenUtil) Issue(userID int) (string, error) {
	claims := &resetClaims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			IssuedAt: time.Now().Unix(),
			Issuer:   "levelup-api/reset",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.secretKey))
}

// Verify returns the user id the token was issued for, or ErrInvalidToken.
func (u *ResetTokenUtil) Verify(tokenString string) (int, error) {
	claims := &resetClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(u.secretKey), nil
	})

	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	if claims.IssuedAt <= 0 {
		return 0, ErrInvalidToken
	}

	issuedAt := time.Unix(claims.IssuedAt, 0)
	if time.Since(issuedAt) > u.maxAge {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}
