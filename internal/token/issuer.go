package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity payload embedded in an issued token.
type Claims struct {
	UserID uuid.UUID
	Name   string
	Role   string
}

// Issuer signs and validates time-bounded identity tokens. Tokens are
// never stored server-side; the client holds the only copy.
type Issuer struct {
	secret     []byte
	expiration time.Duration
}

func NewIssuer(secret string, expiration time.Duration) *Issuer {
	return &Issuer{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

func (i *Issuer) Issue(claims Claims) (string, error) {
	now := time.Now()
	mapClaims := jwt.MapClaims{
		"sub":  claims.UserID.String(),
		"name": claims.Name,
		"role": claims.Role,
		"exp":  now.Add(i.expiration).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	return token.SignedString(i.secret)
}

func (i *Issuer) Validate(tokenString string) (*jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return i.secret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return &claims, nil
	}

	return nil, ErrInvalidToken
}
