package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenType string

const (
	TypeAccess  TokenType = "access"
	TypeRefresh TokenType = "refresh"
)

type Claims struct {
	jwt.RegisteredClaims
	TokenType TokenType `json:"type"`
}

// Codec is the sole owner of the signing secret. Verification failures
// (bad signature, malformed input, expiry, wrong type) all surface as
// the same invalid-token error.
type Codec interface {
	Generate(subject string, typ TokenType) (token string, exp time.Time, err error)
	Verify(token string, want TokenType) (Claims, error)
}
